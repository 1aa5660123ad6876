package config

import (
	"bufio"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

/**
 * @Author: wanglei
 * @File: config
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/07/12 17:23
 */

// 全局配置参数
type ServerProperties struct {
	Bind        string        `cfg:"bind"`
	Port        int           `cfg:"port"`
	MaxClients  int           `cfg:"maxclients"`
	RequirePass string        `cfg:"requirepass"`
	Timeout     time.Duration `cfg:"timeout"`

	LogDir    string `cfg:"logdir"`
	LogLevel  string `cfg:"loglevel"`
	LogStdout bool   `cfg:"logstdout"`
}

var Properties *ServerProperties

func init() {
	Properties = Default()
}

// Default 没有配置文件时使用的配置
func Default() *ServerProperties {
	return &ServerProperties{
		Bind:       "127.0.0.1",
		Port:       6399,
		MaxClients: 1000,
		LogLevel:   "info",
		LogStdout:  true,
	}
}

// parse 读取redis.conf风格的配置：每行"key value"，#开头为注释
func parse(src io.Reader) (*ServerProperties, error) {
	config := Default()

	rawMap := make(map[string]string)
	scanner := bufio.NewScanner(src)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}

		pivot := strings.IndexAny(line, " \t")
		if pivot > 0 && pivot < len(line)-1 {
			key := line[:pivot]
			value := strings.TrimSpace(line[pivot+1:])
			rawMap[strings.ToLower(key)] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	// 通过cfg tag填充字段
	t := reflect.TypeOf(config).Elem()
	v := reflect.ValueOf(config).Elem()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldVal := v.Field(i)
		key, ok := field.Tag.Lookup("cfg")
		if !ok {
			key = field.Name
		}
		value, ok := rawMap[strings.ToLower(key)]
		if !ok {
			continue
		}

		switch {
		case field.Type == reflect.TypeOf(time.Duration(0)):
			d, err := parseDuration(value)
			if err != nil {
				return nil, errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(int64(d))
		case field.Type.Kind() == reflect.String:
			fieldVal.SetString(value)
		case field.Type.Kind() == reflect.Int:
			intValue, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "config %s", key)
			}
			fieldVal.SetInt(intValue)
		case field.Type.Kind() == reflect.Bool:
			fieldVal.SetBool(value == "yes")
		case field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.String:
			fieldVal.Set(reflect.ValueOf(strings.Split(value, ",")))
		}
	}
	return config, nil
}

// parseDuration 纯数字按秒处理，否则按time.ParseDuration
func parseDuration(value string) (time.Duration, error) {
	if secs, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(value)
}

// SetupConfig 读取配置文件并替换Properties
func SetupConfig(configFilename string) error {
	file, err := os.Open(configFilename)
	if err != nil {
		return errors.Wrap(err, "open config")
	}
	defer file.Close()

	props, err := parse(file)
	if err != nil {
		return errors.Wrapf(err, "parse %s", configFilename)
	}
	Properties = props
	return nil
}
