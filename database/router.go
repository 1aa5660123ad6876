package database

import "strings"

/**
 * @Author: wanglei
 * @File: router
 * @Version: 1.0.0
 * @Description: 命令注册表
 * @Date: 2023/07/20 16:30
 */

var cmdTable = make(map[string]*command)

const (
	flagWrite = iota
	flagReadOnly
)

type command struct {
	executor ExecFunc
	// arity包含命令名本身，负数表示至少-arity个参数
	arity int
	flags int
}

// RegisterCommand 注册命令，name不区分大小写
func RegisterCommand(name string, executor ExecFunc, arity int, flags int) {
	name = strings.ToLower(name)
	cmdTable[name] = &command{
		executor: executor,
		arity:    arity,
		flags:    flags,
	}
}

func isReadOnlyCommand(name string) bool {
	cmd := cmdTable[strings.ToLower(name)]
	if cmd == nil {
		return false
	}
	return cmd.flags&flagReadOnly > 0
}

func validateArity(arity int, cmdArgs [][]byte) bool {
	argNum := len(cmdArgs)
	if arity >= 0 {
		return argNum == arity
	}
	return argNum >= -arity
}
