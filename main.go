package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"gmr/go-sll/config"
	"gmr/go-sll/database"
	"gmr/go-sll/lib/logger"
	redisServer "gmr/go-sll/redis/server"
	"gmr/go-sll/tcp"
)

var banner = `
                          _ _
   __ _  ___        ___ | | |
  / _' |/ _ \ _____/ __|| | |
 | (_| | (_) |_____\__ \| | |
  \__, |\___/      |___/|_|_|
  |___/
`

var (
	configFile string
	bind       string
	port       int
)

var rootCmd = &cobra.Command{
	Use:   "go-sll",
	Short: "RESP server storing singly linked lists",
	Long: `go-sll serves linked sequences over the redis protocol.
Keys are bound to sequence heads; LCONCAT links sequences without copying,
so later changes to the source are visible through the destination.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (or set GO_SLL_CONFIG env, default: ./redis.conf)")
	rootCmd.Flags().StringVar(&bind, "bind", "", "listen address, overrides config")
	rootCmd.Flags().IntVarP(&port, "port", "p", 0, "listen port, overrides config")
}

func run(cmd *cobra.Command, args []string) error {
	fmt.Print(banner)

	if err := loadConfig(); err != nil {
		return err
	}
	if cmd.Flags().Changed("bind") {
		config.Properties.Bind = bind
	}
	if cmd.Flags().Changed("port") {
		config.Properties.Port = port
	}

	props := config.Properties
	if err := logger.Setup(&logger.Settings{
		Dir:    props.LogDir,
		Level:  props.LogLevel,
		Stdout: props.LogStdout,
	}); err != nil {
		return err
	}
	logger.Info("go-sll start...")

	return tcp.ListenAndServeWithSignal(&tcp.Config{
		Address:    fmt.Sprintf("%s:%d", props.Bind, props.Port),
		MaxConnect: uint32(props.MaxClients),
	}, redisServer.MakeHandler(database.MakeDB(), props.Timeout))
}

// loadConfig 优先级：--config > GO_SLL_CONFIG > ./redis.conf > 默认配置
func loadConfig() error {
	filename := configFile
	if filename == "" {
		filename = os.Getenv("GO_SLL_CONFIG")
	}
	if filename == "" {
		if !fileExist("redis.conf") {
			return nil
		}
		filename = "redis.conf"
	}
	return config.SetupConfig(filename)
}

func fileExist(fileName string) bool {
	info, err := os.Stat(fileName)
	return err == nil && !info.IsDir()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
