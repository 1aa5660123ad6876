package database

import (
	"gmr/go-sll/interface/redis"
)

/**
 * @Author: wanglei
 * @File: db.go
 * @Version: 1.0.0
 * @Description: db方法接口
 * @Date: 2023/07/10 11:39
 */

// CmdLine 命令行命令
type CmdLine = [][]byte

// DB redis风格的存储引擎
type DB interface {
	Exec(client redis.Connection, cmdLine CmdLine) redis.Reply
	AfterClientClose(client redis.Connection)
	Close()
}

// DataEntity 存储key对应的值
type DataEntity struct {
	Data interface{}
}
