package database

import (
	"gmr/go-sll/config"
	"gmr/go-sll/interface/redis"
	"gmr/go-sll/redis/protocol"
)

/**
 * @Author: wanglei
 * @File: sys
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/08/07 16:07
 */

func Ping(db *DB, args [][]byte) redis.Reply {
	if len(args) == 0 {
		return protocol.MakePongReply()
	} else if len(args) == 1 {
		return protocol.MakeStatusReply(string(args[0]))
	}
	return protocol.MakeArgNumErrReply("ping")
}

func Auth(c redis.Connection, args [][]byte) redis.Reply {
	if len(args) != 1 {
		return protocol.MakeArgNumErrReply("auth")
	}
	if config.Properties.RequirePass == "" {
		return protocol.MakeErrorReply("ERR Client sent AUTH, but no password is set")
	}

	pwd := string(args[0])
	c.SetPassword(pwd)
	if config.Properties.RequirePass != pwd {
		return protocol.MakeErrorReply("ERR invalid password")
	}
	return protocol.MakeOkReply()
}

func isAuthenticated(c redis.Connection) bool {
	if config.Properties.RequirePass == "" {
		return true
	}
	return c != nil && c.GetPassword() == config.Properties.RequirePass
}

func init() {
	RegisterCommand("ping", Ping, -1, flagReadOnly)
}
