package database

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"gmr/go-sll/datastruct/list"
	"gmr/go-sll/interface/database"
	"gmr/go-sll/interface/redis"
	"gmr/go-sll/lib/utils"
	"gmr/go-sll/redis/protocol"
)

/**
 * @Author: wanglei
 * @File: keys
 * @Version: 1.0.0
 * @Description: keyspace命令
 * @Date: 2023/07/21 15:31
 */

// execDel DEL key [key...]
func execDel(db *DB, args [][]byte) redis.Reply {
	deleted := db.Removes(utils.ToStrings(args)...)
	return protocol.MakeIntReply(int64(deleted))
}

// execExists EXISTS key [key...]
func execExists(db *DB, args [][]byte) redis.Reply {
	result := int64(0)
	for _, arg := range args {
		if _, exists := db.GetEntity(string(arg)); exists {
			result++
		}
	}
	return protocol.MakeIntReply(result)
}

// execType TYPE key
func execType(db *DB, args [][]byte) redis.Reply {
	entity, exists := db.GetEntity(string(args[0]))
	if !exists {
		return protocol.MakeStatusReply("none")
	}
	switch entity.Data.(type) {
	case *list.Sll:
		return protocol.MakeStatusReply("list")
	}
	return &protocol.UnknownErrReply{}
}

// execKeys KEYS pattern，pattern为glob格式
func execKeys(db *DB, args [][]byte) redis.Reply {
	pattern := string(args[0])
	if !doublestar.ValidatePattern(pattern) {
		return protocol.MakeErrorReply("ERR invalid pattern '" + pattern + "'")
	}

	var keys []string
	db.data.ForEach(func(key string, val interface{}) bool {
		if _, ok := val.(*database.DataEntity); !ok {
			return true
		}
		if matched, _ := doublestar.Match(pattern, key); matched {
			keys = append(keys, key)
		}
		return true
	})
	sort.Strings(keys)
	return protocol.MakeMultiBulkReply(utils.ToCmdLine(keys...))
}

// execDBSize DBSIZE
func execDBSize(db *DB, args [][]byte) redis.Reply {
	return protocol.MakeIntReply(int64(db.data.Len()))
}

// execFlushDB FLUSHDB
func execFlushDB(db *DB, args [][]byte) redis.Reply {
	db.Flush()
	return protocol.MakeOkReply()
}

func init() {
	RegisterCommand("del", execDel, -2, flagWrite)
	RegisterCommand("exists", execExists, -2, flagReadOnly)
	RegisterCommand("type", execType, 2, flagReadOnly)
	RegisterCommand("keys", execKeys, 2, flagReadOnly)
	RegisterCommand("dbsize", execDBSize, 1, flagReadOnly)
	RegisterCommand("flushdb", execFlushDB, -1, flagWrite)
}
