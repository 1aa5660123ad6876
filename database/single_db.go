package database

import (
	"runtime/debug"
	"strings"
	"sync"

	"gmr/go-sll/datastruct/dict"
	"gmr/go-sll/datastruct/list"
	"gmr/go-sll/interface/database"
	"gmr/go-sll/interface/redis"
	"gmr/go-sll/lib/logger"
	"gmr/go-sll/redis/protocol"
)

/**
 * @Author: wanglei
 * @File: single_db
 * @Version: 1.0.0
 * @Description: 存储Sll的单个DB
 * @Date: 2023/07/20 16:00
 */

// ExecFunc 命令执行器，args不包含命令名
type ExecFunc func(db *DB, args [][]byte) redis.Reply

// DB 单个DB实例
//
// LCONCAT会让不同key的链表共享节点，不同key不再是相互独立的链表，
// 所以不能按key分段加锁：只读命令共享读锁，可能修改链表(包括遍历游标)的命令持有写锁。
type DB struct {
	// key -> *database.DataEntity
	data dict.Dict
	mu   sync.RWMutex
}

var _ database.DB = (*DB)(nil)

// MakeDB 返回空的DB实例
func MakeDB() *DB {
	return &DB{
		data: dict.MakeSimpleDict(),
	}
}

// Exec 执行一条命令
func (db *DB) Exec(conn redis.Connection, cmdLine database.CmdLine) (result redis.Reply) {
	defer func() {
		if err := recover(); err != nil {
			logger.Error(err, string(debug.Stack()))
			result = &protocol.UnknownErrReply{}
		}
	}()

	if len(cmdLine) == 0 {
		return protocol.MakeErrorReply("ERR empty command")
	}
	cmdName := strings.ToLower(string(cmdLine[0]))
	if cmdName == "auth" {
		return Auth(conn, cmdLine[1:])
	}
	if !isAuthenticated(conn) {
		return protocol.MakeErrorReply("NOAUTH Authentication required")
	}
	return db.execNormalCommand(cmdLine)
}

func (db *DB) execNormalCommand(cmdLine database.CmdLine) redis.Reply {
	cmdName := strings.ToLower(string(cmdLine[0]))
	cmd, ok := cmdTable[cmdName]
	if !ok {
		return protocol.MakeErrorReply("ERR unknown command '" + cmdName + "'")
	}
	if !validateArity(cmd.arity, cmdLine) {
		return protocol.MakeArgNumErrReply(cmdName)
	}

	if isReadOnlyCommand(cmdName) {
		db.mu.RLock()
		defer db.mu.RUnlock()
	} else {
		db.mu.Lock()
		defer db.mu.Unlock()
	}
	return cmd.executor(db, cmdLine[1:])
}

// GetEntity 返回key对应的值，调用方需持有锁
func (db *DB) GetEntity(key string) (*database.DataEntity, bool) {
	raw, ok := db.data.Get(key)
	if !ok {
		return nil, false
	}
	entity, _ := raw.(*database.DataEntity)
	return entity, true
}

func (db *DB) PutEntity(key string, entity *database.DataEntity) int {
	return db.data.Put(key, entity)
}

func (db *DB) Remove(key string) int {
	return db.data.Remove(key)
}

func (db *DB) Removes(keys ...string) int {
	deleted := 0
	for _, key := range keys {
		deleted += db.data.Remove(key)
	}
	return deleted
}

func (db *DB) Flush() {
	db.data.Clear()
}

// getAsSll key不存在时返回nil
func (db *DB) getAsSll(key string) (*list.Sll, protocol.ErrorReply) {
	entity, ok := db.GetEntity(key)
	if !ok {
		return nil, nil
	}
	sll, ok := entity.Data.(*list.Sll)
	if !ok {
		return nil, protocol.MakeWrongTypeErrReply()
	}
	return sll, nil
}

// getOrEmpty key不存在时返回一个不保存到db的空链表，用于只读命令
func (db *DB) getOrEmpty(key string) (*list.Sll, protocol.ErrorReply) {
	sll, errReply := db.getAsSll(key)
	if errReply != nil {
		return nil, errReply
	}
	if sll == nil {
		return list.Make(), nil
	}
	return sll, nil
}

// putSll 将key绑定到新的头节点
func (db *DB) putSll(key string, sll *list.Sll) {
	db.PutEntity(key, &database.DataEntity{Data: sll})
}

func (db *DB) AfterClientClose(c redis.Connection) {
	logger.Debugf("client %s closed", c.Name())
}

func (db *DB) Close() {
	logger.Info("db closed")
}
