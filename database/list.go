package database

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"gmr/go-sll/datastruct/list"
	"gmr/go-sll/interface/redis"
	"gmr/go-sll/redis/protocol"
)

/**
 * @Author: wanglei
 * @File: list
 * @Version: 1.0.0
 * @Description: Sll相关命令。key绑定到链表的头节点，返回新头节点的操作会重新绑定key
 * @Date: 2023/08/04 10:13
 */

// LREPEAT结果的最大长度
const maxRepeatLen = 1 << 20

var errNotInteger = protocol.MakeErrorReply("ERR value is not an integer or out of range")

// toItems 命令参数作为字符串item保存
func toItems(args [][]byte) []interface{} {
	items := make([]interface{}, len(args))
	for i, arg := range args {
		items[i] = string(arg)
	}
	return items
}

func itemToBytes(item interface{}) []byte {
	switch v := item.(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	case nil:
		return nil
	default:
		return []byte(fmt.Sprint(v))
	}
}

func makeItemsReply(sll *list.Sll) redis.Reply {
	items := sll.Items()
	args := make([][]byte, len(items))
	for i, item := range items {
		args[i] = itemToBytes(item)
	}
	return protocol.MakeMultiBulkReply(args)
}

// makeListErrReply 将Sll的错误转换为响应
func makeListErrReply(err error) redis.Reply {
	var indexErr *list.IndexError
	if errors.As(err, &indexErr) {
		return &protocol.IndexErrReply{Msg: indexErr.Error()}
	}
	var typeErr *list.TypeError
	if errors.As(err, &typeErr) {
		return &protocol.TypeErrReply{Msg: typeErr.Error()}
	}
	return protocol.MakeErrorReply("ERR " + err.Error())
}

func parseIndex(arg []byte) (int, bool) {
	index, err := strconv.Atoi(string(arg))
	return index, err == nil
}

// parseMultiplier 整数返回int64，其他数值返回float64，由Sll.Repeat给出TypeError
func parseMultiplier(arg []byte) (interface{}, redis.Reply) {
	d, err := decimal.NewFromString(string(arg))
	if err != nil {
		return nil, &protocol.TypeErrReply{Msg: "multiplier must be a non-negative integer but is: " + string(arg)}
	}
	if !d.IsInteger() {
		return d.InexactFloat64(), nil
	}
	if d.GreaterThan(decimal.NewFromInt(maxRepeatLen)) {
		return nil, protocol.MakeErrorReply("ERR multiplier too large")
	}
	return d.IntPart(), nil
}

// execSNew SNEW key [item...]，覆盖已有的key
func execSNew(db *DB, args [][]byte) redis.Reply {
	sll := list.Make(toItems(args[1:])...)
	db.putSll(string(args[0]), sll)
	return protocol.MakeIntReply(int64(sll.Len()))
}

// execRPush RPUSH key item [item...]，原地追加，key绑定的头节点不变
func execRPush(db *DB, args [][]byte) redis.Reply {
	key := string(args[0])
	sll, errReply := db.getAsSll(key)
	if errReply != nil {
		return errReply
	}
	if sll == nil {
		sll = list.Make()
		db.putSll(key, sll)
	}
	sll.Extend(toItems(args[1:])...)
	return protocol.MakeIntReply(int64(sll.Len()))
}

// execLPrepend LPREPEND key item [item...]，key重新绑定到新的头节点
func execLPrepend(db *DB, args [][]byte) redis.Reply {
	key := string(args[0])
	sll, errReply := db.getOrEmpty(key)
	if errReply != nil {
		return errReply
	}
	head := sll.Prepend(toItems(args[1:])...)
	db.putSll(key, head)
	return protocol.MakeIntReply(int64(head.Len()))
}

// execLLen LLEN key
func execLLen(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	return protocol.MakeIntReply(int64(sll.Len()))
}

// execLIndex LINDEX key index
func execLIndex(db *DB, args [][]byte) redis.Reply {
	index, ok := parseIndex(args[1])
	if !ok {
		return errNotInteger
	}
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	val, err := sll.Get(index)
	if err != nil {
		return makeListErrReply(err)
	}
	return protocol.MakeBulkReply(itemToBytes(val))
}

// execLSet LSET key index item
func execLSet(db *DB, args [][]byte) redis.Reply {
	index, ok := parseIndex(args[1])
	if !ok {
		return errNotInteger
	}
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	if err := sll.Set(index, string(args[2])); err != nil {
		return makeListErrReply(err)
	}
	return protocol.MakeOkReply()
}

// execLItems LITEMS key
func execLItems(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	return makeItemsReply(sll)
}

// execLSublist LSUBLIST key index
func execLSublist(db *DB, args [][]byte) redis.Reply {
	index, ok := parseIndex(args[1])
	if !ok {
		return errNotInteger
	}
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	sub, err := sll.Sublist(index)
	if err != nil {
		return makeListErrReply(err)
	}
	return makeItemsReply(sub)
}

// execLDel LDEL key index，删除后key仍然保留，即使链表为空
func execLDel(db *DB, args [][]byte) redis.Reply {
	index, ok := parseIndex(args[1])
	if !ok {
		return errNotInteger
	}
	key := string(args[0])
	sll, errReply := db.getOrEmpty(key)
	if errReply != nil {
		return errReply
	}
	head, err := sll.RemoveAt(index)
	if err != nil {
		return makeListErrReply(err)
	}
	db.putSll(key, head)
	return protocol.MakeOkReply()
}

// execLContains LCONTAINS key item
func execLContains(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	if sll.Contains(string(args[1])) {
		return protocol.MakeIntReply(1)
	}
	return protocol.MakeIntReply(0)
}

// execLCount LCOUNT key item
func execLCount(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	return protocol.MakeIntReply(int64(sll.Count(string(args[1]))))
}

// execLFind LFIND key item，找不到时返回nil
func execLFind(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	sub := sll.Find(string(args[1]))
	if sub == nil {
		return protocol.MakeNullBulkReply()
	}
	return makeItemsReply(sub)
}

// execLLast LLAST key
func execLLast(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	last, ok := sll.Last()
	if !ok {
		return protocol.MakeNullBulkReply()
	}
	return protocol.MakeBulkReply(itemToBytes(last))
}

// execLReverse LREVERSE key，原地反转，key重新绑定到原来的尾节点
func execLReverse(db *DB, args [][]byte) redis.Reply {
	key := string(args[0])
	sll, errReply := db.getAsSll(key)
	if errReply != nil {
		return errReply
	}
	if sll != nil {
		db.putSll(key, sll.Reverse())
	}
	return protocol.MakeOkReply()
}

// execLReversed LREVERSED key，返回反转后的item，不修改链表
func execLReversed(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	return makeItemsReply(sll.Reversed())
}

// execLConcat LCONCAT dst src，将src的节点链接到dst尾部，之后对src的修改在dst中可见
func execLConcat(db *DB, args [][]byte) redis.Reply {
	dstKey := string(args[0])
	dst, errReply := db.getAsSll(dstKey)
	if errReply != nil {
		return errReply
	}
	src, errReply := db.getOrEmpty(string(args[1]))
	if errReply != nil {
		return errReply
	}
	if dst == nil {
		dst = list.Make()
	}
	if dst.Overlaps(src) {
		return protocol.MakeErrorReply("ERR sequences already share nodes")
	}
	db.putSll(dstKey, dst.Concat(src))
	return protocol.MakeIntReply(int64(dst.Len()))
}

// execLRepeat LREPEAT dst src times，结果与src共享尾部节点
func execLRepeat(db *DB, args [][]byte) redis.Reply {
	times, errReply := parseMultiplier(args[2])
	if errReply != nil {
		return errReply
	}
	src, errReply2 := db.getOrEmpty(string(args[1]))
	if errReply2 != nil {
		return errReply2
	}
	if n, ok := times.(int64); ok && n > 0 && int64(src.Len())*n > maxRepeatLen {
		return protocol.MakeErrorReply("ERR result too large")
	}

	result, err := src.Repeat(times)
	if err != nil {
		return makeListErrReply(err)
	}
	db.putSll(string(args[0]), result)
	return protocol.MakeIntReply(int64(result.Len()))
}

// execLEqual LEQUAL key1 key2
func execLEqual(db *DB, args [][]byte) redis.Reply {
	a, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	b, errReply := db.getOrEmpty(string(args[1]))
	if errReply != nil {
		return errReply
	}
	if a.Equals(b) {
		return protocol.MakeIntReply(1)
	}
	return protocol.MakeIntReply(0)
}

// execLRepr LREPR key
func execLRepr(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getOrEmpty(string(args[0]))
	if errReply != nil {
		return errReply
	}
	return protocol.MakeBulkReply([]byte(sll.String()))
}

// execLIter LITER key，重置key绑定的头节点上的遍历游标
func execLIter(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getAsSll(string(args[0]))
	if errReply != nil {
		return errReply
	}
	if sll != nil {
		sll.Iter()
	}
	return protocol.MakeOkReply()
}

// execLNext LNEXT key，遍历结束时返回nil并重置游标
func execLNext(db *DB, args [][]byte) redis.Reply {
	sll, errReply := db.getAsSll(string(args[0]))
	if errReply != nil {
		return errReply
	}
	if sll == nil {
		return protocol.MakeNullBulkReply()
	}
	val, ok := sll.Next()
	if !ok {
		return protocol.MakeNullBulkReply()
	}
	return protocol.MakeBulkReply(itemToBytes(val))
}

func init() {
	RegisterCommand("snew", execSNew, -2, flagWrite)
	RegisterCommand("rpush", execRPush, -3, flagWrite)
	RegisterCommand("lprepend", execLPrepend, -3, flagWrite)
	RegisterCommand("llen", execLLen, 2, flagReadOnly)
	RegisterCommand("lindex", execLIndex, 3, flagReadOnly)
	RegisterCommand("lset", execLSet, 4, flagWrite)
	RegisterCommand("litems", execLItems, 2, flagReadOnly)
	RegisterCommand("lsublist", execLSublist, 3, flagReadOnly)
	RegisterCommand("ldel", execLDel, 3, flagWrite)
	RegisterCommand("lcontains", execLContains, 3, flagReadOnly)
	RegisterCommand("lcount", execLCount, 3, flagReadOnly)
	RegisterCommand("lfind", execLFind, 3, flagReadOnly)
	RegisterCommand("llast", execLLast, 2, flagReadOnly)
	RegisterCommand("lreverse", execLReverse, 2, flagWrite)
	RegisterCommand("lreversed", execLReversed, 2, flagReadOnly)
	RegisterCommand("lconcat", execLConcat, 3, flagWrite)
	RegisterCommand("lrepeat", execLRepeat, 4, flagWrite)
	RegisterCommand("lequal", execLEqual, 3, flagReadOnly)
	RegisterCommand("lrepr", execLRepr, 2, flagReadOnly)
	RegisterCommand("liter", execLIter, 2, flagWrite)
	RegisterCommand("lnext", execLNext, 2, flagWrite)
}
