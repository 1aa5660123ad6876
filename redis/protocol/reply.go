package protocol

/**
 * @Author: wanglei
 * @File: reply
 * @Version: 1.0.0
 * @Description: RESP协议响应
 * @Date: 2023/07/05 12:14
 */

import (
	"bytes"
	"strconv"

	"gmr/go-sll/interface/redis"
)

var (
	// 序列化协议分隔符
	CRLF = "\r\n"
)

/*  Bulk reply  */

// BulkReply Arg为nil时序列化为null bulk
type BulkReply struct {
	Arg []byte
}

func MakeBulkReply(arg []byte) *BulkReply {
	return &BulkReply{
		Arg: arg,
	}
}

func (r *BulkReply) ToBytes() []byte {
	if r.Arg == nil {
		return nullBulkBytes
	}
	return []byte("$" + strconv.Itoa(len(r.Arg)) + CRLF + string(r.Arg) + CRLF)
}

/*  MultiBulk reply  */

type MultiBulkReply struct {
	Args [][]byte
}

func MakeMultiBulkReply(args [][]byte) *MultiBulkReply {
	return &MultiBulkReply{
		Args: args,
	}
}

func (r *MultiBulkReply) ToBytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("*" + strconv.Itoa(len(r.Args)) + CRLF)
	for _, arg := range r.Args {
		if arg == nil {
			buf.WriteString("$-1" + CRLF)
		} else {
			buf.WriteString("$" + strconv.Itoa(len(arg)) + CRLF + string(arg) + CRLF)
		}
	}
	return buf.Bytes()
}

/*  Status reply  */

type StatusReply struct {
	Status string
}

func MakeStatusReply(status string) *StatusReply {
	return &StatusReply{
		Status: status,
	}
}

func (r *StatusReply) ToBytes() []byte {
	return []byte("+" + r.Status + CRLF)
}

/*  Int reply  */

type IntReply struct {
	Code int64
}

func MakeIntReply(code int64) *IntReply {
	return &IntReply{
		Code: code,
	}
}

func (r *IntReply) ToBytes() []byte {
	return []byte(":" + strconv.FormatInt(r.Code, 10) + CRLF)
}

/*  Error reply  */

// ErrorReply 在redis.Reply基础上加了错误方法
type ErrorReply interface {
	Error() string
	ToBytes() []byte
}

// StandardErrorReply 返回服务错误
type StandardErrorReply struct {
	Status string
}

// MakeErrorReply 生成标准错误
func MakeErrorReply(status string) *StandardErrorReply {
	return &StandardErrorReply{
		Status: status,
	}
}

// IsErrorReply 判断响应是否为错误
func IsErrorReply(reply redis.Reply) bool {
	b := reply.ToBytes()
	return len(b) > 0 && b[0] == '-'
}

func (r *StandardErrorReply) ToBytes() []byte {
	return []byte("-" + r.Status + CRLF)
}

func (r *StandardErrorReply) Error() string {
	return r.Status
}
