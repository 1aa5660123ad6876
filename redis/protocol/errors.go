package protocol

/**
 * @Author: wanglei
 * @File: errors
 * @Version: 1.0.0
 * @Description: 错误参数响应内容
 * @Date: 2023/07/06 17:56
 */

var (
	theSyntaxErrReply    = new(SyntaxErrReply)
	theWrongTypeErrReply = new(WrongTypeErrReply)
	unknownErrBytes      = []byte("-ERR unknown\r\n")
	syntaxErrBytes       = []byte("-ERR syntax error\r\n")
	wrongTypeErrBytes    = []byte("-WRONGTYPE Operation against a key holding the wrong kind of value\r\n")
)

// 未知的错误
type UnknownErrReply struct{}

func (r *UnknownErrReply) ToBytes() []byte {
	return unknownErrBytes
}

func (r *UnknownErrReply) Error() string {
	return "ERR unknown"
}

// 参数数量不对
type ArgNumErrReply struct {
	Cmd string
}

func (r *ArgNumErrReply) ToBytes() []byte {
	return []byte("-" + r.Error() + CRLF)
}

func (r *ArgNumErrReply) Error() string {
	return "ERR wrong number of arguments for '" + r.Cmd + "' command"
}

func MakeArgNumErrReply(cmd string) *ArgNumErrReply {
	return &ArgNumErrReply{Cmd: cmd}
}

// 遇到非期望的参数
type SyntaxErrReply struct{}

func (r *SyntaxErrReply) ToBytes() []byte {
	return syntaxErrBytes
}

func (r *SyntaxErrReply) Error() string {
	return "ERR syntax error"
}

func MakeSyntaxErrReply() *SyntaxErrReply {
	return theSyntaxErrReply
}

// 表示对错误类型值的键的操作
type WrongTypeErrReply struct{}

func (r *WrongTypeErrReply) ToBytes() []byte {
	return wrongTypeErrBytes
}

func (r *WrongTypeErrReply) Error() string {
	return "WRONGTYPE Operation against a key holding the wrong kind of value"
}

func MakeWrongTypeErrReply() *WrongTypeErrReply {
	return theWrongTypeErrReply
}

// 解析协议时遇到非期望的字节
type ProtocolErrReply struct {
	Msg string
}

func (r *ProtocolErrReply) ToBytes() []byte {
	return []byte("-" + r.Error() + CRLF)
}

func (r *ProtocolErrReply) Error() string {
	return "ERR Protocol error: '" + r.Msg + "'"
}

// 下标为负数或超出链表长度
type IndexErrReply struct {
	Msg string
}

func (r *IndexErrReply) ToBytes() []byte {
	return []byte("-" + r.Error() + CRLF)
}

func (r *IndexErrReply) Error() string {
	return "INDEXERR " + r.Msg
}

// 参数类型不符合要求，例如重复次数不是非负整数
type TypeErrReply struct {
	Msg string
}

func (r *TypeErrReply) ToBytes() []byte {
	return []byte("-" + r.Error() + CRLF)
}

func (r *TypeErrReply) Error() string {
	return "TYPEERR " + r.Msg
}
