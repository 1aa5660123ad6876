package protocol

/**
 * @Author: wanglei
 * @File: consts
 * @Version: 1.0.0
 * @Description: 固定内容的响应
 * @Date: 2023/07/05 11:45
 */

var (
	theOkReply          = new(OkReply)
	thePongReply        = new(PongReply)
	noBytes             = []byte("")
	emptyMultiBulkBytes = []byte("*0\r\n")
	pongBytes           = []byte("+PONG\r\n")
	okBytes             = []byte("+OK\r\n")
	nullBulkBytes       = []byte("$-1\r\n")
)

// 响应PONG
type PongReply struct{}

func (r *PongReply) ToBytes() []byte {
	return pongBytes
}

func MakePongReply() *PongReply {
	return thePongReply
}

// 响应OK
type OkReply struct{}

func (r *OkReply) ToBytes() []byte {
	return okBytes
}

func MakeOkReply() *OkReply {
	return theOkReply
}

// 响应空数组
type EmptyMultiBulkReply struct{}

func (r *EmptyMultiBulkReply) ToBytes() []byte {
	return emptyMultiBulkBytes
}

func MakeEmptyMultiBulkReply() *EmptyMultiBulkReply {
	return &EmptyMultiBulkReply{}
}

// 响应nil
type NullBulkReply struct{}

func (r *NullBulkReply) ToBytes() []byte {
	return nullBulkBytes
}

func MakeNullBulkReply() *NullBulkReply {
	return &NullBulkReply{}
}

// 不需要响应
type NoReply struct{}

func (r *NoReply) ToBytes() []byte {
	return noBytes
}
