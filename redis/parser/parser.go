package parser

/**
 * @Author: wanglei
 * @File: parser
 * @Version: 1.0.0
 * @Description: RESP协议解析
 * @Date: 2023/07/05 14:45
 */

import (
	"bufio"
	"bytes"
	"io"
	"runtime/debug"
	"strconv"

	"github.com/pkg/errors"

	"gmr/go-sll/interface/redis"
	"gmr/go-sll/lib/logger"
	"gmr/go-sll/redis/protocol"
)

const (
	// 单个bulk string的最大长度
	maxBulkLen = 512 * 1024 * 1024
	// 数组的最大元素个数
	maxArrayLen = 1024 * 1024
)

// Payload 解析出的一个响应或者错误
type Payload struct {
	Data redis.Reply
	Err  error
}

// ParseStream 读取io.Reader并将结果通过channel返回给调用者，
// 适合供客户端/服务端使用。遇到io错误时发送该错误并关闭channel。
func ParseStream(reader io.Reader) <-chan *Payload {
	ch := make(chan *Payload)
	go parse(reader, ch)
	return ch
}

// ParseBytes 解析data中的全部响应
func ParseBytes(data []byte) ([]redis.Reply, error) {
	ch := make(chan *Payload)
	go parse(bytes.NewReader(data), ch)

	var results []redis.Reply
	for payload := range ch {
		if payload == nil {
			return nil, errors.New("no protocol")
		}
		if payload.Err != nil {
			if payload.Err == io.EOF {
				break
			}
			go drain(ch)
			return nil, payload.Err
		}
		results = append(results, payload.Data)
	}
	return results, nil
}

// ParseOne 解析data中的第一个响应
func ParseOne(data []byte) (redis.Reply, error) {
	ch := make(chan *Payload)
	go parse(bytes.NewReader(data), ch)

	payload := <-ch
	if payload == nil {
		return nil, errors.New("no protocol")
	}
	go drain(ch)
	return payload.Data, payload.Err
}

// drain 丢弃剩余的数据，让parse协程自行结束
func drain(ch <-chan *Payload) {
	for range ch {
	}
}

/*
RESP 通过第一个字符来表示格式:
简单字符串：以"+" 开始， 如："+OK\r\n"
错误：以"-" 开始，如："-ERR Invalid Synatx\r\n"
整数：以":"开始，如：":1\r\n"
字符串：以 $ 开始
数组：以 * 开始
其他内容按inline命令处理，以空格分隔参数
*/
func parse(reader io.Reader, ch chan<- *Payload) {
	defer func() {
		if err := recover(); err != nil {
			logger.Error(err, string(debug.Stack()))
			close(ch)
		}
	}()

	bufReader := bufio.NewReader(reader)
	for {
		line, err := bufReader.ReadBytes('\n')
		if err != nil {
			ch <- &Payload{Err: err}
			close(ch)
			return
		}

		length := len(line)
		if length < 2 || line[length-2] != '\r' {
			ch <- &Payload{Err: protocolError(line)}
			continue
		}
		line = line[:length-2]
		if len(line) == 0 {
			// 空行忽略
			continue
		}

		var result redis.Reply
		var ioErr bool
		switch line[0] {
		case '+':
			result = protocol.MakeStatusReply(string(line[1:]))
		case '-':
			result = protocol.MakeErrorReply(string(line[1:]))
		case ':':
			var val int64
			val, err = strconv.ParseInt(string(line[1:]), 10, 64)
			if err != nil {
				err = protocolError(line)
			} else {
				result = protocol.MakeIntReply(val)
			}
		case '$':
			result, ioErr, err = parseBulkString(line, bufReader)
		case '*':
			result, ioErr, err = parseArray(line, bufReader)
		default:
			result = parseInline(line)
		}

		if err != nil {
			ch <- &Payload{Err: err}
			if ioErr {
				close(ch)
				return
			}
			continue
		}
		ch <- &Payload{Data: result}
	}
}

// parseBulkString 读取二进制安全的bulk string，header为"$<len>"
func parseBulkString(header []byte, reader *bufio.Reader) (redis.Reply, bool, error) {
	body, ioErr, err := readBulkBody(header, reader)
	if err != nil {
		return nil, ioErr, err
	}
	if body == nil {
		return protocol.MakeNullBulkReply(), false, nil
	}
	return protocol.MakeBulkReply(body), false, nil
}

// readBulkBody 返回bulk内容，"$-1"时返回nil
func readBulkBody(header []byte, reader *bufio.Reader) ([]byte, bool, error) {
	strLen, err := strconv.ParseInt(string(header[1:]), 10, 64)
	if err != nil || strLen < -1 || strLen > maxBulkLen {
		return nil, false, protocolError(header)
	}
	if strLen == -1 {
		return nil, false, nil
	}

	body := make([]byte, strLen+2)
	if _, err := io.ReadFull(reader, body); err != nil {
		return nil, true, err
	}
	if body[strLen] != '\r' || body[strLen+1] != '\n' {
		return nil, false, protocolError(header)
	}
	return body[:strLen], false, nil
}

// parseArray 读取由bulk string组成的数组，header为"*<count>"
func parseArray(header []byte, reader *bufio.Reader) (redis.Reply, bool, error) {
	count, err := strconv.ParseInt(string(header[1:]), 10, 64)
	if err != nil || count < -1 || count > maxArrayLen {
		return nil, false, protocolError(header)
	}
	if count == -1 {
		return protocol.MakeNullBulkReply(), false, nil
	}
	if count == 0 {
		return protocol.MakeEmptyMultiBulkReply(), false, nil
	}

	args := make([][]byte, 0, count)
	for i := int64(0); i < count; i++ {
		line, err := reader.ReadBytes('\n')
		if err != nil {
			return nil, true, err
		}
		length := len(line)
		if length < 4 || line[0] != '$' || line[length-2] != '\r' {
			return nil, false, protocolError(line)
		}
		body, ioErr, err := readBulkBody(line[:length-2], reader)
		if err != nil {
			return nil, ioErr, err
		}
		args = append(args, body)
	}
	return protocol.MakeMultiBulkReply(args), false, nil
}

func parseInline(line []byte) redis.Reply {
	fields := bytes.Fields(line)
	args := make([][]byte, len(fields))
	copy(args, fields)
	return protocol.MakeMultiBulkReply(args)
}

// ProtocolError 数据不符合RESP格式，解析会跳过该行继续进行
type ProtocolError struct {
	Line string
}

func (e *ProtocolError) Error() string {
	return "protocol error: " + e.Line
}

func protocolError(msg []byte) error {
	return &ProtocolError{Line: string(bytes.TrimSpace(msg))}
}
