package redis

/**
 * @Author: wanglei
 * @File: reply
 * @Version: 1.0.0
 * @Description: RESP响应
 * @Date: 2023/07/05 11:40
 */

// Reply 可以序列化为RESP协议的响应
type Reply interface {
	ToBytes() []byte
}
