package redis

/**
 * @Author: wanglei
 * @File: Connection
 * @Version: 1.0.0
 * @Description: client connection 方法
 * @Date: 2023/07/10 11:40
 */

// Connection client连接方法接口
type Connection interface {
	Write([]byte) error
	SetPassword(string)
	GetPassword() string
	// Name 连接的远程地址，用于日志
	Name() string
}
