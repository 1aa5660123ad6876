package connection

import (
	"net"
	"sync"
	"time"

	"gmr/go-sll/lib/sync/wait"
)

/**
 * @Author: wanglei
 * @File: conn
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/07/10 14:40
 */

const closeTimeout = 10 * time.Second

// Connection redis-cli的连接
type Connection struct {
	conn net.Conn
	// 等待正在写出的响应完成
	waitingReply wait.Wait
	// 写响应时加锁
	mutex sync.Mutex
	// password可能在运行时被修改
	password string
}

// NewConnection 返回connection实例
func NewConnection(conn net.Conn) *Connection {
	return &Connection{
		conn: conn,
	}
}

// RemoteAddr 返回远程网络地址
func (c *Connection) RemoteAddr() net.Addr {
	return c.conn.RemoteAddr()
}

func (c *Connection) Name() string {
	if c.conn == nil {
		return ""
	}
	return c.conn.RemoteAddr().String()
}

// Close 等待正在写出的响应后关闭连接
func (c *Connection) Close() error {
	c.waitingReply.WaitWithTimeout(closeTimeout)
	return c.conn.Close()
}

// Write 通过tcp返回响应
func (c *Connection) Write(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	c.mutex.Lock()
	c.waitingReply.Add(1)
	defer func() {
		c.waitingReply.Done()
		c.mutex.Unlock()
	}()

	_, err := c.conn.Write(data)
	return err
}

// SetPassword 存储auth密码
func (c *Connection) SetPassword(password string) {
	c.password = password
}

func (c *Connection) GetPassword() string {
	return c.password
}
