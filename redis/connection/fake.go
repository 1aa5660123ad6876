package connection

import (
	"bytes"
	"sync"
)

// FakeConn 不经过网络的连接，测试时记录写出的数据
type FakeConn struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	password string
}

func NewFakeConn() *FakeConn {
	return &FakeConn{}
}

func (c *FakeConn) Write(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Write(data)
	return nil
}

// Bytes 返回写出的全部数据
func (c *FakeConn) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Bytes()
}

func (c *FakeConn) SetPassword(password string) {
	c.password = password
}

func (c *FakeConn) GetPassword() string {
	return c.password
}

func (c *FakeConn) Name() string {
	return "fake"
}
