package tcp

import (
	"context"
	"net"
)

/**
 * @Author: wanglei
 * @File: handler
 * @Version: 1.0.0
 * @Description: tcp server的应用层handler
 * @Date: 2023/07/12 14:02
 */

// Handler 处理一个tcp连接，Close时断开所有活跃连接
type Handler interface {
	Handle(ctx context.Context, conn net.Conn)
	Close() error
}
