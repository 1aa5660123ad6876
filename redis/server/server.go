package server

import (
	"context"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"gmr/go-sll/datastruct/dict"
	idatabase "gmr/go-sll/interface/database"
	"gmr/go-sll/lib/logger"
	"gmr/go-sll/redis/connection"
	"gmr/go-sll/redis/parser"
	"gmr/go-sll/redis/protocol"
)

/**
 * @Author: wanglei
 * @File: server
 * @Version: 1.0.0
 * @Description: 使用RESP协议的tcp handler
 * @Date: 2023/07/06 18:12
 */

var (
	unknownErrReplyBytes = []byte("-ERR unknown\r\n")
	requireMultiBulk     = protocol.MakeErrorReply("ERR require multi bulk protocol")
)

// Handler 解析RESP请求并交给db执行
type Handler struct {
	// 连接名 -> *connection.Connection
	activeConn  dict.Dict
	db          idatabase.DB
	closing     atomic.Bool
	idleTimeout time.Duration
}

// MakeHandler idleTimeout为0时不限制空闲时间
func MakeHandler(db idatabase.DB, idleTimeout time.Duration) *Handler {
	return &Handler{
		activeConn:  dict.MakeConcurrentDict(),
		db:          db,
		idleTimeout: idleTimeout,
	}
}

func (h *Handler) closeClient(client *connection.Connection) {
	_ = client.Close()
	h.db.AfterClientClose(client)
	h.activeConn.Remove(client.Name())
}

func (h *Handler) refreshDeadline(conn net.Conn) {
	if h.idleTimeout > 0 {
		_ = conn.SetReadDeadline(time.Now().Add(h.idleTimeout))
	}
}

func isClosedErr(err error) bool {
	if err == io.EOF || err == io.ErrUnexpectedEOF || errors.Is(err, net.ErrClosed) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func (h *Handler) Handle(ctx context.Context, conn net.Conn) {
	if h.closing.Load() {
		// 关闭handler后，拒绝新的连接
		_ = conn.Close()
		return
	}

	client := connection.NewConnection(conn)
	h.activeConn.Put(client.Name(), client)
	if h.closing.Load() {
		// Close已经遍历过activeConn
		h.closeClient(client)
		return
	}
	h.refreshDeadline(conn)

	ch := parser.ParseStream(conn)
	for payload := range ch {
		if payload.Err != nil {
			if isClosedErr(payload.Err) {
				h.closeClient(client)
				logger.Info("connection closed: " + client.Name())
				return
			}

			errReply := protocol.MakeErrorReply(payload.Err.Error())
			if err := client.Write(errReply.ToBytes()); err != nil {
				h.closeClient(client)
				logger.Info("connection closed: " + client.Name())
				return
			}
			continue
		}
		if payload.Data == nil {
			logger.Error("empty payload")
			continue
		}

		r, ok := payload.Data.(*protocol.MultiBulkReply)
		if !ok {
			if _, empty := payload.Data.(*protocol.EmptyMultiBulkReply); empty {
				continue
			}
			_ = client.Write(requireMultiBulk.ToBytes())
			continue
		}

		result := h.db.Exec(client, r.Args)
		if result != nil {
			_ = client.Write(result.ToBytes())
		} else {
			_ = client.Write(unknownErrReplyBytes)
		}
		h.refreshDeadline(conn)
	}
	// parser异常退出
	h.closeClient(client)
}

// Close 拒绝新连接并关闭所有活跃连接
func (h *Handler) Close() error {
	logger.Info("handler shutting down...")
	h.closing.Store(true)
	h.activeConn.ForEach(func(key string, val interface{}) bool {
		client := val.(*connection.Connection)
		_ = client.Close()
		return true
	})
	h.db.Close()
	return nil
}
