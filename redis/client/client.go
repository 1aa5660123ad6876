package client

import (
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"

	"gmr/go-sll/interface/redis"
	"gmr/go-sll/lib/logger"
	"gmr/go-sll/lib/sync/wait"
	"gmr/go-sll/redis/parser"
	"gmr/go-sll/redis/protocol"
)

/**
 * @Author: wanglei
 * @File: client
 * @Version: 1.0.0
 * @Description: pipeline模式的客户端
 * @Date: 2023/07/10 15:46
 */

const (
	created = iota
	running
	closed
)

const (
	chanSize          = 256
	maxWait           = 3 * time.Second
	heartbeatInterval = 10 * time.Second
)

var errConnClosed = errors.New("connection closed")

// Client pipeline模式的客户端，请求按发送顺序与响应一一对应
type Client struct {
	conn net.Conn
	// 全双工通信的两个channel
	pendingReqs chan *request // 等待发送的请求
	waitingReqs chan *request // 等待服务器响应的请求
	ticker      *time.Ticker  // 触发心跳包的计时器
	addr        string
	status      int32

	// 保护pendingReqs的关闭
	mu sync.RWMutex
	// 记录未完成的请求，关闭前等待请求结束
	working   sync.WaitGroup
	writeDone chan struct{}
	readDone  chan struct{}
	stopBeat  chan struct{}
}

// 发送到服务端的一条命令
type request struct {
	args      [][]byte
	reply     redis.Reply
	heartbeat bool
	waiting   *wait.Wait
	err       error
}

// MakeClient 连接addr，调用Start之后才能发送命令
func MakeClient(addr string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", addr)
	}
	return &Client{
		addr:        addr,
		conn:        conn,
		pendingReqs: make(chan *request, chanSize),
		waitingReqs: make(chan *request, chanSize),
		writeDone:   make(chan struct{}),
		readDone:    make(chan struct{}),
		stopBeat:    make(chan struct{}),
	}, nil
}

func (client *Client) Start() {
	client.ticker = time.NewTicker(heartbeatInterval)
	go client.handleWrite()
	go client.handleRead()
	go client.heartbeat()
	atomic.StoreInt32(&client.status, running)
}

// Close 等待未完成的请求结束后关闭连接
func (client *Client) Close() {
	client.mu.Lock()
	status := atomic.SwapInt32(&client.status, closed)
	if status == closed {
		client.mu.Unlock()
		return
	}
	close(client.pendingReqs)
	client.mu.Unlock()

	if status == created {
		_ = client.conn.Close()
		return
	}
	client.ticker.Stop()
	close(client.stopBeat)

	client.working.Wait()
	_ = client.conn.Close()
	<-client.writeDone
}

func (client *Client) heartbeat() {
	for {
		select {
		case <-client.ticker.C:
			client.doHeartbeat()
		case <-client.stopBeat:
			return
		}
	}
}

// enqueue 客户端已关闭时返回false
func (client *Client) enqueue(req *request) bool {
	client.mu.RLock()
	defer client.mu.RUnlock()
	if atomic.LoadInt32(&client.status) != running {
		return false
	}
	req.waiting.Add(1)
	client.working.Add(1)
	client.pendingReqs <- req
	return true
}

// Send 发送一条命令并等待响应
func (client *Client) Send(args [][]byte) redis.Reply {
	req := &request{
		args:    args,
		waiting: &wait.Wait{},
	}
	if !client.enqueue(req) {
		return protocol.MakeErrorReply("client closed")
	}
	defer client.working.Done()

	if timeout := req.waiting.WaitWithTimeout(maxWait); timeout {
		return protocol.MakeErrorReply("server time out")
	}
	if req.err != nil {
		return protocol.MakeErrorReply("request failed: " + req.err.Error())
	}
	return req.reply
}

func (client *Client) doHeartbeat() {
	req := &request{
		args:      [][]byte{[]byte("PING")},
		heartbeat: true,
		waiting:   &wait.Wait{},
	}
	if !client.enqueue(req) {
		return
	}
	defer client.working.Done()

	if req.waiting.WaitWithTimeout(maxWait) {
		logger.Warnf("heartbeat to %s timed out", client.addr)
	}
}

// 写协程
func (client *Client) handleWrite() {
	defer close(client.writeDone)
	for req := range client.pendingReqs {
		client.doRequest(req)
	}
}

func (client *Client) doRequest(req *request) {
	if len(req.args) == 0 {
		req.err = errors.New("empty command")
		req.waiting.Done()
		return
	}

	// 读协程已经退出时直接失败
	select {
	case <-client.readDone:
		req.err = errConnClosed
		req.waiting.Done()
		return
	default:
	}
	// 先进入等待响应队列，保证读协程按顺序匹配响应
	select {
	case client.waitingReqs <- req:
	case <-client.readDone:
		req.err = errConnClosed
		req.waiting.Done()
		return
	}
	// 入队时读协程可能刚好退出，没有协程再处理waitingReqs
	select {
	case <-client.readDone:
		client.failWaiting(errConnClosed)
		return
	default:
	}
	data := protocol.MakeMultiBulkReply(req.args).ToBytes()
	if _, err := client.conn.Write(data); err != nil {
		logger.Errorf("write to %s failed: %v", client.addr, err)
		_ = client.conn.Close()
	}
}

// finishRequest 将响应交给最早发送的请求
func (client *Client) finishRequest(reply redis.Reply) {
	select {
	case req := <-client.waitingReqs:
		req.reply = reply
		req.waiting.Done()
	default:
		logger.Warn("unexpected reply: " + string(reply.ToBytes()))
	}
}

// failWaiting 连接断开后，等待中的请求全部失败
func (client *Client) failWaiting(err error) {
	for {
		select {
		case req := <-client.waitingReqs:
			req.err = err
			req.waiting.Done()
		default:
			return
		}
	}
}

// 读协程，进行RESP协议解析
func (client *Client) handleRead() {
	defer close(client.readDone)
	ch := parser.ParseStream(client.conn)
	for payload := range ch {
		if payload.Err == nil {
			client.finishRequest(payload.Data)
			continue
		}
		var protocolErr *parser.ProtocolError
		if errors.As(payload.Err, &protocolErr) {
			client.finishRequest(protocol.MakeErrorReply(payload.Err.Error()))
			continue
		}
		if atomic.LoadInt32(&client.status) != closed {
			logger.Errorf("connection to %s lost: %v", client.addr, payload.Err)
		}
		break
	}
	client.failWaiting(errConnClosed)
}
