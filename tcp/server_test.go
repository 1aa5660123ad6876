package tcp

import (
	"bufio"
	"context"
	"math/rand"
	"net"
	"strconv"
	"sync"
	"testing"
	"time"
)

/**
 * @Author: wanglei
 * @File: server_test
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/07/12 16:40
 */

// echoHandler 原样返回收到的每一行
type echoHandler struct {
	mu     sync.Mutex
	conns  map[net.Conn]struct{}
	closed bool
}

func (h *echoHandler) Handle(ctx context.Context, conn net.Conn) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		_ = conn.Close()
		return
	}
	h.conns[conn] = struct{}{}
	h.mu.Unlock()

	reader := bufio.NewReader(conn)
	for {
		msg, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		_, _ = conn.Write([]byte(msg))
	}
}

func (h *echoHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for conn := range h.conns {
		_ = conn.Close()
	}
	return nil
}

func TestListenAndServe(t *testing.T) {
	closeChan := make(chan struct{})
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := listener.Addr().String()
	done := make(chan struct{})
	go func() {
		ListenAndServe(listener, &echoHandler{conns: map[net.Conn]struct{}{}}, closeChan, 0)
		close(done)
	}()

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	bufReader := bufio.NewReader(conn)
	for i := 0; i < 10; i++ {
		val := strconv.Itoa(rand.Int())
		if _, err = conn.Write([]byte(val + "\n")); err != nil {
			t.Fatal(err)
		}
		line, _, err := bufReader.ReadLine()
		if err != nil {
			t.Fatal(err)
		}
		if string(line) != val {
			t.Fatal("get wrong response")
		}
	}
	_ = conn.Close()
	for i := 0; i < 5; i++ {
		// 空闲连接
		_, _ = net.Dial("tcp", addr)
	}
	closeChan <- struct{}{}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestMaxConnect(t *testing.T) {
	closeChan := make(chan struct{})
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := listener.Addr().String()
	go ListenAndServe(listener, &echoHandler{conns: map[net.Conn]struct{}{}}, closeChan, 1)
	defer func() { closeChan <- struct{}{} }()

	first, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	defer first.Close()
	if _, err := first.Write([]byte("hi\n")); err != nil {
		t.Fatal(err)
	}
	if _, _, err := bufio.NewReader(first).ReadLine(); err != nil {
		t.Fatal(err)
	}

	second, err := net.Dial("tcp", addr)
	if err != nil {
		t.Fatal(err)
	}
	defer second.Close()
	_ = second.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, err := bufio.NewReader(second).ReadByte(); err == nil {
		t.Error("second connection should be rejected")
	}
}
