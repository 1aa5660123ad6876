package tcp

import (
	"context"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/pkg/errors"

	"gmr/go-sll/interface/tcp"
	"gmr/go-sll/lib/logger"
)

/**
 * @Author: wanglei
 * @File: server
 * @Version: 1.0.0
 * @Description:
 * @Date: 2023/07/12 16:01
 */

type Config struct {
	Address string
	// 最大连接数，0表示不限制
	MaxConnect uint32
}

// ListenAndServeWithSignal 监听cfg.Address，收到退出信号时关闭
func ListenAndServeWithSignal(cfg *Config, handler tcp.Handler) error {
	closeChan := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT)
	go func() {
		sig := <-sigChan
		switch sig {
		case syscall.SIGHUP, syscall.SIGQUIT, syscall.SIGTERM, syscall.SIGINT:
			closeChan <- struct{}{}
		}
	}()

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return errors.Wrapf(err, "listen %s", cfg.Address)
	}

	logger.Infof("bind: %s, start listening...", cfg.Address)
	ListenAndServe(listener, handler, closeChan, cfg.MaxConnect)
	return nil
}

// ListenAndServe 接受连接直到closeChan收到信号或listener被关闭，
// 返回前等待所有连接的handler结束
func ListenAndServe(listener net.Listener, handler tcp.Handler, closeChan <-chan struct{}, maxConnect uint32) {
	var once sync.Once
	shutdown := func() {
		once.Do(func() {
			_ = listener.Close()
			_ = handler.Close()
		})
	}

	// 监听signal
	go func() {
		<-closeChan
		logger.Info("shutting down...")
		shutdown()
	}()
	defer shutdown()

	var slots chan struct{}
	if maxConnect > 0 {
		slots = make(chan struct{}, maxConnect)
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for {
		conn, err := listener.Accept()
		if err != nil {
			break
		}
		if slots != nil {
			select {
			case slots <- struct{}{}:
			default:
				logger.Warnf("max connections reached, reject %s", conn.RemoteAddr())
				_ = conn.Close()
				continue
			}
		}

		logger.Debugf("accept link %s", conn.RemoteAddr())
		wg.Add(1)
		go func() {
			defer func() {
				if slots != nil {
					<-slots
				}
				wg.Done()
			}()
			handler.Handle(ctx, conn)
		}()
	}
	shutdown()
	wg.Wait()
}
