package wait

import (
	"context"
	"sync"
	"time"
)

/**
 * @Author: wanglei
 * @File: wait
 * @Version: 1.0.0
 * @Description: 可以超时的WaitGroup
 * @Date: 2023/07/10 14:48
 */

type Wait struct {
	wg sync.WaitGroup
}

func (w *Wait) Add(delta int) {
	w.wg.Add(delta)
}

func (w *Wait) Done() {
	w.wg.Done()
}

func (w *Wait) Wait() {
	w.wg.Wait()
}

// WaitContext 阻塞直到counter归零或者ctx结束，ctx结束时返回ctx.Err()
func (w *Wait) WaitContext(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitWithTimeout 阻塞直到counter归零或者超时，超时返回true
func (w *Wait) WaitWithTimeout(timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return w.WaitContext(ctx) != nil
}
