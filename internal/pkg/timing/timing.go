// Package timing 提供防抖/节流原语，
// 用于搜索输入和播放进度上报等调用频率控制
package timing

import (
	"sync"
	"time"
)

// Debouncer 防抖包装
// Call 之后等待 wait 时长无新调用才执行 fn，且只传递最后一次的参数；
// 返回值不回传（fire-and-forget）
type Debouncer[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	wait    time.Duration
	timer   *time.Timer
	stopped bool
}

// Debounce 创建防抖包装
func Debounce[T any](fn func(T), wait time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, wait: wait}
}

// Call 记录一次调用，重置待触发计时器
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			d.fn(arg)
		}
	})
}

// Stop 取消待触发的调用并停止计时器，之后的 Call 全部忽略
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Throttler 节流包装
// 首次调用立即执行，冷却窗口内的调用被丢弃（不排队），
// 窗口结束后下一次调用再次立即执行
type Throttler[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	limit   time.Duration
	last    time.Time
	stopped bool
}

// Throttle 创建节流包装
func Throttle[T any](fn func(T), limit time.Duration) *Throttler[T] {
	return &Throttler[T]{fn: fn, limit: limit}
}

// Call 在冷却窗口外时执行 fn，否则丢弃本次调用
func (t *Throttler[T]) Call(arg T) {
	t.mu.Lock()
	if t.stopped || time.Since(t.last) < t.limit {
		t.mu.Unlock()
		return
	}
	t.last = time.Now()
	t.mu.Unlock()

	t.fn(arg)
}

// Stop 停用节流器，之后的 Call 全部忽略
func (t *Throttler[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}
