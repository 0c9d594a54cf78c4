package timing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDebounce(t *testing.T) {
	var mu sync.Mutex
	var got []string
	record := func(s string) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, s)
	}

	d := Debounce(record, 30*time.Millisecond)
	d.Call("a")
	d.Call("b")
	d.Call("c")

	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"c"}, got, "只应执行一次且携带最后一次参数")
}

func TestDebounceResetsTimer(t *testing.T) {
	var mu sync.Mutex
	count := 0
	d := Debounce(func(string) {
		mu.Lock()
		defer mu.Unlock()
		count++
	}, 50*time.Millisecond)

	d.Call("a")
	time.Sleep(25 * time.Millisecond)
	d.Call("b") // 重置计时器

	time.Sleep(35 * time.Millisecond)
	mu.Lock()
	require.Equal(t, 0, count, "第二次调用后计时器应重新开始")
	mu.Unlock()

	time.Sleep(40 * time.Millisecond)
	mu.Lock()
	require.Equal(t, 1, count)
	mu.Unlock()
}

func TestDebounceStop(t *testing.T) {
	fired := make(chan struct{}, 1)
	d := Debounce(func(string) { fired <- struct{}{} }, 20*time.Millisecond)

	d.Call("a")
	d.Stop()
	d.Call("b") // Stop 之后的调用全部忽略

	select {
	case <-fired:
		t.Fatal("stopped debouncer must not fire")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestThrottle(t *testing.T) {
	var mu sync.Mutex
	var got []int
	th := Throttle(func(v int) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, v)
	}, 50*time.Millisecond)

	th.Call(1) // 首次立即执行
	th.Call(2) // 冷却窗口内，丢弃
	th.Call(3)

	mu.Lock()
	require.Equal(t, []int{1}, got)
	mu.Unlock()

	time.Sleep(60 * time.Millisecond)
	th.Call(4) // 窗口结束，立即执行

	mu.Lock()
	require.Equal(t, []int{1, 4}, got)
	mu.Unlock()
}

func TestThrottleStop(t *testing.T) {
	count := 0
	th := Throttle(func(int) { count++ }, 10*time.Millisecond)

	th.Call(1)
	th.Stop()
	time.Sleep(20 * time.Millisecond)
	th.Call(2)

	require.Equal(t, 1, count)
}
