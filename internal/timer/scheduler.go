// Package timer 提供倒计时使用的周期性时钟。程序使用 System，测试中手动驱动 Manual。
package timer

import (
	"sync"
	"time"
)

// Ticker 正在运行的周期回调。Stop 可重复调用，不等待正在执行的回调。
type Ticker interface {
	Stop()
}

// Scheduler 注册周期回调并提供当前时间
type Scheduler interface {
	Every(d time.Duration, f func()) Ticker
	Now() time.Time
}

// System 使用真实时间。回调在单独的 goroutine 中执行，
// 涉及界面的调用方需要自行切换到 UI 线程。
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

func (System) Every(d time.Duration, f func()) Ticker {
	t := &systemTicker{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
	}
	go t.run(f)
	return t
}

type systemTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *systemTicker) run(f func()) {
	defer t.ticker.Stop()
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			select {
			case <-t.done:
				return
			default:
			}
			f()
		}
	}
}

func (t *systemTicker) Stop() {
	t.once.Do(func() { close(t.done) })
}
