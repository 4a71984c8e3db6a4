package timer

import (
	"sync"
	"time"
)

// Manual 只在调用 Fire 时触发的 Scheduler，零值的时钟从 Unix 纪元开始
type Manual struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*manualTicker
}

func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.now.IsZero() {
		return time.Unix(0, 0)
	}
	return m.now
}

func (m *Manual) Every(d time.Duration, f func()) Ticker {
	m.mu.Lock()
	defer m.mu.Unlock()
	t := &manualTicker{owner: m, interval: d, f: f}
	m.tickers = append(m.tickers, t)
	return t
}

// Advance 只推进时钟，不触发回调
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.now.IsZero() {
		m.now = time.Unix(0, 0)
	}
	m.now = m.now.Add(d)
}

// Fire 先按最短间隔推进时钟，再把每个未停止的 ticker 执行一次。
// 同一轮中被前面回调停止的 ticker 会被跳过。返回执行的回调数。
func (m *Manual) Fire() int {
	m.mu.Lock()
	live := make([]*manualTicker, 0, len(m.tickers))
	var step time.Duration
	for _, t := range m.tickers {
		if t.stopped {
			continue
		}
		live = append(live, t)
		if step == 0 || t.interval < step {
			step = t.interval
		}
	}
	m.mu.Unlock()

	m.Advance(step)
	n := 0
	for _, t := range live {
		if t.isStopped() {
			continue
		}
		t.f()
		n++
	}
	return n
}

// FireN 连续调用 n 次 Fire
func (m *Manual) FireN(n int) {
	for i := 0; i < n; i++ {
		m.Fire()
	}
}

// Active 未停止的 ticker 数量
func (m *Manual) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tickers {
		if !t.stopped {
			n++
		}
	}
	return n
}

type manualTicker struct {
	owner    *Manual
	interval time.Duration
	f        func()
	stopped  bool
}

func (t *manualTicker) isStopped() bool {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	return t.stopped
}

func (t *manualTicker) Stop() {
	t.owner.mu.Lock()
	defer t.owner.mu.Unlock()
	t.stopped = true
}
