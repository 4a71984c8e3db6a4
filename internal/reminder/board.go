package reminder

import (
	"time"

	"github.com/culiutudousi/time-reminder/internal/config"
	"github.com/culiutudousi/time-reminder/internal/timer"
)

const (
	WorkLabel = "Work!"
	RestLabel = "Rest!"
)

// BoardConfig 零值字段使用默认值
type BoardConfig struct {
	WorkMinutes int
	RestMinutes int
	Tick        time.Duration
	Recorder    Recorder
}

// Board 组合工作和休息两个单元。任一单元计时期间，两个单元的滑块和按钮都被禁用，
// 同一时间最多只有一个倒计时。
type Board struct {
	work      *Unit
	rest      *Unit
	busy      bool
	listeners []func(busy bool)
	unsubs    []func()
}

func NewBoard(scheduler timer.Scheduler, notifier Notifier, cfg BoardConfig) *Board {
	if cfg.WorkMinutes == 0 {
		cfg.WorkMinutes = config.DefaultWorkMinutes
	}
	if cfg.RestMinutes == 0 {
		cfg.RestMinutes = config.DefaultRestMinutes
	}

	opts := []Option{WithTick(cfg.Tick)}
	if cfg.Recorder != nil {
		opts = append(opts, WithRecorder(cfg.Recorder))
	}

	b := &Board{
		work: NewUnit(scheduler, notifier, opts...),
		rest: NewUnit(scheduler, notifier, opts...),
	}

	// 提醒内容是另一个阶段
	b.work.SetLabel(WorkLabel)
	b.work.SetReminderMessage(RestLabel)
	b.work.SetInitialDuration(cfg.WorkMinutes)

	b.rest.SetLabel(RestLabel)
	b.rest.SetReminderMessage(WorkLabel)
	b.rest.SetInitialDuration(cfg.RestMinutes)

	for _, u := range b.Units() {
		b.unsubs = append(b.unsubs, u.Subscribe(b.setBusy))
	}
	return b
}

func (b *Board) Work() *Unit {
	return b.work
}

func (b *Board) Rest() *Unit {
	return b.rest
}

func (b *Board) Units() []*Unit {
	return []*Unit{b.work, b.rest}
}

// Busy 是否有倒计时在进行
func (b *Board) Busy() bool {
	return b.busy
}

// Subscribe 控件状态更新后通知 f
func (b *Board) Subscribe(f func(busy bool)) {
	b.listeners = append(b.listeners, f)
}

// Close 停止两个单元并取消订阅
func (b *Board) Close() {
	for _, unsub := range b.unsubs {
		unsub()
	}
	b.unsubs = nil
	for _, u := range b.Units() {
		u.Close()
		u.SetStartEnabled(true)
		u.Setting().SetEnabled(true)
	}
	b.busy = false
}

func (b *Board) setBusy(busy bool) {
	b.busy = busy
	for _, u := range b.Units() {
		u.SetStartEnabled(!busy)
		u.Setting().SetEnabled(!busy)
	}
	for _, f := range b.listeners {
		f(busy)
	}
}
