package reminder

import (
	"log"
	"time"

	"github.com/culiutudousi/time-reminder/internal/config"
	"github.com/culiutudousi/time-reminder/internal/models"
	"github.com/culiutudousi/time-reminder/internal/timer"
)

// Notifier 倒计时结束时显示提醒（模态），Unit 不等待其关闭
type Notifier interface {
	Remind(message string)
}

// Recorder 每次完成倒计时保存一条记录
type Recorder interface {
	SaveReminderRecord(record *models.ReminderRecord) error
}

type Option func(*Unit)

// WithTick 修改计时间隔，默认一分钟
func WithTick(d time.Duration) Option {
	return func(u *Unit) {
		if d > 0 {
			u.tick = d
		}
	}
}

func WithRecorder(r Recorder) Option {
	return func(u *Unit) {
		u.recorder = r
	}
}

func WithRange(min, max int) Option {
	return func(u *Unit) {
		u.setting.SetRange(min, max)
	}
}

type busyListener struct {
	id int
	f  func(busy bool)
}

// Unit 一个倒计时单元：时间设置、开始按钮，以及把设定值倒数到零的周期计时
type Unit struct {
	scheduler timer.Scheduler
	notifier  Notifier
	recorder  Recorder
	tick      time.Duration

	setting      *Setting
	label        string
	message      string
	startEnabled bool

	state     models.TimerState
	remaining int
	seeded    int
	startedAt time.Time
	ticker    timer.Ticker

	busyListeners []busyListener
	nextID        int
	listeners     []func()
}

func NewUnit(scheduler timer.Scheduler, notifier Notifier, opts ...Option) *Unit {
	u := &Unit{
		scheduler:    scheduler,
		notifier:     notifier,
		tick:         config.DefaultTickInterval,
		setting:      NewSetting(config.MinMinutes, config.MaxMinutes),
		message:      "reminder!",
		startEnabled: true,
		state:        models.StateIdle,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Unit) Setting() *Setting {
	return u.setting
}

// SetLabel 设置开始按钮的文字
func (u *Unit) SetLabel(text string) {
	u.label = text
	u.changed()
}

func (u *Unit) Label() string {
	return u.label
}

func (u *Unit) SetReminderMessage(text string) {
	u.message = text
}

func (u *Unit) ReminderMessage() string {
	return u.message
}

// SetInitialDuration 设置时长（分钟）
func (u *Unit) SetInitialDuration(minutes int) {
	u.setting.SetValue(minutes)
}

func (u *Unit) SetStartEnabled(enabled bool) {
	if u.startEnabled == enabled {
		return
	}
	u.startEnabled = enabled
	u.changed()
}

func (u *Unit) StartEnabled() bool {
	return u.startEnabled
}

func (u *Unit) State() models.TimerState {
	return u.state
}

// Remaining 当前剩余分钟数，空闲时为 0
func (u *Unit) Remaining() int {
	return u.remaining
}

// Subscribe 订阅忙碌通知：开始时为 true，结束时为 false。返回取消订阅的函数。
func (u *Unit) Subscribe(f func(busy bool)) func() {
	u.nextID++
	id := u.nextID
	u.busyListeners = append(u.busyListeners, busyListener{id: id, f: f})
	return func() {
		for i, l := range u.busyListeners {
			if l.id == id {
				u.busyListeners = append(u.busyListeners[:i:i], u.busyListeners[i+1:]...)
				return
			}
		}
	}
}

// OnChange 标签、按钮状态或运行状态变化时调用 f
func (u *Unit) OnChange(f func()) {
	u.listeners = append(u.listeners, f)
}

// Start 以当前设定值开始倒计时
func (u *Unit) Start() error {
	if u.state == models.StateRunning {
		return ErrAlreadyRunning
	}
	if !u.startEnabled {
		return ErrStartDisabled
	}

	u.seeded = u.setting.Value()
	u.remaining = u.seeded
	u.startedAt = u.scheduler.Now()
	u.emit(true)
	u.setting.SetActiveStyle()
	u.state = models.StateRunning
	u.ticker = u.scheduler.Every(u.tick, u.elapse)
	u.changed()
	return nil
}

func (u *Unit) elapse() {
	if u.state != models.StateRunning {
		return
	}
	u.remaining--
	u.setting.Render(u.remaining)
	if u.remaining > 0 {
		return
	}

	u.stopTicker()
	u.notifier.Remind(u.message)
	u.setting.RefreshDisplay()
	// 先保存记录，订阅者收到 busy=false 时即可看到本次结果
	u.record()
	u.state = models.StateIdle
	u.remaining = 0
	u.emit(false)
	u.setting.SetInactiveStyle()
	u.changed()
}

// Close 停止倒计时，不提醒也不发送通知
func (u *Unit) Close() {
	u.stopTicker()
	if u.state != models.StateRunning {
		return
	}
	u.state = models.StateIdle
	u.remaining = 0
	u.setting.RefreshDisplay()
	u.setting.SetInactiveStyle()
	u.changed()
}

func (u *Unit) record() {
	if u.recorder == nil {
		return
	}
	err := u.recorder.SaveReminderRecord(&models.ReminderRecord{
		Label:     u.label,
		Minutes:   u.seeded,
		StartedAt: u.startedAt,
		EndedAt:   u.scheduler.Now(),
	})
	if err != nil {
		log.Printf("save reminder record: %v", err)
	}
}

func (u *Unit) stopTicker() {
	if u.ticker != nil {
		u.ticker.Stop()
		u.ticker = nil
	}
}

func (u *Unit) emit(busy bool) {
	listeners := append([]busyListener(nil), u.busyListeners...)
	for _, l := range listeners {
		l.f(busy)
	}
}

func (u *Unit) changed() {
	for _, f := range u.listeners {
		f()
	}
}
