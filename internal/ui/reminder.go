package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/culiutudousi/time-reminder/internal/reminder"
)

// ReminderView 一个倒计时面板：时间设置 + 开始按钮
type ReminderView struct {
	unit        *reminder.Unit
	setting     *TimeSettingView
	startButton *widget.Button
	container   fyne.CanvasObject
}

func NewReminderView(unit *reminder.Unit, lcdSize float32) *ReminderView {
	v := &ReminderView{
		unit:    unit,
		setting: NewTimeSettingView(unit.Setting(), lcdSize),
	}

	v.startButton = widget.NewButton(unit.Label(), v.onStart)
	v.startButton.Importance = widget.HighImportance

	v.container = widget.NewCard("", "", container.NewVBox(
		v.setting.container,
		v.startButton,
	))

	unit.OnChange(v.refresh)
	v.refresh()
	return v
}

func (v *ReminderView) onStart() {
	// 按钮禁用时不会触发，这里只记录异常
	if err := v.unit.Start(); err != nil {
		log.Printf("start %s: %v", v.unit.Label(), err)
	}
}

func (v *ReminderView) refresh() {
	if v.startButton.Text != v.unit.Label() {
		v.startButton.SetText(v.unit.Label())
	}
	if v.unit.StartEnabled() {
		v.startButton.Enable()
	} else {
		v.startButton.Disable()
	}
}
