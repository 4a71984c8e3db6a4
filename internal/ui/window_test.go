package ui

import (
	"reflect"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/culiutudousi/time-reminder/internal/config"
	"github.com/culiutudousi/time-reminder/internal/timer"
)

type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Remind(message string) {
	n.messages = append(n.messages, message)
}

func newTestWindow(t *testing.T, deps Deps) (*MainWindow, *timer.Manual, *recordingNotifier) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)

	sched := timer.NewManual(time.Date(2024, 5, 6, 9, 0, 0, 0, time.Local))
	notifier := &recordingNotifier{}
	deps.Scheduler = sched
	deps.Notifier = notifier
	w := NewMainWindow(a, config.DefaultConfig(), deps)
	return w, sched, notifier
}

func assertViewsEnabled(t *testing.T, w *MainWindow, enabled bool) {
	t.Helper()
	for _, v := range []*ReminderView{w.work, w.rest} {
		if v.setting.slider.Disabled() == enabled {
			t.Fatalf("%s: expected slider enabled=%v", v.unit.Label(), enabled)
		}
		if v.startButton.Disabled() == enabled {
			t.Fatalf("%s: expected start button enabled=%v", v.unit.Label(), enabled)
		}
	}
}

func TestMainWindowInitialState(t *testing.T) {
	w, _, _ := newTestWindow(t, Deps{})
	if w.window.Title() != "Time Reminder" {
		t.Fatalf("expected title Time Reminder, got %q", w.window.Title())
	}
	if w.work.startButton.Text != "Work!" || w.rest.startButton.Text != "Rest!" {
		t.Fatalf("unexpected button labels %q/%q", w.work.startButton.Text, w.rest.startButton.Text)
	}
	if w.work.setting.lcd.Text != "50" || w.rest.setting.lcd.Text != "10" {
		t.Fatalf("unexpected displays %q/%q", w.work.setting.lcd.Text, w.rest.setting.lcd.Text)
	}
	if w.work.setting.slider.Min != 1 || w.work.setting.slider.Max != 90 {
		t.Fatalf("unexpected slider range [%v,%v]", w.work.setting.slider.Min, w.work.setting.slider.Max)
	}
	if w.stats != nil {
		t.Fatalf("stats view should be absent without history")
	}
	assertViewsEnabled(t, w, true)
}

func TestMainWindowWorkCountdown(t *testing.T) {
	w, sched, notifier := newTestWindow(t, Deps{})
	w.work.setting.onSliderChanged(3)
	if w.work.setting.lcd.Text != "03" {
		t.Fatalf("expected display 03, got %q", w.work.setting.lcd.Text)
	}

	test.Tap(w.work.startButton)
	assertViewsEnabled(t, w, false)
	if w.work.setting.lcd.Color != activeColor {
		t.Fatalf("expected active color while running")
	}

	// 禁用的按钮不响应
	test.Tap(w.rest.startButton)
	sched.FireN(2)
	if w.work.setting.lcd.Text != "01" {
		t.Fatalf("expected display 01, got %q", w.work.setting.lcd.Text)
	}
	if len(notifier.messages) != 0 {
		t.Fatalf("reminded early: %v", notifier.messages)
	}

	sched.Fire()
	if !reflect.DeepEqual(notifier.messages, []string{"Rest!"}) {
		t.Fatalf("expected Rest! reminder, got %v", notifier.messages)
	}
	assertViewsEnabled(t, w, true)
	if w.work.setting.lcd.Text != "03" {
		t.Fatalf("expected display reset to 03, got %q", w.work.setting.lcd.Text)
	}
	if w.work.setting.lcd.Color != inactiveColor {
		t.Fatalf("expected inactive color after completion")
	}
	if w.work.setting.slider.Value != 3 {
		t.Fatalf("expected slider pinned at 3, got %v", w.work.setting.slider.Value)
	}
}

func TestMainWindowRestCountdown(t *testing.T) {
	w, sched, notifier := newTestWindow(t, Deps{})
	w.rest.setting.onSliderChanged(1)
	test.Tap(w.rest.startButton)
	sched.Fire()
	if !reflect.DeepEqual(notifier.messages, []string{"Work!"}) {
		t.Fatalf("expected Work! reminder, got %v", notifier.messages)
	}
	if w.rest.setting.lcd.Text != "01" {
		t.Fatalf("expected display 01, got %q", w.rest.setting.lcd.Text)
	}
}

func TestSliderChangesClampAndRespectDisable(t *testing.T) {
	w, _, _ := newTestWindow(t, Deps{})
	v := w.work.setting

	v.onSliderChanged(150)
	if v.setting.Value() != 90 {
		t.Fatalf("expected 90, got %d", v.setting.Value())
	}
	v.onSliderChanged(0)
	if v.setting.Value() != 1 {
		t.Fatalf("expected 1, got %d", v.setting.Value())
	}
	v.onSliderChanged(24.6)
	if v.setting.Value() != 25 || v.lcd.Text != "25" {
		t.Fatalf("expected rounded 25, got %d / %q", v.setting.Value(), v.lcd.Text)
	}

	v.setting.SetEnabled(false)
	v.onSliderChanged(60)
	if v.setting.Value() != 25 {
		t.Fatalf("disabled slider changed value to %d", v.setting.Value())
	}
	if v.slider.Value != 25 {
		t.Fatalf("expected slider snapped back to 25, got %v", v.slider.Value)
	}
}

func TestMainWindowCloseStopsCountdown(t *testing.T) {
	w, sched, notifier := newTestWindow(t, Deps{})
	test.Tap(w.work.startButton)
	w.Board().Close()
	sched.FireN(60)
	if len(notifier.messages) != 0 {
		t.Fatalf("closed window reminded: %v", notifier.messages)
	}
	assertViewsEnabled(t, w, true)
}
