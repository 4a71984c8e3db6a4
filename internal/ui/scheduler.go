package ui

import (
	"time"

	"fyne.io/fyne/v2"

	"github.com/culiutudousi/time-reminder/internal/timer"
)

// uiScheduler 通过 fyne.Do 在主线程执行计时回调
type uiScheduler struct {
	timer.Scheduler
}

func (s uiScheduler) Every(d time.Duration, f func()) timer.Ticker {
	return s.Scheduler.Every(d, func() {
		fyne.Do(f)
	})
}
