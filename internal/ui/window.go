package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/culiutudousi/time-reminder/internal/config"
	"github.com/culiutudousi/time-reminder/internal/reminder"
	"github.com/culiutudousi/time-reminder/internal/timer"
)

// Deps 可注入的依赖，零值使用默认实现
type Deps struct {
	Scheduler timer.Scheduler
	Notifier  reminder.Notifier
	History   History
}

type MainWindow struct {
	window fyne.Window
	board  *reminder.Board
	work   *ReminderView
	rest   *ReminderView
	stats  *StatsView
	config *config.Config
}

func NewMainWindow(app fyne.App, cfg *config.Config, deps Deps) *MainWindow {
	w := &MainWindow{
		window: app.NewWindow(cfg.App.Name),
		config: cfg,
	}

	if deps.Scheduler == nil {
		deps.Scheduler = uiScheduler{timer.System{}}
	}
	if deps.Notifier == nil {
		deps.Notifier = &dialogNotifier{
			window:   w.window,
			fontSize: float32(cfg.Theme.FontSize),
		}
	}

	boardCfg := reminder.BoardConfig{
		WorkMinutes: cfg.Reminder.WorkMinutes,
		RestMinutes: cfg.Reminder.RestMinutes,
		Tick:        cfg.Reminder.TickInterval,
	}
	if deps.History != nil {
		boardCfg.Recorder = deps.History
		w.stats = NewStatsView(deps.History, deps.Scheduler.Now)
	}
	w.board = reminder.NewBoard(deps.Scheduler, deps.Notifier, boardCfg)

	w.setup()
	return w
}

func (w *MainWindow) setup() {
	lcdSize := float32(w.config.Theme.LCDSize)
	w.work = NewReminderView(w.board.Work(), lcdSize)
	w.rest = NewReminderView(w.board.Rest(), lcdSize)

	// 两个面板左右排列
	panels := container.NewGridWithColumns(2, w.work.container, w.rest.container)

	if w.stats != nil {
		w.board.Subscribe(func(busy bool) {
			if !busy {
				w.stats.Refresh()
			}
		})
		w.window.SetContent(container.NewBorder(nil, w.stats.label, nil, nil, panels))
	} else {
		w.window.SetContent(panels)
	}

	w.window.SetMaster()
	w.window.SetOnClosed(w.board.Close)
	w.SetSize(float32(w.config.App.WindowWidth), float32(w.config.App.WindowHeight))
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

func (w *MainWindow) Board() *reminder.Board {
	return w.board
}

// Show 显示窗口并进入事件循环
func (w *MainWindow) Show() {
	w.window.CenterOnScreen()
	w.window.ShowAndRun()
}
