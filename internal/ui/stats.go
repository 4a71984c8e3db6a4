package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/culiutudousi/time-reminder/internal/models"
	"github.com/culiutudousi/time-reminder/internal/reminder"
)

// StatsSource 统计数据来源，storage.Database 实现该接口
type StatsSource interface {
	GetReminderStats(start, end time.Time) (*models.ReminderStats, error)
	GetRecentRecords(limit int) ([]*models.ReminderRecord, error)
}

// History 记录完成的倒计时并提供统计
type History interface {
	reminder.Recorder
	StatsSource
}

type StatsView struct {
	source StatsSource
	now    func() time.Time
	label  *widget.Label
}

func NewStatsView(source StatsSource, now func() time.Time) *StatsView {
	sv := &StatsView{
		source: source,
		now:    now,
		label:  widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Italic: true}),
	}
	sv.Refresh()
	return sv
}

// Refresh 重新统计今天的完成次数
func (sv *StatsView) Refresh() {
	now := sv.now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := sv.source.GetReminderStats(start, start.AddDate(0, 0, 1))
	if err != nil {
		log.Printf("load reminder stats: %v", err)
		sv.label.SetText("Today: -")
		return
	}

	text := fmt.Sprintf("Today: %d work, %d rest (%d min)",
		stats.Sessions(reminder.WorkLabel),
		stats.Sessions(reminder.RestLabel),
		stats.TotalMinutes)

	records, err := sv.source.GetRecentRecords(1)
	if err != nil {
		log.Printf("load recent records: %v", err)
	} else if len(records) > 0 {
		text += fmt.Sprintf(" | last %s %s", records[0].Label, records[0].EndedAt.Format("15:04"))
	}
	sv.label.SetText(text)
}
