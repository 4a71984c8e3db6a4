package models

import "time"

// ReminderRecord 一次完成的倒计时
type ReminderRecord struct {
	ID        int64
	Label     string
	Minutes   int
	StartedAt time.Time
	EndedAt   time.Time
}

type LabelStats struct {
	Label    string
	Sessions int
	Minutes  int
}

type ReminderStats struct {
	ByLabel       []LabelStats
	TotalSessions int
	TotalMinutes  int
}

// Sessions 返回某个标签的完成次数，没有记录时为 0
func (s *ReminderStats) Sessions(label string) int {
	for _, l := range s.ByLabel {
		if l.Label == label {
			return l.Sessions
		}
	}
	return 0
}
