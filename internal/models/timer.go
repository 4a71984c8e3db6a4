package models

type TimerState int

const (
	StateIdle TimerState = iota
	StateRunning
)

func (s TimerState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	default:
		return "unknown"
	}
}
