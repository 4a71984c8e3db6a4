package reminder

import "errors"

var (
	// ErrAlreadyRunning 倒计时进行中再次 Start
	ErrAlreadyRunning = errors.New("countdown already running")
	// ErrStartDisabled 开始按钮被禁用时 Start，任一单元计时期间两个单元都处于该状态
	ErrStartDisabled = errors.New("start control disabled")
)
