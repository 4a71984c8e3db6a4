package reminder

// Setting 一个数字显示 + 滑块背后的时长设置。
// value 是设定的时长，倒计时期间 displayed 可以与之不同。
type Setting struct {
	min, max  int
	value     int
	displayed int
	enabled   bool
	active    bool
	listeners []func()
}

func NewSetting(min, max int) *Setting {
	s := &Setting{enabled: true}
	s.SetRange(min, max)
	return s
}

// SetRange 设置闭区间范围并重新限制当前值
func (s *Setting) SetRange(min, max int) {
	if min > max {
		min, max = max, min
	}
	s.min, s.max = min, max
	s.value = s.clamp(s.value)
	if !s.active {
		s.displayed = s.value
	}
	s.changed()
}

func (s *Setting) Range() (min, max int) {
	return s.min, s.max
}

// SetValue 超出范围的值会被修正到边界，不会报错
func (s *Setting) SetValue(v int) {
	v = s.clamp(v)
	if v == s.value && (s.active || s.displayed == v) {
		return
	}
	s.value = v
	if !s.active {
		s.displayed = v
	}
	s.changed()
}

func (s *Setting) Value() int {
	return s.value
}

// Render 只更新显示，不改变设定值
func (s *Setting) Render(v int) {
	if s.displayed == v {
		return
	}
	s.displayed = v
	s.changed()
}

func (s *Setting) Displayed() int {
	return s.displayed
}

// RefreshDisplay 显示恢复为设定值
func (s *Setting) RefreshDisplay() {
	s.Render(s.value)
}

func (s *Setting) SetEnabled(enabled bool) {
	if s.enabled == enabled {
		return
	}
	s.enabled = enabled
	s.changed()
}

func (s *Setting) Enabled() bool {
	return s.enabled
}

func (s *Setting) SetActiveStyle() {
	s.setActive(true)
}

func (s *Setting) SetInactiveStyle() {
	s.setActive(false)
}

func (s *Setting) Active() bool {
	return s.active
}

// OnChange 任何可见变化后调用 f
func (s *Setting) OnChange(f func()) {
	s.listeners = append(s.listeners, f)
}

func (s *Setting) setActive(active bool) {
	if s.active == active {
		return
	}
	s.active = active
	s.changed()
}

func (s *Setting) clamp(v int) int {
	if v < s.min {
		return s.min
	}
	if v > s.max {
		return s.max
	}
	return v
}

func (s *Setting) changed() {
	for _, f := range s.listeners {
		f()
	}
}
