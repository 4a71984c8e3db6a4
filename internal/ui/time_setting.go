package ui

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/culiutudousi/time-reminder/internal/reminder"
)

// 定义颜色常量
var (
	inactiveColor = color.NRGBA{R: 25, G: 25, B: 25, A: 255} // 空闲：黑色
	activeColor   = color.NRGBA{R: 46, G: 160, B: 67, A: 255} // 计时中：绿色
	textColor     = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
)

const lcdMinHeight = 80

// TimeSettingView 两位数字显示 + 滑块
type TimeSettingView struct {
	setting   *reminder.Setting
	lcd       *canvas.Text
	slider    *widget.Slider
	container *fyne.Container
}

func NewTimeSettingView(setting *reminder.Setting, lcdSize float32) *TimeSettingView {
	v := &TimeSettingView{setting: setting}

	v.lcd = canvas.NewText(formatMinutes(setting.Displayed()), inactiveColor)
	v.lcd.TextStyle = fyne.TextStyle{Monospace: true}
	v.lcd.TextSize = lcdSize
	v.lcd.Alignment = fyne.TextAlignCenter

	min, max := setting.Range()
	v.slider = widget.NewSlider(float64(min), float64(max))
	v.slider.Step = 1
	v.slider.Value = float64(setting.Value())
	v.slider.OnChanged = v.onSliderChanged

	// 撑开显示区域的最小高度
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, lcdMinHeight))

	v.container = container.NewVBox(
		container.NewStack(spacer, container.NewCenter(v.lcd)),
		v.slider,
	)

	setting.OnChange(v.refresh)
	v.refresh()
	return v
}

func (v *TimeSettingView) onSliderChanged(value float64) {
	if !v.setting.Enabled() {
		v.refresh()
		return
	}
	v.setting.SetValue(int(math.Round(value)))
}

// refresh 同步模型到控件
func (v *TimeSettingView) refresh() {
	v.lcd.Text = formatMinutes(v.setting.Displayed())
	if v.setting.Active() {
		v.lcd.Color = activeColor
	} else {
		v.lcd.Color = inactiveColor
	}
	v.lcd.Refresh()

	if want := float64(v.setting.Value()); v.slider.Value != want {
		v.slider.SetValue(want)
	}
	if v.setting.Enabled() {
		v.slider.Enable()
	} else {
		v.slider.Disable()
	}
}

func formatMinutes(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%02d", m)
}
