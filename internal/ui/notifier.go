package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

// dialogNotifier 倒计时结束时弹出模态提醒
type dialogNotifier struct {
	window   fyne.Window
	fontSize float32
}

func (n *dialogNotifier) Remind(message string) {
	text := canvas.NewText(message, textColor)
	text.TextSize = n.fontSize
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter

	// 标题留空
	d := dialog.NewCustom(" ", "OK", container.NewPadded(text), n.window)
	n.window.RequestFocus()
	d.Show()
	// Show 不阻塞，Unit.elapse 在弹窗出现后立即继续执行
}
