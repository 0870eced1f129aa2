package app

import "log"

// ebitenWindow ebiten 主窗口句柄
//
// ebiten 没有隐藏窗口的接口，"隐藏"在呈现层实现：
// 不可见期间 App.Draw 只绘制清屏颜色，不调用被包装游戏的 Draw。
// 透明标志在 RunGameWithOptions 之前读取，用于 RunGameOptions.ScreenTransparent。
type ebitenWindow struct {
	title       string
	visible     bool
	transparent bool
}

func newEbitenWindow(title string) *ebitenWindow {
	return &ebitenWindow{
		title:   title,
		visible: true,
	}
}

// SetVisible 实现 components.WindowHandle
func (w *ebitenWindow) SetVisible(visible bool) {
	if w.visible == visible {
		return
	}
	w.visible = visible
	log.Printf("[App] Window %q visible=%v", w.title, visible)
}

// SetTransparent 实现 components.WindowHandle
func (w *ebitenWindow) SetTransparent(transparent bool) {
	w.transparent = transparent
}
