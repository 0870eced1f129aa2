package components

// WindowHandle 宿主窗口句柄
// 由窗口层（ebiten 宿主、测试替身等）实现，系统只通过该接口修改窗口可见性
type WindowHandle interface {
	// SetVisible 设置窗口是否可见
	SetVisible(visible bool)
	// SetTransparent 设置窗口背景是否透明
	// 隐藏期间必须为不透明，避免显示出上一次残留的帧缓冲内容
	SetTransparent(transparent bool)
}

// WindowComponent 窗口组件
// 持有宿主窗口句柄；Handle 为 nil 表示窗口尚未创建或已被销毁
type WindowComponent struct {
	Handle WindowHandle
	// Title 窗口标题（仅用于日志）
	Title string
}

// PrimaryWindowComponent 主窗口标记组件
// 同一时刻应当只有一个实体同时拥有该组件和 WindowComponent
type PrimaryWindowComponent struct{}

// WindowReadyEvent 窗口就绪事件
// 宿主在窗口完成内部初始化、可以安全显示时发送；消费方只关心事件是否存在
type WindowReadyEvent struct {
	// Width, Height 就绪时的窗口外部尺寸（仅用于日志）
	Width  int
	Height int
}
