package systems

import (
	"image/color"

	"github.com/decker502/windowreveal/pkg/components"
	"github.com/decker502/windowreveal/pkg/ecs"
)

// fakeWindow 测试用窗口句柄，记录所有可见性调用
type fakeWindow struct {
	visible      bool
	transparent  bool
	visibleCalls []bool
}

func newFakeWindow() *fakeWindow {
	// 模拟宿主默认创建的可见、透明窗口
	return &fakeWindow{visible: true, transparent: true}
}

func (w *fakeWindow) SetVisible(visible bool) {
	w.visible = visible
	w.visibleCalls = append(w.visibleCalls, visible)
}

func (w *fakeWindow) SetTransparent(transparent bool) {
	w.transparent = transparent
}

// revealCount 返回 SetVisible(true) 的调用次数
func (w *fakeWindow) revealCount() int {
	n := 0
	for _, v := range w.visibleCalls {
		if v {
			n++
		}
	}
	return n
}

// fakeClearSink 测试用清屏颜色接收方
type fakeClearSink struct {
	colors []color.Color
}

func (s *fakeClearSink) SetClearColor(c color.Color) {
	s.colors = append(s.colors, c)
}

// spawnPrimaryWindow 创建带主窗口标记的窗口实体
func spawnPrimaryWindow(em *ecs.EntityManager, handle components.WindowHandle) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.WindowComponent{Handle: handle, Title: "test"})
	ecs.AddComponent(em, id, &components.PrimaryWindowComponent{})
	return id
}

// revealFixture 组装一个完整的窗口延迟显示系统
type revealFixture struct {
	em     *ecs.EntityManager
	events *ecs.EventQueue[components.WindowReadyEvent]
	window *fakeWindow
	clear  *fakeClearSink
	system *WindowRevealSystem
}

func newRevealFixture(frames uint32, ms uint64) *revealFixture {
	em := ecs.NewEntityManager()
	events := ecs.NewEventQueue[components.WindowReadyEvent]()
	window := newFakeWindow()
	spawnPrimaryWindow(em, window)
	clear := &fakeClearSink{}

	cfg := defaultTestConfig(frames, ms)
	return &revealFixture{
		em:     em,
		events: events,
		window: window,
		clear:  clear,
		system: NewWindowRevealSystem(em, events, clear, cfg),
	}
}

// sendReady 模拟宿主发送就绪事件
func (f *revealFixture) sendReady() {
	f.events.Send(components.WindowReadyEvent{Width: 800, Height: 600})
}
