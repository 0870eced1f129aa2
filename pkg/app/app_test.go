package app

import (
	"image/color"
	"testing"

	"github.com/decker502/windowreveal/pkg/components"
	"github.com/decker502/windowreveal/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// stubGame 测试用被包装游戏
type stubGame struct {
	updates int
	draws   int
}

func (g *stubGame) Update() error { g.updates++; return nil }

func (g *stubGame) Draw(screen *ebiten.Image) { g.draws++ }

func (g *stubGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 320, 240
}

func newTestApp(t *testing.T, reveal config.WindowRevealConfig) (*App, *stubGame) {
	t.Helper()
	game := &stubGame{}
	a, err := NewApp(game, Config{Verbose: true, Title: "test", Reveal: reveal})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return a, game
}

func TestNewAppNilGame(t *testing.T) {
	if _, err := NewApp(nil, Config{Verbose: true}); err == nil {
		t.Error("NewApp(nil) should fail")
	}
}

// TestNewAppHidesWindow 测试创建后窗口隐藏、不透明并设置了清屏颜色
func TestNewAppHidesWindow(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultWindowRevealConfig())

	if a.window.visible {
		t.Error("window should be hidden after NewApp")
	}
	if a.RunGameOptions().ScreenTransparent {
		t.Error("screen should be opaque after NewApp")
	}
	if a.ClearColor() != (color.RGBA{A: 255}) {
		t.Errorf("ClearColor: got %v, want opaque black", a.ClearColor())
	}
}

func TestNewAppWithoutClearColor(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultWindowRevealConfig().WithInitialClear(nil))

	if a.ClearColor() != nil {
		t.Errorf("ClearColor: got %v, want nil", a.ClearColor())
	}
}

// TestLayoutSignalsReady 测试首次有效布局触发就绪，稳定期后显示
func TestLayoutSignalsReady(t *testing.T) {
	a, game := newTestApp(t, config.DefaultWindowRevealConfig())

	// 无效尺寸不算就绪
	a.Layout(0, 0)
	if err := a.Update(); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if a.RevealState().Status != components.RevealNotReady {
		t.Fatalf("status: got %v, want NotReady", a.RevealState().Status)
	}

	w, h := a.Layout(800, 600)
	if w != 320 || h != 240 {
		t.Errorf("Layout should delegate to the wrapped game, got %dx%d", w, h)
	}
	_ = a.Update()
	if a.RevealState().Status != components.RevealReady {
		t.Fatalf("status: got %v, want Ready", a.RevealState().Status)
	}

	// 默认 2 帧
	_ = a.Update()
	if a.IsRevealed() {
		t.Fatal("should not reveal after 1 frame")
	}
	_ = a.Update()
	if !a.IsRevealed() || !a.window.visible {
		t.Fatal("should reveal after 2 frames")
	}

	// 被包装游戏的 Update 每帧都会执行
	if game.updates != 4 {
		t.Errorf("wrapped Update calls: got %d, want 4", game.updates)
	}
}

// TestLayoutSignalsReadyOnce 测试重复布局只发送一次就绪事件
func TestLayoutSignalsReadyOnce(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultWindowRevealConfig())

	a.Layout(800, 600)
	a.Layout(800, 600)
	a.Layout(1024, 768)

	if a.readyEvents.TotalSent() != 1 {
		t.Errorf("ready events sent: got %d, want 1", a.readyEvents.TotalSent())
	}

	a.NotifyReady(10, 10)
	if a.readyEvents.TotalSent() != 1 {
		t.Error("NotifyReady after layout should be ignored")
	}
}

// TestDetachedWindowStillReveals 测试窗口句柄移除后仍进入 Revealed
func TestDetachedWindowStillReveals(t *testing.T) {
	a, _ := newTestApp(t, config.DefaultWindowRevealConfig())

	a.NotifyReady(800, 600)
	_ = a.Update()
	a.DetachWindow()
	_ = a.Update()
	_ = a.Update()

	if !a.IsRevealed() {
		t.Error("should be revealed even without a window handle")
	}
	if a.window.visible {
		t.Error("detached window must not be touched")
	}
}

func TestFrameDeltaPositive(t *testing.T) {
	if d := frameDelta(); d <= 0 {
		t.Errorf("frameDelta: got %f, want > 0", d)
	}
}
