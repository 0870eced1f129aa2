// Package app 提供窗口延迟显示的 ebiten 宿主包装器
//
// App 包装任意 ebiten.Game：启动时隐藏主窗口，窗口首次完成布局后发送就绪事件，
// 稳定期结束后才开始绘制被包装游戏的画面，避免启动时出现空白或未初始化的窗口。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/windowreveal/pkg/components"
	"github.com/decker502/windowreveal/pkg/config"
	"github.com/decker502/windowreveal/pkg/ecs"
	"github.com/decker502/windowreveal/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Title 窗口标题
	Title string
	// Reveal 窗口延迟显示配置
	Reveal config.WindowRevealConfig
}

// App 是窗口延迟显示的宿主包装器，实现 ebiten.Game 接口
type App struct {
	game          ebiten.Game
	entityManager *ecs.EntityManager
	readyEvents   *ecs.EventQueue[components.WindowReadyEvent]
	revealSystem  *systems.WindowRevealSystem
	window        *ebitenWindow
	windowEntity  ecs.EntityID
	clearColor    color.Color
	readySent     bool
}

// NewApp 创建宿主包装器并立即执行启动阶段（隐藏主窗口、设置清屏颜色）
//
// 参数：
//   - game: 被包装的游戏，不能为 nil
//   - cfg: 启动配置
func NewApp(game ebiten.Game, cfg Config) (*App, error) {
	if game == nil {
		return nil, fmt.Errorf("app: wrapped game is nil")
	}

	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	a := &App{
		game:          game,
		entityManager: ecs.NewEntityManager(),
		readyEvents:   ecs.NewEventQueue[components.WindowReadyEvent](),
		window:        newEbitenWindow(cfg.Title),
	}

	// 主窗口实体
	a.windowEntity = a.entityManager.CreateEntity()
	ecs.AddComponent(a.entityManager, a.windowEntity, &components.WindowComponent{
		Handle: a.window,
		Title:  cfg.Title,
	})
	ecs.AddComponent(a.entityManager, a.windowEntity, &components.PrimaryWindowComponent{})

	a.revealSystem = systems.NewWindowRevealSystem(a.entityManager, a.readyEvents, a, cfg.Reveal)
	a.revealSystem.Startup()

	log.Printf("[App] Window reveal configured: frames=%d ms=%d clear=%s",
		cfg.Reveal.FramesAfterReady, cfg.Reveal.MsAfterReady, config.FormatClearColor(cfg.Reveal.InitialClear))

	return a, nil
}

// SetClearColor 实现 systems.ClearColorSink
func (a *App) SetClearColor(c color.Color) {
	a.clearColor = c
}

// ClearColor 返回当前清屏颜色，未设置时为 nil
func (a *App) ClearColor() color.Color {
	return a.clearColor
}

// IsRevealed 窗口是否已显示
func (a *App) IsRevealed() bool {
	return a.revealSystem.IsRevealed()
}

// RevealState 返回当前显示状态
func (a *App) RevealState() components.WindowRevealComponent {
	return a.revealSystem.State()
}

// NotifyReady 手动发送窗口就绪事件
// 正常情况下由 Layout 自动发送；宿主有更准确的就绪信号时可直接调用
func (a *App) NotifyReady(width, height int) {
	if a.readySent {
		return
	}
	a.readySent = true
	a.readyEvents.Send(components.WindowReadyEvent{Width: width, Height: height})
}

// DetachWindow 移除主窗口句柄（窗口被销毁时调用）
func (a *App) DetachWindow() {
	if win, ok := ecs.GetComponent[*components.WindowComponent](a.entityManager, a.windowEntity); ok {
		win.Handle = nil
	}
}

// RunGameOptions 返回启动 ebiten 所需的选项
// 必须在 NewApp 之后调用：启动阶段已将窗口设为不透明
func (a *App) RunGameOptions() *ebiten.RunGameOptions {
	return &ebiten.RunGameOptions{
		ScreenTransparent: a.window.transparent,
	}
}

// Update 更新逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	a.revealSystem.Update(frameDelta())
	return a.game.Update()
}

// Draw 绘制画面
// 窗口显示前只绘制清屏颜色
func (a *App) Draw(screen *ebiten.Image) {
	if a.clearColor != nil {
		screen.Fill(a.clearColor)
	}
	if !a.window.visible {
		return
	}
	a.game.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏或缩放时 letterbox 区域同样使用清屏颜色，未设置时为黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	if a.clearColor != nil {
		screen.Fill(a.clearColor)
	} else {
		screen.Fill(color.Black)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 首次收到有效的外部尺寸即视为窗口就绪
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if !a.readySent && outsideWidth > 0 && outsideHeight > 0 {
		log.Printf("[App] First layout %dx%d, window ready", outsideWidth, outsideHeight)
		a.NotifyReady(outsideWidth, outsideHeight)
	}
	return a.game.Layout(outsideWidth, outsideHeight)
}

// frameDelta 返回每个 tick 的时间增量（秒）
// TPS 为 SyncWithFPS 时改用实际帧率
func frameDelta() float64 {
	if tps := ebiten.TPS(); tps > 0 {
		return 1.0 / float64(tps)
	}
	if fps := ebiten.ActualFPS(); fps > 0 {
		return 1.0 / fps
	}
	return 1.0 / 60.0
}
