package systems

import (
	"image/color"
	"log"

	"github.com/decker502/windowreveal/pkg/components"
	"github.com/decker502/windowreveal/pkg/config"
	"github.com/decker502/windowreveal/pkg/ecs"
)

// ClearColorSink 背景清屏颜色接收方
// 由宿主实现：窗口内容绘制前使用该颜色填充背景
type ClearColorSink interface {
	SetClearColor(c color.Color)
}

// PrimaryWindow 查询主窗口句柄
//
// 返回同时拥有 PrimaryWindowComponent 和 WindowComponent 的唯一实体的句柄。
// 没有匹配实体、匹配多个实体或句柄为 nil 时返回 false（窗口不可用）。
func PrimaryWindow(em *ecs.EntityManager) (components.WindowHandle, bool) {
	if em == nil {
		return nil, false
	}

	entities := ecs.GetEntitiesWith2[*components.PrimaryWindowComponent, *components.WindowComponent](em)
	if len(entities) != 1 {
		return nil, false
	}

	win, ok := ecs.GetComponent[*components.WindowComponent](em, entities[0])
	if !ok || win.Handle == nil {
		return nil, false
	}
	return win.Handle, true
}

// StartupWindowReveal 启动阶段隐藏主窗口
//
// 无论配置如何，都将主窗口设为不可见且不透明（避免显示残留帧缓冲内容）。
// 配置了 InitialClear 时，将其设置为后续帧的清屏颜色。
// 主窗口尚不可用时只记录日志，不中断启动（部分平台首帧时窗口尚未创建）。
func StartupWindowReveal(cfg config.WindowRevealConfig, em *ecs.EntityManager, clear ClearColorSink) {
	if cfg.InitialClear != nil && clear != nil {
		clear.SetClearColor(*cfg.InitialClear)
	}

	win, ok := PrimaryWindow(em)
	if !ok {
		log.Printf("[WindowRevealSystem] Primary window not available at startup, skip hiding")
		return
	}

	win.SetVisible(false)
	win.SetTransparent(false)
	log.Printf("[WindowRevealSystem] Primary window hidden until ready")
}

// CatchWindowReady 消费本帧的就绪事件
//
// 事件总是被取走（避免队列堆积）；仅当状态为 NotReady 且至少有一个事件时，
// 切换到 Ready 并清零计数器。同一批次的多个事件只算一次。
//
// 返回：
//   - bool: 本次调用是否发生了 NotReady -> Ready 转换
func CatchWindowReady(events *ecs.EventQueue[components.WindowReadyEvent], state *components.WindowRevealComponent) bool {
	if events == nil {
		return false
	}

	drained := events.Drain()
	if len(drained) == 0 || state.Status != components.RevealNotReady {
		return false
	}

	if !state.MarkReady() {
		return false
	}

	first := drained[0]
	log.Printf("[WindowRevealSystem] Window ready (%dx%d, %d event(s)), settle period started",
		first.Width, first.Height, len(drained))
	return true
}

// AccumulateReveal 累计就绪后的帧数与时间
//
// 仅在 Ready 状态下生效：帧数加一；启用时间条件时累计 deltaTime（秒）。
func AccumulateReveal(deltaTime float64, cfg config.WindowRevealConfig, state *components.WindowRevealComponent) {
	if state.Status != components.RevealReady {
		return
	}

	state.FramesSinceReady++
	if cfg.TimeConditionEnabled() {
		state.AddElapsed(deltaTime)
	}
}

// RevealIfDue 条件满足时显示主窗口
//
// 仅在 Ready 状态下生效。帧数条件与时间条件满足其一即显示窗口并进入 Revealed。
// 窗口句柄不可用时跳过可见性设置但仍进入 Revealed，
// 除非配置了 RetryWhileWindowMissing（此时保持 Ready，下一帧重试）。
//
// 返回：
//   - bool: 本次调用是否进入了 Revealed
func RevealIfDue(cfg config.WindowRevealConfig, state *components.WindowRevealComponent, em *ecs.EntityManager) bool {
	if state.Status != components.RevealReady {
		return false
	}

	framesOK := state.FramesSinceReady >= cfg.FramesAfterReady
	timeOK := cfg.TimeConditionEnabled() && state.MsSinceReady >= cfg.MsAfterReady
	if !framesOK && !timeOK {
		return false
	}

	win, ok := PrimaryWindow(em)
	if ok {
		win.SetVisible(true)
	} else if cfg.RetryWhileWindowMissing {
		log.Printf("[WindowRevealSystem] Reveal due but primary window unavailable, retry next frame")
		return false
	} else {
		// 窗口可能已被销毁，不再无限重试
		log.Printf("[WindowRevealSystem] Warning: primary window unavailable at reveal, marking revealed anyway")
	}

	state.MarkRevealed()
	log.Printf("[WindowRevealSystem] Window revealed (frames=%d, ms=%d, framesOK=%v, timeOK=%v)",
		state.FramesSinceReady, state.MsSinceReady, framesOK, timeOK)
	return true
}

// WindowRevealSystem 窗口延迟显示系统
//
// 启动时隐藏主窗口，收到就绪事件后等待稳定期（帧数/毫秒），再一次性显示窗口。
// 每帧调用一次 Update，进入 Revealed 后不再做任何工作。
type WindowRevealSystem struct {
	entityManager *ecs.EntityManager
	readyEvents   *ecs.EventQueue[components.WindowReadyEvent]
	clearSink     ClearColorSink
	config        config.WindowRevealConfig
	state         *components.WindowRevealComponent
	started       bool
}

// NewWindowRevealSystem 创建窗口延迟显示系统
//
// 参数：
//   - em: 实体管理器，用于查询主窗口
//   - events: 就绪事件队列，由宿主写入
//   - clear: 清屏颜色接收方，可为 nil
//   - cfg: 延迟显示配置（按值保存）
func NewWindowRevealSystem(
	em *ecs.EntityManager,
	events *ecs.EventQueue[components.WindowReadyEvent],
	clear ClearColorSink,
	cfg config.WindowRevealConfig,
) *WindowRevealSystem {
	return &WindowRevealSystem{
		entityManager: em,
		readyEvents:   events,
		clearSink:     clear,
		config:        cfg.WithInitialClear(cfg.InitialClear),
		state:         components.NewWindowRevealComponent(),
	}
}

// Startup 执行启动阶段的隐藏操作，重复调用无效
func (s *WindowRevealSystem) Startup() {
	if s.started {
		return
	}
	s.started = true
	StartupWindowReveal(s.config, s.entityManager, s.clearSink)
}

// Update 每帧推进状态机
//
// 固定顺序：消费就绪事件 -> 累计 -> 检查显示条件。
// 本帧刚进入 Ready 时不再累计，稳定期从下一帧开始计数。
func (s *WindowRevealSystem) Update(deltaTime float64) {
	if s.state.Status == components.RevealRevealed {
		return
	}

	if CatchWindowReady(s.readyEvents, s.state) {
		return
	}

	AccumulateReveal(deltaTime, s.config, s.state)
	RevealIfDue(s.config, s.state, s.entityManager)
}

// State 返回当前状态（只读用途）
func (s *WindowRevealSystem) State() components.WindowRevealComponent {
	return *s.state
}

// IsRevealed 窗口是否已显示
func (s *WindowRevealSystem) IsRevealed() bool {
	return s.state.Status == components.RevealRevealed
}

// Config 返回系统使用的配置
func (s *WindowRevealSystem) Config() config.WindowRevealConfig {
	return s.config
}
