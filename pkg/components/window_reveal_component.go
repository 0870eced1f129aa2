package components

import (
	"math"
	"time"
)

// RevealStatus 窗口显示状态
// 只能单向推进：NotReady -> Ready -> Revealed
type RevealStatus int

const (
	// RevealNotReady 等待窗口就绪事件
	RevealNotReady RevealStatus = iota
	// RevealReady 已就绪，正在累计稳定期（帧数/毫秒）
	RevealReady
	// RevealRevealed 窗口已显示（终止状态）
	RevealRevealed
)

// String 返回状态名称（用于日志）
func (s RevealStatus) String() string {
	switch s {
	case RevealNotReady:
		return "NotReady"
	case RevealReady:
		return "Ready"
	case RevealRevealed:
		return "Revealed"
	default:
		return "Unknown"
	}
}

// WindowRevealComponent 窗口延迟显示状态
//
// 由 WindowRevealSystem 独占并逐帧修改。
// FramesSinceReady / MsSinceReady 仅在 Status == RevealReady 时有意义：
// 进入 Ready 时清零，进入 Revealed 后冻结。
type WindowRevealComponent struct {
	// Status 当前状态
	Status RevealStatus

	// FramesSinceReady 进入 Ready 以来累计的帧数
	FramesSinceReady uint32

	// MsSinceReady 进入 Ready 以来累计的毫秒数（截断取整）
	MsSinceReady uint64

	// elapsed 以纳秒整数累计的时长
	// MsSinceReady 由它换算得出，避免浮点求和与逐帧截断带来的漂移
	elapsed time.Duration
}

// NewWindowRevealComponent 创建初始状态（NotReady，计数器为0）
func NewWindowRevealComponent() *WindowRevealComponent {
	return &WindowRevealComponent{Status: RevealNotReady}
}

// MarkReady 进入 Ready 状态并清零计数器
// 仅在 NotReady 状态下生效，返回是否发生了状态转换
func (c *WindowRevealComponent) MarkReady() bool {
	if c.Status != RevealNotReady {
		return false
	}
	c.Status = RevealReady
	c.FramesSinceReady = 0
	c.MsSinceReady = 0
	c.elapsed = 0
	return true
}

// AddElapsed 累计经过时间（秒）
// 负值、NaN 与无穷大被忽略；每次增量四舍五入到纳秒，累计值到达上限后不再增长
func (c *WindowRevealComponent) AddElapsed(seconds float64) {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return
	}
	ns := math.Round(seconds * float64(time.Second))
	remaining := time.Duration(math.MaxInt64) - c.elapsed
	if ns >= float64(remaining) {
		c.elapsed = time.Duration(math.MaxInt64)
	} else {
		c.elapsed += time.Duration(ns)
	}
	c.MsSinceReady = uint64(c.elapsed.Milliseconds())
}

// MarkRevealed 进入终止状态
// 仅在 Ready 状态下生效，返回是否发生了状态转换
func (c *WindowRevealComponent) MarkRevealed() bool {
	if c.Status != RevealReady {
		return false
	}
	c.Status = RevealRevealed
	return true
}
