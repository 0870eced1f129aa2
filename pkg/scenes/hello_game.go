package scenes

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// 示例场景的逻辑屏幕尺寸
const (
	HelloWidth  = 800
	HelloHeight = 600
)

// HelloGame 示例游戏：窗口显示后才会被绘制的内容
// 草地绿背景 + 运行信息，用于直观对比显示前的清屏颜色
type HelloGame struct {
	ticks int
}

// NewHelloGame 创建示例游戏
func NewHelloGame() *HelloGame {
	return &HelloGame{}
}

// Ticks 返回已执行的 Update 次数
func (g *HelloGame) Ticks() int {
	return g.ticks
}

// Update 实现 ebiten.Game
func (g *HelloGame) Update() error {
	g.ticks++
	return nil
}

// Draw 实现 ebiten.Game
func (g *HelloGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 144, G: 238, B: 144, A: 255})
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Hello! ticks=%d TPS=%0.1f", g.ticks, ebiten.ActualTPS()))
}

// Layout 实现 ebiten.Game
func (g *HelloGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return HelloWidth, HelloHeight
}
