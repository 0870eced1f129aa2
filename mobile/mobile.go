//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.windowreveal -o build/android/windowreveal.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/WindowReveal.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/windowreveal/pkg/app"
	"github.com/decker502/windowreveal/pkg/config"
	"github.com/decker502/windowreveal/pkg/scenes"
)

func init() {
	// 移动端首帧时 Surface 可能尚未创建，多等几帧再显示
	reveal := config.DefaultWindowRevealConfig()
	reveal.FramesAfterReady = 4

	gameApp, err := app.NewApp(scenes.NewHelloGame(), app.Config{
		Verbose: true,
		Title:   "Window Reveal",
		Reveal:  reveal,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
