// Package main 窗口延迟显示示例
//
// 用法：
//
//	go run . [flags]
//
// Flags:
//
//	--frames <n>        就绪后等待的帧数（默认 2）
//	--ms <n>            就绪后等待的毫秒数，0 表示禁用（默认 0）
//	--clear <#rrggbb>   显示前的清屏颜色，"none" 表示不设置（默认 #000000）
//	--config <path>     YAML 配置文件
//	--save-settings     将最终生效的配置保存为用户设置
//	--verbose           显示详细日志
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/decker502/windowreveal/pkg/app"
	"github.com/decker502/windowreveal/pkg/config"
	"github.com/decker502/windowreveal/pkg/game"
	"github.com/decker502/windowreveal/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

const windowTitle = "Window Reveal"

var (
	framesFlag       = flag.Uint("frames", uint(config.DefaultRevealFramesAfterReady), "就绪后等待的帧数")
	msFlag           = flag.Uint64("ms", config.DefaultRevealMsAfterReady, "就绪后等待的毫秒数（0 = 禁用）")
	clearFlag        = flag.String("clear", "#000000", "显示前的清屏颜色（#rrggbb 或 none）")
	configFlag       = flag.String("config", "", "YAML 配置文件路径")
	saveSettingsFlag = flag.Bool("save-settings", false, "保存最终生效的配置为用户设置")
	verboseFlag      = flag.Bool("verbose", false, "显示详细日志")
)

// resolveRevealConfig 合并配置：默认值 -> 用户设置 -> 配置文件 -> 命令行参数
func resolveRevealConfig(settings *game.SettingsManager) (config.WindowRevealConfig, error) {
	cfg := settings.RevealConfig()

	if *configFlag != "" {
		loaded, err := config.LoadWindowRevealConfig(*configFlag, cfg)
		if err != nil {
			return cfg, fmt.Errorf("加载配置文件失败: %w", err)
		}
		cfg = loaded
	}

	// 只应用显式指定的参数
	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frames":
			if uint64(*framesFlag) > math.MaxUint32 {
				flagErr = fmt.Errorf("--frames 超出范围 (最大 %d): %d", uint64(math.MaxUint32), *framesFlag)
				return
			}
			cfg.FramesAfterReady = uint32(*framesFlag)
		case "ms":
			cfg.MsAfterReady = *msFlag
		case "clear":
			clear, err := config.ParseClearColor(*clearFlag)
			if err != nil {
				flagErr = err
				return
			}
			cfg = cfg.WithInitialClear(clear)
		}
	})
	if flagErr != nil {
		return cfg, flagErr
	}

	return cfg, nil
}

func main() {
	flag.Parse()

	// 用户设置存储，打开失败时降级为仅内存设置
	gdataManager, err := gdata.Open(gdata.Config{AppName: "windowreveal"})
	if err != nil {
		log.Printf("[Main] gdata unavailable: %v (settings will not persist)", err)
		gdataManager = nil
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		log.Fatalf("设置初始化失败: %v", err)
	}

	revealCfg, err := resolveRevealConfig(settings)
	if err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	if *saveSettingsFlag {
		settings.SetRevealConfig(revealCfg)
		if err := settings.Save(); err != nil {
			log.Fatalf("保存设置失败: %v", err)
		}
	}

	gameApp, err := app.NewApp(scenes.NewHelloGame(), app.Config{
		Verbose: *verboseFlag,
		Title:   windowTitle,
		Reveal:  revealCfg,
	})
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(scenes.HelloWidth, scenes.HelloHeight)
	ebiten.SetWindowTitle(windowTitle)

	if err := ebiten.RunGameWithOptions(gameApp, gameApp.RunGameOptions()); err != nil {
		log.Fatal(err)
	}
}
