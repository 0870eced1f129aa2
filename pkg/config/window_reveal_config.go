package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// 窗口延迟显示默认值
const (
	// DefaultRevealFramesAfterReady 就绪后等待的帧数
	DefaultRevealFramesAfterReady uint32 = 2

	// DefaultRevealMsAfterReady 就绪后等待的毫秒数（0 = 禁用时间条件）
	DefaultRevealMsAfterReady uint64 = 0

	// ClearColorNone 配置文件中表示"不设置清屏颜色"的取值
	ClearColorNone = "none"
)

// WindowRevealConfig 窗口延迟显示配置
//
// 窗口就绪后，满足帧数条件或时间条件之一（逻辑或）即显示窗口。
// 两个阈值都为 0 时，就绪后的下一帧立即显示。
// 构造后视为不可变：系统持有值拷贝。
type WindowRevealConfig struct {
	// FramesAfterReady 就绪后需要经过的帧数
	FramesAfterReady uint32

	// MsAfterReady 就绪后需要经过的毫秒数，0 表示禁用时间条件
	MsAfterReady uint64

	// InitialClear 窗口显示前使用的背景清屏颜色，nil 表示不设置
	InitialClear *color.RGBA

	// RetryWhileWindowMissing 满足显示条件但窗口句柄不可用时，
	// 是否保持 Ready 状态并在下一帧重试。
	// 默认 false：直接进入 Revealed（跳过可见性设置）。
	RetryWhileWindowMissing bool
}

// DefaultWindowRevealConfig 返回默认配置
// 等待 2 帧、禁用时间条件、黑色清屏
func DefaultWindowRevealConfig() WindowRevealConfig {
	black := color.RGBA{R: 0, G: 0, B: 0, A: 255}
	return WindowRevealConfig{
		FramesAfterReady: DefaultRevealFramesAfterReady,
		MsAfterReady:     DefaultRevealMsAfterReady,
		InitialClear:     &black,
	}
}

// WithInitialClear 返回替换了清屏颜色的配置副本
func (c WindowRevealConfig) WithInitialClear(clear *color.RGBA) WindowRevealConfig {
	if clear != nil {
		cp := *clear
		clear = &cp
	}
	c.InitialClear = clear
	return c
}

// TimeConditionEnabled 时间条件是否启用
func (c WindowRevealConfig) TimeConditionEnabled() bool {
	return c.MsAfterReady > 0
}

// windowRevealYAML 配置文件结构
// 字段均为指针：缺省的键保留基础配置中的值
type windowRevealYAML struct {
	FramesAfterReady        *uint32 `yaml:"framesAfterReady,omitempty"`
	MsAfterReady            *uint64 `yaml:"msAfterReady,omitempty"`
	InitialClear            *string `yaml:"initialClear,omitempty"`
	RetryWhileWindowMissing *bool   `yaml:"retryWhileWindowMissing,omitempty"`
}

// ParseWindowRevealConfig 解析 YAML 配置，覆盖到 base 之上
//
// 参数：
//   - data: YAML 内容，空文档表示不覆盖任何字段
//   - base: 基础配置（通常为 DefaultWindowRevealConfig()）
//
// 返回：
//   - WindowRevealConfig: 合并后的配置
//   - error: YAML 语法错误、未知字段或颜色格式错误
func ParseWindowRevealConfig(data []byte, base WindowRevealConfig) (WindowRevealConfig, error) {
	var raw windowRevealYAML

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, fmt.Errorf("failed to parse window reveal config: %w", err)
	}

	cfg := base.WithInitialClear(base.InitialClear)

	if raw.FramesAfterReady != nil {
		cfg.FramesAfterReady = *raw.FramesAfterReady
	}
	if raw.MsAfterReady != nil {
		cfg.MsAfterReady = *raw.MsAfterReady
	}
	if raw.InitialClear != nil {
		clear, err := ParseClearColor(*raw.InitialClear)
		if err != nil {
			return base, err
		}
		cfg.InitialClear = clear
	}
	if raw.RetryWhileWindowMissing != nil {
		cfg.RetryWhileWindowMissing = *raw.RetryWhileWindowMissing
	}

	return cfg, nil
}

// LoadWindowRevealConfig 从 YAML 文件加载配置
// 文件中未出现的字段保留 base 的值；出错时原样返回 base
func LoadWindowRevealConfig(path string, base WindowRevealConfig) (WindowRevealConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read window reveal config %s: %w", path, err)
	}

	cfg, err := ParseWindowRevealConfig(data, base)
	if err != nil {
		return base, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// EncodeWindowRevealConfig 将配置序列化为 YAML（所有字段都会写出）
func EncodeWindowRevealConfig(cfg WindowRevealConfig) ([]byte, error) {
	clear := FormatClearColor(cfg.InitialClear)
	raw := windowRevealYAML{
		FramesAfterReady:        &cfg.FramesAfterReady,
		MsAfterReady:            &cfg.MsAfterReady,
		InitialClear:            &clear,
		RetryWhileWindowMissing: &cfg.RetryWhileWindowMissing,
	}

	data, err := yaml.Marshal(&raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal window reveal config: %w", err)
	}
	return data, nil
}

// ParseClearColor 解析清屏颜色
// 支持 "#rrggbb" 十六进制格式；"none" 或空字符串返回 nil（不设置清屏颜色）
func ParseClearColor(s string) (*color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, ClearColorNone) {
		return nil, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid clear color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return &color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatClearColor 将清屏颜色格式化为 "#rrggbb"，nil 返回 "none"
func FormatClearColor(c *color.RGBA) string {
	if c == nil {
		return ClearColorNone
	}
	cf := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	return cf.Hex()
}
