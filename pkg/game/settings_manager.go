package game

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/windowreveal/pkg/config"
	"github.com/quasilyte/gdata/v2"
)

// SettingsManager 窗口显示设置管理器
//
// 负责窗口延迟显示配置的加载、保存和内存管理。
// 只保存配置（帧数/毫秒阈值、清屏颜色），不保存任何运行时显示状态。
type SettingsManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	reveal       config.WindowRevealConfig
}

// 存储路径常量
const (
	settingsObject   = "settings"
	settingsProperty = "window_reveal"
)

// NewSettingsManager 创建新的设置管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存设置）
//
// 返回：
//   - *SettingsManager: 设置管理器实例
//   - error: 目前总是 nil，加载失败只记录日志并使用默认设置
func NewSettingsManager(gdataManager *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{
		gdataManager: gdataManager,
		reveal:       config.DefaultWindowRevealConfig(),
	}

	if err := sm.Load(); err != nil {
		// 加载失败不是致命错误，使用默认设置
		log.Printf("[SettingsManager] Warning: Failed to load settings: %v (using defaults)", err)
	}

	return sm, nil
}

// Load 从 gdata 加载设置
//
// 如果 gdataManager 为 nil 或设置不存在，使用默认设置
//
// 返回：
//   - error: 如果读取或反序列化失败返回错误
func (sm *SettingsManager) Load() error {
	if sm.gdataManager == nil {
		sm.reveal = config.DefaultWindowRevealConfig()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(settingsObject, settingsProperty) {
		sm.reveal = config.DefaultWindowRevealConfig()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		sm.reveal = config.DefaultWindowRevealConfig()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	reveal, err := config.ParseWindowRevealConfig(data, config.DefaultWindowRevealConfig())
	if err != nil {
		sm.reveal = config.DefaultWindowRevealConfig()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	sm.reveal = reveal
	log.Printf("[SettingsManager] Settings loaded successfully")
	return nil
}

// Save 保存设置到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
func (sm *SettingsManager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := config.EncodeWindowRevealConfig(sm.reveal)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	log.Printf("[SettingsManager] Settings saved successfully")
	return nil
}

// RevealConfig 获取当前窗口延迟显示配置（副本）
func (sm *SettingsManager) RevealConfig() config.WindowRevealConfig {
	return sm.reveal.WithInitialClear(sm.reveal.InitialClear)
}

// SetRevealConfig 整体替换窗口延迟显示配置
// 注意：仅修改内存中的设置，需调用 Save() 方法持久化
func (sm *SettingsManager) SetRevealConfig(cfg config.WindowRevealConfig) {
	sm.reveal = cfg.WithInitialClear(cfg.InitialClear)
}

// SetFramesAfterReady 设置就绪后等待的帧数
func (sm *SettingsManager) SetFramesAfterReady(frames uint32) {
	sm.reveal.FramesAfterReady = frames
}

// SetMsAfterReady 设置就绪后等待的毫秒数（0 = 禁用）
func (sm *SettingsManager) SetMsAfterReady(ms uint64) {
	sm.reveal.MsAfterReady = ms
}

// SetInitialClear 设置清屏颜色，nil 表示不设置
func (sm *SettingsManager) SetInitialClear(c *color.RGBA) {
	sm.reveal = sm.reveal.WithInitialClear(c)
}

// ResetToDefaults 恢复默认设置（仅内存）
func (sm *SettingsManager) ResetToDefaults() {
	sm.reveal = config.DefaultWindowRevealConfig()
}
