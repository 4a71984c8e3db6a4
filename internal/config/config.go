package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// 时间范围（分钟）
const (
	MinMinutes = 1
	MaxMinutes = 90
)

const (
	DefaultWorkMinutes  = 50
	DefaultRestMinutes  = 10
	DefaultTickInterval = time.Minute
)

const (
	AppName    = "Time Reminder"
	EnvConfig  = "TIME_REMINDER_CONFIG"
	configDir  = ".time-reminder"
	configFile = "config.yaml"
	historyDB  = "history.db"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Reminder ReminderConfig `yaml:"reminder"`
	History  HistoryConfig  `yaml:"history"`
	Theme    ThemeConfig    `yaml:"theme"`
}

type AppConfig struct {
	Name         string `yaml:"name"`
	WindowWidth  int    `yaml:"window_width"`
	WindowHeight int    `yaml:"window_height"`
}

type ReminderConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	WorkMinutes  int           `yaml:"work_minutes"`
	RestMinutes  int           `yaml:"rest_minutes"`
}

// HistoryConfig 完成记录（默认关闭）
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type ThemeConfig struct {
	FontSize int `yaml:"font_size"`
	LCDSize  int `yaml:"lcd_size"`
}

// 默认配置
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:         AppName,
			WindowWidth:  270,
			WindowHeight: 200,
		},
		Reminder: ReminderConfig{
			TickInterval: DefaultTickInterval,
			WorkMinutes:  DefaultWorkMinutes,
			RestMinutes:  DefaultRestMinutes,
		},
		History: HistoryConfig{
			Enabled: false,
			Path:    historyDB,
		},
		Theme: ThemeConfig{
			FontSize: 16,
			LCDSize:  48,
		},
	}
}

// Manager 只读取配置，不回写
type Manager struct {
	config     *Config
	configPath string
}

// NewManager 读取 path 处的配置，文件不存在时使用默认值
func NewManager(path string) (*Manager, error) {
	manager := &Manager{
		configPath: path,
		config:     DefaultConfig(),
	}

	if err := manager.loadConfig(); err != nil {
		return nil, err
	}
	manager.config.normalize(filepath.Dir(path))
	return manager, nil
}

func (m *Manager) loadConfig() error {
	data, err := os.ReadFile(m.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config %s: %w", m.configPath, err)
	}

	// 在默认值之上解析，缺省字段保持默认
	if err := yaml.Unmarshal(data, m.config); err != nil {
		return fmt.Errorf("parse config %s: %w", m.configPath, err)
	}
	return nil
}

func (m *Manager) GetConfig() *Config {
	return m.config
}

func (m *Manager) Path() string {
	return m.configPath
}

// 非法值回退到默认值
func (c *Config) normalize(baseDir string) {
	def := DefaultConfig()

	if c.App.Name == "" {
		c.App.Name = def.App.Name
	}
	if c.App.WindowWidth <= 0 {
		c.App.WindowWidth = def.App.WindowWidth
	}
	if c.App.WindowHeight <= 0 {
		c.App.WindowHeight = def.App.WindowHeight
	}

	if c.Reminder.TickInterval <= 0 {
		c.Reminder.TickInterval = def.Reminder.TickInterval
	}
	c.Reminder.WorkMinutes = ClampMinutes(c.Reminder.WorkMinutes)
	c.Reminder.RestMinutes = ClampMinutes(c.Reminder.RestMinutes)

	if c.History.Path == "" {
		c.History.Path = def.History.Path
	}
	if !filepath.IsAbs(c.History.Path) && baseDir != "" {
		c.History.Path = filepath.Join(baseDir, c.History.Path)
	}

	if c.Theme.FontSize <= 0 {
		c.Theme.FontSize = def.Theme.FontSize
	}
	if c.Theme.LCDSize <= 0 {
		c.Theme.LCDSize = def.Theme.LCDSize
	}
}

// ClampMinutes 将分钟数限制在 [MinMinutes, MaxMinutes]
func ClampMinutes(m int) int {
	if m < MinMinutes {
		return MinMinutes
	}
	if m > MaxMinutes {
		return MaxMinutes
	}
	return m
}

// DefaultPath 优先使用 $TIME_REMINDER_CONFIG，否则为用户目录下的配置文件
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := getConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFile), nil
}

// 获取配置文件目录
func getConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(homeDir, configDir), nil
}
