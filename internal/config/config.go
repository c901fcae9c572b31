package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Data    DataConfig    `toml:"data"`
	Alerts  AlertsConfig  `toml:"alerts"`
	Cache   CacheConfig   `toml:"cache"`
	Pricing PricingConfig `toml:"pricing"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// AlertsConfig 到期提醒配置
type AlertsConfig struct {
	// ExpiringWindowDays 即将过期窗口（天），取值范围 7~90
	ExpiringWindowDays int `toml:"expiring_window_days"`
}

// CacheConfig 缓存配置
// RedisAddr 为空时使用内存缓存
type CacheConfig struct {
	RedisAddr string `toml:"redis_addr"`
}

// PricingConfig 演示用套餐年费（美元）
type PricingConfig struct {
	BasicAnnualFee float64 `toml:"basic_annual_fee"`
	CoreAnnualFee  float64 `toml:"core_annual_fee"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20371,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Alerts: AlertsConfig{
			ExpiringWindowDays: 30,
		},
		Cache: CacheConfig{
			RedisAddr: "",
		},
		Pricing: PricingConfig{
			BasicAnnualFee: 1500,
			CoreAnnualFee:  3000,
		},
	}
}

// ClampExpiringWindow 将过期窗口裁剪到合法区间
func ClampExpiringWindow(days int) int {
	if days < 7 {
		return 7
	}
	if days > 90 {
		return 90
	}
	return days
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	// 配置文件不存在时使用默认配置；环境变量覆盖对两种情况都生效
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	case !os.IsNotExist(err):
		return nil, info, err
	}

	// 环境变量覆盖（用于 E2E / 本地运行）
	if v := os.Getenv("HALALDESK_REDIS_ADDR"); v != "" {
		config.Cache.RedisAddr = v
	}

	config.Alerts.ExpiringWindowDays = ClampExpiringWindow(config.Alerts.ExpiringWindowDays)

	return config, info, nil
}

// EnsureDataDir 确保数据目录存在
// 数据目录位于可执行文件同目录下
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	// 创建子目录
	subdirs := []string{"uploads", "exports"}
	for _, subdir := range subdirs {
		path := filepath.Join(dataDir, subdir)
		if err := os.MkdirAll(path, 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
