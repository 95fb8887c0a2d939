package config

import (
	"github.com/Angiecode225/TerraNobis-sub001/internal/logger"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Scheduler SchedulerConfig `mapstructure:"scheduler"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	User      UserConfig      `mapstructure:"user"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// StoreConfig 记录存储配置
type StoreConfig struct {
	DBPath string `mapstructure:"db_path"` // sqlite文件路径
	Slot   string `mapstructure:"slot"`    // 项目集合所在的持久化槽位
}

type SchedulerConfig struct {
	Interval int `mapstructure:"interval"` // 秒
}

type NotifyConfig struct {
	PoolSize int `mapstructure:"pool_size"` // 通知协程池大小
}

// UserConfig 当前用户，单客户端场景下由配置提供
type UserConfig struct {
	Id   string `mapstructure:"id"`
	Name string `mapstructure:"name"`
	Role string `mapstructure:"role"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // 日志级别: debug, info, warn, error, fatal
	Output string `mapstructure:"output"` // 输出目标: stdout, file
	File   string `mapstructure:"file"`   // 日志文件路径（当output为file时使用）
}

func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("/etc/terranobis")

	// 设置默认值
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("store.db_path", "data/terranobis.db")
	viper.SetDefault("store.slot", "terranobis_projects")
	viper.SetDefault("scheduler.interval", 60)
	viper.SetDefault("notify.pool_size", 4)
	viper.SetDefault("user.id", "farmer-local")
	viper.SetDefault("user.name", "Agriculteur")
	viper.SetDefault("user.role", "farmer")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.output", "stdout")
	viper.SetDefault("log.file", "logs/app.log")

	// 自动读取环境变量
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Warn("Warning: Could not read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		logger.Fatal("Unable to decode config into struct: %v", err)
	}

	return &config
}
