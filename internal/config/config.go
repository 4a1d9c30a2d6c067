// Package config 提供进程级配置：这里只剩日志与默认工程目录两件事，
// 求解器的超参数（迭代数、种群大小等）属于 pkg/project.Config，
// 从 project_path/config.json 装载，不走环境变量
package config

import "os"

// Config 进程级配置
type Config struct {
	LogLevel           string
	LogFormat          string
	DefaultProjectPath string
}

// Load 从环境变量加载配置
func Load() (*Config, error) {
	return &Config{
		LogLevel:           getEnv("APP_LOG_LEVEL", "info"),
		LogFormat:          getEnv("APP_LOG_FORMAT", "console"),
		DefaultProjectPath: getEnv("TIMETABLE_PROJECT_PATH", "./demo"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
