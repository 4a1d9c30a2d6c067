// Package project 解析并装载一次排课运行所需的全部静态数据
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config 对应 config.json，描述网格形状与求解器超参数
type Config struct {
	SlotsPerDay int `json:"slots_per_day"` // 每天的时间槽数
	Days        int `json:"days"`          // 一周的天数

	TabuSize         int `json:"tabu_size"`          // 初始解禁忌表大小
	InitialMethod    string `json:"initial_method"`  // "tabu" 或 "constructive"
	InitialAttempts  int `json:"initial_attempts"`   // 初始解重试次数
	MaxIterInitial   int `json:"max_iter_initial"`   // 单次初始解搜索的最大迭代数
	MaxIter          int `json:"max_iter"`           // 优化主循环迭代数

	PopulationSize     int     `json:"population_size"`
	InitialTemperature float64 `json:"initial_temperature"`
	PenaltyThreshold   float64 `json:"penalty_threshold"`
	PenaltyFactor      float64 `json:"penalty_factor"`
	ExpectedGradedNum  int     `json:"expected_graded_num"`
	HistorySize        int     `json:"history_size"`

	// NumSlots 由 SlotsPerDay*Days 推导得出，不从 JSON 读取
	NumSlots int `json:"-"`
}

func defaultConfig() Config {
	return Config{
		TabuSize:           20,
		InitialMethod:      "tabu",
		InitialAttempts:    3,
		MaxIterInitial:     200,
		MaxIter:            500,
		PopulationSize:     10,
		InitialTemperature: 1000.0,
		PenaltyThreshold:   0.5,
		PenaltyFactor:      0.5,
		ExpectedGradedNum:  200,
		HistorySize:        500,
	}
}

// Validate 检查配置内部一致性，失败时返回描述性错误
func (c *Config) Validate() error {
	if c.SlotsPerDay <= 0 {
		return fmt.Errorf("config: slots_per_day must be positive, got %d", c.SlotsPerDay)
	}
	if c.Days <= 0 {
		return fmt.Errorf("config: days must be positive, got %d", c.Days)
	}
	if c.InitialMethod != "tabu" && c.InitialMethod != "constructive" {
		return fmt.Errorf("config: initial_method must be \"tabu\" or \"constructive\", got %q", c.InitialMethod)
	}
	if c.PopulationSize <= 0 {
		return fmt.Errorf("config: population_size must be positive, got %d", c.PopulationSize)
	}
	return nil
}

// IterSlots 返回 [0, NumSlots) 的全部时间槽
func (c *Config) IterSlots() []int {
	slots := make([]int, c.NumSlots)
	for i := range slots {
		slots[i] = i
	}
	return slots
}

// OffsetInDay 返回时间槽在其所在天内的偏移
func (c *Config) OffsetInDay(slot int) int {
	return slot % c.SlotsPerDay
}

// SlotToDay 返回时间槽所属的天（0 基）
func (c *Config) SlotToDay(slot int) int {
	return slot / c.SlotsPerDay
}

// SlotsOfDay 返回某一天包含的全部时间槽
func (c *Config) SlotsOfDay(day int) []int {
	start := day * c.SlotsPerDay
	slots := make([]int, c.SlotsPerDay)
	for i := range slots {
		slots[i] = start + i
	}
	return slots
}

// SlotsOfSameDay 返回与给定时间槽同一天的全部时间槽
func (c *Config) SlotsOfSameDay(slot int) []int {
	return c.SlotsOfDay(c.SlotToDay(slot))
}

// IterDays 返回 [0, Days) 的全部天
func (c *Config) IterDays() []int {
	days := make([]int, c.Days)
	for i := range days {
		days[i] = i
	}
	return days
}

func parseConfig(dir string) (Config, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err != nil {
		return cfg, fmt.Errorf("project: failed to open config.json: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("project: failed to parse config.json: %w", err)
	}
	cfg.NumSlots = cfg.Days * cfg.SlotsPerDay
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
