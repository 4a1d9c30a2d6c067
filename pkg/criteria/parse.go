package criteria

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paiban/paiban/pkg/logger"
	"github.com/paiban/paiban/pkg/project"
)

func unmarshalJSON(raw []byte, v interface{}) error {
	return json.Unmarshal(raw, v)
}

type parserFunc func(raw []byte) (Criterion, error)

// dispatch 把 criteria.json 里的键名映射到各准则的解析函数。
// event_time_distance 故意留白：它的实现存在（event_time_distance.go），
// 但历史上从未在这张表里接线，保持这一状态是对原实现行为的忠实移植。
var dispatch = map[string]parserFunc{
	"room_distance":   parseRoomDistance,
	"events_distance": parseEventsDistance,
}

// Parse 读取 criteria.json（一个 "类型名 -> 该类型的参数对象数组" 的映射），
// 为每个已知类型的每个条目构造一个 Criterion 并注册进 Registry；未知
// 类型只记一条警告日志并跳过，不是致命错误
func Parse(dir string) (*Registry, error) {
	path := filepath.Join(dir, "criteria.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("criteria: failed to open criteria.json: %w", err)
	}

	var table map[string][]json.RawMessage
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("criteria: failed to parse criteria.json: %w", err)
	}

	reg := &Registry{}
	for kind, entries := range table {
		parser, ok := dispatch[kind]
		if !ok {
			logger.Get().Warn().Str("criterion_type", kind).Msg("unknown criterion type, skipping")
			continue
		}
		for _, entry := range entries {
			c, err := parser(entry)
			if err != nil {
				return nil, fmt.Errorf("criteria: failed to parse %q entry: %w", kind, err)
			}
			reg.criteria = append(reg.criteria, c)
		}
	}

	return reg, nil
}

// Init 对全部已注册的准则调用一次 Init，必须在 Parse 之后、首次
// Evaluate 之前完成
func (r *Registry) Init(p *project.Project) {
	for _, c := range r.criteria {
		c.Init(p)
	}
}
