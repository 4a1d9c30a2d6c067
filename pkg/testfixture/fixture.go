// Package testfixture 为其它包的测试提供一个微型的磁盘项目目录，
// 避免每个包各自重复拼装 config.json/rooms.json/... 的样板
package testfixture

import (
	"os"
	"path/filepath"
	"testing"
)

const configJSON = `{
  "slots_per_day": 4,
  "days": 3,
  "tabu_size": 10,
  "initial_method": "tabu",
  "initial_attempts": 5,
  "max_iter_initial": 300,
  "max_iter": 50,
  "population_size": 4,
  "initial_temperature": 100.0,
  "penalty_threshold": 0.5,
  "penalty_factor": 0.5,
  "expected_graded_num": 20,
  "history_size": 50
}`

const roomsJSON = `[
  {"name": "R1", "kind": "lecture"},
  {"name": "R2", "kind": "lecture"},
  {"name": "R3", "kind": "lab"},
  {"name": "R4", "kind": "lecture"}
]`

const roomsAdjCSV = `,R1,R2,R3,R4
R1,0,1,4,2
R2,1,0,3,2
R3,4,3,0,5
R4,2,2,5,0
`

const eventsJSON = `[
  {"name": "Algorithms", "num_per_week": 2, "max_per_day": 1, "room_kind": "lecture"},
  {"name": "Databases", "num_per_week": 2, "max_per_day": 1, "room_kind": "lecture"},
  {"name": "Networking Lab", "num_per_week": 1, "max_per_day": 1, "room_kind": "lab"}
]`

const peopleJSON = `[
  {"name": "Alice", "attend": ["Algorithms", "Networking Lab"]},
  {"name": "Bob", "attend": ["Databases", "Networking Lab"]},
  {"name": "Carol", "attend": ["Algorithms", "Databases"]}
]`

const criteriaJSON = `{
  "room_distance": [{"weight": 1.0}]
}`

// Write 创建一个包含全部六个项目文件的临时目录并返回其路径
func Write(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"config.json":    configJSON,
		"rooms.json":      roomsJSON,
		"rooms_adj.csv":   roomsAdjCSV,
		"events.json":     eventsJSON,
		"people.json":     peopleJSON,
		"criteria.json":   criteriaJSON,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("testfixture: failed to write %s: %v", name, err)
		}
	}
	return dir
}
