package project

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paiban/paiban/pkg/model"
)

// Rooms 保存全部教室及其邻接距离矩阵
type Rooms struct {
	names    []string
	kinds    []model.RoomKind   // kinds[room] = 该教室的类型
	adjacent [][]int            // adjacent[i][j] = 教室 i 到 j 的距离
	kindName []string           // kindName[kind] = 类型名
	kindID   map[string]model.RoomKind
	byKind   map[model.RoomKind][]model.Room
}

// Len 返回教室总数
func (r *Rooms) Len() int { return len(r.names) }

// IterAll 返回全部教室句柄
func (r *Rooms) IterAll() []model.Room {
	out := make([]model.Room, len(r.names))
	for i := range out {
		out[i] = model.Room(i)
	}
	return out
}

// RoomName 返回教室名称
func (r *Rooms) RoomName(room model.Room) string { return r.names[room] }

// RoomKind 返回教室的类型
func (r *Rooms) RoomKind(room model.Room) model.RoomKind { return r.kinds[room] }

// IterKinds 返回全部出现过的教室类型
func (r *Rooms) IterKinds() []model.RoomKind {
	out := make([]model.RoomKind, len(r.kindName))
	for i := range out {
		out[i] = model.RoomKind(i)
	}
	return out
}

// KindName 返回教室类型的名称
func (r *Rooms) KindName(kind model.RoomKind) string { return r.kindName[kind] }

// KindNameToID 按名称查找教室类型句柄
func (r *Rooms) KindNameToID(name string) (model.RoomKind, bool) {
	k, ok := r.kindID[name]
	return k, ok
}

// RoomsWithKind 返回属于给定类型的全部教室
func (r *Rooms) RoomsWithKind(kind model.RoomKind) []model.Room {
	return r.byKind[kind]
}

// Distance 返回两间教室之间的邻接距离
func (r *Rooms) Distance(a, b model.Room) int {
	return r.adjacent[a][b]
}

func parseRooms(dir string) (*Rooms, error) {
	roomsPath := filepath.Join(dir, "rooms.json")
	raw, err := os.ReadFile(roomsPath)
	if err != nil {
		return nil, fmt.Errorf("project: failed to open rooms.json: %w", err)
	}

	// rooms.json: 教室名 -> 类型名 的有序映射（用 slice of pair 保持顺序）
	var entries []struct {
		Name string `json:"name"`
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("project: failed to parse rooms.json: %w", err)
	}

	rooms := &Rooms{
		kindID: make(map[string]model.RoomKind),
		byKind: make(map[model.RoomKind][]model.Room),
	}

	for i, e := range entries {
		rooms.names = append(rooms.names, e.Name)
		kindID, ok := rooms.kindID[e.Kind]
		if !ok {
			kindID = model.RoomKind(len(rooms.kindName))
			rooms.kindID[e.Kind] = kindID
			rooms.kindName = append(rooms.kindName, e.Kind)
		}
		rooms.kinds = append(rooms.kinds, kindID)
		rooms.byKind[kindID] = append(rooms.byKind[kindID], model.Room(i))
	}

	adj, err := parseRoomsAdjacency(dir, rooms.names)
	if err != nil {
		return nil, err
	}
	rooms.adjacent = adj

	return rooms, nil
}

func parseRoomsAdjacency(dir string, names []string) ([][]int, error) {
	path := filepath.Join(dir, "rooms_adj.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("project: failed to open rooms_adj.csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("project: failed to parse rooms_adj.csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("project: rooms_adj.csv is empty")
	}

	header := records[0][1:]
	if len(header) != len(names) {
		return nil, fmt.Errorf("project: rooms_adj.csv header has %d columns, expected %d", len(header), len(names))
	}
	for i, h := range header {
		if h != names[i] {
			return nil, fmt.Errorf("project: rooms_adj.csv column order does not match rooms.json (%q != %q)", h, names[i])
		}
	}

	n := len(names)
	adj := make([][]int, n)
	for i := range adj {
		adj[i] = make([]int, n)
	}

	for i, row := range records[1:] {
		if row[0] != names[i] {
			return nil, fmt.Errorf("project: rooms_adj.csv row order does not match rooms.json (%q != %q)", row[0], names[i])
		}
		for j, cell := range row[1:] {
			var v int
			if _, err := fmt.Sscanf(cell, "%d", &v); err != nil {
				return nil, fmt.Errorf("project: rooms_adj.csv cell (%d,%d) is not an integer: %w", i, j, err)
			}
			adj[i][j] = v
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj[i][j] != adj[j][i] {
				return nil, fmt.Errorf("project: rooms_adj.csv is not symmetric: (%d,%d)=%d but (%d,%d)=%d", i, j, adj[i][j], j, i, adj[j][i])
			}
		}
	}

	return adj, nil
}
