package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paiban/paiban/pkg/model"
)

// defaultMaxPerDay 是 events.json 条目省略 max_per_day 时采用的默认值
const defaultMaxPerDay = 2

type rawEvent struct {
	Name       string `json:"name"`
	NumPerWeek int    `json:"num_per_week"`
	MaxPerDay  *int   `json:"max_per_day,omitempty"`
	RoomKind   string `json:"room_kind"`
}

// Events 保存展开后的全部课程事件实例及其所属类型的元数据
type Events struct {
	kindName  []string
	kindID    map[string]model.EventKind
	maxPerDay []int
	roomKind  []model.RoomKind

	eventKind []model.EventKind // eventKind[event] = 该事件实例所属的类型
	attendees [][]model.Person  // attendees[event] = 出席该事件的人员（FillAttendees 后填充）

	byKind     map[model.EventKind][]model.Event
	byRoomKind map[model.RoomKind][]model.Event
}

// Len 返回事件实例总数
func (e *Events) Len() int { return len(e.eventKind) }

// NumKinds 返回事件类型总数
func (e *Events) NumKinds() int { return len(e.kindName) }

// IterAll 返回全部事件实例
func (e *Events) IterAll() []model.Event {
	out := make([]model.Event, len(e.eventKind))
	for i := range out {
		out[i] = model.Event(i)
	}
	return out
}

// KindNameToID 按名称查找事件类型句柄
func (e *Events) KindNameToID(name string) (model.EventKind, bool) {
	k, ok := e.kindID[name]
	return k, ok
}

// KindName 返回事件实例所属类型的名称
func (e *Events) KindName(event model.Event) string {
	return e.kindName[e.eventKind[event]]
}

// Kind 返回事件实例所属的类型句柄
func (e *Events) Kind(event model.Event) model.EventKind {
	return e.eventKind[event]
}

// MaxPerDay 返回事件实例所属类型每天的出现上限
func (e *Events) MaxPerDay(event model.Event) int {
	return e.maxPerDay[e.eventKind[event]]
}

// MaxPerDayForKind 按类型句柄查询每天上限
func (e *Events) MaxPerDayForKind(kind model.EventKind) int {
	return e.maxPerDay[kind]
}

// RoomKind 返回事件实例要求的教室类型
func (e *Events) RoomKind(event model.Event) model.RoomKind {
	return e.roomKind[e.eventKind[event]]
}

// EventsWithKind 返回属于给定类型的全部事件实例
func (e *Events) EventsWithKind(kind model.EventKind) []model.Event {
	return e.byKind[kind]
}

// EventsWithRoomKind 返回要求给定教室类型的全部事件实例
func (e *Events) EventsWithRoomKind(kind model.RoomKind) []model.Event {
	return e.byRoomKind[kind]
}

// Attendees 返回出席某事件实例的全部人员
func (e *Events) Attendees(event model.Event) []model.Person {
	return e.attendees[event]
}

// HavePeopleConflict 判断两个事件实例是否有共同出席者
func (e *Events) HavePeopleConflict(a, b model.Event) bool {
	seen := make(map[model.Person]struct{}, len(e.attendees[a]))
	for _, p := range e.attendees[a] {
		seen[p] = struct{}{}
	}
	for _, p := range e.attendees[b] {
		if _, ok := seen[p]; ok {
			return true
		}
	}
	return false
}

// FillAttendees 依据人员出席清单反向填充每个事件实例的出席者列表；
// 必须在 People 解析完成之后调用一次
func (e *Events) FillAttendees(people *People) {
	e.attendees = make([][]model.Person, len(e.eventKind))
	for _, person := range people.IterAll() {
		for ev := range people.EventsAttendedBy(person) {
			e.attendees[ev] = append(e.attendees[ev], person)
		}
	}
}

func parseEvents(dir string, rooms *Rooms) (*Events, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "events.json"))
	if err != nil {
		return nil, fmt.Errorf("project: failed to open events.json: %w", err)
	}
	var rawEvents []rawEvent
	if err := json.Unmarshal(raw, &rawEvents); err != nil {
		return nil, fmt.Errorf("project: failed to parse events.json: %w", err)
	}

	events := &Events{
		kindID:     make(map[string]model.EventKind),
		byKind:     make(map[model.EventKind][]model.Event),
		byRoomKind: make(map[model.RoomKind][]model.Event),
	}

	for _, re := range rawEvents {
		if _, dup := events.kindID[re.Name]; dup {
			return nil, fmt.Errorf("project: duplicate event name %q in events.json", re.Name)
		}
		roomKind, ok := rooms.KindNameToID(re.RoomKind)
		if !ok {
			return nil, fmt.Errorf("project: event %q references unknown room_kind %q", re.Name, re.RoomKind)
		}
		maxPerDay := defaultMaxPerDay
		if re.MaxPerDay != nil {
			maxPerDay = *re.MaxPerDay
		}

		kind := model.EventKind(len(events.kindName))
		events.kindID[re.Name] = kind
		events.kindName = append(events.kindName, re.Name)
		events.maxPerDay = append(events.maxPerDay, maxPerDay)
		events.roomKind = append(events.roomKind, roomKind)

		for i := 0; i < re.NumPerWeek; i++ {
			ev := model.Event(len(events.eventKind))
			events.eventKind = append(events.eventKind, kind)
			events.byKind[kind] = append(events.byKind[kind], ev)
			events.byRoomKind[roomKind] = append(events.byRoomKind[roomKind], ev)
		}
	}

	return events, nil
}
