// Package solution 定义 TIMEMAP 解表示及其有效性检查
package solution

import (
	"hash/fnv"

	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
)

// Placement 是落在某一时间槽里的一对 (事件, 教室)
type Placement struct {
	Event model.Event
	Room  model.Room
}

// Solution 即 TIMEMAP：长度为 NumSlots 的槽序列，每个槽是一组 Placement；
// counter 是按 [天][事件类型] 缓存的当日计数，由 FillCounter 重建
type Solution struct {
	Slots   [][]Placement
	counter [][]int
}

// New 构造一个长度为 numSlots 的空 TIMEMAP
func New(numSlots int) Solution {
	return Solution{Slots: make([][]Placement, numSlots)}
}

// Clone 返回 Solution 的结构性拷贝：槽序列各自独立，但 Placement 值本身无需深拷贝
func (s Solution) Clone() Solution {
	out := Solution{Slots: make([][]Placement, len(s.Slots))}
	for i, slot := range s.Slots {
		if slot == nil {
			continue
		}
		cloned := make([]Placement, len(slot))
		copy(cloned, slot)
		out.Slots[i] = cloned
	}
	if s.counter != nil {
		out.counter = make([][]int, len(s.counter))
		for i, row := range s.counter {
			cloned := make([]int, len(row))
			copy(cloned, row)
			out.counter[i] = cloned
		}
	}
	return out
}

// EventsInSlot 返回某一时间槽里的全部 Placement
func (s Solution) EventsInSlot(slot int) []Placement {
	return s.Slots[slot]
}

// Place 把一个 Placement 加入指定时间槽
func (s Solution) Place(slot int, p Placement) {
	s.Slots[slot] = append(s.Slots[slot], p)
}

// RemoveEvent 从指定时间槽移除给定事件的 Placement（若存在），返回是否命中
func (s Solution) RemoveEvent(slot int, event model.Event) (Placement, bool) {
	for i, p := range s.Slots[slot] {
		if p.Event == event {
			removed := p
			s.Slots[slot] = append(s.Slots[slot][:i], s.Slots[slot][i+1:]...)
			return removed, true
		}
	}
	return Placement{}, false
}

// EventsOfDay 按时间槽顺序返回某一天全部的 (slot, Placement) 三元组
func (s Solution) EventsOfDay(day int, p *project.Project) []struct {
	Slot      int
	Placement Placement
} {
	var out []struct {
		Slot      int
		Placement Placement
	}
	for _, slot := range p.Config.SlotsOfDay(day) {
		for _, pl := range s.Slots[slot] {
			out = append(out, struct {
				Slot      int
				Placement Placement
			}{slot, pl})
		}
	}
	return out
}

// EventsOfDayDrain 与 EventsOfDay 相同，但同时清空被遍历的槽（搬迁邻域用于
// 整天重排时的常见操作：先把一整天的安排取走，再按新顺序放回）
func (s Solution) EventsOfDayDrain(day int, p *project.Project) map[int][]Placement {
	drained := make(map[int][]Placement)
	for _, slot := range p.Config.SlotsOfDay(day) {
		if len(s.Slots[slot]) == 0 {
			continue
		}
		drained[slot] = s.Slots[slot]
		s.Slots[slot] = nil
	}
	return drained
}

// FillCounter 依据当前 TIMEMAP 内容重建按 [天][事件类型] 的计数缓存
func (s *Solution) FillCounter(p *project.Project) {
	kindCount := p.Events.NumKinds()
	counter := make([][]int, p.Config.Days)
	for d := range counter {
		counter[d] = make([]int, kindCount)
	}
	for slotIdx, placements := range s.Slots {
		day := p.Config.SlotToDay(slotIdx)
		for _, pl := range placements {
			counter[day][p.Events.Kind(pl.Event)]++
		}
	}
	s.counter = counter
}

// SameKindEvents 返回某一天里某事件类型已出现的次数（需先调用 FillCounter）
func (s Solution) SameKindEvents(day int, kind model.EventKind) int {
	if s.counter == nil {
		return 0
	}
	return s.counter[day][kind]
}

// Hash 返回 TIMEMAP 内容的结构性哈希，用于禁忌表去重
func (s Solution) Hash() uint64 {
	h := fnv.New64a()
	var buf [24]byte
	for slotIdx, placements := range s.Slots {
		for _, pl := range placements {
			putInt(buf[0:8], slotIdx)
			putInt(buf[8:16], int(pl.Event))
			putInt(buf[16:24], int(pl.Room))
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}

func putInt(b []byte, v int) {
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
}
