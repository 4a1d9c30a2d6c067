package solution

import (
	"fmt"

	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
)

// IsValid 检查 TIMEMAP 是否满足全部硬约束 C1-C5，返回描述性错误
func (s Solution) IsValid(p *project.Project) error {
	if err := s.checkNoConflictsAndKind(p); err != nil {
		return err
	}
	if err := s.checkExcessPerDay(p); err != nil {
		return err
	}
	return s.checkComplete(p)
}

// checkNoConflictsAndKind 覆盖 C1（教室唯一）、C2（教室类型匹配）、C3（人员唯一）
func (s Solution) checkNoConflictsAndKind(p *project.Project) error {
	for slotIdx, placements := range s.Slots {
		seenRooms := make(map[model.Room]model.Event)
		seenPeople := make(map[model.Person]model.Event)
		for _, pl := range placements {
			if other, dup := seenRooms[pl.Room]; dup {
				return fmt.Errorf("solution: room conflict at slot %d: events %d and %d both use room %d", slotIdx, other, pl.Event, pl.Room)
			}
			seenRooms[pl.Room] = pl.Event

			if p.Rooms.RoomKind(pl.Room) != p.Events.RoomKind(pl.Event) {
				return fmt.Errorf("solution: room kind mismatch at slot %d: event %d requires room kind %d, got room %d of kind %d",
					slotIdx, pl.Event, p.Events.RoomKind(pl.Event), pl.Room, p.Rooms.RoomKind(pl.Room))
			}

			for _, person := range p.Events.Attendees(pl.Event) {
				if other, dup := seenPeople[person]; dup {
					return fmt.Errorf("solution: person conflict at slot %d: person %d attends both events %d and %d", slotIdx, person, other, pl.Event)
				}
				seenPeople[person] = pl.Event
			}
		}
	}
	return nil
}

// checkExcessPerDay 覆盖 C4（同类型事件每天的出现次数不得超过上限）
func (s Solution) checkExcessPerDay(p *project.Project) error {
	counter := make([][]int, p.Config.Days)
	for d := range counter {
		counter[d] = make([]int, p.Events.NumKinds())
	}
	for slotIdx, placements := range s.Slots {
		day := p.Config.SlotToDay(slotIdx)
		for _, pl := range placements {
			counter[day][p.Events.Kind(pl.Event)]++
		}
	}
	for day, row := range counter {
		for kind, count := range row {
			if limit := p.Events.MaxPerDayForKind(model.EventKind(kind)); count > limit {
				return fmt.Errorf("solution: day %d has %d occurrences of event kind %d, exceeding max_per_day=%d", day, count, kind, limit)
			}
		}
	}
	return nil
}

// checkComplete 覆盖 C5（每个事件实例都必须被安排恰好一次）
func (s Solution) checkComplete(p *project.Project) error {
	placed := make(map[model.Event]struct{}, p.Events.Len())
	for _, placements := range s.Slots {
		for _, pl := range placements {
			if _, dup := placed[pl.Event]; dup {
				return fmt.Errorf("solution: event %d is placed more than once", pl.Event)
			}
			placed[pl.Event] = struct{}{}
		}
	}
	if len(placed) != p.Events.Len() {
		return fmt.Errorf("solution: incomplete schedule: %d of %d events placed", len(placed), p.Events.Len())
	}
	return nil
}
