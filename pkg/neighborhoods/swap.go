package neighborhoods

import (
	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// SwapRoomOnly 在每一对已安排的事件之间尝试只交换教室（时间不变）：
// 只有当两者要求相同的教室类型时才合法，并且交换后两边各自的槽里
// 不能再出现教室冲突（人员不受影响，因为出席者和时间都没变）
func SwapRoomOnly(s solution.Solution, p *project.Project, out chan<- solution.Solution) {
	placements := allPlacements(s)
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			t1, e1, r1 := a.Slot, a.Placement.Event, a.Placement.Room
			t2, e2, r2 := b.Slot, b.Placement.Event, b.Placement.Room

			if p.Events.RoomKind(e1) != p.Events.RoomKind(e2) {
				continue
			}

			if roomConflictExcluding(s, t1, r2, e1) || roomConflictExcluding(s, t2, r1, e2) {
				continue
			}

			xx := s.Clone()
			xx.RemoveEvent(t1, e1)
			xx.RemoveEvent(t2, e2)
			xx.Place(t1, solution.Placement{Event: e1, Room: r2})
			xx.Place(t2, solution.Placement{Event: e2, Room: r1})
			out <- xx
		}
	}
}

// SwapTimeOnly 在每一对已安排的事件之间交换时间槽，教室各自保留。
// 若两个事件分处不同的天且类型不同，先用原解的计数缓存预检 C4。
func SwapTimeOnly(s solution.Solution, p *project.Project, out chan<- solution.Solution) {
	placements := allPlacements(s)
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			t1, e1, r1 := a.Slot, a.Placement.Event, a.Placement.Room
			t2, e2, r2 := b.Slot, b.Placement.Event, b.Placement.Room

			day1, day2 := p.Config.SlotToDay(t1), p.Config.SlotToDay(t2)
			kind1, kind2 := p.Events.Kind(e1), p.Events.Kind(e2)

			if day1 != day2 && kind1 != kind2 {
				if s.SameKindEvents(day2, kind1) >= p.Events.MaxPerDayForKind(kind1) {
					continue
				}
				if s.SameKindEvents(day1, kind2) >= p.Events.MaxPerDayForKind(kind2) {
					continue
				}
			}

			if eventCanNotFitInExcluding(s, p, e1, t2, r1, e2) || eventCanNotFitInExcluding(s, p, e2, t1, r2, e1) {
				continue
			}

			xx := s.Clone()
			xx.RemoveEvent(t1, e1)
			xx.RemoveEvent(t2, e2)
			xx.Place(t2, solution.Placement{Event: e1, Room: r1})
			xx.Place(t1, solution.Placement{Event: e2, Room: r2})
			out <- xx
		}
	}
}

// SwapTimeAndRoom 同时交换时间与教室，因此要求两事件要求同一教室类型，
// 并在各自的目的地用"交换后的教室"重新做冲突检查
func SwapTimeAndRoom(s solution.Solution, p *project.Project, out chan<- solution.Solution) {
	placements := allPlacements(s)
	for i := 0; i < len(placements); i++ {
		for j := i + 1; j < len(placements); j++ {
			a, b := placements[i], placements[j]
			t1, e1, r1 := a.Slot, a.Placement.Event, a.Placement.Room
			t2, e2, r2 := b.Slot, b.Placement.Event, b.Placement.Room

			if p.Events.RoomKind(e1) != p.Events.RoomKind(e2) {
				continue
			}

			day1, day2 := p.Config.SlotToDay(t1), p.Config.SlotToDay(t2)
			kind1, kind2 := p.Events.Kind(e1), p.Events.Kind(e2)
			if day1 != day2 && kind1 != kind2 {
				if s.SameKindEvents(day2, kind1) >= p.Events.MaxPerDayForKind(kind1) {
					continue
				}
				if s.SameKindEvents(day1, kind2) >= p.Events.MaxPerDayForKind(kind2) {
					continue
				}
			}

			if eventCanNotFitInExcluding(s, p, e1, t2, r2, e2) || eventCanNotFitInExcluding(s, p, e2, t1, r1, e1) {
				continue
			}

			xx := s.Clone()
			xx.RemoveEvent(t1, e1)
			xx.RemoveEvent(t2, e2)
			xx.Place(t2, solution.Placement{Event: e1, Room: r2})
			xx.Place(t1, solution.Placement{Event: e2, Room: r1})
			out <- xx
		}
	}
}

// roomConflictExcluding 判断把 room 放进 slot 是否会与该槽里除 exclude
// 以外的任何既有占用产生教室冲突
func roomConflictExcluding(s solution.Solution, slot int, room model.Room, exclude model.Event) bool {
	for _, pl := range s.EventsInSlot(slot) {
		if pl.Event == exclude {
			continue
		}
		if pl.Room == room {
			return true
		}
	}
	return false
}
