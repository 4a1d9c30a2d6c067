package neighborhoods

import (
	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
	"github.com/paiban/paiban/pkg/tsp"
)

// GreedyRoom 对每个 (人员, 教室类型) 组合、每一天尝试重排该人员当天
// 在该类型教室之间走动的顺序：整天的安排先被整体取出，人员出席的那些
// 时间槽的 (slot, room) 对喂给 TSP 微求解器求出一条更短的访问顺序，
// 再把每个原始槽的全部内容（出席者自己的事件，以及恰好同槽的其他
// 事件）按新顺序整体搬到新槽位，其余没被牵涉的槽原样放回。
// 只有当该人员当天跨越 3 个及以上不同教室时才值得尝试。
func GreedyRoom(s solution.Solution, p *project.Project, out chan<- solution.Solution) {
	for _, person := range p.People.IterAll() {
		for _, roomKind := range p.Rooms.IterKinds() {
			attended := attendedEventsOfKind(p, person, roomKind)
			if len(attended) == 0 {
				continue
			}

			for _, day := range p.Config.IterDays() {
				candidate, ok := rearrangeDay(s, p, day, attended)
				if ok {
					out <- candidate
				}
			}
		}
	}
}

func attendedEventsOfKind(p *project.Project, person model.Person, roomKind model.RoomKind) map[model.Event]struct{} {
	withKind := p.Events.EventsWithRoomKind(roomKind)
	kindSet := make(map[model.Event]struct{}, len(withKind))
	for _, e := range withKind {
		kindSet[e] = struct{}{}
	}

	out := make(map[model.Event]struct{})
	for e := range p.People.EventsAttendedBy(person) {
		if _, ok := kindSet[e]; ok {
			out[e] = struct{}{}
		}
	}
	return out
}

func rearrangeDay(s solution.Solution, p *project.Project, day int, attended map[model.Event]struct{}) (solution.Solution, bool) {
	xx := s.Clone()
	drained := xx.EventsOfDayDrain(day, p)

	var toBeRearranged []tsp.RoomVisit
	roomSet := make(map[model.Room]struct{})

	for _, slot := range p.Config.SlotsOfDay(day) {
		placements, ok := drained[slot]
		if !ok {
			continue
		}
		for _, pl := range placements {
			if _, isAttended := attended[pl.Event]; isAttended {
				toBeRearranged = append(toBeRearranged, tsp.RoomVisit{Slot: slot, Room: pl.Room})
				roomSet[pl.Room] = struct{}{}
				break
			}
		}
	}

	if len(roomSet) <= 2 {
		return solution.Solution{}, false
	}

	rearranged := tsp.Solve(toBeRearranged, p)

	consumed := make(map[int]bool, len(toBeRearranged))
	for i, orig := range toBeRearranged {
		srcSlot := rearranged[i].Slot
		xx.Slots[orig.Slot] = append(xx.Slots[orig.Slot], drained[srcSlot]...)
		consumed[srcSlot] = true
	}

	for slot, placements := range drained {
		if consumed[slot] {
			continue
		}
		xx.Slots[slot] = append(xx.Slots[slot], placements...)
	}

	return xx, true
}
