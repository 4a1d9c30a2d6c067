package criteria

import (
	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// RoomDistance 惩罚每个人在一天内于多间教室之间的连续移动：对每个
// (人员, 教室类型) 组合，沿一天的时间顺序累加该人出席的连续事件之间
// 的教室邻接距离
type RoomDistance struct {
	Weight float32 `json:"weight"`
}

func (c *RoomDistance) Init(p *project.Project) {}

func (c *RoomDistance) Evaluate(s solution.Solution, p *project.Project) float32 {
	var score int

	for _, person := range p.People.IterAll() {
		for _, roomKind := range p.Rooms.IterKinds() {
			attended := attendedWithRoomKind(p, person, roomKind)
			if len(attended) == 0 {
				continue
			}

			for _, day := range p.Config.IterDays() {
				var lastRoom model.Room
				haveLast := false
				for _, rec := range s.EventsOfDay(day, p) {
					if _, ok := attended[rec.Placement.Event]; !ok {
						continue
					}
					if haveLast {
						score += p.Rooms.Distance(lastRoom, rec.Placement.Room)
					}
					lastRoom = rec.Placement.Room
					haveLast = true
				}
			}
		}
	}

	return -float32(score) * c.Weight
}

func attendedWithRoomKind(p *project.Project, person model.Person, roomKind model.RoomKind) map[model.Event]struct{} {
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

func parseRoomDistance(raw []byte) (Criterion, error) {
	c := &RoomDistance{}
	if err := unmarshalJSON(raw, c); err != nil {
		return nil, err
	}
	c.Weight = defaultWeight(c.Weight)
	return c, nil
}
