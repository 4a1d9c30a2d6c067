package criteria

import (
	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// EventTimeDistance 惩罚（或奖励）某一事件类型的实例偏离一个目标时间槽
// 的程度：累加每次出现与 Time 之差的平方。解析器已经实现，但没有接入
// criteria.Parse 的分派表——这是对原实现状态的忠实移植，而不是遗漏。
type EventTimeDistance struct {
	Weight float32 `json:"weight"`
	Event  string  `json:"event"`
	Time   int     `json:"time"`
	Kind   string  `json:"kind"`

	eventsSet map[model.Event]struct{}
}

func (c *EventTimeDistance) Init(p *project.Project) {
	c.eventsSet = make(map[model.Event]struct{})
	kind, ok := p.Events.KindNameToID(c.Event)
	if !ok {
		return
	}
	for _, e := range p.Events.EventsWithKind(kind) {
		c.eventsSet[e] = struct{}{}
	}
}

func (c *EventTimeDistance) Evaluate(s solution.Solution, p *project.Project) float32 {
	var score float32

	for _, day := range p.Config.IterDays() {
		for _, rec := range s.EventsOfDay(day, p) {
			if _, ok := c.eventsSet[rec.Placement.Event]; !ok {
				continue
			}
			diff := float32(rec.Slot - c.Time)
			score += diff * diff
		}
	}

	return signedScore(score, c.Weight, c.Kind)
}

func parseEventTimeDistance(raw []byte) (Criterion, error) {
	c := &EventTimeDistance{}
	if err := unmarshalJSON(raw, c); err != nil {
		return nil, err
	}
	c.Weight = defaultWeight(c.Weight)
	return c, nil
}
