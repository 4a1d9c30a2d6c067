package criteria

import (
	"encoding/json"
	"fmt"

	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// EventsDistance 惩罚（或奖励，取决于 Kind）同一天内、属于给定事件类型
// 集合的不同事件实例之间的时间间隔的平方和
type EventsDistance struct {
	Weight float32  `json:"weight"`
	Events []string `json:"events"`
	Kind   string   `json:"kind"`

	eventsSet map[model.Event]struct{}
}

func (c *EventsDistance) Init(p *project.Project) {
	c.eventsSet = make(map[model.Event]struct{})
	for _, name := range c.Events {
		kind, ok := p.Events.KindNameToID(name)
		if !ok {
			continue
		}
		for _, e := range p.Events.EventsWithKind(kind) {
			c.eventsSet[e] = struct{}{}
		}
	}
}

func (c *EventsDistance) Evaluate(s solution.Solution, p *project.Project) float32 {
	var score float32

	for _, day := range p.Config.IterDays() {
		var lastSlot int
		var lastEvent model.Event
		haveLast := false

		for _, rec := range s.EventsOfDay(day, p) {
			e := rec.Placement.Event
			if _, ok := c.eventsSet[e]; !ok {
				continue
			}
			if haveLast && lastEvent != e {
				diff := float32(rec.Slot - lastSlot)
				score += diff * diff
			}
			lastSlot = rec.Slot
			lastEvent = e
			haveLast = true
		}
	}

	return signedScore(score, c.Weight, c.Kind)
}

// EventsDistanceSameType 是 EventsDistance 在 dedup 后只剩一个事件类型
// 名时采用的特化版本：由于同一类型的各个实例之间本来就各不相同，
// 不需要再判断"事件实例是否变化"
type EventsDistanceSameType struct {
	Weight float32 `json:"weight"`
	Event  string  `json:"event"`
	Kind   string  `json:"kind"`

	eventsSet map[model.Event]struct{}
}

func (c *EventsDistanceSameType) Init(p *project.Project) {
	c.eventsSet = make(map[model.Event]struct{})
	kind, ok := p.Events.KindNameToID(c.Event)
	if !ok {
		return
	}
	for _, e := range p.Events.EventsWithKind(kind) {
		c.eventsSet[e] = struct{}{}
	}
}

func (c *EventsDistanceSameType) Evaluate(s solution.Solution, p *project.Project) float32 {
	var score float32

	for _, day := range p.Config.IterDays() {
		var lastSlot int
		haveLast := false

		for _, rec := range s.EventsOfDay(day, p) {
			if _, ok := c.eventsSet[rec.Placement.Event]; !ok {
				continue
			}
			if haveLast {
				diff := float32(rec.Slot - lastSlot)
				score += diff * diff
			}
			lastSlot = rec.Slot
			haveLast = true
		}
	}

	return signedScore(score, c.Weight, c.Kind)
}

// dedupConsecutive 只去除 Events 列表里相邻的重复名字，镜像 Rust
// Vec::dedup 的语义；不先排序，因为声明顺序决定了哪些配置会触发
// same-type 特化——见 DESIGN.md 的决策记录
func dedupConsecutive(events []string) []string {
	if len(events) == 0 {
		return events
	}
	out := make([]string, 0, len(events))
	out = append(out, events[0])
	for i := 1; i < len(events); i++ {
		if events[i] != out[len(out)-1] {
			out = append(out, events[i])
		}
	}
	return out
}

func parseEventsDistance(raw []byte) (Criterion, error) {
	var fields struct {
		Weight float32  `json:"weight"`
		Events []string `json:"events"`
		Kind   string   `json:"kind"`
	}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("events_distance: %w", err)
	}

	deduped := dedupConsecutive(fields.Events)
	if len(deduped) == 0 {
		return nil, fmt.Errorf("events_distance: events list is empty after dedup")
	}
	weight := defaultWeight(fields.Weight)

	if len(deduped) == 1 {
		return &EventsDistanceSameType{Weight: weight, Event: deduped[0], Kind: fields.Kind}, nil
	}
	return &EventsDistance{Weight: weight, Events: deduped, Kind: fields.Kind}, nil
}
