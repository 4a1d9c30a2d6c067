package neighborhoods

import (
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// Relocate 对每个已安排的 (t, e, r)，尝试把 e 挪到同一天或另一天的任意
// 别的时间槽（教室不变）。跨天迁移前先用当前解的计数缓存预检 C4，
// 省去整天都注定超额时的教室/人员冲突检查。
func Relocate(s solution.Solution, p *project.Project, out chan<- solution.Solution) {
	dayIn := func(t int) int { return p.Config.SlotToDay(t) }

	for _, pos := range allPlacements(s) {
		t, e, r := pos.Slot, pos.Placement.Event, pos.Placement.Room
		kind := p.Events.Kind(e)
		originDay := dayIn(t)

		for _, day := range p.Config.IterDays() {
			if day != originDay && s.SameKindEvents(day, kind) >= p.Events.MaxPerDayForKind(kind) {
				continue
			}

			for _, t2 := range p.Config.SlotsOfDay(day) {
				if t2 == t {
					continue
				}
				if eventCanNotFitInExcluding(s, p, e, t2, r, e) {
					continue
				}

				xx := s.Clone()
				xx.RemoveEvent(t, e)
				xx.Place(t2, solution.Placement{Event: e, Room: r})
				out <- xx
			}
		}
	}
}
