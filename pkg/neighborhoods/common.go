// Package neighborhoods 实现五种邻域移动族：relocate、两种单维度 swap、
// 双维度 swap、以及内含 TSP 微求解器的 greedy-room
package neighborhoods

import (
	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// MoveFunc 是全部邻域族共享的签名：在一份解的克隆上尝试各种移动，
// 把每个仍然合法的候选通过 channel 发送出去
type MoveFunc func(s solution.Solution, p *project.Project, out chan<- solution.Solution)

// eventCanNotFitIn 判断把 event 放入 slot 的 room 是否会造成教室冲突或
// 人员冲突（不检查每日上限，调用方按移动类型自行处理 C4）
func eventCanNotFitIn(s solution.Solution, p *project.Project, event model.Event, slot int, room model.Room) bool {
	for _, pl := range s.EventsInSlot(slot) {
		if pl.Event == event {
			continue
		}
		if pl.Room == room {
			return true
		}
		if p.Events.HavePeopleConflict(event, pl.Event) {
			return true
		}
	}
	return false
}

// eventCanNotFitInExcluding 与 eventCanNotFitIn 相同，但额外忽略 exclude
// 指定的事件——用于成对交换时把"正在离开这个槽"的那个事件排除在冲突检查之外
func eventCanNotFitInExcluding(s solution.Solution, p *project.Project, event model.Event, slot int, room model.Room, exclude model.Event) bool {
	for _, pl := range s.EventsInSlot(slot) {
		if pl.Event == event || pl.Event == exclude {
			continue
		}
		if pl.Room == room {
			return true
		}
		if p.Events.HavePeopleConflict(event, pl.Event) {
			return true
		}
	}
	return false
}

// allPlacements 按时间槽升序收集当前解里的全部 (slot, Placement)
func allPlacements(s solution.Solution) []struct {
	Slot      int
	Placement solution.Placement
} {
	var out []struct {
		Slot      int
		Placement solution.Placement
	}
	for slot, placements := range s.Slots {
		for _, pl := range placements {
			out = append(out, struct {
				Slot      int
				Placement solution.Placement
			}{slot, pl})
		}
	}
	return out
}
