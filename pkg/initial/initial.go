// Package initial 构造满足全部硬约束的初始可行解
package initial

import (
	"fmt"
	"math/rand"

	"github.com/paiban/paiban/pkg/errors"
	"github.com/paiban/paiban/pkg/model"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
)

// InitialSolution 是初始解构造过程中的工作状态：一张部分填好的 TIMEMAP
// 加上一份待安排事件的驱逐队列（eject list）
type InitialSolution struct {
	Events    solution.Solution
	EjectList []model.Event
}

// New 打乱全部事件实例的顺序放入驱逐队列，TIMEMAP 初始为空
func New(allEvents []model.Event, numSlots int) InitialSolution {
	shuffled := make([]model.Event, len(allEvents))
	copy(shuffled, allEvents)
	rand.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	return InitialSolution{Events: solution.New(numSlots), EjectList: shuffled}
}

// Unassigned 返回尚未安排的事件数
func (x InitialSolution) Unassigned() int { return len(x.EjectList) }

func (x InitialSolution) clone() InitialSolution {
	ej := make([]model.Event, len(x.EjectList))
	copy(ej, x.EjectList)
	return InitialSolution{Events: x.Events.Clone(), EjectList: ej}
}

// FindLocalBest 从 x 的驱逐队列里取出一个事件，尝试把它放进每个
// (时间槽, 教室) 组合，必要时驱逐冲突的事件，返回未安排事件数最少的
// 结果。并列时保留遍历顺序中最后一个候选（而不是"先到先得"），这是
// 对原实现 `<=` 比较行为的忠实移植——见 DESIGN.md 的决策记录。
func FindLocalBest(p *project.Project, x InitialSolution) InitialSolution {
	if len(x.EjectList) == 0 {
		return x
	}

	base := x.clone()
	eIn := base.EjectList[len(base.EjectList)-1]
	base.EjectList = base.EjectList[:len(base.EjectList)-1]

	candidateRooms := p.Rooms.RoomsWithKind(p.Events.RoomKind(eIn))
	kind := p.Events.Kind(eIn)

	localBest := base.clone()
	localBest.EjectList = append(localBest.EjectList, eIn)

	for _, t := range p.Config.IterSlots() {
		day := p.Config.SlotToDay(t)
		for _, rIn := range candidateRooms {
			xx := base.clone()
			xx.evictConflictsAtSlot(p, t, eIn, rIn)
			xx.evictExcessSameDay(p, day, kind)
			xx.Events.Place(t, solution.Placement{Event: eIn, Room: rIn})

			if xx.Unassigned() <= localBest.Unassigned() {
				localBest = xx
			}
		}
	}

	return localBest
}

// evictConflictsAtSlot 驱逐时间槽 t 里与 (eIn, rIn) 冲突的既有安排：
// 占用同一教室的，或与 eIn 有共同出席者的
func (x *InitialSolution) evictConflictsAtSlot(p *project.Project, t int, eIn model.Event, rIn model.Room) {
	var kept []solution.Placement
	for _, pl := range x.Events.EventsInSlot(t) {
		if pl.Room == rIn || p.Events.HavePeopleConflict(eIn, pl.Event) {
			x.EjectList = append(x.EjectList, pl.Event)
			continue
		}
		kept = append(kept, pl)
	}
	x.Events.Slots[t] = kept
}

// evictExcessSameDay 扫描当天全部时间槽，驱逐超出 max_per_day 上限的
// 同类型事件；count 在一天内的全部槽之间累计，不按槽重置，为 eIn
// 自己即将占据的一个名额预留空间
func (x *InitialSolution) evictExcessSameDay(p *project.Project, day int, kind model.EventKind) {
	limit := p.Events.MaxPerDayForKind(kind)
	count := 0
	for _, slot := range p.Config.SlotsOfDay(day) {
		var kept []solution.Placement
		for _, pl := range x.Events.EventsInSlot(slot) {
			if p.Events.Kind(pl.Event) == kind {
				count++
				if count > limit-1 {
					x.EjectList = append(x.EjectList, pl.Event)
					continue
				}
			}
			kept = append(kept, pl)
		}
		x.Events.Slots[slot] = kept
	}
}

// FindInitialSolutionTabu 用禁忌搜索反复调用 FindLocalBest：只有当
// 候选状态不在禁忌表中时才接受它，否则保持当前状态不变
func FindInitialSolutionTabu(p *project.Project) (solution.Solution, bool) {
	x := New(p.Events.IterAll(), p.Config.NumSlots)
	tabu := newTabuQueue(p.Config.TabuSize)

	for i := 0; i < p.Config.MaxIterInitial; i++ {
		if len(x.EjectList) == 0 {
			return x.Events, true
		}
		localBest := FindLocalBest(p, x)
		h := localBest.Events.Hash()
		if !tabu.Contains(h) {
			x = localBest
			tabu.Add(h)
		}
	}

	if len(x.EjectList) == 0 {
		return x.Events, true
	}
	return solution.Solution{}, false
}

// FindInitialSolutionConstructive 和 Tabu 变体共享 FindLocalBest，
// 但没有禁忌表：每次都无条件接受局部最优候选
func FindInitialSolutionConstructive(p *project.Project) (solution.Solution, bool) {
	x := New(p.Events.IterAll(), p.Config.NumSlots)

	for i := 0; i < p.Config.MaxIterInitial; i++ {
		if len(x.EjectList) == 0 {
			return x.Events, true
		}
		x = FindLocalBest(p, x)
	}

	if len(x.EjectList) == 0 {
		return x.Events, true
	}
	return solution.Solution{}, false
}

// FindInitialSolution 按 Config.InitialMethod 分派到 tabu 或
// constructive 变体，失败时重试最多 InitialAttempts 次
func FindInitialSolution(p *project.Project) (solution.Solution, error) {
	var find func(*project.Project) (solution.Solution, bool)
	switch p.Config.InitialMethod {
	case "constructive":
		find = FindInitialSolutionConstructive
	default:
		find = FindInitialSolutionTabu
	}

	for attempt := 0; attempt < p.Config.InitialAttempts; attempt++ {
		if s, ok := find(p); ok {
			return s, nil
		}
	}

	return solution.Solution{}, errors.NoFeasibleSolution(fmt.Sprintf("exhausted %d attempts with method %q", p.Config.InitialAttempts, p.Config.InitialMethod))
}
