package project

import "fmt"

// Project 是一次排课运行所装载的全部静态数据：解析后不可变。
// 准则（criteria）的解析与求值刻意放在 pkg/criteria 而不是这里：
// 若 Project 持有一个 criteria 类型的字段，pkg/project 与 pkg/criteria
// 会相互 import 形成循环（criteria.Evaluate 需要 *Project，Project 需要
// criteria 的类型）。调用方（pkg/optimizer）分别持有 *Project 和
// *criteria.Registry 并在调用处组合二者。
type Project struct {
	Config Config
	Rooms  *Rooms
	Events *Events
	People *People
}

// Build 依次解析 config.json、rooms.json、rooms_adj.csv、events.json、
// people.json，构造出不可变的 Project。criteria.json 由调用方另行通过
// pkg/criteria.Parse 解析。
func Build(dir string) (*Project, error) {
	cfg, err := parseConfig(dir)
	if err != nil {
		return nil, err
	}

	rooms, err := parseRooms(dir)
	if err != nil {
		return nil, err
	}

	events, err := parseEvents(dir, rooms)
	if err != nil {
		return nil, err
	}

	people, err := parsePeople(dir, events)
	if err != nil {
		return nil, err
	}
	events.FillAttendees(people)

	return &Project{
		Config: cfg,
		Rooms:  rooms,
		Events: events,
		People: people,
	}, nil
}

// String 实现简要的调试输出，镜像原实现里按计数摘要打印 Project 的习惯
func (p *Project) String() string {
	return fmt.Sprintf(
		"Project{days=%d slots_per_day=%d rooms=%d event_kinds=%d events=%d people=%d}",
		p.Config.Days, p.Config.SlotsPerDay, p.Rooms.Len(), len(p.Events.kindName), p.Events.Len(), p.People.Len(),
	)
}
