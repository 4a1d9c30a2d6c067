package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paiban/paiban/pkg/model"
)

type rawPerson struct {
	Name   string   `json:"name"`
	Attend []string `json:"attend"`
}

// People 保存全部人员及其出席的事件集合
type People struct {
	names    []string
	attended []map[model.Event]struct{} // attended[person] = 该人员出席的事件集合
}

// Len 返回人员总数
func (p *People) Len() int { return len(p.names) }

// IterAll 返回全部人员句柄
func (p *People) IterAll() []model.Person {
	out := make([]model.Person, len(p.names))
	for i := range out {
		out[i] = model.Person(i)
	}
	return out
}

// Name 返回人员姓名
func (p *People) Name(person model.Person) string { return p.names[person] }

// EventsAttendedBy 返回某人员出席的全部事件
func (p *People) EventsAttendedBy(person model.Person) map[model.Event]struct{} {
	return p.attended[person]
}

func parsePeople(dir string, events *Events) (*People, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "people.json"))
	if err != nil {
		return nil, fmt.Errorf("project: failed to open people.json: %w", err)
	}
	var rawPeople []rawPerson
	if err := json.Unmarshal(raw, &rawPeople); err != nil {
		return nil, fmt.Errorf("project: failed to parse people.json: %w", err)
	}

	people := &People{}
	for _, rp := range rawPeople {
		attended := make(map[model.Event]struct{})
		for _, kindName := range rp.Attend {
			kind, ok := events.KindNameToID(kindName)
			if !ok {
				return nil, fmt.Errorf("project: person %q attends unknown event kind %q", rp.Name, kindName)
			}
			for _, ev := range events.EventsWithKind(kind) {
				attended[ev] = struct{}{}
			}
		}
		people.names = append(people.names, rp.Name)
		people.attended = append(people.attended, attended)
	}

	return people, nil
}
