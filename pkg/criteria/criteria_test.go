package criteria_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paiban/paiban/pkg/criteria"
	"github.com/paiban/paiban/pkg/initial"
	"github.com/paiban/paiban/pkg/neighborhoods"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
	"github.com/paiban/paiban/pkg/testfixture"
)

func TestParseDispatchesRoomDistanceAndSkipsUnknown(t *testing.T) {
	dir := testfixture.Write(t)
	withUnknown := `{"room_distance": [{"weight": 1.0}], "no_such_criterion": [{}]}`
	if err := os.WriteFile(filepath.Join(dir, "criteria.json"), []byte(withUnknown), 0o644); err != nil {
		t.Fatalf("failed to overwrite criteria.json: %v", err)
	}
	reg, err := criteria.Parse(dir)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if reg.Count() != 1 {
		t.Fatalf("expected 1 registered criterion (room_distance), got %d", reg.Count())
	}
}

func TestRoomDistanceRewardsConsolidation(t *testing.T) {
	dir := testfixture.Write(t)
	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	reg, err := criteria.Parse(dir)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	reg.Init(p)

	s, err := initial.FindInitialSolution(p)
	if err != nil {
		t.Fatalf("FindInitialSolution failed: %v", err)
	}
	s.FillCounter(p)
	baseline := reg.Evaluate(s, p)[0]

	ch := make(chan solution.Solution, 4096)
	neighborhoods.GreedyRoom(s, p, ch)
	close(ch)

	min := baseline
	for cand := range ch {
		score := reg.Evaluate(cand, p)[0]
		if score < min {
			min = score
		}
	}

	if min > baseline {
		t.Fatalf("expected at least one greedy_room candidate to not worsen room_distance: baseline=%v min=%v", baseline, min)
	}
}
