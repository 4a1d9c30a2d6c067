package neighborhoods_test

import (
	"testing"

	"github.com/paiban/paiban/pkg/initial"
	"github.com/paiban/paiban/pkg/neighborhoods"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
	"github.com/paiban/paiban/pkg/testfixture"
)

func seedSolution(t *testing.T, p *project.Project) solution.Solution {
	t.Helper()
	s, err := initial.FindInitialSolution(p)
	if err != nil {
		t.Fatalf("FindInitialSolution failed: %v", err)
	}
	s.FillCounter(p)
	return s
}

func collect(f neighborhoods.MoveFunc, s solution.Solution, p *project.Project) []solution.Solution {
	ch := make(chan solution.Solution, 4096)
	f(s, p, ch)
	close(ch)
	var out []solution.Solution
	for cand := range ch {
		out = append(out, cand)
	}
	return out
}

func TestAllNeighborhoodsProduceValidCandidates(t *testing.T) {
	dir := testfixture.Write(t)
	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s := seedSolution(t, p)

	families := map[string]neighborhoods.MoveFunc{
		"relocate":           neighborhoods.Relocate,
		"swap_room_only":     neighborhoods.SwapRoomOnly,
		"swap_time_only":     neighborhoods.SwapTimeOnly,
		"swap_time_and_room": neighborhoods.SwapTimeAndRoom,
		"greedy_room":        neighborhoods.GreedyRoom,
	}

	for name, f := range families {
		candidates := collect(f, s, p)
		for i, c := range candidates {
			if err := c.IsValid(p); err != nil {
				t.Fatalf("%s candidate %d is invalid: %v", name, i, err)
			}
		}
	}
}
