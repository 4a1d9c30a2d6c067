package pareto

import "testing"

func mk(scores ...float32) Graded {
	return Graded{Scores: scores}
}

func TestDominatesStrict(t *testing.T) {
	a := mk(2, 2)
	b := mk(1, 1)
	if !a.Dominates(b) {
		t.Fatalf("expected a to dominate b")
	}
	tie := mk(2, 1)
	if a.Dominates(tie) {
		t.Fatalf("a should not dominate a point sharing a coordinate")
	}
	if tie.Dominates(a) {
		t.Fatalf("tie should not dominate a either")
	}
}

func TestKungRecursiveKeepsNonDominated(t *testing.T) {
	data := []Graded{
		mk(1, 3),
		mk(3, 1),
		mk(2, 2),
		mk(0, 0), // dominated by every other point
	}
	sky := KungRecursive(data)
	if len(sky) != 3 {
		t.Fatalf("expected 3 surviving points, got %d: %+v", len(sky), sky)
	}
	for _, g := range sky {
		if g.Scores[0] == 0 && g.Scores[1] == 0 {
			t.Fatalf("dominated point (0,0) should not survive")
		}
	}
}

func TestKungRecursiveMOSAConvergesAtLowTemperature(t *testing.T) {
	data := []Graded{
		mk(5, 5),
		mk(1, 1), // heavily dominated
	}
	sky := KungRecursiveMOSA(data, 1e-6)
	if len(sky) != 1 {
		t.Fatalf("expected heavily dominated point to be rejected at low temperature, got %d survivors", len(sky))
	}
}

func TestRandomMOSADedupsConsecutiveDuplicates(t *testing.T) {
	data := []Graded{
		mk(1, 3),
		mk(1, 3),
		mk(3, 1),
	}
	out := RandomMOSA(data, 10, 1e-6)
	if len(out) != 2 {
		t.Fatalf("expected consecutive-duplicate (1,3) to collapse to one entry, got %d: %+v", len(out), out)
	}
}
