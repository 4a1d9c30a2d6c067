package initial_test

import (
	"testing"

	"github.com/paiban/paiban/pkg/initial"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/testfixture"
)

func TestFindInitialSolutionTabuIsValid(t *testing.T) {
	dir := testfixture.Write(t)
	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for i := 0; i < 5; i++ {
		s, err := initial.FindInitialSolution(p)
		if err != nil {
			t.Fatalf("attempt %d: FindInitialSolution failed: %v", i, err)
		}
		if err := s.IsValid(p); err != nil {
			t.Fatalf("attempt %d: produced an invalid solution: %v", i, err)
		}
	}
}

func TestFindInitialSolutionConstructiveIsValid(t *testing.T) {
	dir := testfixture.Write(t)
	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p.Config.InitialMethod = "constructive"

	for i := 0; i < 5; i++ {
		s, err := initial.FindInitialSolution(p)
		if err != nil {
			t.Fatalf("attempt %d: FindInitialSolution failed: %v", i, err)
		}
		if err := s.IsValid(p); err != nil {
			t.Fatalf("attempt %d: produced an invalid solution: %v", i, err)
		}
	}
}
