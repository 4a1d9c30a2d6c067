package optimizer_test

import (
	"context"
	"testing"
	"time"

	"github.com/paiban/paiban/pkg/criteria"
	"github.com/paiban/paiban/pkg/optimizer"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/testfixture"
)

func TestOptimizeProducesValidPopulation(t *testing.T) {
	dir := testfixture.Write(t)
	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p.Config.MaxIter = 5
	p.Config.PopulationSize = 3

	reg, err := criteria.Parse(dir)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	run := optimizer.NewRun(p, reg)
	result, err := run.Optimize(context.Background())
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}

	if len(result.Steps) != p.Config.MaxIter {
		t.Fatalf("expected %d step records, got %d", p.Config.MaxIter, len(result.Steps))
	}
	if len(result.Population) == 0 {
		t.Fatalf("expected a non-empty final population")
	}
	for _, s := range result.Population {
		if err := s.IsValid(p); err != nil {
			t.Fatalf("final population member is invalid: %v", err)
		}
	}
}

func TestOptimizeRespectsCancellation(t *testing.T) {
	dir := testfixture.Write(t)
	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	p.Config.MaxIter = 10000
	p.Config.PopulationSize = 2

	reg, err := criteria.Parse(dir)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	run := optimizer.NewRun(p, reg)
	result, err := run.Optimize(ctx)
	if err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}
	if len(result.Steps) >= p.Config.MaxIter {
		t.Fatalf("expected cancellation to cut the run short of %d iterations, got %d", p.Config.MaxIter, len(result.Steps))
	}
}
