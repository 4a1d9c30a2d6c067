package iolog_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/paiban/paiban/pkg/criteria"
	"github.com/paiban/paiban/pkg/initial"
	"github.com/paiban/paiban/pkg/iolog"
	"github.com/paiban/paiban/pkg/optimizer"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/solution"
	"github.com/paiban/paiban/pkg/testfixture"
)

func TestSinkWritesLogJSON(t *testing.T) {
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

	sink := iolog.NewSink()
	sink.RecordInitial(p, reg, 42, s)
	sink.RecordSteps([]optimizer.StepRecord{{Iteration: 0, Temperature: 100}})

	if err := sink.Finish(p, reg, []solution.Solution{s}); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}
	if err := sink.Write(dir); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, "log.json"))
	if err != nil {
		t.Fatalf("failed to read log.json: %v", err)
	}

	var doc struct {
		InitialMethod   string                   `json:"initial_method"`
		InitialTime     int64                    `json:"initial_time"`
		InitialScores   []float32                `json:"initial_scores"`
		Steps           []optimizer.StepRecord   `json:"steps"`
		Solutions       [][][]solution.Placement `json:"solutions"`
		SolutionsScores [][]float32              `json:"solutions_scores"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("log.json did not unmarshal into the expected schema: %v", err)
	}

	if doc.InitialMethod != p.Config.InitialMethod {
		t.Fatalf("expected initial_method %q, got %q", p.Config.InitialMethod, doc.InitialMethod)
	}
	if doc.InitialTime != 42 {
		t.Fatalf("expected initial_time 42, got %d", doc.InitialTime)
	}
	if len(doc.Steps) != 1 {
		t.Fatalf("expected 1 step record, got %d", len(doc.Steps))
	}
	if len(doc.Solutions) != 1 || len(doc.SolutionsScores) != 1 {
		t.Fatalf("expected exactly one solution and one score row, got %d/%d", len(doc.Solutions), len(doc.SolutionsScores))
	}
}
