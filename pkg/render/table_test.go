package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/paiban/paiban/pkg/initial"
	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/render"
	"github.com/paiban/paiban/pkg/testfixture"
)

func TestTableRendersOneRowPerSlotOfDay(t *testing.T) {
	dir := testfixture.Write(t)
	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s, err := initial.FindInitialSolution(p)
	if err != nil {
		t.Fatalf("FindInitialSolution failed: %v", err)
	}

	var buf bytes.Buffer
	render.Table(&buf, s, p, -1)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != p.Config.SlotsPerDay+1 {
		t.Fatalf("expected %d lines (1 header + %d slots), got %d", p.Config.SlotsPerDay+1, p.Config.SlotsPerDay, len(lines))
	}
	if !strings.Contains(lines[0], "Monday") {
		t.Fatalf("expected header row to contain day names, got %q", lines[0])
	}
}

func TestTableOnlyDayFiltersToSingleColumn(t *testing.T) {
	dir := testfixture.Write(t)
	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	s, err := initial.FindInitialSolution(p)
	if err != nil {
		t.Fatalf("FindInitialSolution failed: %v", err)
	}

	var buf bytes.Buffer
	render.Table(&buf, s, p, 1)

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	if strings.Contains(header, "Monday") || !strings.Contains(header, "Tuesday") {
		t.Fatalf("expected header to show only Tuesday, got %q", header)
	}
}
