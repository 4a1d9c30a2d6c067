package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paiban/paiban/pkg/project"
	"github.com/paiban/paiban/pkg/testfixture"
)

func TestBuildParsesFixture(t *testing.T) {
	dir := testfixture.Write(t)

	p, err := project.Build(dir)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if p.Config.NumSlots != 12 {
		t.Fatalf("expected 12 slots (3 days * 4 slots_per_day), got %d", p.Config.NumSlots)
	}
	if p.Rooms.Len() != 4 {
		t.Fatalf("expected 4 rooms, got %d", p.Rooms.Len())
	}
	if p.Events.Len() != 5 {
		t.Fatalf("expected 5 event instances (2+2+1), got %d", p.Events.Len())
	}
	if p.People.Len() != 3 {
		t.Fatalf("expected 3 people, got %d", p.People.Len())
	}

	labKind, ok := p.Rooms.KindNameToID("lab")
	if !ok {
		t.Fatalf("expected lab room kind to exist")
	}
	if len(p.Rooms.RoomsWithKind(labKind)) != 1 {
		t.Fatalf("expected exactly one lab room")
	}
}

func TestBuildRejectsUnknownRoomKind(t *testing.T) {
	dir := testfixture.Write(t)
	// overwrite events.json with a bad room_kind reference
	bad := `[{"name":"X","num_per_week":1,"room_kind":"nonexistent"}]`
	writeFile(t, dir, "events.json", bad)

	if _, err := project.Build(dir); err == nil {
		t.Fatalf("expected Build to reject unknown room_kind")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("failed to overwrite %s: %v", name, err)
	}
}
