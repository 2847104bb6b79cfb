package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                         { return g.id }
func (g stubGame) Title() string                      { return "Stub " + g.id }
func (stubGame) Reset(core.RuntimeConfig)             {}
func (stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (stubGame) Render(*core.Screen)                  {}
func (stubGame) State() core.GameState                { return core.GameState{} }
func (stubGame) TickInterval() time.Duration          { return 50 * time.Millisecond }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("stub-a should exist after Register")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
			}
		}
	}
	if !found {
		t.Error("List should include stub-a")
	}
}

func TestTryRegisterDuplicate(t *testing.T) {
	f := func() Game { return stubGame{id: "stub-b"} }
	if err := TryRegister("stub-b", f); err != nil {
		t.Fatalf("first TryRegister failed: %v", err)
	}
	if err := TryRegister("stub-b", f); err == nil {
		t.Error("duplicate TryRegister should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func() Game { return stubGame{id: "stub-c"} }
	Register("stub-c", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-c", f)
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("Create with unknown ID should fail")
	}
}

func TestListSorted(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
