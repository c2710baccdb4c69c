package plan

import (
	"strconv"
	"testing"
)

func TestAdd_IDsStrictlyIncreasing(t *testing.T) {
	s := NewStore()

	seen := map[string]bool{}
	prev := 0
	for i := 0; i < 5; i++ {
		id := s.Add("step", "")
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true

		n, err := strconv.Atoi(id)
		if err != nil {
			t.Fatalf("non-numeric id %q", id)
		}
		if n <= prev {
			t.Errorf("id %d not strictly increasing after %d", n, prev)
		}
		prev = n
	}
}

func TestInitialize_ReplacesAndRenumbers(t *testing.T) {
	s := NewStore()
	s.Add("old", "gone after initialize")

	s.Initialize([]StepInput{
		{Title: "A", Description: "a"},
		{Title: "B", Description: "b"},
	})

	steps := s.Steps()
	if len(steps) != 2 {
		t.Fatalf("len = %d, want 2", len(steps))
	}
	for i, want := range []string{"1", "2"} {
		if steps[i].ID != want {
			t.Errorf("steps[%d].ID = %q, want %q", i, steps[i].ID, want)
		}
		if steps[i].Status != StatusPending {
			t.Errorf("steps[%d].Status = %q, want pending", i, steps[i].Status)
		}
	}
	if steps[0].Title != "A" || steps[1].Title != "B" {
		t.Errorf("order not preserved: %q, %q", steps[0].Title, steps[1].Title)
	}

	// Counter continues from N+1.
	if id := s.Add("C", "c"); id != "3" {
		t.Errorf("Add after Initialize = %q, want 3", id)
	}
	if got := len(s.Steps()); got != 3 {
		t.Errorf("len after Add = %d, want 3", got)
	}
}

func TestInitialize_Empty(t *testing.T) {
	s := NewStore()
	s.Add("x", "")

	s.Initialize(nil)
	if got := len(s.Steps()); got != 0 {
		t.Fatalf("len = %d, want 0", got)
	}
	if id := s.Add("first", ""); id != "1" {
		t.Errorf("Add = %q, want 1", id)
	}
}

func TestDelete(t *testing.T) {
	s := NewStore()
	s.Initialize([]StepInput{{Title: "A"}, {Title: "B"}, {Title: "C"}})

	if !s.Delete("2") {
		t.Fatal("Delete(2) = false, want true")
	}
	if s.Delete("2") {
		t.Error("second Delete(2) = true, want false")
	}

	steps := s.Steps()
	if len(steps) != 2 {
		t.Fatalf("len = %d, want 2", len(steps))
	}
	// Survivors keep their ids.
	if steps[0].ID != "1" || steps[1].ID != "3" {
		t.Errorf("ids after delete = %q, %q, want 1, 3", steps[0].ID, steps[1].ID)
	}
	// Counter untouched by delete.
	if id := s.Add("D", ""); id != "4" {
		t.Errorf("Add after delete = %q, want 4", id)
	}
}

func TestUpdateStatus(t *testing.T) {
	s := NewStore()
	s.Initialize([]StepInput{{Title: "A"}, {Title: "B"}})

	if !s.UpdateStatus("2", StatusInProgress) {
		t.Fatal("UpdateStatus(2) = false, want true")
	}
	steps := s.Steps()
	if steps[1].Status != StatusInProgress {
		t.Errorf("steps[1].Status = %q, want in_progress", steps[1].Status)
	}
	if steps[0].Status != StatusPending {
		t.Errorf("steps[0].Status = %q, want pending", steps[0].Status)
	}

	before := s.Steps()
	if s.UpdateStatus("99", StatusDone) {
		t.Error("UpdateStatus(99) = true, want false")
	}
	after := s.Steps()
	if len(before) != len(after) {
		t.Fatal("store mutated by not-found update")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("step %d changed by not-found update", i)
		}
	}
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Initialize([]StepInput{{Title: "A"}, {Title: "B"}})
	s.Clear()

	if got := len(s.Steps()); got != 0 {
		t.Fatalf("len after Clear = %d, want 0", got)
	}
	if id := s.Add("fresh", ""); id != "1" {
		t.Errorf("Add after Clear = %q, want 1", id)
	}
}

func TestSteps_DefensiveCopy(t *testing.T) {
	s := NewStore()
	s.Add("A", "a")

	snapshot := s.Steps()
	snapshot[0].Title = "mutated"
	snapshot[0].Status = StatusDone

	fresh := s.Steps()
	if fresh[0].Title != "A" || fresh[0].Status != StatusPending {
		t.Errorf("caller mutation leaked into store: %+v", fresh[0])
	}
}
