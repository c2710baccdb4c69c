package plugins

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stride-sh/stride/internal/plan"
)

func invoke(t *testing.T, pt *PlanTool, args map[string]any) PlanResponse {
	t.Helper()
	payload, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("marshal args: %v", err)
	}
	out, err := pt.InvokableRun(context.Background(), string(payload))
	if err != nil {
		t.Fatalf("InvokableRun: %v", err)
	}
	var resp PlanResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal response %q: %v", out, err)
	}
	return resp
}

func TestPlanTool_Initialize(t *testing.T) {
	pt := NewPlanTool(plan.NewStore())

	resp := invoke(t, pt, map[string]any{
		"action": "initialize",
		"steps": []map[string]string{
			{"title": "A", "description": "a"},
			{"title": "B", "description": "b"},
		},
	})
	if !resp.Success {
		t.Fatalf("initialize failed: %s", resp.Error)
	}
	if resp.Count != 2 || len(resp.Steps) != 2 {
		t.Fatalf("count = %d, steps = %d, want 2", resp.Count, len(resp.Steps))
	}
	if resp.Steps[0].ID != "1" || resp.Steps[1].ID != "2" {
		t.Errorf("ids = %q, %q, want 1, 2", resp.Steps[0].ID, resp.Steps[1].ID)
	}
	for _, st := range resp.Steps {
		if st.Status != plan.StatusPending {
			t.Errorf("step %s status = %q, want pending", st.ID, st.Status)
		}
	}
}

func TestPlanTool_InitializeMissingSteps(t *testing.T) {
	pt := NewPlanTool(plan.NewStore())

	resp := invoke(t, pt, map[string]any{"action": "initialize"})
	if resp.Success {
		t.Fatal("expected failure without steps")
	}
	if !strings.Contains(resp.Error, "steps") {
		t.Errorf("error %q should mention steps", resp.Error)
	}
}

func TestPlanTool_InitializeEmptySteps(t *testing.T) {
	pt := NewPlanTool(plan.NewStore())

	// Empty sequence is valid and yields an empty plan.
	resp := invoke(t, pt, map[string]any{"action": "initialize", "steps": []any{}})
	if !resp.Success {
		t.Fatalf("initialize with empty steps failed: %s", resp.Error)
	}
	if resp.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Count)
	}
}

func TestPlanTool_Add(t *testing.T) {
	store := plan.NewStore()
	pt := NewPlanTool(store)
	invoke(t, pt, map[string]any{
		"action": "initialize",
		"steps": []map[string]string{
			{"title": "A", "description": "a"},
			{"title": "B", "description": "b"},
		},
	})

	resp := invoke(t, pt, map[string]any{"action": "add", "title": "C", "description": "c"})
	if !resp.Success {
		t.Fatalf("add failed: %s", resp.Error)
	}
	if resp.StepID != "3" {
		t.Errorf("step_id = %q, want 3", resp.StepID)
	}
	if got := len(store.Steps()); got != 3 {
		t.Errorf("store len = %d, want 3", got)
	}

	for _, args := range []map[string]any{
		{"action": "add", "description": "no title"},
		{"action": "add", "title": "no description"},
	} {
		if resp := invoke(t, pt, args); resp.Success {
			t.Errorf("add %v should fail", args)
		}
	}
}

func TestPlanTool_Delete(t *testing.T) {
	pt := NewPlanTool(plan.NewStore())
	invoke(t, pt, map[string]any{
		"action": "initialize",
		"steps":  []map[string]string{{"title": "A", "description": "a"}},
	})

	if resp := invoke(t, pt, map[string]any{"action": "delete", "step_id": "1"}); !resp.Success {
		t.Fatalf("delete failed: %s", resp.Error)
	}
	if resp := invoke(t, pt, map[string]any{"action": "delete", "step_id": "1"}); resp.Success {
		t.Error("second delete should report not found")
	}
	if resp := invoke(t, pt, map[string]any{"action": "delete"}); resp.Success {
		t.Error("delete without step_id should fail")
	}
}

func TestPlanTool_UpdateStatus(t *testing.T) {
	store := plan.NewStore()
	pt := NewPlanTool(store)
	invoke(t, pt, map[string]any{
		"action": "initialize",
		"steps": []map[string]string{
			{"title": "A", "description": "a"},
			{"title": "B", "description": "b"},
		},
	})

	resp := invoke(t, pt, map[string]any{"action": "update_status", "step_id": "2", "status": "in_progress"})
	if !resp.Success {
		t.Fatalf("update_status failed: %s", resp.Error)
	}
	if store.Steps()[1].Status != plan.StatusInProgress {
		t.Error("status not applied to store")
	}

	cases := []map[string]any{
		{"action": "update_status", "status": "done"},                       // missing step_id
		{"action": "update_status", "step_id": "1"},                         // missing status
		{"action": "update_status", "step_id": "1", "status": "finished"},   // unknown status
		{"action": "update_status", "step_id": "99", "status": "done"},      // unknown id
	}
	for _, args := range cases {
		if resp := invoke(t, pt, args); resp.Success {
			t.Errorf("update_status %v should fail", args)
		}
	}
}

func TestPlanTool_GetSteps(t *testing.T) {
	pt := NewPlanTool(plan.NewStore())

	// Never fails, even on an empty plan.
	resp := invoke(t, pt, map[string]any{"action": "get_steps"})
	if !resp.Success {
		t.Fatalf("get_steps failed: %s", resp.Error)
	}
	if resp.Display != "" {
		t.Errorf("display for empty plan = %q, want empty", resp.Display)
	}

	invoke(t, pt, map[string]any{
		"action": "initialize",
		"steps": []map[string]string{
			{"title": "A", "description": "a"},
			{"title": "B", "description": "b"},
		},
	})
	invoke(t, pt, map[string]any{"action": "update_status", "step_id": "2", "status": "in_progress"})

	resp = invoke(t, pt, map[string]any{"action": "get_steps"})
	lines := strings.Split(resp.Display, "\n")
	if len(lines) != 2 {
		t.Fatalf("display lines = %d, want 2", len(lines))
	}
	if lines[0] != plan.StatusPending.Glyph()+" A" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != plan.StatusInProgress.Glyph()+" B" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestPlanTool_Clear(t *testing.T) {
	store := plan.NewStore()
	pt := NewPlanTool(store)
	invoke(t, pt, map[string]any{
		"action": "initialize",
		"steps":  []map[string]string{{"title": "A", "description": "a"}},
	})

	if resp := invoke(t, pt, map[string]any{"action": "clear"}); !resp.Success {
		t.Fatalf("clear failed: %s", resp.Error)
	}
	if got := len(store.Steps()); got != 0 {
		t.Errorf("store len after clear = %d, want 0", got)
	}
	if resp := invoke(t, pt, map[string]any{"action": "add", "title": "x", "description": "y"}); resp.StepID != "1" {
		t.Errorf("add after clear = %q, want 1", resp.StepID)
	}
}

func TestPlanTool_UnknownAction(t *testing.T) {
	store := plan.NewStore()
	pt := NewPlanTool(store)
	invoke(t, pt, map[string]any{
		"action": "initialize",
		"steps":  []map[string]string{{"title": "A", "description": "a"}},
	})

	resp := invoke(t, pt, map[string]any{"action": "frobnicate"})
	if resp.Success {
		t.Fatal("unknown action should fail")
	}
	if !strings.Contains(resp.Error, "unknown action") {
		t.Errorf("error = %q, want unknown action message", resp.Error)
	}
	if got := len(store.Steps()); got != 1 {
		t.Errorf("store mutated by unknown action: len = %d", got)
	}
}

func TestPlanTool_MalformedArguments(t *testing.T) {
	pt := NewPlanTool(plan.NewStore())

	out, err := pt.InvokableRun(context.Background(), `{"action": "initialize", "steps": "not-a-sequence"}`)
	if err != nil {
		t.Fatalf("InvokableRun returned error instead of structured failure: %v", err)
	}
	var resp PlanResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Success {
		t.Fatal("malformed payload should produce success=false")
	}
	if resp.Error == "" {
		t.Error("expected a human-readable error message")
	}
}

func TestPlanTool_Info(t *testing.T) {
	pt := NewPlanTool(plan.NewStore())

	info, err := pt.Info(context.Background())
	if err != nil {
		t.Fatalf("Info: %v", err)
	}
	if info.Name != "plan" {
		t.Errorf("name = %q, want plan", info.Name)
	}
	if info.ParamsOneOf == nil {
		t.Error("expected parameter schema")
	}
}
