package plugins

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"

	"github.com/stride-sh/stride/internal/plan"
)

// PlanTool exposes the session plan to the model through a single
// action-tagged entry point. Every failure (missing field, unknown id,
// unknown action, bad status, even a panic) is converted to a
// structured success=false response so the calling agent always
// receives a well-formed result.
type PlanTool struct {
	store *plan.Store
}

// NewPlanTool creates a new plan tool bound to the given store.
func NewPlanTool(store *plan.Store) *PlanTool {
	return &PlanTool{store: store}
}

// PlanManifest returns the plugin manifest for the plan tool.
func PlanManifest() *PluginManifest {
	return &PluginManifest{
		Name:        "plan",
		Description: "Track the step-by-step plan for the current session",
		Provider:    "native",
		Dangerous:   false,
		Tools: []ToolSpec{
			{
				Name:        "plan",
				Description: "Create and maintain the step-by-step plan for the current task. Initialize the plan before writing code, mark steps in_progress when you start them and done when you finish them.",
				Parameters: map[string]ParamSpec{
					"action": {
						Type:        "string",
						Description: "Operation to perform on the plan",
						Required:    true,
						Enum:        []string{"initialize", "add", "delete", "update_status", "get_steps", "clear"},
					},
					"steps": {
						Type:        "array",
						Description: "Ordered list of plan steps (initialize only). Replaces the whole plan.",
						Items: &ParamSpec{
							Type: "object",
							Properties: map[string]ParamSpec{
								"title": {
									Type:        "string",
									Description: "Short label for this step",
									Required:    true,
								},
								"description": {
									Type:        "string",
									Description: "What this step should accomplish",
									Required:    true,
								},
							},
						},
					},
					"title": {
						Type:        "string",
						Description: "Short label for the new step (add only)",
					},
					"description": {
						Type:        "string",
						Description: "What the new step should accomplish (add only)",
					},
					"step_id": {
						Type:        "string",
						Description: "Id of the step to delete or update",
					},
					"status": {
						Type:        "string",
						Description: "New status for the step (update_status only)",
						Enum:        []string{"pending", "in_progress", "done"},
					},
				},
			},
		},
	}
}

// planInput is the action-tagged request shape. Steps is a pointer so
// a missing field can be told apart from an empty plan.
type planInput struct {
	Action      string            `json:"action"`
	Steps       *[]plan.StepInput `json:"steps"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	StepID      string            `json:"step_id"`
	Status      string            `json:"status"`
}

// PlanResponse is the structured result returned to the model. The
// TUI poller unmarshals the same shape.
type PlanResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Steps   []plan.Step `json:"steps,omitempty"`
	StepID  string      `json:"step_id,omitempty"`
	Count   int         `json:"count,omitempty"`
	Display string      `json:"display,omitempty"`
}

// Info returns the tool info for Eino registration.
func (t *PlanTool) Info(_ context.Context) (*schema.ToolInfo, error) {
	return toolSpecToToolInfo(&PlanManifest().Tools[0]), nil
}

// InvokableRun dispatches one plan action. The Go error return stays
// nil for domain failures; it is reserved for marshaling the response
// itself, which cannot fail for these types.
func (t *PlanTool) InvokableRun(_ context.Context, argumentsInJSON string, _ ...tool.Option) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = marshalResponse(failure(fmt.Sprintf("internal error: %v", r)))
		}
	}()

	var input planInput
	if jsonErr := json.Unmarshal([]byte(argumentsInJSON), &input); jsonErr != nil {
		return marshalResponse(failure("invalid arguments: " + jsonErr.Error()))
	}

	return marshalResponse(t.dispatch(input))
}

func (t *PlanTool) dispatch(input planInput) PlanResponse {
	switch input.Action {
	case "initialize":
		return t.initialize(input)
	case "add":
		return t.add(input)
	case "delete":
		return t.delete(input)
	case "update_status":
		return t.updateStatus(input)
	case "get_steps":
		return t.getSteps()
	case "clear":
		t.store.Clear()
		return PlanResponse{Success: true, Message: "Plan cleared"}
	default:
		return failure(fmt.Sprintf("unknown action %q", input.Action))
	}
}

func (t *PlanTool) initialize(input planInput) PlanResponse {
	if input.Steps == nil {
		return failure("steps is required for initialize")
	}
	t.store.Initialize(*input.Steps)
	steps := t.store.Steps()
	return PlanResponse{
		Success: true,
		Message: fmt.Sprintf("Plan initialized with %d steps", len(steps)),
		Count:   len(steps),
		Steps:   steps,
	}
}

func (t *PlanTool) add(input planInput) PlanResponse {
	if input.Title == "" {
		return failure("title is required for add")
	}
	if input.Description == "" {
		return failure("description is required for add")
	}
	id := t.store.Add(input.Title, input.Description)
	return PlanResponse{
		Success: true,
		Message: fmt.Sprintf("Added step %s: %s", id, input.Title),
		StepID:  id,
	}
}

func (t *PlanTool) delete(input planInput) PlanResponse {
	if input.StepID == "" {
		return failure("step_id is required for delete")
	}
	if !t.store.Delete(input.StepID) {
		return failure(fmt.Sprintf("step %s not found", input.StepID))
	}
	return PlanResponse{
		Success: true,
		Message: fmt.Sprintf("Deleted step %s", input.StepID),
		StepID:  input.StepID,
	}
}

func (t *PlanTool) updateStatus(input planInput) PlanResponse {
	if input.StepID == "" {
		return failure("step_id is required for update_status")
	}
	if input.Status == "" {
		return failure("status is required for update_status")
	}
	status, err := plan.ParseStatus(input.Status)
	if err != nil {
		return failure(err.Error())
	}
	if !t.store.UpdateStatus(input.StepID, status) {
		return failure(fmt.Sprintf("step %s not found", input.StepID))
	}
	return PlanResponse{
		Success: true,
		Message: fmt.Sprintf("Step %s is now %s", input.StepID, status),
		StepID:  input.StepID,
	}
}

func (t *PlanTool) getSteps() PlanResponse {
	steps := t.store.Steps()
	return PlanResponse{
		Success: true,
		Message: fmt.Sprintf("%d steps", len(steps)),
		Count:   len(steps),
		Steps:   steps,
		Display: plan.Render(steps),
	}
}

func failure(msg string) PlanResponse {
	return PlanResponse{Success: false, Error: msg}
}

func marshalResponse(resp PlanResponse) (string, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("plan: marshal response: %w", err)
	}
	return string(data), nil
}

var _ tool.InvokableTool = (*PlanTool)(nil)
