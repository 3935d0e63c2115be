package tools_test

import (
	"context"
	"testing"
	"time"

	"obsidianlist/internal/agent/tools"
	"obsidianlist/internal/model"
	"obsidianlist/internal/task"
)

// mockUseCase is a hand-rolled task.UseCase capturing inputs and returning
// canned outputs.
type mockUseCase struct {
	createInput task.CreateTaskInput
	createOut   task.TaskOutput
	createErr   error

	listInput task.ListTasksInput
	listOut   task.ListTasksOutput
	listErr   error

	updateInput task.UpdateTaskInput
	updateOut   task.TaskOutput
	updateErr   error

	toggleID  string
	toggleOut task.ToggleOutput
	toggleErr error

	deleteID  string
	deleteOut task.DeleteOutput
	deleteErr error

	lastScope model.Scope
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (task.TaskOutput, error) {
	m.lastScope = sc
	m.createInput = input
	return m.createOut, m.createErr
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, input task.ListTasksInput) (task.ListTasksOutput, error) {
	m.lastScope = sc
	m.listInput = input
	return m.listOut, m.listErr
}

func (m *mockUseCase) Detail(ctx context.Context, sc model.Scope, taskID string) (task.TaskOutput, error) {
	m.lastScope = sc
	return task.TaskOutput{}, nil
}

func (m *mockUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (task.TaskOutput, error) {
	m.lastScope = sc
	m.updateInput = input
	return m.updateOut, m.updateErr
}

func (m *mockUseCase) ToggleComplete(ctx context.Context, sc model.Scope, taskID string) (task.ToggleOutput, error) {
	m.lastScope = sc
	m.toggleID = taskID
	return m.toggleOut, m.toggleErr
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, taskID string) (task.DeleteOutput, error) {
	m.lastScope = sc
	m.deleteID = taskID
	return m.deleteOut, m.deleteErr
}

var caller = model.Scope{UserID: "user-1", Email: "alice@example.com", Name: "Alice"}

func sampleTask() model.Task {
	return model.Task{
		ID:        "task-1",
		UserID:    "user-1",
		Title:     "Call mom",
		Priority:  model.PriorityMedium,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestAddTask_Success(t *testing.T) {
	uc := &mockUseCase{
		createOut: task.TaskOutput{
			Task: sampleTask(),
			Reminder: &model.Reminder{
				ID:           "rem-1",
				TaskID:       "task-1",
				ReminderDate: "2026-02-02",
				ReminderDay:  "Monday",
				ReminderTime: "15:00",
				Status:       model.ReminderPending,
			},
		},
	}
	tool := tools.NewAddTaskTool(uc)

	result := tool.Execute(context.Background(), caller, map[string]interface{}{
		"title": "Call mom",
		"reminder": map[string]interface{}{
			"date": "2026-02-02",
			"time": "15:00",
		},
	})

	if result["status"] != "success" {
		t.Fatalf("status = %v, result = %v", result["status"], result)
	}
	msg, _ := result["message"].(string)
	if msg != "Task 'Call mom' created successfully with reminder set for Monday at 3:00 PM" {
		t.Errorf("message = %q", msg)
	}
	if uc.lastScope.UserID != "user-1" {
		t.Errorf("scope not forwarded: %+v", uc.lastScope)
	}
	if uc.createInput.Reminder == nil || uc.createInput.Reminder.Date != "2026-02-02" {
		t.Errorf("reminder input = %+v", uc.createInput.Reminder)
	}
}

func TestAddTask_RejectsUnknownFields(t *testing.T) {
	uc := &mockUseCase{}
	tool := tools.NewAddTaskTool(uc)

	result := tool.Execute(context.Background(), caller, map[string]interface{}{
		"title":   "legit",
		"user_id": "user-666", // forged identity must be rejected, not ignored
	})

	if result["status"] != "error" {
		t.Fatalf("expected error envelope, got %v", result)
	}
	if uc.createInput.Title != "" {
		t.Error("use case must not be reached on invalid arguments")
	}
}

func TestAddTask_ValidationErrorSurfacesMessage(t *testing.T) {
	uc := &mockUseCase{createErr: task.NewValidationError("Reminder must be in the future")}
	tool := tools.NewAddTaskTool(uc)

	result := tool.Execute(context.Background(), caller, map[string]interface{}{
		"title": "late",
		"reminder": map[string]interface{}{
			"date": "2001-01-01",
			"time": "09:00",
		},
	})

	if result["status"] != "error" {
		t.Fatalf("expected error envelope, got %v", result)
	}
	if result["message"] != "Reminder must be in the future" {
		t.Errorf("message = %v", result["message"])
	}
}

func TestViewTask_ForwardsFilter(t *testing.T) {
	uc := &mockUseCase{
		listOut: task.ListTasksOutput{
			Tasks: []task.TaskWithReminder{{Task: sampleTask()}},
			Total: 1,
		},
	}
	tool := tools.NewViewTaskTool(uc)

	result := tool.Execute(context.Background(), caller, map[string]interface{}{
		"status": "pending",
		"limit":  200,
	})

	if result["status"] != "success" {
		t.Fatalf("result = %v", result)
	}
	if uc.listInput.Status != "pending" || uc.listInput.Limit != 200 {
		t.Errorf("list input = %+v", uc.listInput)
	}
	if result["message"] != "Found 1 task(s) (pending)" {
		t.Errorf("message = %v", result["message"])
	}
}

func TestUpdateTask_ReminderPresence(t *testing.T) {
	tests := []struct {
		name         string
		args         map[string]interface{}
		wantSet      bool
		wantRemoved  bool
		wantReplaced bool
	}{
		{
			name:    "absent reminder leaves it unchanged",
			args:    map[string]interface{}{"task_id": "task-1", "title": "new"},
			wantSet: false,
		},
		{
			name:        "empty reminder removes it",
			args:        map[string]interface{}{"task_id": "task-1", "reminder": map[string]interface{}{}},
			wantSet:     true,
			wantRemoved: true,
		},
		{
			name: "populated reminder replaces it",
			args: map[string]interface{}{
				"task_id":  "task-1",
				"reminder": map[string]interface{}{"date": "2099-01-01", "time": "08:00"},
			},
			wantSet:      true,
			wantReplaced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{updateOut: task.TaskOutput{Task: sampleTask()}}
			tool := tools.NewUpdateTaskTool(uc)

			result := tool.Execute(context.Background(), caller, tt.args)
			if result["status"] != "success" {
				t.Fatalf("result = %v", result)
			}

			if uc.updateInput.ReminderSet != tt.wantSet {
				t.Errorf("ReminderSet = %v, want %v", uc.updateInput.ReminderSet, tt.wantSet)
			}
			if tt.wantRemoved && !uc.updateInput.Reminder.Empty() {
				t.Errorf("expected empty reminder input, got %+v", uc.updateInput.Reminder)
			}
			if tt.wantReplaced && (uc.updateInput.Reminder == nil || uc.updateInput.Reminder.Date != "2099-01-01") {
				t.Errorf("expected replacement reminder, got %+v", uc.updateInput.Reminder)
			}
		})
	}
}

func TestMarkAsCompleted_Messages(t *testing.T) {
	completed := sampleTask()
	completed.Completed = true

	uc := &mockUseCase{
		toggleOut: task.ToggleOutput{
			Task:              completed,
			ReminderCancelled: true,
		},
	}
	tool := tools.NewMarkAsCompletedTaskTool(uc)

	result := tool.Execute(context.Background(), caller, map[string]interface{}{"task_id": "task-1"})
	if result["status"] != "success" {
		t.Fatalf("result = %v", result)
	}
	if result["message"] != "Task 'Call mom' marked as completed. Reminder cancelled." {
		t.Errorf("message = %v", result["message"])
	}
	if result["reminder_cancelled"] != true {
		t.Error("expected reminder_cancelled flag")
	}
}

func TestDeleteTask_PermissionVsNotFound(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{
			name:    "not found",
			err:     task.ErrTaskNotFound,
			wantMsg: "Task not found",
		},
		{
			name:    "foreign task",
			err:     task.ErrPermissionDenied,
			wantMsg: "You don't have permission to access this task",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{deleteErr: tt.err}
			tool := tools.NewDeleteTaskTool(uc)

			result := tool.Execute(context.Background(), caller, map[string]interface{}{"task_id": "task-1"})
			if result["status"] != "error" {
				t.Fatalf("result = %v", result)
			}
			if result["message"] != tt.wantMsg {
				t.Errorf("message = %v, want %q", result["message"], tt.wantMsg)
			}
		})
	}
}

func TestDeleteTask_EchoesDeleted(t *testing.T) {
	uc := &mockUseCase{deleteOut: task.DeleteOutput{ID: "task-1", Title: "Call mom"}}
	tool := tools.NewDeleteTaskTool(uc)

	result := tool.Execute(context.Background(), caller, map[string]interface{}{"task_id": "task-1"})
	if result["status"] != "success" {
		t.Fatalf("result = %v", result)
	}
	deleted, ok := result["deleted_task"].(map[string]interface{})
	if !ok || deleted["id"] != "task-1" || deleted["title"] != "Call mom" {
		t.Errorf("deleted_task = %v", result["deleted_task"])
	}
}
