package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"task-scheduling-advisor/internal/bootstrap"
	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler"
	"task-scheduling-advisor/internal/scheduler/policy"
	"task-scheduling-advisor/pkg/datemath"
	"task-scheduling-advisor/pkg/log"
)

type mockUseCase struct {
	recommendOut scheduler.RecommendOutput
	scheduleOut  scheduler.ScheduleOutput
	scheduleErr  error
	taskOut      scheduler.TaskOutput

	lastSchedule     scheduler.ScheduleInput
	lastScheduleSlot scheduler.ScheduleSlotInput
}

func (m *mockUseCase) Recommend(ctx context.Context, taskID string) (scheduler.RecommendOutput, error) {
	return m.recommendOut, nil
}
func (m *mockUseCase) Schedule(ctx context.Context, input scheduler.ScheduleInput) (scheduler.ScheduleOutput, error) {
	m.lastSchedule = input
	return m.scheduleOut, m.scheduleErr
}
func (m *mockUseCase) ScheduleSlot(ctx context.Context, input scheduler.ScheduleSlotInput) (scheduler.ScheduleOutput, error) {
	m.lastScheduleSlot = input
	return m.scheduleOut, m.scheduleErr
}
func (m *mockUseCase) StartTask(ctx context.Context, taskID string) (scheduler.TaskOutput, error) {
	return m.taskOut, nil
}
func (m *mockUseCase) Track(ctx context.Context, taskID string) (scheduler.TaskOutput, error) {
	return m.taskOut, nil
}

func run(t *testing.T, uc scheduler.UseCase, args ...string) (string, error) {
	t.Helper()
	pol := policy.New(policy.DefaultConfig(), policy.DefaultPreferences())
	c := &cli{app: &bootstrap.App{
		Logger:  log.NewNop(),
		Policy:  pol,
		Parser:  datemath.NewParserInLocation(time.UTC),
		UseCase: uc,
	}}

	var out bytes.Buffer
	root := newRootCmd(c)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestFormatCommands(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"format", "duration", "90"}, "1h 30m\n"},
		{[]string{"format", "duration", "480"}, "8h\n"},
		{[]string{"format", "day", "6"}, "Saturday\n"},
		{[]string{"format", "day", "9"}, "Unknown\n"},
		{[]string{"format", "time-of-day", "afternoon"}, "Afternoon (12pm-5pm)\n"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			got, err := run(t, &mockUseCase{}, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}

	if _, err := run(t, &mockUseCase{}, "format", "duration", "ninety"); err == nil {
		t.Errorf("expected error for non-integer minutes")
	}
}

func TestRecommendCommand(t *testing.T) {
	start := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	uc := &mockUseCase{recommendOut: scheduler.RecommendOutput{Presentation: policy.Presentation{
		Status:             policy.StatusReady,
		TaskID:             "t1",
		Confidence:         0.75,
		BestTimeOfDayLabel: "Morning (8am-12pm)",
		BestDayOfWeekLabel: "Tuesday",
		Slots:              []policy.Slot{{Start: start, End: start.Add(30 * time.Minute), DurationMinutes: 30, Label: "9:00 AM - 9:30 AM"}},
	}}}

	got, err := run(t, uc, "recommend", "t1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"READY", "confidence 75%", "Morning (8am-12pm) on Tuesday", "[0] 9:00 AM - 9:30 AM (30m)"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	uc.recommendOut.Presentation = policy.Presentation{Status: policy.StatusInsufficientData, TaskID: "t1", Message: policy.MessageInsufficientData}
	got, _ = run(t, uc, "recommend", "t1")
	if !strings.Contains(got, policy.MessageInsufficientData) || strings.Contains(got, "[0]") {
		t.Errorf("unexpected insufficient output:\n%s", got)
	}
}

func TestScheduleCommand(t *testing.T) {
	at := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	uc := &mockUseCase{scheduleOut: scheduler.ScheduleOutput{Task: model.ScheduledTask{ID: "t1", Title: "Report", ScheduledTime: &at}}}

	got, err := run(t, uc, "schedule", "t1", "2024-01-02", "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !uc.lastSchedule.ScheduledTime.Equal(at) {
		t.Errorf("expected %v, got %v", at, uc.lastSchedule.ScheduledTime)
	}
	if !strings.Contains(got, `Scheduled "Report" (t1) for Tue Jan 2 9:00 AM UTC`) {
		t.Errorf("unexpected output:\n%s", got)
	}

	if _, err := run(t, uc, "schedule", "t1", "whenever"); !errors.Is(err, scheduler.ErrInvalidScheduledTime) {
		t.Errorf("expected ErrInvalidScheduledTime, got %v", err)
	}

	uc.scheduleErr = scheduler.ErrSchedulingFailed
	if _, err := run(t, uc, "schedule", "t1", "2024-01-02T09:00:00Z"); !errors.Is(err, scheduler.ErrSchedulingFailed) {
		t.Errorf("expected ErrSchedulingFailed, got %v", err)
	}
}

func TestScheduleSlotCommand(t *testing.T) {
	uc := &mockUseCase{}
	if _, err := run(t, uc, "schedule-slot", "t1", "3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uc.lastScheduleSlot.TaskID != "t1" || uc.lastScheduleSlot.SlotIndex != 3 {
		t.Errorf("unexpected input %+v", uc.lastScheduleSlot)
	}
	if _, err := run(t, uc, "schedule-slot", "t1", "x"); !errors.Is(err, scheduler.ErrInvalidSlot) {
		t.Errorf("expected ErrInvalidSlot, got %v", err)
	}
}

func TestStartCommandJSON(t *testing.T) {
	uc := &mockUseCase{taskOut: scheduler.TaskOutput{Task: model.ScheduledTask{ID: "t1", Status: "in-progress"}}}
	got, err := run(t, uc, "start", "t1", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `"Status": "in-progress"`) {
		t.Errorf("unexpected output:\n%s", got)
	}
}
