package board_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"task-scheduling-advisor/internal/model"
	"task-scheduling-advisor/internal/scheduler/board"
)

func setScheduled(t time.Time) board.Mutation {
	return func(cur model.ScheduledTask) model.ScheduledTask {
		cur.ScheduledTime = &t
		return cur
	}
}

func TestTransactSuccessUsesStoreValue(t *testing.T) {
	b := board.New()
	b.Put(model.ScheduledTask{ID: "t1", Title: "Write report"})

	sent := time.Date(2024, 1, 2, 9, 0, 7, 0, time.UTC)
	snapped := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)

	res, err := b.Transact(context.Background(), "t1", setScheduled(sent), func(ctx context.Context) (model.ScheduledTask, error) {
		// The tentative value is visible while the commit is in flight.
		cur, _ := b.Get("t1")
		if cur.ScheduledTime == nil || !cur.ScheduledTime.Equal(sent) {
			t.Errorf("tentative value not applied: %+v", cur)
		}
		return model.ScheduledTask{ID: "t1", Title: "Write report", ScheduledTime: &snapped}, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Tracked || res.Before.ScheduledTime != nil {
		t.Errorf("unexpected before snapshot: %+v", res)
	}

	got, _ := b.Get("t1")
	if got.ScheduledTime == nil || !got.ScheduledTime.Equal(snapped) {
		t.Errorf("expected store value %v, got %v", snapped, got.ScheduledTime)
	}
}

func TestTransactFailureRestoresSnapshot(t *testing.T) {
	b := board.New()
	b.Put(model.ScheduledTask{ID: "t1"})

	storeErr := errors.New("validation failed")
	_, err := b.Transact(context.Background(), "t1", setScheduled(time.Now()), func(ctx context.Context) (model.ScheduledTask, error) {
		return model.ScheduledTask{}, storeErr
	})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error, got %v", err)
	}

	got, ok := b.Get("t1")
	if !ok {
		t.Fatalf("task disappeared from view")
	}
	if got.ScheduledTime != nil {
		t.Errorf("expected scheduled time to remain nil, got %v", got.ScheduledTime)
	}
}

func TestTransactFailureOnUntrackedTask(t *testing.T) {
	b := board.New()

	_, err := b.Transact(context.Background(), "ghost", setScheduled(time.Now()), func(ctx context.Context) (model.ScheduledTask, error) {
		return model.ScheduledTask{}, errors.New("not found")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := b.Get("ghost"); ok {
		t.Errorf("untracked task should not remain in view after failure")
	}
	if b.Len() != 0 {
		t.Errorf("expected empty board, got %d", b.Len())
	}
}

func TestTransactFailureKeepsNewerWrite(t *testing.T) {
	b := board.New()
	b.Put(model.ScheduledTask{ID: "t1"})

	newer := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	_, err := b.Transact(context.Background(), "t1", setScheduled(time.Now()), func(ctx context.Context) (model.ScheduledTask, error) {
		b.Put(model.ScheduledTask{ID: "t1", ScheduledTime: &newer})
		return model.ScheduledTask{}, errors.New("timeout")
	})
	if err == nil {
		t.Fatalf("expected error")
	}

	got, _ := b.Get("t1")
	if got.ScheduledTime == nil || !got.ScheduledTime.Equal(newer) {
		t.Errorf("rollback clobbered a newer write: %v", got.ScheduledTime)
	}
}

func TestEntriesExpire(t *testing.T) {
	b := board.New(board.WithTTL(20 * time.Millisecond))
	b.Put(model.ScheduledTask{ID: "t1"})

	if _, ok := b.Get("t1"); !ok {
		t.Fatalf("expected fresh entry")
	}
	time.Sleep(60 * time.Millisecond)
	if _, ok := b.Get("t1"); ok {
		t.Errorf("expected entry to expire")
	}
}

func TestLeastRecentlyUsedEvicted(t *testing.T) {
	b := board.New(board.WithMaxTasks(2))
	b.Put(model.ScheduledTask{ID: "t1"})
	b.Put(model.ScheduledTask{ID: "t2"})
	b.Put(model.ScheduledTask{ID: "t3"})

	if b.Len() != 2 {
		t.Errorf("expected 2 tracked tasks, got %d", b.Len())
	}
	if _, ok := b.Get("t1"); ok {
		t.Errorf("expected oldest task to be evicted")
	}
}

func TestTransactFailureAfterExpiryDoesNotResurrect(t *testing.T) {
	b := board.New(board.WithTTL(20 * time.Millisecond))
	b.Put(model.ScheduledTask{ID: "t1"})

	_, err := b.Transact(context.Background(), "t1", setScheduled(time.Now()), func(ctx context.Context) (model.ScheduledTask, error) {
		time.Sleep(60 * time.Millisecond)
		return model.ScheduledTask{}, errors.New("timeout")
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if got, ok := b.Get("t1"); ok && got.ScheduledTime != nil {
		t.Errorf("tentative value survived a failed commit: %v", got.ScheduledTime)
	}
}
