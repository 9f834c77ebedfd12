package board

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-scheduling-advisor/internal/model"
)

const (
	defaultMaxTasks = 1000
	defaultTTL      = 5 * time.Minute
)

// Board is the caller's view of the tasks it has seen.
// Entries expire after a TTL and the least recently used are evicted past
// the size limit; the task store stays authoritative.
type Board struct {
	mu    sync.Mutex
	tasks *expirable.LRU[string, entry]
	seq   uint64
}

type entry struct {
	task    model.ScheduledTask
	version uint64
}

type options struct {
	maxTasks int
	ttl      time.Duration
}

// Option configures a Board.
type Option func(*options)

// WithTTL sets how long a view entry stays valid.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl > 0 {
			o.ttl = ttl
		}
	}
}

// WithMaxTasks bounds the number of tracked tasks.
func WithMaxTasks(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxTasks = n
		}
	}
}

// New creates an empty Board.
func New(opts ...Option) *Board {
	o := options{maxTasks: defaultMaxTasks, ttl: defaultTTL}
	for _, opt := range opts {
		opt(&o)
	}
	return &Board{tasks: expirable.NewLRU[string, entry](o.maxTasks, nil, o.ttl)}
}

// Get returns the view of a task.
func (b *Board) Get(id string) (model.ScheduledTask, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.tasks.Get(id)
	return e.task, ok
}

// Put replaces the view of a task.
func (b *Board) Put(task model.ScheduledTask) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.putLocked(task)
}

// Len returns the number of tracked tasks.
func (b *Board) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.tasks.Len()
}

// putLocked stamps task with a board-wide sequence number, so a version is
// never reused even after the entry expires and is added again.
func (b *Board) putLocked(task model.ScheduledTask) uint64 {
	b.seq++
	b.tasks.Add(task.ID, entry{task: task, version: b.seq})
	return b.seq
}

// Mutation derives the tentative view from the current one.
type Mutation func(current model.ScheduledTask) model.ScheduledTask

// Commit sends the change to the store and returns the store's copy of the task.
type Commit func(ctx context.Context) (model.ScheduledTask, error)

// Result describes a finished transaction.
type Result struct {
	Before    model.ScheduledTask // the view before the tentative value was applied
	Tracked   bool                // whether the task was in the view before
	Committed model.ScheduledTask
}

// Transact applies apply to the view of id, runs commit, then either replaces
// the view with the committed task or restores the snapshot. A snapshot is
// only restored while the tentative value is still the latest write.
func (b *Board) Transact(ctx context.Context, id string, apply Mutation, commit Commit) (Result, error) {
	b.mu.Lock()
	snapshot, tracked := b.tasks.Get(id)
	base := snapshot.task
	if !tracked {
		base = model.ScheduledTask{ID: id}
	}
	tentative := apply(base)
	tentative.ID = id
	version := b.putLocked(tentative)
	b.mu.Unlock()

	res := Result{Before: base, Tracked: tracked}

	committed, err := commit(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()

	if err != nil {
		if cur, ok := b.tasks.Peek(id); ok && cur.version == version {
			if tracked {
				b.putLocked(snapshot.task)
			} else {
				b.tasks.Remove(id)
			}
		}
		return res, err
	}

	if committed.ID == "" {
		committed.ID = id
	}
	b.putLocked(committed)
	res.Committed = committed
	return res, nil
}
