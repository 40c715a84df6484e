// pkg/storeclient/container.go
package storeclient

import "sync"

type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// List is the async container every entity collection lives in. One
// fetch cycle is: Begin (→ Loading), then exactly one of Succeed or
// Fail with the token Begin returned. Tokens make overlapping fetches
// safe: only the newest request's outcome is applied, so a slow stale
// response can never overwrite a fresh one.
type List[T any] struct {
	mu     sync.Mutex
	items  []T
	status Status
	err    string
	seq    uint64
}

func NewList[T any]() *List[T] {
	return &List[T]{}
}

// Snapshot is a point-in-time copy of the container.
type Snapshot[T any] struct {
	Items  []T
	Status Status
	Err    string
}

func (l *List[T]) Snapshot() Snapshot[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := make([]T, len(l.items))
	copy(items, l.items)
	return Snapshot[T]{Items: items, Status: l.status, Err: l.err}
}

// Begin marks a fetch in flight and returns its token.
func (l *List[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	l.status = StatusLoading
	l.err = ""
	return l.seq
}

// Succeed replaces the items wholesale. A stale token is ignored.
func (l *List[T]) Succeed(token uint64, items []T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.seq {
		return false
	}
	l.items = items
	l.status = StatusSucceeded
	l.err = ""
	return true
}

// Fail records the error message. Items already loaded are kept, so the
// UI can keep showing the last good data alongside the error. A stale
// token is ignored.
func (l *List[T]) Fail(token uint64, message string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if token != l.seq {
		return false
	}
	l.status = StatusFailed
	l.err = message
	return true
}

// Prepend splices a newly created record in without a refetch.
func (l *List[T]) Prepend(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append([]T{item}, l.items...)
}

// Replace swaps the first record matching the predicate.
func (l *List[T]) Replace(match func(T) bool, item T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.items {
		if match(l.items[i]) {
			l.items[i] = item
			return true
		}
	}
	return false
}

// Remove filters out every record matching the predicate.
func (l *List[T]) Remove(match func(T) bool) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	kept := l.items[:0]
	removed := 0
	for _, item := range l.items {
		if match(item) {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	l.items = kept
	return removed
}
