// Package session keeps the client-side state of each feature panel and of
// a chat conversation.
package session

import (
	"context"
	"sync"

	"github.com/havantoancntt-commits/T-Vi-Nhi-m-M-u/internal/domain"
)

type State int

const (
	Idle State = iota
	InFlight
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case InFlight:
		return "in-flight"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Feature tracks one request lifecycle. A result is only held in
// Succeeded and an error only in Failed.
type Feature[T any] struct {
	mu     sync.Mutex
	state  State
	result T
	err    error
}

// Begin moves to InFlight and drops the previous outcome.
func (f *Feature[T]) Begin() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == InFlight {
		return domain.ErrBusy
	}
	var zero T
	f.state, f.result, f.err = InFlight, zero, nil
	return nil
}

func (f *Feature[T]) Succeed(v T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state, f.result, f.err = Succeeded, v, nil
}

func (f *Feature[T]) Fail(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.state, f.result, f.err = Failed, zero, err
}

func (f *Feature[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	var zero T
	f.state, f.result, f.err = Idle, zero, nil
}

func (f *Feature[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Result returns the payload and whether the last request succeeded.
func (f *Feature[T]) Result() (T, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result, f.state == Succeeded
}

// Err returns the failure of the last request, if any.
func (f *Feature[T]) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Run performs call as one request of this feature.
func (f *Feature[T]) Run(ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := f.Begin(); err != nil {
		return zero, err
	}
	v, err := call(ctx)
	if err != nil {
		f.Fail(err)
		return zero, err
	}
	f.Succeed(v)
	return v, nil
}
