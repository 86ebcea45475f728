// Package llm holds what the provider adapters share.
package llm

import "sync"

// Lazy builds a value once, on first use. A construction error is cached
// and returned by every later Get.
type Lazy[T any] struct {
	once  sync.Once
	build func() (T, error)
	val   T
	err   error
}

func NewLazy[T any](build func() (T, error)) *Lazy[T] {
	return &Lazy[T]{build: build}
}

func (l *Lazy[T]) Get() (T, error) {
	l.once.Do(func() {
		l.val, l.err = l.build()
		l.build = nil
	})
	return l.val, l.err
}
