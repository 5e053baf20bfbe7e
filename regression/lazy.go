// Authors: Rohan Adla, Arrio Gonsalves, Shreyan Nalwad, Dylan Setiawan
// Date: Oct 19th 2026
// Project: regress, Least-Squares and Logit Estimation in Go

package regression

import "sync"

// lazy holds a value computed on first use.
// Concurrent callers block until the first computation finishes.
type lazy[T any] struct {
	once sync.Once
	v    T
	err  error
}

func (l *lazy[T]) get(f func() (T, error)) (T, error) {
	l.once.Do(func() { l.v, l.err = f() })
	return l.v, l.err
}

func (l *lazy[T]) value(f func() T) T {
	l.once.Do(func() { l.v = f() })
	return l.v
}
