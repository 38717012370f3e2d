// Package job runs long operations off the frame loop and exposes their
// progress to it.
package job

import (
	"math"
	"sync/atomic"
)

// State is the lifecycle of a background operation.
type State int32

const (
	Idle State = iota
	InProgress
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// Progress is a fraction in [0,1] written by a worker and read by the UI.
// The zero value is Idle at 0. A nil *Progress discards updates.
type Progress struct {
	bits  atomic.Uint64
	state atomic.Int32
}

// Set raises the fraction to f, clamped to [0,1]. Lower values are ignored.
func (p *Progress) Set(f float64) {
	if p == nil || math.IsNaN(f) {
		return
	}
	f = max(0, min(f, 1))
	p.state.CompareAndSwap(int32(Idle), int32(InProgress))
	for {
		old := p.bits.Load()
		if f <= math.Float64frombits(old) {
			return
		}
		if p.bits.CompareAndSwap(old, math.Float64bits(f)) {
			return
		}
	}
}

// Fraction returns the last reported fraction.
func (p *Progress) Fraction() float64 {
	if p == nil {
		return 0
	}
	return math.Float64frombits(p.bits.Load())
}

// State returns the current lifecycle state.
func (p *Progress) State() State {
	if p == nil {
		return Idle
	}
	return State(p.state.Load())
}

// Finish marks the operation done at 1.0.
func (p *Progress) Finish() {
	if p == nil {
		return
	}
	p.Set(1)
	p.state.Store(int32(Done))
}

// Fail marks the operation failed, keeping the fraction reached.
func (p *Progress) Fail() {
	if p == nil {
		return
	}
	p.state.Store(int32(Failed))
}

// Job is a running operation producing a T.
type Job[T any] struct {
	Progress *Progress

	done   chan struct{}
	result T
	err    error
}

// Start runs fn on a new goroutine.
func Start[T any](fn func(*Progress) (T, error)) *Job[T] {
	j := &Job[T]{Progress: new(Progress), done: make(chan struct{})}
	j.Progress.state.Store(int32(InProgress))
	go func() {
		defer close(j.done)
		j.result, j.err = fn(j.Progress)
		if j.err != nil {
			j.Progress.Fail()
		} else {
			j.Progress.Finish()
		}
	}()
	return j
}

// Done is closed once the result is available.
func (j *Job[T]) Done() <-chan struct{} { return j.done }

// Finished reports without blocking whether the job has returned.
func (j *Job[T]) Finished() bool {
	select {
	case <-j.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the job returns and yields its result.
func (j *Job[T]) Wait() (T, error) {
	<-j.done
	return j.result, j.err
}
