package usecase

import (
	"sync"

	"moviehub/pkg/metrics"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailure
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// RequestState is the lifecycle of one controller fetch. Data is meaningful
// only in PhaseSuccess; Reason and Err only in PhaseFailure. Reason is safe to
// show to users, Err is for logs and status mapping.
type RequestState[T any] struct {
	Phase  Phase
	Data   T
	Reason string
	Err    error
}

// ticket identifies one trigger. Every resolve within the current epoch
// commits, so the last request to resolve wins; reset starts a new epoch and
// drops whatever was still in flight.
type ticket struct {
	epoch uint64
	seq   uint64
}

type stateHolder[T any] struct {
	page string

	mu    sync.Mutex
	state RequestState[T]
	epoch uint64
	seq   uint64
}

func newStateHolder[T any](page string) *stateHolder[T] {
	return &stateHolder[T]{page: page}
}

func (h *stateHolder[T]) begin() ticket {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	h.state = RequestState[T]{Phase: PhaseLoading}
	metrics.PageStates.WithLabelValues(h.page, PhaseLoading.String()).Inc()

	return ticket{epoch: h.epoch, seq: h.seq}
}

// resolve commits the outcome of t. It reports false when t belongs to an
// epoch that was reset in the meantime.
func (h *stateHolder[T]) resolve(t ticket, data T, err error) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t.epoch != h.epoch {
		return false
	}

	if err != nil {
		h.state = RequestState[T]{Phase: PhaseFailure, Reason: failureReason(err), Err: err}
	} else {
		h.state = RequestState[T]{Phase: PhaseSuccess, Data: data}
	}
	metrics.PageStates.WithLabelValues(h.page, h.state.Phase.String()).Inc()

	return true
}

func (h *stateHolder[T]) reset() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.epoch++
	h.state = RequestState[T]{Phase: PhaseIdle}
}

func (h *stateHolder[T]) get() RequestState[T] {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
