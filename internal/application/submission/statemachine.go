package submission

import (
	stderrors "errors"
	"sync"
)

// State is the lifecycle of one form submission attempt.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateInvalid:
		return "invalid"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ErrSubmissionInFlight is returned when a submit is attempted while a
// previous one has not yet reached a terminal state.
var ErrSubmissionInFlight = stderrors.New("a submission is already in flight")

// Pipeline tracks one form instance through
// Idle -> Validating -> (Invalid | Submitting) -> (Submitted | Failed).
// At most one submission may be in flight at a time; a second submit while
// Submitting is rejected rather than queued. A new user-initiated submit is
// the only recovery path from Invalid or Failed.
type Pipeline struct {
	mu    sync.Mutex
	state State
	busy  bool
}

func NewPipeline() *Pipeline {
	return &Pipeline{state: StateIdle}
}

func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Begin moves the pipeline into Validating. It fails when another submission
// holds the pipeline between Begin and a terminal transition.
func (p *Pipeline) Begin() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.busy {
		return ErrSubmissionInFlight
	}
	p.busy = true
	p.state = StateValidating
	return nil
}

// Invalid terminates the attempt on validation failure. No notifier call is
// made for an invalid attempt; the next edit returns the form to Idle.
func (p *Pipeline) Invalid() {
	p.terminal(StateInvalid)
}

// Submitting records that validation passed and dispatch has started.
func (p *Pipeline) Submitting() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateSubmitting
}

// Submitted terminates the attempt on accepted delivery. Input state is
// considered cleared.
func (p *Pipeline) Submitted() {
	p.terminal(StateSubmitted)
}

// Failed terminates the attempt on any dispatch error. Input is preserved so
// the user can retry without re-entering data.
func (p *Pipeline) Failed() {
	p.terminal(StateFailed)
}

// Reset returns a terminal pipeline to Idle (next edit after Invalid, or a
// fresh attempt after Submitted/Failed).
func (p *Pipeline) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = StateIdle
	p.busy = false
}

func (p *Pipeline) terminal(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
	p.busy = false
}
