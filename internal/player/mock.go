package player

import "time"

// PlayCall records one Play invocation on the mock.
type PlayCall struct {
	Path   string
	Offset time.Duration
}

// Mock is a test double for Player. It honors the stop-then-start contract
// so tests can assert the exact call sequence the real speaker would see.
type Mock struct {
	state     State
	playErr   error
	playCalls []PlayCall
	stopCalls int
	done      chan struct{}
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	done := make(chan struct{})
	close(done)
	return &Mock{
		state: Stopped,
		done:  done,
	}
}

func (m *Mock) Play(path string, offset time.Duration) error {
	m.Stop()
	m.playCalls = append(m.playCalls, PlayCall{Path: path, Offset: offset})
	if m.playErr != nil {
		return m.playErr
	}
	m.state = Playing
	m.done = make(chan struct{})
	return nil
}

func (m *Mock) Stop() {
	if m.state == Stopped {
		return
	}
	m.stopCalls++
	m.state = Stopped
	select {
	case <-m.done:
	default:
		close(m.done)
	}
}

func (m *Mock) State() State { return m.state }

func (m *Mock) Done() <-chan struct{} { return m.done }

// Test helpers

func (m *Mock) SetPlayError(err error) { m.playErr = err }

func (m *Mock) PlayCalls() []PlayCall { return m.playCalls }

func (m *Mock) StopCalls() int { return m.stopCalls }

// SimulateFinished simulates the current clip reaching its natural end.
func (m *Mock) SimulateFinished() {
	if m.state == Stopped {
		return
	}
	m.state = Stopped
	select {
	case <-m.done:
	default:
		close(m.done)
	}
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
