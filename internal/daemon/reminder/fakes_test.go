package reminder

import (
	"sync"
	"time"
)

// fakeNotifier counts prompts. When ack is set, each prompt blocks until a
// value arrives on it.
type fakeNotifier struct {
	mu       sync.Mutex
	requests []AckRequest
	banners  int

	ack      chan struct{}
	prompted chan AckRequest
	bannered chan struct{}
	onPrompt func(AckRequest)
	bannerFn func() error
}

func (n *fakeNotifier) PromptAcknowledgement(req AckRequest) {
	n.mu.Lock()
	n.requests = append(n.requests, req)
	n.mu.Unlock()

	if n.prompted != nil {
		n.prompted <- req
	}
	if n.onPrompt != nil {
		n.onPrompt(req)
	}
	if n.ack != nil {
		<-n.ack
	}
}

func (n *fakeNotifier) ShowContinuedAwayBanner() error {
	n.mu.Lock()
	n.banners++
	n.mu.Unlock()

	if n.bannered != nil {
		n.bannered <- struct{}{}
	}
	if n.bannerFn != nil {
		return n.bannerFn()
	}
	return nil
}

func (n *fakeNotifier) Requests() []AckRequest {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]AckRequest(nil), n.requests...)
}

func (n *fakeNotifier) Banners() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.banners
}

type emitCall struct {
	frequencyHz int
	durationMs  int
}

type fakeAlerter struct {
	mu     sync.Mutex
	calls  []emitCall
	err    error
	onEmit func(count int)
	panics bool
}

func (a *fakeAlerter) Emit(frequencyHz, durationMs int) error {
	a.mu.Lock()
	a.calls = append(a.calls, emitCall{frequencyHz, durationMs})
	count := len(a.calls)
	a.mu.Unlock()

	if a.onEmit != nil {
		a.onEmit(count)
	}
	if a.panics {
		panic("speaker on fire")
	}
	return a.err
}

func (a *fakeAlerter) Calls() []emitCall {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]emitCall(nil), a.calls...)
}

// fakeClock records every wait. Durations registered in hold block until the
// test fires them; every other wait elapses immediately.
type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	waits []time.Duration
	hold  map[time.Duration]chan time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{
		now:  time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		hold: make(map[time.Duration]chan time.Time),
	}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.waits = append(c.waits, d)
	if ch, ok := c.hold[d]; ok {
		return ch
	}
	ch := make(chan time.Time, 1)
	ch <- c.now.Add(d)
	return ch
}

func (c *fakeClock) Hold(d time.Duration) chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	ch := make(chan time.Time, 1)
	c.hold[d] = ch
	return ch
}

func (c *fakeClock) Waits() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.waits...)
}

type fakeProbe struct {
	mu   sync.Mutex
	last time.Time
	err  error
}

func (p *fakeProbe) LastInput() (time.Time, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.err
}

type phaseEvent struct {
	cycle int
	phase Phase
}

type phaseRecorder struct {
	mu     sync.Mutex
	events []phaseEvent
	ch     chan phaseEvent
}

func (r *phaseRecorder) record(cycle int, p Phase) {
	r.mu.Lock()
	r.events = append(r.events, phaseEvent{cycle, p})
	r.mu.Unlock()
	if r.ch != nil {
		r.ch <- phaseEvent{cycle, p}
	}
}

func (r *phaseRecorder) Phases() []Phase {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Phase, len(r.events))
	for i, e := range r.events {
		out[i] = e.phase
	}
	return out
}
