package surf

import (
	"sync"
	"time"
)

// Source identifies a physical input device. All sources converge on the
// same two logical signals.
type Source int

const (
	SourceKey Source = iota
	SourcePointer
	SourceTouch
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceKey:
		return "key"
	case SourcePointer:
		return "pointer"
	case SourceTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// Signals are the edge-triggered inputs consumed by one Advance call.
type Signals struct {
	Start bool // Any primary input; ignored while playing
	Jump  bool // One edge per press-and-hold
}

// hold is the latch of one held source.
type hold struct {
	last     time.Time // Last press or auto-repeat
	repeated bool      // At least one auto-repeat arrived
}

// Controller debounces press/release events from several sources into Signals.
// Input callbacks and the frame driver may run on different goroutines.
type Controller struct {
	mu    sync.Mutex
	held  map[Source]hold
	start bool
	jump  bool
	now   func() time.Time
}

// NewController creates a controller with nothing held.
func NewController() *Controller {
	return &Controller{
		held: make(map[Source]hold),
		now:  time.Now,
	}
}

// Press records a press from src. It raises Start, and raises Jump only if no
// source was already held, so holding or auto-repeat yields a single edge.
func (c *Controller) Press(src Source) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.start = true
	if len(c.held) == 0 {
		c.jump = true
	}
	_, repeat := c.held[src]
	c.held[src] = hold{last: c.now(), repeated: repeat}
}

// Release clears the hold latch of src.
func (c *Controller) Release(src Source) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.held, src)
}

// RequestStart raises Start without touching the jump latch (menu buttons).
func (c *Controller) RequestStart() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.start = true
}

// ReleaseIdle releases src once it has been quiet for too long. Hosts whose
// devices report no release events (terminal keys) call it each frame.
// Until the first auto-repeat arrives the hold lasts delay, which must exceed
// the device's repeat delay; after that each repeat refreshes it for interval.
func (c *Controller) ReleaseIdle(src Source, delay, interval time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.held[src]
	if !ok {
		return
	}
	idle := delay
	if h.repeated {
		idle = interval
	}
	if c.now().Sub(h.last) >= idle {
		delete(c.held, src)
	}
}

// Held reports whether any source is currently held.
func (c *Controller) Held() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.held) > 0
}

// Consume returns the pending signals and clears them. Presses between two
// calls collapse into one edge.
func (c *Controller) Consume() Signals {
	c.mu.Lock()
	defer c.mu.Unlock()
	sig := Signals{Start: c.start, Jump: c.jump}
	c.start = false
	c.jump = false
	return sig
}
