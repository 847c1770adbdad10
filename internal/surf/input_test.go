package surf

import (
	"sync"
	"testing"
	"time"
)

func TestControllerSingleEdgePerHold(t *testing.T) {
	c := NewController()

	c.Press(SourceKey)
	if sig := c.Consume(); !sig.Jump || !sig.Start {
		t.Fatalf("first press = %+v, expected start and jump", sig)
	}

	// Auto-repeat while held
	for i := 0; i < 5; i++ {
		c.Press(SourceKey)
		if sig := c.Consume(); sig.Jump {
			t.Fatalf("repeat %d produced a second jump edge", i)
		}
	}

	c.Release(SourceKey)
	c.Press(SourceKey)
	if sig := c.Consume(); !sig.Jump {
		t.Error("press after release should produce a new edge")
	}
}

func TestControllerPressesCollapse(t *testing.T) {
	c := NewController()

	c.Press(SourcePointer)
	c.Release(SourcePointer)
	c.Press(SourcePointer)
	c.Release(SourcePointer)

	if sig := c.Consume(); !sig.Jump {
		t.Fatal("expected a jump edge")
	}
	if sig := c.Consume(); sig.Jump || sig.Start {
		t.Errorf("signals should clear after Consume, got %+v", sig)
	}
}

func TestControllerSourcesConverge(t *testing.T) {
	c := NewController()

	c.Press(SourceKey)
	c.Consume()

	// A second device pressed during the same hold adds no edge
	c.Press(SourceTouch)
	if sig := c.Consume(); sig.Jump {
		t.Error("overlapping hold on another source should not jump")
	}

	c.Release(SourceKey)
	if !c.Held() {
		t.Fatal("touch is still held")
	}
	c.Press(SourceKey)
	if sig := c.Consume(); sig.Jump {
		t.Error("pressing while another source is held should not jump")
	}

	c.Release(SourceKey)
	c.Release(SourceTouch)
	if c.Held() {
		t.Fatal("nothing should be held")
	}
	c.Press(SourcePointer)
	if sig := c.Consume(); !sig.Jump {
		t.Error("press after every source released should jump")
	}
}

func TestControllerReleaseIdle(t *testing.T) {
	const delay, interval = 700 * time.Millisecond, 150 * time.Millisecond

	now := time.Unix(0, 0)
	c := NewController()
	c.now = func() time.Time { return now }

	c.Press(SourceKey)
	c.Consume()

	// Waiting for the first auto-repeat
	now = now.Add(500 * time.Millisecond)
	c.ReleaseIdle(SourceKey, delay, interval)
	if !c.Held() {
		t.Fatal("key released before the repeat delay")
	}

	// After a repeat only the short interval applies
	c.Press(SourceKey)
	now = now.Add(100 * time.Millisecond)
	c.ReleaseIdle(SourceKey, delay, interval)
	if !c.Held() {
		t.Fatal("repeat should refresh the hold")
	}

	now = now.Add(60 * time.Millisecond)
	c.ReleaseIdle(SourceKey, delay, interval)
	if c.Held() {
		t.Fatal("key should be released after the repeat interval")
	}

	c.Press(SourceKey)
	if sig := c.Consume(); !sig.Jump {
		t.Error("press after idle release should jump")
	}

	// A single tap is released after the delay
	now = now.Add(delay)
	c.ReleaseIdle(SourceKey, delay, interval)
	if c.Held() {
		t.Error("tap should be released after the repeat delay")
	}
}

func TestControllerContinuousHoldJumpsOnce(t *testing.T) {
	const delay, interval = 700 * time.Millisecond, 150 * time.Millisecond

	tests := []struct {
		name        string
		repeatDelay time.Duration
	}{
		{"fast repeat", 250 * time.Millisecond},
		{"typical repeat", 496 * time.Millisecond},
		{"slow repeat", 660 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			start := time.Unix(0, 0)
			now := start
			c := NewController()
			c.now = func() time.Time { return now }

			c.Press(SourceKey)
			jumps := 0
			nextRepeat := tc.repeatDelay
			for elapsed := time.Duration(0); elapsed <= time.Second; elapsed += 16 * time.Millisecond {
				now = start.Add(elapsed)
				if elapsed >= nextRepeat {
					c.Press(SourceKey)
					nextRepeat += 32 * time.Millisecond
				}
				c.ReleaseIdle(SourceKey, delay, interval)
				if c.Consume().Jump {
					jumps++
				}
			}

			if jumps != 1 {
				t.Errorf("jump edges for one continuous hold = %d, expected 1", jumps)
			}
		})
	}
}

func TestControllerRequestStart(t *testing.T) {
	c := NewController()

	c.RequestStart()
	sig := c.Consume()
	if !sig.Start || sig.Jump {
		t.Errorf("RequestStart = %+v, expected start only", sig)
	}
}

func TestControllerConcurrentUse(t *testing.T) {
	c := NewController()
	var wg sync.WaitGroup

	for _, src := range []Source{SourceKey, SourcePointer, SourceTouch} {
		wg.Add(1)
		go func(src Source) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				c.Press(src)
				c.Release(src)
			}
		}(src)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				c.Consume()
			}
		}
	}()

	wg.Wait()
	close(done)

	if c.Held() {
		t.Error("every press was released")
	}
}

func TestSourceString(t *testing.T) {
	tests := []struct {
		src      Source
		expected string
	}{
		{SourceKey, "key"},
		{SourcePointer, "pointer"},
		{SourceTouch, "touch"},
		{Source(99), "unknown"},
	}

	for _, tc := range tests {
		if got := tc.src.String(); got != tc.expected {
			t.Errorf("Source(%d).String() = %q, expected %q", tc.src, got, tc.expected)
		}
	}
}
