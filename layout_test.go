package successione

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestViewport_CardMode(t *testing.T) {
	testCases := []struct {
		name string
		view Viewport
		want bool
	}{
		{name: "narrow portrait", view: Viewport{Width: 400, Height: 800}, want: true},
		{name: "narrow landscape", view: Viewport{Width: 400, Height: 300}, want: false},
		{name: "wide portrait", view: Viewport{Width: 800, Height: 1200}, want: false},
		{name: "wide landscape", view: Viewport{Width: 1920, Height: 1080}, want: false},
		{name: "exactly at the threshold", view: Viewport{Width: CompactWidth, Height: 1024}, want: false},
		{name: "one below the threshold", view: Viewport{Width: CompactWidth - 1, Height: 1024}, want: true},
		{name: "custom compact width", view: Viewport{Width: 60, Height: 80, Compact: 72}, want: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.view.CardMode(); got != tc.want {
				t.Errorf("CardMode(%+v) = %v, want %v", tc.view, got, tc.want)
			}
		})
	}
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	var calls atomic.Int32
	for range 10 {
		d.Trigger(func() { calls.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	if got := calls.Load(); got != 1 {
		t.Errorf("a burst of 10 triggers fired %d callbacks, want 1", got)
	}
}

func TestDebouncer_Stop(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var calls atomic.Int32
	d.Trigger(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(50 * time.Millisecond)
	if got := calls.Load(); got != 0 {
		t.Errorf("stopped debouncer fired %d callbacks, want 0", got)
	}
}
