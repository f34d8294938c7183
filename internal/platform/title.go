package platform

import "sync"

// WindowTitle is the in-process title handle. The rendering collaborator
// observes the current value through the engine's state snapshot and
// mirrors it onto the real browser tab or window.
type WindowTitle struct {
	mu    sync.Mutex
	value string

	// writes counts SetTitle calls; handy in tests asserting blink cadence.
	writes int
}

func NewWindowTitle(initial string) *WindowTitle {
	return &WindowTitle{value: initial}
}

func (t *WindowTitle) Title() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.value
}

func (t *WindowTitle) SetTitle(title string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.value = title
	t.writes++
}

func (t *WindowTitle) Writes() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.writes
}

var _ TitleHandle = (*WindowTitle)(nil)
