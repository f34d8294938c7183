package platform

import "sync"

// ChimePlayer is the in-process audio primitive. Each Play after a Rewind
// is one audible cue; the rendering collaborator replays the alert sound
// whenever the cue count advances. PlayErr and RewindErr simulate playback
// rejection in tests.
type ChimePlayer struct {
	mu       sync.Mutex
	closed   bool
	rewound  bool
	plays    int
	fromZero int

	PlayErr   error
	RewindErr error
}

func NewChimePlayer() *ChimePlayer { return &ChimePlayer{} }

func (p *ChimePlayer) Rewind() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.RewindErr != nil {
		return p.RewindErr
	}
	p.rewound = true
	return nil
}

func (p *ChimePlayer) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.PlayErr != nil {
		return p.PlayErr
	}
	p.plays++
	if p.rewound {
		p.fromZero++
		p.rewound = false
	}
	return nil
}

func (p *ChimePlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *ChimePlayer) Plays() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays
}

// PlaysFromStart counts plays that were preceded by a rewind.
func (p *ChimePlayer) PlaysFromStart() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.fromZero
}

func (p *ChimePlayer) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

var _ AudioPlayer = (*ChimePlayer)(nil)
