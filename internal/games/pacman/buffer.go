package pacman

// DirectionBuffer tracks held directions in press order.
// The most recently pressed direction that is still held wins.
type DirectionBuffer struct {
	held []Direction
}

// Press records d as the most recent direction.
// Pressing a held direction moves it to the end instead of duplicating it.
func (b *DirectionBuffer) Press(d Direction) {
	if d == DirNone {
		return
	}
	b.remove(d)
	b.held = append(b.held, d)
}

// Release forgets d. Releasing a direction that is not held does nothing.
func (b *DirectionBuffer) Release(d Direction) {
	b.remove(d)
}

// Current returns the most recently pressed held direction, or DirNone.
func (b *DirectionBuffer) Current() Direction {
	if len(b.held) == 0 {
		return DirNone
	}
	return b.held[len(b.held)-1]
}

// Held returns the number of held directions.
func (b *DirectionBuffer) Held() int {
	return len(b.held)
}

// Clear releases everything.
func (b *DirectionBuffer) Clear() {
	b.held = b.held[:0]
}

func (b *DirectionBuffer) remove(d Direction) {
	for i, h := range b.held {
		if h == d {
			b.held = append(b.held[:i], b.held[i+1:]...)
			return
		}
	}
}
