package core

import (
	"sync"
	"testing"
)

func TestSessionSubmit(t *testing.T) {
	s := NewSession()

	if !s.Submit(120) {
		t.Error("first positive score should be a new high score")
	}
	if s.Submit(80) {
		t.Error("lower score should not replace the high score")
	}
	if s.Submit(120) {
		t.Error("equal score should not count as a new high score")
	}
	if s.HighScore() != 120 {
		t.Errorf("HighScore() = %d, expected 120", s.HighScore())
	}
	if s.Submit(0) {
		t.Error("zero score should never be a high score")
	}
}

func TestSessionConcurrentSubmit(t *testing.T) {
	s := NewSession()
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			s.Submit(score * 10)
		}(i)
	}
	wg.Wait()

	if s.HighScore() != 500 {
		t.Errorf("HighScore() = %d, expected 500", s.HighScore())
	}
}

func TestSessionsFor(t *testing.T) {
	ss := NewSessions()
	a := ss.For("classic")
	b := ss.For("classic")
	c := ss.For("mini")

	if a != b {
		t.Error("same game ID should return the same session")
	}
	if a == c {
		t.Error("different game IDs should have separate sessions")
	}
}
