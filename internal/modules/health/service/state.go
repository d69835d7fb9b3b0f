package service

import (
	"sync/atomic"
	"time"
)

type State struct {
	ready     atomic.Bool
	startedAt time.Time

	lastSweepUnix atomic.Int64
	sweptSymbols  atomic.Int64
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

// TouchSweep отмечает завершение полного прохода по инструментам.
func (s *State) TouchSweep(t time.Time, symbols int) {
	s.lastSweepUnix.Store(t.Unix())
	s.sweptSymbols.Store(int64(symbols))
}

func (s *State) LastSweep() time.Time {
	u := s.lastSweepUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) SweptSymbols() int { return int(s.sweptSymbols.Load()) }

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
