package haste

import "math"

// Stacks is the kill-stack counter.
//
// States are 0..max. A gain refreshes the timestamp only when the count
// actually moves; decay removes one stack per full interval and advances the
// timestamp by exactly that interval, so partial progress toward the next
// decay is kept.
type Stacks struct {
	count     int
	lastEvent float64
}

// Count returns the current number of stacks.
func (s *Stacks) Count() int {
	return s.count
}

// LastEvent returns the world time decay is measured from.
func (s *Stacks) LastEvent() float64 {
	return s.lastEvent
}

// Gain adds one stack, saturating at maxStacks.
// Returns true if the count changed. At the cap nothing changes, so decay
// keeps its original schedule.
func (s *Stacks) Gain(now float64, maxStacks int) bool {
	next := min(s.count+1, maxStacks)
	if next == s.count {
		return false
	}
	s.count = next
	s.lastEvent = now
	return true
}

// Decay removes every stack whose interval has fully elapsed by now.
// Several intervals may collapse at once (e.g. after a pause).
// Returns the number of stacks removed.
func (s *Stacks) Decay(now, interval float64) int {
	if interval <= 0 {
		return 0
	}
	removed := 0
	for s.count > 0 && now-s.lastEvent >= interval {
		s.count--
		s.lastEvent += interval
		removed++
	}
	return removed
}

// Clear drops all stacks immediately. Returns true if any were held.
func (s *Stacks) Clear() bool {
	had := s.count > 0
	s.count = 0
	return had
}

// Reset returns the counter to its load-time state.
func (s *Stacks) Reset() {
	s.count = 0
	s.lastEvent = 0
}

// Multiplier returns the compounding bonus (1+perStack)^count.
func Multiplier(perStack float64, count int) float64 {
	return math.Pow(1+perStack, float64(count))
}
