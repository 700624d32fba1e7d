package log

import "time"

// Stats summarizes a stream of events.
type Stats struct {
	Total      int
	ByCategory map[Category]int
	ByMapping  map[string]int
	Suppressed map[SuppressReason]int
	First      time.Time
	Last       time.Time
}

// NewStats returns empty statistics.
func NewStats() *Stats {
	return &Stats{
		ByCategory: make(map[Category]int),
		ByMapping:  make(map[string]int),
		Suppressed: make(map[SuppressReason]int),
	}
}

// Add counts an event.
func (s *Stats) Add(event Event) {
	s.Total++
	s.ByCategory[event.Category]++
	if event.MappingID != "" {
		s.ByMapping[event.MappingID]++
	}
	if event.Suppressed != nil {
		s.Suppressed[event.Suppressed.Reason]++
	}
	if s.First.IsZero() || event.Timestamp.Before(s.First) {
		s.First = event.Timestamp
	}
	if event.Timestamp.After(s.Last) {
		s.Last = event.Timestamp
	}
}

// Duration returns the time between the first and the last event.
func (s *Stats) Duration() time.Duration {
	return s.Last.Sub(s.First)
}
