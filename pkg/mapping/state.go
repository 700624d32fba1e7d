package mapping

import (
	"gitlab.com/gomidi/midi/v2"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/persistence"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// State returns the known values of all absolute targets.
func (s *Session) State() *persistence.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := &persistence.State{}
	for _, name := range s.targetOrder {
		p := s.targets[name]
		if p.ControlType().IsRelative() {
			continue
		}
		v, ok := p.CurrentValue()
		if !ok {
			continue
		}
		state.Targets = append(state.Targets, persistence.TargetState{
			Name:  name,
			Value: v.ToUnitValue().Float64(),
		})
	}
	return state
}

// Restore sets target values from a saved state and returns the feedback
// messages for the restored targets. Entries for unknown targets or with
// out-of-range values are skipped.
func (s *Session) Restore(state *persistence.State) []midi.Message {
	if state == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var restored []string
	for _, ts := range state.Targets {
		p, ok := s.targets[ts.Name]
		if !ok || p.ControlType().IsRelative() {
			s.debug("skipping saved target", "target", ts.Name)
			continue
		}
		u, err := value.NewUnitValue(ts.Value)
		if err != nil {
			s.debug("skipping saved target", "target", ts.Name, "error", err)
			continue
		}
		p.Apply(control.Absolute(u))
		restored = appendUnique(restored, ts.Name)
	}
	return s.feedbackFor(restored)
}
