package mapping

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/log"
	"github.com/ctlmap/ctlmap-go/pkg/source"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// SessionConfig configures a Session.
type SessionConfig struct {
	// Logger is used for operational logging. If nil, logging is disabled.
	Logger *slog.Logger

	// Trace receives control events. If nil, tracing is disabled.
	Trace log.Logger

	// Clock returns the current time for trace events. Defaults to time.Now.
	Clock func() time.Time
}

// Session routes MIDI messages through mappings to targets.
// It is safe for concurrent use.
type Session struct {
	mu sync.Mutex

	id     uuid.UUID
	logger *slog.Logger
	trace  log.Logger
	now    func() time.Time

	targets     map[string]*control.Parameter
	targetOrder []string
	mappings    []*Mapping
	byID        map[uuid.UUID]*Mapping
}

// NewSession creates an empty session.
func NewSession(cfg SessionConfig) *Session {
	s := &Session{
		id:      uuid.New(),
		logger:  cfg.Logger,
		trace:   cfg.Trace,
		now:     cfg.Clock,
		targets: make(map[string]*control.Parameter),
		byID:    make(map[uuid.UUID]*Mapping),
	}
	if s.trace == nil {
		s.trace = log.NoopLogger{}
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ID returns the session ID used in trace events.
func (s *Session) ID() uuid.UUID { return s.id }

// AddTarget registers a target. The session owns p from then on; read it
// through Target and Targets.
func (s *Session) AddTarget(p *control.Parameter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.targets[p.Name()]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTarget, p.Name())
	}
	s.targets[p.Name()] = p
	s.targetOrder = append(s.targetOrder, p.Name())
	return nil
}

// AddMapping validates and registers a mapping. Its target must exist.
func (s *Session) AddMapping(m *Mapping) error {
	if err := m.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.targets[m.Target]; !exists {
		return fmt.Errorf("%w: %s", ErrUnknownTarget, m.Target)
	}
	if _, exists := s.byID[m.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateMapping, m.ID)
	}

	if abs := m.Mode.AbsoluteMode(); abs != nil && abs.OnTransformationError == nil {
		abs.OnTransformationError = func(err error) {
			s.debug("transformation failed", "mapping", m.String(), "error", err)
			s.emit(m, log.Event{
				Category: log.CategoryError,
				Error: &log.ErrorEventData{
					Stage:   log.StageTransformation,
					Message: err.Error(),
					Context: m.Target,
				},
			})
		}
	}

	s.mappings = append(s.mappings, m)
	s.byID[m.ID] = m
	return nil
}

// TargetInfo is a snapshot of a target taken under the session lock.
type TargetInfo struct {
	Name  string
	Type  control.Type
	Value control.AbsoluteValue
	Known bool

	// Steps is the accumulated increment count of a relative target.
	Steps int64
}

// String returns the current value, the step count of a relative target, or
// "unknown".
func (ti TargetInfo) String() string {
	switch {
	case ti.Type.IsRelative():
		return fmt.Sprintf("%d steps", ti.Steps)
	case ti.Known:
		return ti.Value.String()
	default:
		return "unknown"
	}
}

func targetInfo(p *control.Parameter) TargetInfo {
	v, ok := p.CurrentValue()
	return TargetInfo{
		Name:  p.Name(),
		Type:  p.ControlType(),
		Value: v,
		Known: ok,
		Steps: p.Steps(),
	}
}

// Target returns a snapshot of a target by name.
func (s *Session) Target(name string) (TargetInfo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.targets[name]
	if !ok {
		return TargetInfo{}, false
	}
	return targetInfo(p), true
}

// Targets returns snapshots of all targets in registration order.
func (s *Session) Targets() []TargetInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TargetInfo, 0, len(s.targetOrder))
	for _, name := range s.targetOrder {
		out = append(out, targetInfo(s.targets[name]))
	}
	return out
}

// Mappings returns all mappings in registration order. Callers must not
// modify them.
func (s *Session) Mappings() []*Mapping {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.mappings)
}

// HandleMessage feeds msg to every matching mapping and returns the feedback
// messages for all targets that changed.
func (s *Session) HandleMessage(msg midi.Message) []midi.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed []string
	for _, m := range s.mappings {
		v, err := m.Source.Decode(msg)
		if errors.Is(err, source.ErrNotMatched) {
			continue
		}
		if err != nil {
			s.debug("decode failed", "mapping", m.String(), "message", msg.String(), "error", err)
			s.emit(m, log.Event{
				Category: log.CategoryError,
				Error: &log.ErrorEventData{
					Stage:   log.StageDecode,
					Message: err.Error(),
					Context: m.Source.String(),
				},
			})
			continue
		}

		s.emit(m, log.Event{
			Category: log.CategoryInput,
			Input: &log.InputEvent{
				Source: m.Source.String(),
				Raw:    msg.Bytes(),
				Value:  log.NewValueData(v),
			},
		})

		if m.Press != nil {
			u, _ := v.Absolute()
			fired, ok := m.Press.Process(u)
			if !ok {
				s.suppressed(m, log.SuppressedByPressDuration, v)
				continue
			}
			v = control.Absolute(fired)
		}

		if s.apply(m, v) {
			changed = appendUnique(changed, m.Target)
		}
	}
	return s.feedbackFor(changed)
}

// Poll drives press duration timeouts and polled transformations. It returns
// the feedback messages for all targets that changed.
func (s *Session) Poll() []midi.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	var changed []string
	for _, m := range s.mappings {
		if m.Press != nil {
			if u, ok := m.Press.Poll(); ok {
				if s.apply(m, control.Absolute(u)) {
					changed = appendUnique(changed, m.Target)
				}
				continue
			}
		}
		if m.Mode.WantsToBePolled() && m.hasInput {
			if s.apply(m, m.lastInput) {
				changed = appendUnique(changed, m.Target)
			}
		}
	}
	return s.feedbackFor(changed)
}

// WantsToBePolled reports whether any mapping needs Poll.
func (s *Session) WantsToBePolled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.ContainsFunc(s.mappings, (*Mapping).WantsToBePolled)
}

// Run calls Poll every interval until ctx is done, passing non-empty feedback
// to out.
func (s *Session) Run(ctx context.Context, interval time.Duration, out func([]midi.Message)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if msgs := s.Poll(); len(msgs) > 0 && out != nil {
				out(msgs)
			}
		}
	}
}

// SetTargetValue changes a target from outside any mapping, e.g. when the
// parameter was moved in the host application. It returns the feedback
// messages for the target.
func (s *Session) SetTargetValue(name string, u value.UnitValue) ([]midi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.targets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
	}
	p.Apply(control.Absolute(u))
	return s.feedbackFor([]string{name}), nil
}

// Feedback returns the feedback messages for a target.
func (s *Session) Feedback(name string) ([]midi.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.targets[name]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, name)
	}
	return s.feedbackFor([]string{name}), nil
}

// apply runs v through the mode and applies the result. It reports whether
// the target changed. Caller must hold s.mu.
func (s *Session) apply(m *Mapping, v control.Value) bool {
	if _, ok := v.Absolute(); ok {
		m.lastInput, m.hasInput = v, true
	}

	target := s.targets[m.Target]
	out, ok := m.Mode.Process(v, target)
	if !ok {
		s.suppressed(m, log.SuppressedByMode, v)
		return false
	}
	if !target.Apply(out) {
		s.suppressed(m, log.SuppressedByTarget, out)
		return false
	}

	s.emit(m, log.Event{
		Category: log.CategoryOutput,
		Output: &log.OutputEvent{
			Target: m.Target,
			Mode:   m.Mode.Kind().String(),
			Value:  log.NewValueData(out),
		},
	})
	return true
}

// feedbackFor builds feedback messages for every mapping bound to one of the
// given targets. Targets without a known value produce none. Caller must hold
// s.mu.
func (s *Session) feedbackFor(targets []string) []midi.Message {
	var msgs []midi.Message
	for _, name := range targets {
		current, ok := s.targets[name].CurrentValue()
		if !ok {
			continue
		}
		tv := current.ToUnitValue()
		for _, m := range s.mappings {
			if m.Target != name || m.Source.Character.IsEncoder() {
				continue
			}
			sv := m.Mode.Feedback(tv)
			msg := m.Source.Feedback(sv)
			msgs = append(msgs, msg)

			s.emit(m, log.Event{
				Direction: log.DirectionFeedback,
				Category:  log.CategoryFeedback,
				Feedback: &log.FeedbackEvent{
					Target:      name,
					TargetValue: tv.Float64(),
					SourceValue: sv.Float64(),
					Raw:         msg.Bytes(),
				},
			})
		}
	}
	return msgs
}

func (s *Session) suppressed(m *Mapping, reason log.SuppressReason, v control.Value) {
	s.emit(m, log.Event{
		Category: log.CategorySuppressed,
		Suppressed: &log.SuppressedEvent{
			Reason: reason,
			Value:  log.NewValueData(v),
		},
	})
}

func (s *Session) emit(m *Mapping, event log.Event) {
	event.Timestamp = s.now()
	event.SessionID = s.id.String()
	event.MappingID = m.ID.String()
	s.trace.Log(event)
}

func (s *Session) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func appendUnique(names []string, name string) []string {
	if slices.Contains(names, name) {
		return names
	}
	return append(names, name)
}
