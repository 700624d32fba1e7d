package mapping

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/duration"
	"github.com/ctlmap/ctlmap-go/pkg/log"
	"github.com/ctlmap/ctlmap-go/pkg/mode"
	"github.com/ctlmap/ctlmap-go/pkg/persistence"
	"github.com/ctlmap/ctlmap-go/pkg/source"
	"github.com/ctlmap/ctlmap-go/pkg/transform"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// recorder collects trace events.
type recorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recorder) Log(event log.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recorder) categories() []log.Category {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Category
	for _, e := range r.events {
		out = append(out, e.Category)
	}
	return out
}

func (r *recorder) suppressed() []log.SuppressReason {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.SuppressReason
	for _, e := range r.events {
		if e.Suppressed != nil {
			out = append(out, e.Suppressed.Reason)
		}
	}
	return out
}

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestSession(t *testing.T) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	return NewSession(SessionConfig{Trace: rec}), rec
}

func addTarget(t *testing.T, s *Session, name string, typ control.Type, current float64) *control.Parameter {
	t.Helper()
	p := control.NewParameter(name, typ)
	if current >= 0 {
		p.Set(control.Continuous(value.ClampUnitValue(current)))
	}
	require.NoError(t, s.AddTarget(p))
	return p
}

func fader(number uint8) source.Source {
	return source.Source{Kind: source.KindControlChange, Number: number, Character: source.CharacterRange}
}

func currentOf(t *testing.T, p *control.Parameter) float64 {
	t.Helper()
	v, ok := p.CurrentValue()
	require.True(t, ok, "target %s has no value", p.Name())
	return v.ToUnitValue().Float64()
}

func TestSessionAbsoluteFader(t *testing.T) {
	s, rec := newTestSession(t)
	vol := addTarget(t, s, "volume", control.AbsoluteContinuous, 0)
	m := &Mapping{ID: uuid.New(), Source: fader(7), Target: "volume", Mode: mode.Absolute(mode.NewAbsoluteMode())}
	require.NoError(t, s.AddMapping(m))

	fb := s.HandleMessage(midi.ControlChange(0, 7, 127))
	assert.Equal(t, 1.0, currentOf(t, vol))
	require.Len(t, fb, 1)
	assert.Equal(t, midi.ControlChange(0, 7, 127), fb[0])
	assert.Equal(t, []log.Category{log.CategoryInput, log.CategoryOutput, log.CategoryFeedback}, rec.categories())

	// Same value again is suppressed by the mode.
	fb = s.HandleMessage(midi.ControlChange(0, 7, 127))
	assert.Empty(t, fb)
	assert.Equal(t, []log.SuppressReason{log.SuppressedByMode}, rec.suppressed())

	// Other controls are ignored.
	assert.Empty(t, s.HandleMessage(midi.ControlChange(0, 8, 10)))
}

func TestSessionTraceEventHeader(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	rec := &recorder{}
	s := NewSession(SessionConfig{Trace: rec, Clock: clock.Now})
	addTarget(t, s, "volume", control.AbsoluteContinuous, 0)
	m := &Mapping{ID: uuid.New(), Source: fader(7), Target: "volume", Mode: mode.Absolute(mode.NewAbsoluteMode())}
	require.NoError(t, s.AddMapping(m))

	s.HandleMessage(midi.ControlChange(0, 7, 64))
	require.NotEmpty(t, rec.events)
	for _, e := range rec.events {
		assert.Equal(t, s.ID().String(), e.SessionID)
		assert.Equal(t, m.ID.String(), e.MappingID)
		assert.Equal(t, clock.t, e.Timestamp)
	}
	assert.Equal(t, log.DirectionFeedback, rec.events[len(rec.events)-1].Direction)
}

func TestSessionEncoderFeedbackToOtherMappings(t *testing.T) {
	s, _ := newTestSession(t)
	vol := addTarget(t, s, "volume", control.AbsoluteContinuous, 0.5)

	enc := &Mapping{
		ID:     uuid.New(),
		Source: source.Source{Kind: source.KindControlChange, Number: 16, Character: source.CharacterEncoder1},
		Target: "volume",
		Mode:   mode.Relative(mode.NewRelativeMode()),
	}
	led := &Mapping{ID: uuid.New(), Source: fader(17), Target: "volume", Mode: mode.Absolute(mode.NewAbsoluteMode())}
	require.NoError(t, s.AddMapping(enc))
	require.NoError(t, s.AddMapping(led))

	fb := s.HandleMessage(midi.ControlChange(0, 16, 1))
	assert.InDelta(t, 0.51, currentOf(t, vol), 1e-9)

	// Encoders get no feedback; the LED ring mapping does.
	require.Len(t, fb, 1)
	var ch, num, val uint8
	require.True(t, fb[0].GetControlChange(&ch, &num, &val))
	assert.Equal(t, uint8(17), num)
	assert.Equal(t, source.ToSevenBit(value.ClampUnitValue(0.51)), val)
}

func TestSessionDecodeError(t *testing.T) {
	s, rec := newTestSession(t)
	addTarget(t, s, "volume", control.AbsoluteContinuous, 0.5)
	enc := &Mapping{
		ID:     uuid.New(),
		Source: source.Source{Kind: source.KindControlChange, Number: 16, Character: source.CharacterEncoder1},
		Target: "volume",
		Mode:   mode.Relative(mode.NewRelativeMode()),
	}
	require.NoError(t, s.AddMapping(enc))

	assert.Empty(t, s.HandleMessage(midi.ControlChange(0, 16, 0)))
	require.Len(t, rec.events, 1)
	require.NotNil(t, rec.events[0].Error)
	assert.Equal(t, log.StageDecode, rec.events[0].Error.Stage)
}

func TestSessionRelativeTarget(t *testing.T) {
	s, _ := newTestSession(t)
	scroll := addTarget(t, s, "scroll", control.RelativeType, -1)
	m := &Mapping{
		ID:     uuid.New(),
		Source: source.Source{Kind: source.KindControlChange, Number: 20, Character: source.CharacterEncoder2},
		Target: "scroll",
		Mode:   mode.Relative(mode.NewRelativeMode()),
	}
	require.NoError(t, s.AddMapping(m))

	s.HandleMessage(midi.ControlChange(0, 20, 65))
	s.HandleMessage(midi.ControlChange(0, 20, 65))
	s.HandleMessage(midi.ControlChange(0, 20, 63))
	assert.Equal(t, int64(1), scroll.Steps())
}

func TestSessionToggleWithPressDuration(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	rec := &recorder{}
	s := NewSession(SessionConfig{Trace: rec})
	mute := addTarget(t, s, "mute", control.AbsoluteContinuous, 0)

	window, err := duration.NewWindow(500*time.Millisecond, time.Duration(duration.Infinite))
	require.NoError(t, err)
	m := &Mapping{
		ID:     uuid.New(),
		Source: source.Source{Kind: source.KindNote, Channel: 9, Number: 36, Character: source.CharacterButton},
		Target: "mute",
		Mode:   mode.Toggle(mode.NewToggleMode()),
		Press: duration.NewProcessor(duration.Config{
			FireMode: duration.WhenButtonReleased,
			Window:   window,
		}, duration.WithClock(clock.Now)),
	}
	require.NoError(t, s.AddMapping(m))

	// Short tap: nothing happens.
	s.HandleMessage(midi.NoteOn(9, 36, 100))
	clock.Advance(100 * time.Millisecond)
	s.HandleMessage(midi.NoteOff(9, 36))
	assert.Equal(t, 0.0, currentOf(t, mute))

	// Long press toggles on release.
	s.HandleMessage(midi.NoteOn(9, 36, 100))
	clock.Advance(time.Second)
	fb := s.HandleMessage(midi.NoteOff(9, 36))
	assert.Equal(t, 1.0, currentOf(t, mute))
	require.Len(t, fb, 1)
	assert.Equal(t, midi.NoteOn(9, 36, 127), fb[0])

	assert.Contains(t, rec.suppressed(), log.SuppressedByPressDuration)
}

func TestSessionPollAfterTimeout(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)}
	s, _ := newTestSession(t)
	trigger := addTarget(t, s, "trigger", control.AbsoluteContinuousRetriggerable, 0)

	window, err := duration.NewWindow(200*time.Millisecond, time.Duration(duration.Infinite))
	require.NoError(t, err)
	m := &Mapping{
		ID:     uuid.New(),
		Source: source.Source{Kind: source.KindNote, Number: 40, Character: source.CharacterButton},
		Target: "trigger",
		Mode:   mode.Absolute(mode.NewAbsoluteMode()),
		Press: duration.NewProcessor(duration.Config{
			FireMode: duration.AfterTimeoutKeepFiring,
			Window:   window,
		}, duration.WithClock(clock.Now)),
	}
	require.NoError(t, s.AddMapping(m))
	assert.True(t, s.WantsToBePolled())

	s.HandleMessage(midi.NoteOn(0, 40, 127))
	assert.Empty(t, s.Poll())

	clock.Advance(300 * time.Millisecond)
	assert.Len(t, s.Poll(), 1)
	assert.Len(t, s.Poll(), 1, "keep firing retriggers")
	assert.Equal(t, 1.0, currentOf(t, trigger))

	s.HandleMessage(midi.NoteOff(0, 40))
	assert.Empty(t, s.Poll())
}

func TestSessionPolledTransformation(t *testing.T) {
	s, _ := newTestSession(t)
	vol := addTarget(t, s, "volume", control.AbsoluteContinuous, 0)

	// Moves the target a quarter further on every evaluation.
	tr, err := transform.NewLua(`
wants_to_be_polled = true
function transform(x, y)
  return math.min(y + 0.25, 1)
end`)
	require.NoError(t, err)

	abs := mode.NewAbsoluteMode()
	abs.Transformation = tr
	require.NoError(t, s.AddMapping(&Mapping{ID: uuid.New(), Source: fader(1), Target: "volume", Mode: mode.Absolute(abs)}))
	assert.True(t, s.WantsToBePolled())

	s.HandleMessage(midi.ControlChange(0, 1, 127))
	assert.InDelta(t, 0.25, currentOf(t, vol), 1e-9)
	s.Poll()
	assert.InDelta(t, 0.5, currentOf(t, vol), 1e-9)
}

func TestSessionTransformationErrorTraced(t *testing.T) {
	s, rec := newTestSession(t)
	vol := addTarget(t, s, "volume", control.AbsoluteContinuous, 0)

	abs := mode.NewAbsoluteMode()
	abs.Transformation = transform.Func(func(float64, float64) (float64, error) {
		return 0, errors.New("script failed")
	})
	require.NoError(t, s.AddMapping(&Mapping{ID: uuid.New(), Source: fader(1), Target: "volume", Mode: mode.Absolute(abs)}))

	s.HandleMessage(midi.ControlChange(0, 1, 127))
	assert.Equal(t, 1.0, currentOf(t, vol), "falls back to the untransformed value")
	assert.Contains(t, rec.categories(), log.CategoryError)
}

func TestSessionSetTargetValue(t *testing.T) {
	s, _ := newTestSession(t)
	addTarget(t, s, "pan", control.AbsoluteContinuous, 0)
	abs := mode.NewAbsoluteMode()
	abs.Reverse = true
	require.NoError(t, s.AddMapping(&Mapping{ID: uuid.New(), Source: fader(10), Target: "pan", Mode: mode.Absolute(abs)}))

	fb, err := s.SetTargetValue("pan", value.UnitValueMax)
	require.NoError(t, err)
	require.Len(t, fb, 1)
	assert.Equal(t, midi.ControlChange(0, 10, 0), fb[0])

	_, err = s.SetTargetValue("missing", value.UnitValueMax)
	assert.ErrorIs(t, err, ErrUnknownTarget)

	fb, err = s.Feedback("pan")
	require.NoError(t, err)
	assert.Len(t, fb, 1)
}

func TestSessionRegistrationErrors(t *testing.T) {
	s, _ := newTestSession(t)
	addTarget(t, s, "volume", control.AbsoluteContinuous, 0)

	assert.ErrorIs(t, s.AddTarget(control.NewParameter("volume", control.AbsoluteContinuous)), ErrDuplicateTarget)

	m := &Mapping{ID: uuid.New(), Source: fader(1), Target: "volume", Mode: mode.Absolute(mode.NewAbsoluteMode())}
	require.NoError(t, s.AddMapping(m))
	assert.ErrorIs(t, s.AddMapping(m), ErrDuplicateMapping)

	assert.ErrorIs(t, s.AddMapping(&Mapping{ID: uuid.New(), Source: fader(2), Target: "nope", Mode: m.Mode}), ErrUnknownTarget)
	assert.ErrorIs(t, s.AddMapping(&Mapping{Source: fader(2), Target: "volume", Mode: m.Mode}), ErrInvalidMapping)
	assert.ErrorIs(t, s.AddMapping(&Mapping{ID: uuid.New(), Source: fader(2), Target: "volume"}), ErrInvalidMapping)

	assert.Len(t, s.Targets(), 1)
	_, ok := s.Target("volume")
	assert.True(t, ok)
}

func TestSessionTargetSnapshots(t *testing.T) {
	s, _ := newTestSession(t)
	addTarget(t, s, "volume", control.AbsoluteContinuous, 0.25)
	addTarget(t, s, "scroll", control.RelativeType, -1)
	addTarget(t, s, "pan", control.AbsoluteContinuous, -1)

	ti, ok := s.Target("volume")
	require.True(t, ok)
	assert.True(t, ti.Known)
	assert.Equal(t, 0.25, ti.Value.ToUnitValue().Float64())
	assert.Equal(t, "0.25", ti.String())

	_, err := s.SetTargetValue("volume", value.ClampUnitValue(0.75))
	require.NoError(t, err)
	assert.Equal(t, 0.25, ti.Value.ToUnitValue().Float64(), "snapshot must not follow the target")

	infos := s.Targets()
	require.Len(t, infos, 3)
	assert.Equal(t, []string{"volume", "scroll", "pan"}, []string{infos[0].Name, infos[1].Name, infos[2].Name})
	assert.Equal(t, "0 steps", infos[1].String())
	assert.Equal(t, "unknown", infos[2].String())

	_, ok = s.Target("nope")
	assert.False(t, ok)
}

func TestSessionConcurrentPollAndTargets(t *testing.T) {
	s, _ := newTestSession(t)
	addTarget(t, s, "mute", control.AbsoluteContinuousRetriggerable, 0)

	window, err := duration.NewWindow(time.Nanosecond, time.Duration(duration.Infinite))
	require.NoError(t, err)
	require.NoError(t, s.AddMapping(&Mapping{
		ID:     uuid.New(),
		Source: source.Source{Kind: source.KindNote, Number: 36, Character: source.CharacterButton},
		Target: "mute",
		Mode:   mode.Toggle(mode.NewToggleMode()),
		Press: duration.NewProcessor(duration.Config{
			FireMode: duration.AfterTimeoutKeepFiring,
			Window:   window,
		}),
	}))
	s.HandleMessage(midi.NoteOn(0, 36, 127))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 200 {
			s.Poll()
		}
	}()

	for {
		select {
		case <-done:
			ti, ok := s.Target("mute")
			require.True(t, ok)
			assert.True(t, ti.Known)
			return
		default:
		}
		for _, ti := range s.Targets() {
			_ = ti.String()
		}
	}
}

func TestSessionRun(t *testing.T) {
	s, _ := newTestSession(t)
	addTarget(t, s, "volume", control.AbsoluteContinuous, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err := s.Run(ctx, time.Millisecond, func([]midi.Message) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSessionStateRoundTrip(t *testing.T) {
	s, _ := newTestSession(t)
	addTarget(t, s, "volume", control.AbsoluteContinuous, 0.25)
	addTarget(t, s, "pan", control.AbsoluteContinuous, -1)
	addTarget(t, s, "scroll", control.RelativeType, -1)
	require.NoError(t, s.AddMapping(&Mapping{ID: uuid.New(), Source: fader(7), Target: "volume", Mode: mode.Absolute(mode.NewAbsoluteMode())}))

	state := s.State()
	require.Len(t, state.Targets, 1, "unknown and relative targets are not saved")
	assert.Equal(t, persistence.TargetState{Name: "volume", Value: 0.25}, state.Targets[0])

	restored, _ := newTestSession(t)
	vol := addTarget(t, restored, "volume", control.AbsoluteContinuous, -1)
	require.NoError(t, restored.AddMapping(&Mapping{ID: uuid.New(), Source: fader(7), Target: "volume", Mode: mode.Absolute(mode.NewAbsoluteMode())}))

	state.Targets = append(state.Targets,
		persistence.TargetState{Name: "gone", Value: 0.5},
		persistence.TargetState{Name: "volume", Value: 7},
	)
	fb := restored.Restore(state)
	assert.Equal(t, 0.25, currentOf(t, vol))
	require.Len(t, fb, 1)
	assert.Equal(t, midi.ControlChange(0, 7, source.ToSevenBit(value.ClampUnitValue(0.25))), fb[0])

	assert.Nil(t, restored.Restore(nil))
}
