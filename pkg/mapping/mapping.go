package mapping

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/duration"
	"github.com/ctlmap/ctlmap-go/pkg/mode"
	"github.com/ctlmap/ctlmap-go/pkg/source"
)

// Mapping errors.
var (
	ErrInvalidMapping   = errors.New("invalid mapping")
	ErrUnknownTarget    = errors.New("unknown target")
	ErrDuplicateTarget  = errors.New("duplicate target")
	ErrDuplicateMapping = errors.New("duplicate mapping")
)

// Mapping binds a source to a target.
type Mapping struct {
	ID     uuid.UUID
	Name   string
	Source source.Source
	Target string
	Mode   mode.Mode

	// Press is the press duration processor for button sources. Nil
	// passes every value through.
	Press *duration.Processor

	lastInput control.Value
	hasInput  bool
}

// Validate checks that the mapping is complete.
func (m *Mapping) Validate() error {
	if m.ID == uuid.Nil {
		return fmt.Errorf("%w: missing id", ErrInvalidMapping)
	}
	if m.Target == "" {
		return fmt.Errorf("%w: missing target", ErrInvalidMapping)
	}
	if err := m.Source.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMapping, err)
	}
	switch m.Mode.Kind() {
	case mode.KindNone:
		return fmt.Errorf("%w: missing mode", ErrInvalidMapping)
	case mode.KindAbsolute, mode.KindToggle:
		if m.Source.Character.IsEncoder() {
			return fmt.Errorf("%w: %v mode needs an absolute source, got %v",
				ErrInvalidMapping, m.Mode.Kind(), m.Source.Character)
		}
	case mode.KindRelative:
		if err := m.Mode.RelativeMode().Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidMapping, err)
		}
	}
	if m.Press != nil && m.Source.Character != source.CharacterButton {
		return fmt.Errorf("%w: press duration needs a button source", ErrInvalidMapping)
	}
	return nil
}

// String returns the name, or the ID if the mapping has no name.
func (m *Mapping) String() string {
	if m.Name != "" {
		return m.Name
	}
	return m.ID.String()
}

// WantsToBePolled reports whether Session.Poll must visit the mapping.
func (m *Mapping) WantsToBePolled() bool {
	return (m.Press != nil && m.Press.WantsToBePolled()) || m.Mode.WantsToBePolled()
}
