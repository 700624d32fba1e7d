package mapping

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/ctlmap/ctlmap-go/pkg/control"
	"github.com/ctlmap/ctlmap-go/pkg/duration"
	"github.com/ctlmap/ctlmap-go/pkg/mode"
	"github.com/ctlmap/ctlmap-go/pkg/source"
	"github.com/ctlmap/ctlmap-go/pkg/transform"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// ErrInvalidFile is returned for structurally invalid mapping files.
var ErrInvalidFile = errors.New("invalid mapping file")

// File is the decoded form of a mapping file.
type File struct {
	Targets  []*control.Parameter
	Mappings []*Mapping
}

type yamlFile struct {
	Targets  []yaml.Node `yaml:"targets"`
	Mappings []yaml.Node `yaml:"mappings"`
}

type yamlTarget struct {
	Name  string   `yaml:"name"`
	Type  string   `yaml:"type"`
	Step  float64  `yaml:"step"`
	Value *float64 `yaml:"value"`
}

type yamlMapping struct {
	ID     string     `yaml:"id"`
	Name   string     `yaml:"name"`
	Source yamlSource `yaml:"source"`
	Target string     `yaml:"target"`
	Mode   yamlMode   `yaml:"mode"`
	Press  *yamlPress `yaml:"press"`
}

type yamlSource struct {
	Kind      string `yaml:"kind"`
	Channel   int    `yaml:"channel"`
	Number    int    `yaml:"number"`
	Character string `yaml:"character"`
}

type yamlMode struct {
	Kind           string    `yaml:"kind"`
	SourceInterval []float64 `yaml:"source_interval"`
	TargetInterval []float64 `yaml:"target_interval"`
	Reverse        bool      `yaml:"reverse"`
	Rotate         bool      `yaml:"rotate"`
	StepCount      []int32   `yaml:"step_count"`
	StepSize       *float64  `yaml:"step_size"`
	OutOfRange     string    `yaml:"out_of_range"`
	Rounding       string    `yaml:"rounding"`
	Transformation string    `yaml:"transformation"`
}

type yamlPress struct {
	FireMode string `yaml:"fire_mode"`
	Min      string `yaml:"min"`
	Max      string `yaml:"max"`
}

// LoadFile reads a mapping file from disk.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a mapping file. Errors in targets and mappings carry the line
// number of the offending entry.
func Parse(data []byte) (*File, error) {
	var y yamlFile
	if err := yaml.Unmarshal(data, &y); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFile, err)
	}

	f := &File{}
	for i := range y.Targets {
		node := &y.Targets[i]
		p, err := parseTarget(node)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		f.Targets = append(f.Targets, p)
	}
	for i := range y.Mappings {
		node := &y.Mappings[i]
		m, err := parseMapping(node)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}
		f.Mappings = append(f.Mappings, m)
	}
	return f, nil
}

// NewSessionFromFile creates a session holding all targets and mappings of f.
func NewSessionFromFile(f *File, cfg SessionConfig) (*Session, error) {
	s := NewSession(cfg)
	for _, p := range f.Targets {
		if err := s.AddTarget(p); err != nil {
			return nil, err
		}
	}
	for _, m := range f.Mappings {
		if err := s.AddMapping(m); err != nil {
			return nil, fmt.Errorf("mapping %s: %w", m, err)
		}
	}
	return s, nil
}

func parseTarget(node *yaml.Node) (*control.Parameter, error) {
	var y yamlTarget
	if err := node.Decode(&y); err != nil {
		return nil, err
	}
	if y.Name == "" {
		return nil, fmt.Errorf("%w: target without name", ErrInvalidFile)
	}

	typ, err := parseControlType(y.Type, y.Step)
	if err != nil {
		return nil, fmt.Errorf("target %s: %w", y.Name, err)
	}
	p := control.NewParameter(y.Name, typ)
	if y.Value != nil {
		u, err := value.NewUnitValue(*y.Value)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", y.Name, err)
		}
		p.Apply(control.Absolute(u))
	}
	return p, nil
}

func parseControlType(name string, step float64) (control.Type, error) {
	switch normalize(name) {
	case "", "ABSOLUTE_CONTINUOUS":
		return control.AbsoluteContinuous, nil
	case "ABSOLUTE_CONTINUOUS_RETRIGGERABLE":
		return control.AbsoluteContinuousRetriggerable, nil
	case "RELATIVE":
		return control.RelativeType, nil
	case "VIRTUAL_MULTI":
		return control.VirtualMulti, nil
	case "VIRTUAL_BUTTON":
		return control.VirtualButton, nil
	}

	u, err := value.NewUnitValue(step)
	if err != nil {
		return control.Type{}, err
	}
	switch normalize(name) {
	case "ABSOLUTE_CONTINUOUS_ROUNDABLE":
		return control.AbsoluteContinuousRoundable(u)
	case "ABSOLUTE_DISCRETE":
		return control.AbsoluteDiscrete(u)
	default:
		return control.Type{}, fmt.Errorf("%w: unknown control type %q", ErrInvalidFile, name)
	}
}

func parseMapping(node *yaml.Node) (*Mapping, error) {
	var y yamlMapping
	if err := node.Decode(&y); err != nil {
		return nil, err
	}

	m := &Mapping{Name: y.Name, Target: y.Target}
	if y.ID == "" {
		m.ID = uuid.New()
	} else {
		id, err := uuid.Parse(y.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: id: %w", ErrInvalidMapping, err)
		}
		m.ID = id
	}

	src, err := parseSource(y.Source)
	if err != nil {
		return nil, err
	}
	m.Source = src

	md, err := parseMode(y.Mode)
	if err != nil {
		return nil, err
	}
	m.Mode = md

	if y.Press != nil {
		p, err := parsePress(*y.Press)
		if err != nil {
			return nil, err
		}
		m.Press = p
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func parseSource(y yamlSource) (source.Source, error) {
	kind, err := source.ParseMessageKind(y.Kind)
	if err != nil {
		return source.Source{}, err
	}
	character := source.CharacterRange
	if y.Character != "" {
		if character, err = source.ParseCharacter(y.Character); err != nil {
			return source.Source{}, err
		}
	}
	if y.Channel < 1 || y.Channel > source.MaxChannel+1 {
		return source.Source{}, fmt.Errorf("%w: channel %d not in 1..16", source.ErrInvalidSource, y.Channel)
	}
	if y.Number < 0 || y.Number > source.MaxNumber {
		return source.Source{}, fmt.Errorf("%w: number %d", source.ErrInvalidSource, y.Number)
	}
	return source.Source{
		Kind:      kind,
		Channel:   uint8(y.Channel - 1),
		Number:    uint8(y.Number),
		Character: character,
	}, nil
}

func parseMode(y yamlMode) (mode.Mode, error) {
	switch normalize(y.Kind) {
	case "ABSOLUTE":
		m := mode.NewAbsoluteMode()
		var err error
		if m.SourceInterval, err = parseInterval(y.SourceInterval, m.SourceInterval); err != nil {
			return mode.Mode{}, fmt.Errorf("source_interval: %w", err)
		}
		if m.TargetInterval, err = parseInterval(y.TargetInterval, m.TargetInterval); err != nil {
			return mode.Mode{}, fmt.Errorf("target_interval: %w", err)
		}
		m.Reverse = y.Reverse
		if y.OutOfRange != "" {
			if m.OutOfRangeBehavior, err = mode.ParseOutOfRangeBehavior(y.OutOfRange); err != nil {
				return mode.Mode{}, err
			}
		}
		if y.Rounding != "" {
			if m.Rounding, err = mode.ParseRounding(y.Rounding); err != nil {
				return mode.Mode{}, err
			}
		}
		if strings.TrimSpace(y.Transformation) != "" {
			tr, err := transform.NewLua(y.Transformation)
			if err != nil {
				return mode.Mode{}, err
			}
			m.Transformation = tr
		}
		return mode.Absolute(m), nil

	case "RELATIVE":
		m := mode.NewRelativeMode()
		var err error
		if m.TargetInterval, err = parseInterval(y.TargetInterval, m.TargetInterval); err != nil {
			return mode.Mode{}, fmt.Errorf("target_interval: %w", err)
		}
		if len(y.StepCount) > 0 {
			if len(y.StepCount) != 2 {
				return mode.Mode{}, fmt.Errorf("%w: step_count needs two bounds", ErrInvalidFile)
			}
			if m.StepCountInterval, err = value.NewIncrementInterval(y.StepCount[0], y.StepCount[1]); err != nil {
				return mode.Mode{}, fmt.Errorf("step_count: %w", err)
			}
		}
		if y.StepSize != nil {
			if m.StepSize, err = value.NewUnitValue(*y.StepSize); err != nil {
				return mode.Mode{}, fmt.Errorf("step_size: %w", err)
			}
		}
		m.Rotate = y.Rotate
		m.Reverse = y.Reverse
		return mode.Relative(m), nil

	case "TOGGLE":
		m := mode.NewToggleMode()
		var err error
		if m.TargetInterval, err = parseInterval(y.TargetInterval, m.TargetInterval); err != nil {
			return mode.Mode{}, fmt.Errorf("target_interval: %w", err)
		}
		return mode.Toggle(m), nil

	default:
		return mode.Mode{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidMapping, y.Kind)
	}
}

func parseInterval(bounds []float64, def value.Interval[value.UnitValue]) (value.Interval[value.UnitValue], error) {
	switch len(bounds) {
	case 0:
		return def, nil
	case 2:
		return value.NewUnitInterval(bounds[0], bounds[1])
	default:
		return def, fmt.Errorf("%w: interval needs two bounds", ErrInvalidFile)
	}
}

func parsePress(y yamlPress) (*duration.Processor, error) {
	cfg := duration.DefaultConfig()
	if y.FireMode != "" {
		fm, err := duration.ParseFireMode(y.FireMode)
		if err != nil {
			return nil, err
		}
		cfg.FireMode = fm
	}

	lo, err := parseLength(y.Min, 0)
	if err != nil {
		return nil, fmt.Errorf("press min: %w", err)
	}
	hi, err := parseLength(y.Max, time.Duration(duration.Infinite))
	if err != nil {
		return nil, fmt.Errorf("press max: %w", err)
	}
	if cfg.Window, err = duration.NewWindow(lo, hi); err != nil {
		return nil, err
	}
	return duration.NewProcessor(cfg), nil
}

func parseLength(s string, def time.Duration) (time.Duration, error) {
	switch strings.TrimSpace(s) {
	case "":
		return def, nil
	case "inf":
		return time.Duration(duration.Infinite), nil
	default:
		return time.ParseDuration(s)
	}
}

func normalize(s string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", "_"))
}
