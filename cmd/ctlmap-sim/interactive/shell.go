// Package interactive provides the interactive command-line interface
// for the ctlmap simulator.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"gitlab.com/gomidi/midi/v2"

	"github.com/ctlmap/ctlmap-go/pkg/mapping"
	"github.com/ctlmap/ctlmap-go/pkg/source"
	"github.com/ctlmap/ctlmap-go/pkg/value"
)

// Shell feeds typed MIDI messages into a session and prints the feedback.
type Shell struct {
	session *mapping.Session
	rl      *readline.Instance
	out     io.Writer
}

// New creates a shell reading commands from the terminal. Bind must be
// called before Run.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "ctlmap> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	return &Shell{rl: rl, out: rl.Stdout()}, nil
}

// Bind sets the session commands are executed against.
func (s *Shell) Bind(session *mapping.Session) {
	s.session = session
}

// NewWithWriter creates a shell without a terminal. Commands are passed to
// Execute and output goes to w.
func NewWithWriter(session *mapping.Session, w io.Writer) *Shell {
	return &Shell{session: session, out: w}
}

// Stdout returns a writer that coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// PrintFeedback prints feedback messages, e.g. those produced by polling.
func (s *Shell) PrintFeedback(msgs []midi.Message) {
	for _, msg := range msgs {
		fmt.Fprintf(s.out, "  <- %s\n", msg)
	}
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if !s.Execute(line) {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Execute runs one command line. It returns false if the shell should exit.
func (s *Shell) Execute(line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
	case "cc":
		s.cmdControlChange(args)
	case "note", "n":
		s.cmdNote(args)
	case "set":
		s.cmdSet(args)
	case "feedback", "fb":
		s.cmdFeedback(args)
	case "targets", "t":
		s.cmdTargets()
	case "mappings", "m":
		s.cmdMappings()
	case "quit", "exit", "q":
		return false
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return true
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
ctlmap Simulator Commands:
  Input:
    cc <ch> <num> <val>     - Send a control change (channel 1-16)
    note <ch> <key> <vel>   - Send a note on, or a note off if vel is 0

  Targets:
    set <target> <0..1>     - Change a target from the host side
    feedback <target>       - Show the feedback for a target
    targets                 - List targets and their values
    mappings                - List mappings

  General:
    help                    - Show this help
    quit                    - Exit simulator`)
}

func (s *Shell) cmdControlChange(args []string) {
	vals, ok := s.parseBytes("cc <ch> <num> <val>", args)
	if !ok {
		return
	}
	s.handle(midi.ControlChange(vals[0], vals[1], vals[2]))
}

func (s *Shell) cmdNote(args []string) {
	vals, ok := s.parseBytes("note <ch> <key> <vel>", args)
	if !ok {
		return
	}
	if vals[2] == 0 {
		s.handle(midi.NoteOff(vals[0], vals[1]))
		return
	}
	s.handle(midi.NoteOn(vals[0], vals[1], vals[2]))
}

func (s *Shell) handle(msg midi.Message) {
	fmt.Fprintf(s.out, "  -> %s\n", msg)
	s.PrintFeedback(s.session.HandleMessage(msg))
}

// parseBytes parses a 1-based channel followed by two 7-bit values.
func (s *Shell) parseBytes(usage string, args []string) ([3]uint8, bool) {
	var out [3]uint8
	if len(args) != 3 {
		fmt.Fprintf(s.out, "Usage: %s\n", usage)
		return out, false
	}

	ch, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil || ch < 1 || ch > source.MaxChannel+1 {
		fmt.Fprintf(s.out, "Invalid channel: %s (1-16)\n", args[0])
		return out, false
	}
	out[0] = uint8(ch - 1)

	for i, arg := range args[1:] {
		v, err := strconv.ParseUint(arg, 10, 8)
		if err != nil || v > source.MaxValue {
			fmt.Fprintf(s.out, "Invalid value: %s (0-127)\n", arg)
			return out, false
		}
		out[i+1] = uint8(v)
	}
	return out, true
}

func (s *Shell) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(s.out, "Usage: set <target> <0..1>")
		return
	}
	f, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid value: %s\n", args[1])
		return
	}
	u, err := value.NewUnitValue(f)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	msgs, err := s.session.SetTargetValue(args[0], u)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s = %s\n", args[0], u)
	s.PrintFeedback(msgs)
}

func (s *Shell) cmdFeedback(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Usage: feedback <target>")
		return
	}
	msgs, err := s.session.Feedback(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(msgs) == 0 {
		fmt.Fprintln(s.out, "No feedback (value unknown or no feedback-capable source)")
		return
	}
	s.PrintFeedback(msgs)
}

func (s *Shell) cmdTargets() {
	targets := s.session.Targets()
	if len(targets) == 0 {
		fmt.Fprintln(s.out, "No targets")
		return
	}
	for _, ti := range targets {
		fmt.Fprintf(s.out, "  %-16s %-32s %s\n", ti.Name, ti.Type, ti)
	}
}

func (s *Shell) cmdMappings() {
	mappings := s.session.Mappings()
	if len(mappings) == 0 {
		fmt.Fprintln(s.out, "No mappings")
		return
	}
	for _, m := range mappings {
		fmt.Fprintf(s.out, "  %-16s %-20s -> %-16s %s\n", m, m.Source, m.Target, m.Mode.Kind())
	}
}
