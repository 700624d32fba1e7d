// Package commands implements the ctlmap-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/ctlmap/ctlmap-go/pkg/log"
)

const timestampFormat = "2006-01-02T15:04:05.000000Z"

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	MappingID string
	Direction *log.Direction
	Category  *log.Category
}

func (f ViewFilter) filter() log.Filter {
	return log.Filter{
		MappingID: f.MappingID,
		Direction: f.Direction,
		Category:  f.Category,
	}
}

// RunView prints every matching event of the trace file to w.
func RunView(path string, filter ViewFilter, w io.Writer) error {
	reader, err := log.NewFilteredReader(path, filter.filter())
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(w, event)
	}
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	ts := event.Timestamp.UTC().Format(timestampFormat)
	fmt.Fprintf(w, "%s [map:%s] %-8s %s\n", ts, shortenID(event.MappingID), event.Direction, event.Category)

	switch {
	case event.Input != nil:
		fmt.Fprintf(w, "  Source: %s\n", event.Input.Source)
		if len(event.Input.Raw) > 0 {
			fmt.Fprintf(w, "  Raw:    %s\n", hex.EncodeToString(event.Input.Raw))
		}
		fmt.Fprintf(w, "  Value:  %s\n", event.Input.Value)
	case event.Output != nil:
		fmt.Fprintf(w, "  Target: %s\n", event.Output.Target)
		fmt.Fprintf(w, "  Mode:   %s\n", event.Output.Mode)
		fmt.Fprintf(w, "  Value:  %s\n", event.Output.Value)
	case event.Feedback != nil:
		fmt.Fprintf(w, "  Target: %s = %.4f\n", event.Feedback.Target, event.Feedback.TargetValue)
		fmt.Fprintf(w, "  Source: %.4f\n", event.Feedback.SourceValue)
		if len(event.Feedback.Raw) > 0 {
			fmt.Fprintf(w, "  Raw:    %s\n", hex.EncodeToString(event.Feedback.Raw))
		}
	case event.Suppressed != nil:
		fmt.Fprintf(w, "  Reason: %s\n", event.Suppressed.Reason)
		fmt.Fprintf(w, "  Value:  %s\n", event.Suppressed.Value)
	case event.Error != nil:
		fmt.Fprintf(w, "  Stage:   %s\n", event.Error.Stage)
		fmt.Fprintf(w, "  Message: %s\n", event.Error.Message)
		if event.Error.Context != "" {
			fmt.Fprintf(w, "  Context: %s\n", event.Error.Context)
		}
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a UUID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// ParseDirectionFlag parses a direction flag value.
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "control", "ctl":
		return log.DirectionControl, nil
	case "feedback", "fb":
		return log.DirectionFeedback, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (valid: control, feedback)", s)
	}
}

// ParseCategoryFlag parses a category flag value.
func ParseCategoryFlag(s string) (log.Category, error) {
	c, ok := log.ParseCategory(strings.ToUpper(s))
	if !ok {
		return 0, fmt.Errorf("invalid category: %s (valid: input, output, feedback, suppressed, error)", s)
	}
	return c, nil
}
