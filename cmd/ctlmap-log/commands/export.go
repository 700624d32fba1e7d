package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ctlmap/ctlmap-go/pkg/log"
)

// RunExport exports the trace file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "mapping_id", "direction", "category", "subject", "value"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		subject, val := summarize(event)
		row := []string{
			event.Timestamp.UTC().Format(timestampFormat),
			event.SessionID,
			event.MappingID,
			event.Direction.String(),
			event.Category.String(),
			subject,
			val,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
}

// summarize returns what an event is about and the value it carries.
func summarize(event log.Event) (subject, val string) {
	switch {
	case event.Input != nil:
		return event.Input.Source, event.Input.Value.String()
	case event.Output != nil:
		return event.Output.Target, event.Output.Value.String()
	case event.Feedback != nil:
		return event.Feedback.Target, fmt.Sprintf("%g", event.Feedback.SourceValue)
	case event.Suppressed != nil:
		return event.Suppressed.Reason.String(), event.Suppressed.Value.String()
	case event.Error != nil:
		return event.Error.Stage.String(), event.Error.Message
	default:
		return "", ""
	}
}
