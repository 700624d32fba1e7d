package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ctlmap/ctlmap-go/pkg/log"
)

// RunStats analyzes the trace file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open trace file: %w", err)
	}
	defer reader.Close()

	stats := log.NewStats()
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		stats.Add(event)
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *log.Stats) {
	fmt.Fprintln(w, "=== Control Trace Statistics ===")
	fmt.Fprintln(w)

	if stats.Total > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.First.Format(time.RFC3339),
			stats.Last.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.Duration().Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.Total)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryInput, log.CategoryOutput, log.CategoryFeedback, log.CategorySuppressed, log.CategoryError} {
		if count := stats.ByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}

	if len(stats.Suppressed) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suppressed by:")
		for _, r := range []log.SuppressReason{log.SuppressedByMode, log.SuppressedByPressDuration, log.SuppressedByTarget} {
			if count := stats.Suppressed[r]; count > 0 {
				fmt.Fprintf(w, "  %-16s %d\n", r.String()+":", count)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Mappings: %d\n", len(stats.ByMapping))
	ids := make([]string, 0, len(stats.ByMapping))
	for id := range stats.ByMapping {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		fmt.Fprintf(w, "  [%s] %d events\n", shortenID(id), stats.ByMapping[id])
	}
}
