package events

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/username/weekcal/internal/calendar"
)

// FileSource reads recurring events from a plain text file
//
// Format: one event per line, date first, then the name.
//
//	# comment
//	1942-06-18 Sir Paul McCartney
//	18.06.1942 Sir Paul McCartney
type FileSource struct {
	filePath string
	logger   *zap.Logger
}

// NewFileSource creates a new FileSource instance
func NewFileSource(filePath string, logger *zap.Logger) *FileSource {
	return &FileSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Events loads events from the file
func (fs *FileSource) Events(ctx context.Context) ([]calendar.RecurringEvent, error) {
	file, err := os.Open(fs.filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open events file: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	events, err := parseText(ctx, file, fs.logger)
	if err != nil {
		return nil, fmt.Errorf("error reading events file: %w", err)
	}

	fs.logger.Info("Events file loaded",
		zap.String("file", fs.filePath),
		zap.Int("events", len(events)))

	return events, nil
}

// parseText reads "date name" lines. Lines without a name are skipped with a
// warning; dates are normalized but not validated.
func parseText(ctx context.Context, r io.Reader, logger *zap.Logger) ([]calendar.RecurringEvent, error) {
	var events []calendar.RecurringEvent

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo%1000 == 0 && ctx.Err() != nil {
			return nil, ctx.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		dateStr, name, ok := strings.Cut(line, " ")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			logger.Warn("Invalid line format",
				zap.Int("line", lineNo),
				zap.String("text", line))
			continue
		}

		events = append(events, calendar.RecurringEvent{
			Date: normalizeDate(dateStr),
			Name: name,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
