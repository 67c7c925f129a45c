package events

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/username/weekcal/internal/calendar"
)

// eventsDocument is the YAML layout of a private events file
//
//	events:
//	  - date: 1942-06-18
//	    name: Sir Paul McCartney
type eventsDocument struct {
	Events []calendar.RecurringEvent `yaml:"events"`
}

// YAMLSource reads recurring events from a YAML file
type YAMLSource struct {
	filePath string
	logger   *zap.Logger
}

// NewYAMLSource creates a new YAMLSource instance
func NewYAMLSource(filePath string, logger *zap.Logger) *YAMLSource {
	return &YAMLSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Events loads events from the file
func (ys *YAMLSource) Events(_ context.Context) ([]calendar.RecurringEvent, error) {
	file, err := os.Open(ys.filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open events file: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	events, err := decodeYAML(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ys.filePath, err)
	}

	ys.logger.Info("Events file loaded",
		zap.String("file", ys.filePath),
		zap.Int("events", len(events)))

	return events, nil
}

func decodeYAML(r io.Reader) ([]calendar.RecurringEvent, error) {
	var doc eventsDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, err
	}

	for i := range doc.Events {
		doc.Events[i].Date = normalizeDate(doc.Events[i].Date)
	}
	return doc.Events, nil
}
