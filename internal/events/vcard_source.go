package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emersion/go-vcard"
	"go.uber.org/zap"

	"github.com/username/weekcal/internal/calendar"
)

// VCardSource turns the birthdays of an address book export into recurring
// events. Contacts without BDAY, or with a birthday lacking a year, are
// skipped because no age can be printed for them.
type VCardSource struct {
	filePath string
	logger   *zap.Logger
}

// NewVCardSource creates a new VCardSource instance
func NewVCardSource(filePath string, logger *zap.Logger) *VCardSource {
	return &VCardSource{
		filePath: filePath,
		logger:   logger,
	}
}

// Events loads birthdays from the .vcf file
func (vs *VCardSource) Events(ctx context.Context) ([]calendar.RecurringEvent, error) {
	file, err := os.Open(vs.filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open address book: %w", ErrSourceUnavailable, err)
	}
	defer file.Close()

	events, err := decodeVCards(ctx, file, vs.logger)
	if err != nil {
		return nil, err
	}

	vs.logger.Info("Address book loaded",
		zap.String("file", vs.filePath),
		zap.Int("birthdays", len(events)))

	return events, nil
}

func decodeVCards(ctx context.Context, r io.Reader, logger *zap.Logger) ([]calendar.RecurringEvent, error) {
	var events []calendar.RecurringEvent

	dec := vcard.NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to decode vCard: %w", err)
		}

		bday := card.Get(vcard.FieldBirthday)
		if bday == nil || strings.TrimSpace(bday.Value) == "" {
			continue
		}

		name := contactName(card)
		if strings.HasPrefix(bday.Value, "--") {
			logger.Debug("Skipping birthday without year",
				zap.String("name", name),
				zap.String("bday", bday.Value))
			continue
		}

		events = append(events, calendar.RecurringEvent{
			Date: normalizeDate(bday.Value),
			Name: name,
		})
	}

	return events, nil
}

// contactName prefers FN over the structured N field
func contactName(card vcard.Card) string {
	if fn := card.PreferredValue(vcard.FieldFormattedName); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(strings.Join([]string{n.GivenName, n.FamilyName}, " "))
	}
	return ""
}
