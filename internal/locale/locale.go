// Package locale provides localized month, weekday and holiday names.
// Translations are embedded go-i18n catalogs; Dutch is the default.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/username/weekcal/internal/calendar"
)

// Default is the language used when none is requested
const Default = "nl"

//go:embed locales/*.json
var localeFS embed.FS

var loadBundle = sync.OnceValues(func() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.Dutch)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !strings.HasPrefix(entry.Name(), "active.") {
			continue
		}
		if _, err := bundle.LoadMessageFileFS(localeFS, "locales/"+entry.Name()); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", entry.Name(), err)
		}
	}
	return bundle, nil
})

// Supported returns the languages with an embedded catalog
func Supported() []string {
	bundle, err := loadBundle()
	if err != nil {
		return nil
	}
	var langs []string
	for _, tag := range bundle.LanguageTags() {
		langs = append(langs, tag.String())
	}
	return langs
}

// Names renders dates and holiday labels in one language
type Names struct {
	lang      string
	localizer *i18n.Localizer
}

// New returns the name table for lang ("nl", "en", "en-GB", ...).
// Unknown but well-formed languages fall back to Dutch.
func New(lang string) (*Names, error) {
	if lang == "" {
		lang = Default
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", lang, err)
	}

	bundle, err := loadBundle()
	if err != nil {
		return nil, fmt.Errorf("failed to load translations: %w", err)
	}

	return &Names{
		lang:      tag.String(),
		localizer: i18n.NewLocalizer(bundle, tag.String()),
	}, nil
}

// Lang returns the requested language tag
func (n *Names) Lang() string {
	return n.lang
}

func (n *Names) localize(id string, data map[string]any, count any) (string, error) {
	return n.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
		PluralCount:  count,
	})
}

func (n *Names) get(id string) string {
	msg, err := n.localize(id, nil, nil)
	if err != nil {
		return id
	}
	return msg
}

// Month returns the full month name
func (n *Names) Month(m time.Month) string {
	return n.get(fmt.Sprintf("month.%d", int(m)))
}

// MonthShort returns the abbreviated month name
func (n *Names) MonthShort(m time.Month) string {
	return n.get(fmt.Sprintf("month_short.%d", int(m)))
}

// Weekday returns the name of an ISO weekday (1 = Monday .. 7 = Sunday)
func (n *Names) Weekday(isoWeekday int) string {
	return n.get(fmt.Sprintf("weekday.%d", isoWeekday))
}

// Holiday returns the translated label of h. Anniversaries keep the caller's
// name; rules without a translation fall back to their default name.
func (n *Names) Holiday(h calendar.Holiday) string {
	if h.Kind == calendar.KindAnniversary {
		return h.Label()
	}
	msg, err := n.localize("holiday."+h.Key, nil, nil)
	if err != nil {
		return h.Label()
	}
	return msg
}

// Labels returns the translated labels of holidays, in order
func (n *Names) Labels(holidays []calendar.Holiday) []string {
	if len(holidays) == 0 {
		return nil
	}
	out := make([]string, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, n.Holiday(h))
	}
	return out
}

// Title returns the document title, e.g. "Weekkalender 2025 (A5)"
func (n *Names) Title(year int, paper calendar.PaperSize) string {
	msg, err := n.localize("page.title", map[string]any{"Year": year, "Paper": string(paper)}, nil)
	if err != nil {
		return fmt.Sprintf("Weekkalender %d (%s)", year, paper)
	}
	return msg
}

// WeekHeading returns "Week N - <month>"
func (n *Names) WeekHeading(number int, month string) string {
	msg, err := n.localize("page.week", map[string]any{"Number": number, "Month": month}, nil)
	if err != nil {
		return fmt.Sprintf("Week %d - %s", number, month)
	}
	return msg
}

// Notes returns the heading of the notes page
func (n *Names) Notes() string {
	return n.get("page.notes")
}

// Workdays returns the pluralized working-day count
func (n *Names) Workdays(count int) string {
	msg, err := n.localize("page.workdays", map[string]any{"Count": count}, count)
	if err != nil {
		return fmt.Sprintf("%d", count)
	}
	return msg
}
