package events

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/username/weekcal/internal/calendar"
)

const (
	defaultTimeout     = 10 * time.Second
	maxResponseSize    = 5 << 20
	userAgent          = "weekcal/1.0"
	contentTypeVCard   = "text/vcard"
	contentTypeYAMLApp = "application/yaml"
)

// RemoteSource fetches recurring events over HTTP. The body is parsed as
// vCard, YAML or plain text depending on the URL extension or Content-Type.
// Successful responses are cached for cacheTTL.
type RemoteSource struct {
	url        string
	cacheTTL   time.Duration
	httpClient *http.Client
	logger     *zap.Logger

	cache   *cachedEvents
	cacheMu sync.RWMutex
}

type cachedEvents struct {
	data      []calendar.RecurringEvent
	fetchedAt time.Time
}

// NewRemoteSource creates a new RemoteSource instance
func NewRemoteSource(rawURL string, cacheTTL time.Duration, logger *zap.Logger) *RemoteSource {
	return &RemoteSource{
		url:      rawURL,
		cacheTTL: cacheTTL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Events returns cached events or fetches them
func (rs *RemoteSource) Events(ctx context.Context) ([]calendar.RecurringEvent, error) {
	rs.cacheMu.RLock()
	if rs.cache != nil && time.Since(rs.cache.fetchedAt) < rs.cacheTTL {
		data := append([]calendar.RecurringEvent(nil), rs.cache.data...)
		rs.cacheMu.RUnlock()
		rs.logger.Debug("Using cached events", zap.Int("events", len(data)))
		return data, nil
	}
	rs.cacheMu.RUnlock()

	events, err := rs.fetch(ctx)
	if err != nil {
		return nil, err
	}

	rs.cacheMu.Lock()
	rs.cache = &cachedEvents{
		data:      events,
		fetchedAt: time.Now(),
	}
	rs.cacheMu.Unlock()

	rs.logger.Info("Events fetched and cached",
		zap.String("url", redact(rs.url)),
		zap.Int("events", len(events)))

	return append([]calendar.RecurringEvent(nil), events...), nil
}

func (rs *RemoteSource) fetch(ctx context.Context) ([]calendar.RecurringEvent, error) {
	u, err := url.Parse(rs.url)
	if err != nil {
		return nil, fmt.Errorf("invalid events URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("unsupported URL scheme %q", u.Scheme)
	}

	rs.logger.Debug("Fetching events", zap.String("url", redact(rs.url)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rs.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := rs.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: server returned status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch detectFormat(u.Path, resp.Header.Get("Content-Type")) {
	case formatVCard:
		return decodeVCards(ctx, bytes.NewReader(body), rs.logger)
	case formatYAML:
		events, err := decodeYAML(bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML response: %w", err)
		}
		return events, nil
	default:
		return parseText(ctx, bytes.NewReader(body), rs.logger)
	}
}

type format int

const (
	formatText format = iota
	formatYAML
	formatVCard
)

func detectFormat(urlPath, contentType string) format {
	switch strings.ToLower(path.Ext(urlPath)) {
	case ".vcf", ".vcard":
		return formatVCard
	case ".yaml", ".yml":
		return formatYAML
	case ".txt":
		return formatText
	}

	contentType = strings.ToLower(contentType)
	switch {
	case strings.HasPrefix(contentType, contentTypeVCard):
		return formatVCard
	case strings.HasPrefix(contentType, contentTypeYAMLApp), strings.Contains(contentType, "yaml"):
		return formatYAML
	}
	return formatText
}

// redact strips query and credentials so tokens do not end up in logs
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "invalid-url"
	}
	return u.Scheme + "://" + u.Host + u.Path
}
