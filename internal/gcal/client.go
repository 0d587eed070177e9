// Package gcal wraps the Google Calendar API for busy-interval reads
// and event writes.
package gcal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

// ErrNotConfigured is returned when calendar credentials are absent.
// Callers treat it as a degraded mode, never as a request failure.
var ErrNotConfigured = errors.New("google calendar is not configured")

// FetchError is a genuine transport or auth failure while reading busy
// intervals. It is distinct from an empty result, which simply means no
// busy intervals.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("calendar fetch failed (%s): %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsFetchError checks if the error is a FetchError.
func IsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// EventInput describes a calendar event to create.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Client talks to one Google Calendar deployment via a service account.
// A Client built without credentials is valid but unconfigured.
type Client struct {
	svc    *calendar.Service
	logger *zerolog.Logger

	redis    *redis.Client
	cacheTTL time.Duration
}

// NewClient builds a calendar client from a service-account credentials
// file. An empty path yields an unconfigured client rather than an
// error, so unconfigured deployments can still start.
func NewClient(ctx context.Context, credentialsPath string, logger *zerolog.Logger) (*Client, error) {
	c := &Client{logger: logger}
	if credentialsPath == "" {
		logger.Warn().Msg("calendar credentials not set; running in simulated mode")
		return c, nil
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("read calendar credentials: %w", err)
	}

	jwt, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parse calendar credentials: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(jwt.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}

	c.svc = svc
	logger.Info().Msg("google calendar client initialized")
	return c, nil
}

// UseRedisCache configures optional Redis caching for busy-interval reads.
func (c *Client) UseRedisCache(redisClient *redis.Client, ttl time.Duration) {
	c.redis = redisClient
	c.cacheTTL = ttl
}

// Configured reports whether the client can reach Google Calendar.
func (c *Client) Configured() bool {
	return c != nil && c.svc != nil
}

// BusyIntervals returns committed event ranges on the calendar within
// [dayStart, dayEnd), ordered by start time. An empty list is a normal
// result; transport failures surface as *FetchError.
func (c *Client) BusyIntervals(ctx context.Context, calendarID string, dayStart, dayEnd time.Time) ([]models.TimeInterval, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	cacheKey := fmt.Sprintf("busy:%s:%s", calendarID, dayStart.Format("2006-01-02"))
	var cached []models.TimeInterval
	if c.readCache(ctx, cacheKey, &cached) {
		return cached, nil
	}

	events, err := c.svc.Events.List(calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, &FetchError{Op: "list events", Err: err}
	}

	intervals := make([]models.TimeInterval, 0, len(events.Items))
	for _, ev := range events.Items {
		if ev.Status == "cancelled" {
			continue
		}
		iv, ok := eventInterval(ev, dayStart, dayEnd)
		if !ok {
			continue
		}
		intervals = append(intervals, iv)
	}

	c.writeCache(ctx, cacheKey, intervals)
	return intervals, nil
}

// eventInterval extracts the busy range of an event. All-day events
// block the whole requested window.
func eventInterval(ev *calendar.Event, dayStart, dayEnd time.Time) (models.TimeInterval, bool) {
	if ev.Start == nil || ev.End == nil {
		return models.TimeInterval{}, false
	}

	if ev.Start.DateTime == "" {
		// Date-only event.
		return models.TimeInterval{Start: dayStart, End: dayEnd}, true
	}

	start, err := time.Parse(time.RFC3339, ev.Start.DateTime)
	if err != nil {
		return models.TimeInterval{}, false
	}
	end, err := time.Parse(time.RFC3339, ev.End.DateTime)
	if err != nil {
		return models.TimeInterval{}, false
	}

	iv := models.TimeInterval{Start: start, End: end}
	if !iv.IsValid() {
		return models.TimeInterval{}, false
	}
	return iv, true
}

// CreateEvent writes an event and returns its id.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, input EventInput) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	ev := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start:       &calendar.EventDateTime{DateTime: input.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: input.End.Format(time.RFC3339)},
	}

	created, err := c.svc.Events.Insert(calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert event: %w", err)
	}

	c.invalidateCache(ctx, calendarID, input.Start)
	return created.Id, nil
}

func (c *Client) readCache(ctx context.Context, key string, out any) bool {
	if c.redis == nil || c.cacheTTL <= 0 {
		return false
	}
	val, err := c.redis.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), out); err != nil {
		return false
	}
	return true
}

func (c *Client) writeCache(ctx context.Context, key string, val any) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	data, err := json.Marshal(val)
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, key, data, c.cacheTTL).Err()
}

func (c *Client) invalidateCache(ctx context.Context, calendarID string, day time.Time) {
	if c.redis == nil || c.cacheTTL <= 0 {
		return
	}
	key := fmt.Sprintf("busy:%s:%s", calendarID, day.Format("2006-01-02"))
	_ = c.redis.Del(ctx, key).Err()
}
