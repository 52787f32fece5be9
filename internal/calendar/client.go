package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/whenami/whenami/internal/google"
	"github.com/whenami/whenami/internal/instrumentation"
	"github.com/whenami/whenami/internal/logging"
	"github.com/whenami/whenami/internal/schedule"
)

// Client wraps the Google Calendar service for read-only availability
// queries.
type Client struct {
	svc           *calendar.Service
	account       string
	tokenProvider google.TokenProvider
	logger        logging.Logger
	metrics       *instrumentation.Metrics
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// SetLogger replaces the client's logger. A nil logger restores the default.
func (c *Client) SetLogger(logger logging.Logger) {
	if logger == nil {
		logger = logging.DefaultLogger()
	}
	c.logger = logger
}

// SetMetrics attaches a metrics recorder. A nil recorder is valid and
// records nothing.
func (c *Client) SetMetrics(m *instrumentation.Metrics) {
	c.metrics = m
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2
// authentication for a specific account. The OAuth token is retrieved from
// the provided token provider.
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	conf := google.GetOAuthConfig()
	tokenSource := conf.TokenSource(ctx, token)

	client := oauth2.NewClient(ctx, tokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
		logger:        logging.DefaultLogger(),
	}, nil
}

// NewClientForAccount creates a new Calendar client for a specific account
// using the default file-based token provider.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	return NewClientForAccountWithProvider(ctx, account, google.NewFileTokenProvider())
}

// NewClient creates a new Calendar client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// Calendar retrieves metadata (display name, timezone) for a calendar.
func (c *Client) Calendar(ctx context.Context, calendarID string) (*Info, error) {
	entry, err := c.svc.CalendarList.Get(calendarID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get calendar %s: %w", calendarID, err)
	}

	info := toInfo(entry)
	return &info, nil
}

// FreeBusy returns the busy periods of one calendar within [timeMin,
// timeMax) via the freebusy API. The periods carry no event titles.
func (c *Client) FreeBusy(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]schedule.BusyPeriod, error) {
	query := &calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}

	result, err := c.svc.Freebusy.Query(query).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to query freebusy for %s: %w", calendarID, err)
	}

	cal, ok := result.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("freebusy response missing calendar %s", calendarID)
	}

	return periodsFromFreeBusy(&cal)
}

// BusyEvents returns the busy periods of one calendar within [timeMin,
// timeMax) via the events API, carrying event titles. Recurring events
// arrive pre-expanded (SingleEvents).
func (c *Client) BusyEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]schedule.BusyPeriod, error) {
	result, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events for %s: %w", calendarID, err)
	}

	return periodsFromEvents(result.Items)
}
