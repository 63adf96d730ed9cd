// Package client is a typed Go client for the CrimeWatch HTTP API.
package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/AmanKumar245/crimewatch/pkg/api"
	"github.com/go-resty/resty/v2"
)

// Client calls the CrimeWatch API over HTTP.
type Client struct {
	http *resty.Client
}

// Option configures a Client.
type Option func(*resty.Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *resty.Client) { c.SetTimeout(d) }
}

// WithRetries retries idempotent requests that fail with a transport error
// or a 5xx response.
func WithRetries(count int, wait time.Duration) Option {
	return func(c *resty.Client) {
		c.SetRetryCount(count).
			SetRetryWaitTime(wait).
			SetRetryMaxWaitTime(4 * wait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				if r == nil || r.Request == nil {
					return err != nil
				}
				if r.Request.Method != http.MethodGet {
					return false
				}
				return err != nil || r.StatusCode() >= http.StatusInternalServerError
			})
	}
}

// WithHTTPClient adopts the transport and timeout of hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *resty.Client) {
		if hc.Transport != nil {
			c.SetTransport(hc.Transport)
		}
		if hc.Timeout > 0 {
			c.SetTimeout(hc.Timeout)
		}
	}
}

// New creates a Client for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30*time.Second).
		SetHeader("Accept", "application/json")

	for _, opt := range opts {
		opt(rc)
	}
	return &Client{http: rc}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var apiErr api.Error
	req := c.http.R().
		SetContext(ctx).
		SetError(&apiErr)
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if out != nil {
		req.SetResult(out)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("client: %s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return newAPIError(resp.StatusCode(), apiErr)
	}
	return nil
}

// Health calls GET /health and returns the overall status.
func (c *Client) Health(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// CurrentActor returns the signed-in actor, or nil.
func (c *Client) CurrentActor(ctx context.Context) (*api.Actor, error) {
	var out api.Session
	if err := c.do(ctx, http.MethodGet, "/api/v1/session", nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Actor, nil
}

// Register creates a new actor and signs it in.
func (c *Client) Register(ctx context.Context, displayName, email string) (*api.Actor, error) {
	var out api.Session
	body := api.RegisterRequest{DisplayName: displayName, Email: email}
	if err := c.do(ctx, http.MethodPost, "/api/v1/session/register", nil, body, &out); err != nil {
		return nil, err
	}
	return out.Actor, nil
}

// SignIn signs in by email.
func (c *Client) SignIn(ctx context.Context, email string) (*api.Actor, error) {
	var out api.Session
	if err := c.do(ctx, http.MethodPost, "/api/v1/session/sign-in", nil, api.SignInRequest{Email: email}, &out); err != nil {
		return nil, err
	}
	return out.Actor, nil
}

// SignOut clears the current session.
func (c *Client) SignOut(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/v1/session/sign-out", nil, nil, nil)
}

// SubmitReport files a new incident report.
func (c *Client) SubmitReport(ctx context.Context, req api.SubmitReportRequest) (*api.Report, error) {
	var out api.Report
	if err := c.do(ctx, http.MethodPost, "/api/v1/reports", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReportEmergency files a one-tap emergency report at loc.
func (c *Client) ReportEmergency(ctx context.Context, loc api.Location) (*api.Report, error) {
	var out api.Report
	if err := c.do(ctx, http.MethodPost, "/api/v1/reports/emergency", nil, api.EmergencyRequest{Location: &loc}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListReportsParams filters ListReports. At most one field may be set.
type ListReportsParams struct {
	Reporter string
	Status   string
}

// ListReports returns reports in submission order.
func (c *Client) ListReports(ctx context.Context, params ListReportsParams) ([]api.Report, error) {
	q := url.Values{}
	if params.Reporter != "" {
		q.Set("reporter", params.Reporter)
	}
	if params.Status != "" {
		q.Set("status", params.Status)
	}

	var out api.ReportList
	if err := c.do(ctx, http.MethodGet, "/api/v1/reports", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Reports, nil
}

// GetReport fetches a single report.
func (c *Client) GetReport(ctx context.Context, id string) (*api.Report, error) {
	var out api.Report
	if err := c.do(ctx, http.MethodGet, "/api/v1/reports/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStatus moves a report to status, optionally assigning teamID.
func (c *Client) UpdateStatus(ctx context.Context, id, status string, teamID *string) (*api.Report, error) {
	var out api.Report
	body := api.UpdateStatusRequest{Status: status, TeamID: teamID}
	if err := c.do(ctx, http.MethodPost, "/api/v1/reports/"+url.PathEscape(id)+"/status", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListTeams returns the roster, or only available teams.
func (c *Client) ListTeams(ctx context.Context, availableOnly bool) ([]api.Team, error) {
	var q url.Values
	if availableOnly {
		q = url.Values{"available": []string{strconv.FormatBool(true)}}
	}

	var out api.TeamList
	if err := c.do(ctx, http.MethodGet, "/api/v1/teams", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Teams, nil
}

// SetTeamAvailability toggles a team's availability.
func (c *Client) SetTeamAvailability(ctx context.Context, id string, available bool) (*api.Team, error) {
	var out api.Team
	body := api.SetAvailabilityRequest{Available: &available}
	if err := c.do(ctx, http.MethodPut, "/api/v1/teams/"+url.PathEscape(id)+"/availability", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Stats returns the dashboard counters.
func (c *Client) Stats(ctx context.Context) (*api.Stats, error) {
	var out api.Stats
	if err := c.do(ctx, http.MethodGet, "/api/v1/dashboard/stats", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
