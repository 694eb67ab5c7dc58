// Package meraki provides the dashboard API adapter implementation.
package meraki

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"appliance-portcfg/internal/pkg/logging"
	"appliance-portcfg/internal/port"
	"appliance-portcfg/internal/types"

	jsoniter "github.com/json-iterator/go"
	"github.com/sethvargo/go-retry"
	"github.com/tomnomnom/linkheader"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultPerPage = 1000
	maxRetryWait   = 30 * time.Second
	maxPages       = 10000
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	MaxRetries int           // retries after the first attempt for 429 and 502/503/504
	RetryWait  time.Duration // first backoff step when the server sends no Retry-After
	Timeout    time.Duration // per HTTP request
	HTTPClient *http.Client  // optional, Timeout is ignored when set
}

// Client is an adapter that implements the DashboardClient port over the Dashboard API v1.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	userAgent  string
	maxRetries int
	retryWait  time.Duration
	perPage    int
}

// Ensure Client implements the DashboardClient port
var _ port.DashboardClient = (*Client)(nil)

// NewClient creates a new dashboard client.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	retryWait := opts.RetryWait
	if retryWait <= 0 {
		retryWait = time.Millisecond
	}

	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		userAgent:  opts.UserAgent,
		maxRetries: maxRetries,
		retryWait:  retryWait,
		perPage:    defaultPerPage,
	}, nil
}

// ListApplianceNetworks returns every network of the organization that contains an appliance.
// It follows Link rel=next pagination until the last page.
func (c *Client) ListApplianceNetworks(ctx context.Context, orgID string) ([]types.Network, error) {
	logger := logging.WithComponent("meraki").WithField("org_id", orgID)

	query := url.Values{}
	query.Set("productTypes[]", "appliance")
	query.Set("perPage", strconv.Itoa(c.perPage))
	next := fmt.Sprintf("%s/organizations/%s/networks?%s", c.baseURL, url.PathEscape(orgID), query.Encode())

	var networks []types.Network
	seen := make(map[string]bool)

	for page := 1; next != ""; page++ {
		if page > maxPages || seen[next] {
			return nil, &types.GatewayError{Op: "list networks", Err: fmt.Errorf("pagination did not terminate at page %d", page)}
		}
		seen[next] = true

		body, header, err := c.do(ctx, "list networks", http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}

		var batch []types.Network
		if err := json.Unmarshal(body, &batch); err != nil {
			return nil, &types.GatewayError{Op: "list networks", Err: fmt.Errorf("decoding page %d: %w", page, err)}
		}
		networks = append(networks, batch...)
		logger.WithFields(map[string]interface{}{
			"page":  page,
			"count": len(batch),
		}).Debug("Fetched network page")

		next = nextPage(header)
	}

	return networks, nil
}

// UpdateAppliancePort sends payload as the body of the appliance port update.
func (c *Client) UpdateAppliancePort(ctx context.Context, networkID, portID string, payload map[string]string) (types.PortResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, &types.GatewayError{Op: "update port", Err: fmt.Errorf("encoding payload: %w", err)}
	}

	endpoint := fmt.Sprintf("%s/networks/%s/appliance/ports/%s", c.baseURL, url.PathEscape(networkID), url.PathEscape(portID))
	respBody, _, err := c.do(ctx, "update port", http.MethodPut, endpoint, body)
	if err != nil {
		return nil, err
	}

	var response types.PortResponse
	if len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, &response); err != nil {
			return nil, &types.GatewayError{Op: "update port", Err: fmt.Errorf("decoding response: %w", err)}
		}
	}
	return response, nil
}

// do performs one API call, retrying rate limited and transient upstream failures.
func (c *Client) do(ctx context.Context, op, method, endpoint string, body []byte) ([]byte, http.Header, error) {
	logger := logging.WithComponent("meraki").WithFields(map[string]interface{}{
		"method": method,
		"url":    endpoint,
	})

	var (
		respBody   []byte
		respHeader http.Header
		retryAfter time.Duration
		attempt    int
	)

	err := retry.Do(ctx, c.backoff(&retryAfter), func(ctx context.Context) error {
		attempt++

		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
		if err != nil {
			return &types.GatewayError{Op: op, Err: err}
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		req.Header.Set("Accept", "application/json")
		if c.userAgent != "" {
			req.Header.Set("User-Agent", c.userAgent)
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &types.GatewayError{Op: op, Err: err}
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &types.GatewayError{Op: op, Err: fmt.Errorf("reading response: %w", err)}
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			respBody = data
			respHeader = resp.Header
			return nil
		}

		apiErr := newProtocolError(resp.StatusCode, data)
		if !retryable(resp.StatusCode) {
			return apiErr
		}

		retryAfter = parseRetryAfter(resp.Header.Get("Retry-After"))
		logger.WithFields(map[string]interface{}{
			"attempt":     attempt,
			"status":      resp.StatusCode,
			"retry_after": retryAfter.String(),
		}).Warn("Dashboard API asked to retry")
		return retry.RetryableError(apiErr)
	})
	if err != nil {
		var protocolErr *types.ProtocolError
		var gatewayErr *types.GatewayError
		if !errors.As(err, &protocolErr) && !errors.As(err, &gatewayErr) {
			err = &types.GatewayError{Op: op, Err: err}
		}
		return nil, nil, err
	}

	return respBody, respHeader, nil
}

// backoff is a capped exponential backoff bounded by maxRetries.
// A Retry-After value recorded by the last response replaces the next step.
func (c *Client) backoff(retryAfter *time.Duration) retry.Backoff {
	exponential := retry.WithCappedDuration(maxRetryWait, retry.NewExponential(c.retryWait))

	honourRetryAfter := retry.BackoffFunc(func() (time.Duration, bool) {
		next, stop := exponential.Next()
		if stop {
			return 0, true
		}
		if *retryAfter > 0 {
			next = *retryAfter
			*retryAfter = 0
		}
		return next, false
	})

	return retry.WithMaxRetries(uint64(c.maxRetries), honourRetryAfter)
}

func retryable(status int) bool {
	switch status {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func parseRetryAfter(value string) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func nextPage(header http.Header) string {
	links := linkheader.Parse(header.Get("Link")).FilterByRel("next")
	if len(links) == 0 {
		return ""
	}
	return links[0].URL
}

// errorBody is the dashboard's error envelope.
type errorBody struct {
	Errors []string `json:"errors"`
}

func newProtocolError(status int, body []byte) *types.ProtocolError {
	message := http.StatusText(status)

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Errors) > 0 {
		message = strings.Join(envelope.Errors, "; ")
	} else if text := strings.TrimSpace(string(body)); text != "" && len(text) <= 512 && !strings.HasPrefix(text, "<") {
		message = text
	}

	return &types.ProtocolError{
		StatusCode: status,
		Code:       strconv.Itoa(status),
		Message:    message,
	}
}
