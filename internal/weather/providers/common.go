package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/weather-estimation/internal/weather"
)

const (
	// DefaultConnectTimeout bounds TCP and TLS connection setup.
	DefaultConnectTimeout = 10 * time.Second
	// DefaultReadTimeout bounds waiting for and reading the response.
	DefaultReadTimeout = 15 * time.Second

	maxBodyBytes = 1 << 20
)

// TimeoutConfig holds the connect and read deadlines of outbound calls.
type TimeoutConfig struct {
	Connect time.Duration
	Read    time.Duration
}

// NewHTTPClient builds a client enforcing separate connect and read timeouts.
func NewHTTPClient(cfg TimeoutConfig) *http.Client {
	if cfg.Connect <= 0 {
		cfg.Connect = DefaultConnectTimeout
	}
	if cfg.Read <= 0 {
		cfg.Read = DefaultReadTimeout
	}

	dialer := &net.Dialer{Timeout: cfg.Connect}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   cfg.Connect,
		ResponseHeaderTimeout: cfg.Read,
		MaxIdleConnsPerHost:   4,
		IdleConnTimeout:       90 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   cfg.Connect + cfg.Read,
	}
}

var (
	errUnexpectedStatus = errors.New("unexpected status code")
	errCircuitOpen      = errors.New("circuit breaker open")
)

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// fetchJSON issues a single GET through the circuit breaker and decodes a 200
// response into out. There are no retries: callers fall back on any error.
func fetchJSON(ctx context.Context, client *http.Client, cb *gobreaker.CircuitBreaker, url string, out interface{}) error {
	if client == nil {
		return fmt.Errorf("%w: http client missing", weather.ErrNotConfigured)
	}

	_, err := cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrNetwork, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return nil, fmt.Errorf("%w: %w: %d %s", weather.ErrNetwork, errUnexpectedStatus, resp.StatusCode, body)
		}

		if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
			return nil, fmt.Errorf("%w: %v", weather.ErrMalformedResponse, err)
		}
		return nil, nil
	})

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("%w: %w: %v", weather.ErrNetwork, errCircuitOpen, err)
	}
	return err
}

func floatPtr(v float64) *float64 {
	return &v
}

func intPtr(v int) *int {
	return &v
}
