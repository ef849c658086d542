package route

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/entities"
	retrierconfig "dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "route-service"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const maxErrorBodyBytes = 4 << 10

// statusError carries a non-2xx response through the retrier so that retry
// decisions and metrics can see the code.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

// RouteGateway validates route references against the route service over
// HTTP. Any failure it cannot interpret as a definite answer is returned as
// an error; the caller decides what denial means.
type RouteGateway struct {
	client  client
	retrier retrier
	baseURL string
	token   string
}

// New wires the gateway against baseURL. token, when non-empty, is sent as a
// bearer credential on every request.
func New(client client, baseURL, token string) *RouteGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &RouteGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: baseURL,
		token:   token,
	}
}

func (g *RouteGateway) GetRoute(ctx context.Context, routeID int64) (*entities.RouteInfo, error) {
	url := g.baseURL + "/api/v1/routes/" + strconv.FormatInt(routeID, 10)

	var resp routeResponse

	err := g.executeWithMetrics(ctx, "GetRoute", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		if g.token != "" {
			req.Header.Set("Authorization", "Bearer "+g.token)
		}

		httpResp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, io.LimitReader(httpResp.Body, maxErrorBodyBytes))
			_ = httpResp.Body.Close()
		}()

		// The route service contract promises any 2xx on success.
		if httpResp.StatusCode/100 != 2 {
			return &statusError{code: httpResp.StatusCode}
		}

		return json.NewDecoder(httpResp.Body).Decode(&resp)
	})
	if err != nil {
		return nil, fmt.Errorf("gateway route, get route: %d: %w", routeID, err)
	}

	return toDomain(&resp), nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}

	// Transport-level failures are worth another attempt, context
	// cancellation is not.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (g *RouteGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, status).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, status).Inc()
	}

	return err
}

func statusLabel(err error) string {
	if err == nil {
		return "200"
	}

	var se *statusError
	if errors.As(err, &se) {
		return strconv.Itoa(se.code)
	}
	return "transport_error"
}
