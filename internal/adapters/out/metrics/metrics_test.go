package metrics_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seomarket/internal/adapters/out/metrics"
	"seomarket/internal/core/domain/model/order"
	"seomarket/internal/core/domain/model/role"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMetrics(t *testing.T) (*metrics.Metrics, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m, err := metrics.New(reg)
	require.NoError(t, err)
	return m, reg
}

func TestNew_RegisteringTwiceFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	require.NoError(t, err)

	_, err = metrics.New(reg)

	assert.Error(t, err)
}

func TestMetrics_ObserveTransition(t *testing.T) {
	m, reg := newMetrics(t)

	m.ObserveTransition(role.Partner, order.ConfirmedByTeamLeader, order.ConfirmedByPartner, true)
	m.ObserveTransition(role.Partner, order.SeoerOrder, order.CompletedByPartner, false)
	m.ObserveTransition(role.Partner, order.SeoerOrder, order.CompletedByPartner, false)

	expected := `
# HELP seomarket_orders_status_transitions_total Order status change requests by role, source, target and decision.
# TYPE seomarket_orders_status_transitions_total counter
seomarket_orders_status_transitions_total{from="CONFIRMED_BY_TEAM_LEADER",result="granted",role="PARTNER",to="CONFIRMED_BY_PARTNER"} 1
seomarket_orders_status_transitions_total{from="SEOER_ORDER",result="denied",role="PARTNER",to="COMPLETED_BY_PARTNER"} 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "seomarket_orders_status_transitions_total")
	assert.NoError(t, err)
}

func TestMetrics_ObserveOutboxRelay(t *testing.T) {
	m, reg := newMetrics(t)

	m.ObserveOutboxRelay(3, nil)
	m.ObserveOutboxRelay(0, errors.New("broker down"))

	expected := `
# HELP seomarket_outbox_published_total Outbox messages published to the broker.
# TYPE seomarket_outbox_published_total counter
seomarket_outbox_published_total 3
# HELP seomarket_outbox_relay_failures_total Outbox relay runs that failed.
# TYPE seomarket_outbox_relay_failures_total counter
seomarket_outbox_relay_failures_total 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"seomarket_outbox_published_total", "seomarket_outbox_relay_failures_total")
	assert.NoError(t, err)
}

func TestMetrics_ObserveHTTPRequest(t *testing.T) {
	m, reg := newMetrics(t)

	m.ObserveHTTPRequest(http.MethodPatch, "/api/v1/orders/:id/status", http.StatusForbidden, 20*time.Millisecond)

	count, err := testutil.GatherAndCount(reg, "seomarket_http_requests_total", "seomarket_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestHandler_ServesRegistry(t *testing.T) {
	m, reg := newMetrics(t)
	m.ObserveTransition(role.Manager, order.PaidByManager, order.CancelledByManager, true)

	rec := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `role="MANAGER"`)
}
