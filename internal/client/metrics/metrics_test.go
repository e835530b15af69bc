package metrics

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrijs2005/moodscreen/internal/client/api"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStep_CountsByOutcome(t *testing.T) {
	m := New()
	step := m.Step()
	ctx := context.Background()

	require.NoError(t, step(ctx, &api.Exchange{Operation: api.OpLogin, Duration: 10 * time.Millisecond}))
	require.NoError(t, step(ctx, &api.Exchange{Operation: api.OpLogin, Err: &api.HTTPError{StatusCode: 401}}))
	require.NoError(t, step(ctx, &api.Exchange{Operation: api.OpGetQuestions, Err: errors.New("dial tcp: refused")}))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(api.OpLogin, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(api.OpLogin, OutcomeHTTPError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(api.OpGetQuestions, OutcomeTransportError)))
}

func TestStep_WiredIntoClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/questions" {
			_, _ = w.Write([]byte(`{"code":200,"data":[]}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	m := New()
	c := api.New(srv.URL, api.WithResponseSteps(m.Step()))
	ctx := context.Background()

	_, err := c.GetQuestions(ctx)
	require.NoError(t, err)
	_, err = c.GetResult(ctx)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(api.OpGetQuestions, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.requests.WithLabelValues(api.OpGetResult, OutcomeHTTPError)))
}

func TestWriteSummary(t *testing.T) {
	m := New()

	var empty bytes.Buffer
	require.NoError(t, m.WriteSummary(&empty))
	assert.Equal(t, "no backend calls yet\n", empty.String())

	require.NoError(t, m.Step()(context.Background(), &api.Exchange{Operation: api.OpGetResult, Duration: time.Second}))

	var buf bytes.Buffer
	require.NoError(t, m.WriteSummary(&buf))
	out := buf.String()
	assert.Contains(t, out, `moodscreen_api_requests_total{operation=getResult,outcome=ok} 1`)
	assert.Contains(t, out, `moodscreen_api_request_duration_seconds{operation=getResult} count=1 sum=1.000s`)
}
