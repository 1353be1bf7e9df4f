package metrics

import (
	"bytes"
	"testing"
	"time"

	vm "github.com/VictoriaMetrics/metrics"
	"github.com/stretchr/testify/assert"
)

func TestRecordUpstreamRequest(t *testing.T) {
	before := UpstreamRequestCount("cancel", 204)

	RecordUpstreamRequest("cancel", 204, time.Now())
	RecordUpstreamRequest("cancel", 204, time.Now())

	assert.Equal(t, before+2, UpstreamRequestCount("cancel", 204))
}

func TestRecordUpstreamRequest_TransportError(t *testing.T) {
	before := UpstreamRequestCount("refund", 0)

	RecordUpstreamRequest("refund", 0, time.Now())

	assert.Equal(t, before+1, UpstreamRequestCount("refund", 0))
}

func TestWritePrometheus(t *testing.T) {
	RecordTokenRequest(TokenResultSuccess)
	RecordUpstreamRequest("create", 201, time.Now().Add(-50*time.Millisecond))

	var buf bytes.Buffer
	WritePrometheus(&buf)

	out := buf.String()
	assert.Contains(t, out, `fibgate_token_requests_total{result="success"}`)
	assert.Contains(t, out, `fibgate_upstream_requests_total{operation="create",status="201"}`)
	assert.Contains(t, out, `fibgate_upstream_request_duration_seconds_bucket{operation="create"`)
}

func TestMetricsStayOutOfDefaultSet(t *testing.T) {
	RecordTokenRequest(TokenResultFailure)

	var buf bytes.Buffer
	vm.WritePrometheus(&buf, false)

	assert.NotContains(t, buf.String(), "fibgate_token_requests_total")
}
