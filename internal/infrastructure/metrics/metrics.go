// Package metrics records gateway traffic counters in the Prometheus text format.
package metrics

import (
	"fmt"
	"io"
	"strconv"
	"time"

	vm "github.com/VictoriaMetrics/metrics"
)

const (
	TokenResultSuccess = "success"
	TokenResultFailure = "failure"

	// StatusTransportError is the status label when no upstream response arrived.
	StatusTransportError = "transport_error"
)

// set holds only fibgate metrics, separate from the package-level default set.
var set = vm.NewSet()

// RecordUpstreamRequest counts one gateway call for operation and observes its duration.
// status is the upstream HTTP status code, or 0 when the request never got a response.
func RecordUpstreamRequest(operation string, status int, started time.Time) {
	label := StatusTransportError
	if status > 0 {
		label = strconv.Itoa(status)
	}

	set.GetOrCreateCounter(fmt.Sprintf(`fibgate_upstream_requests_total{operation=%q,status=%q}`, operation, label)).Inc()
	set.GetOrCreateHistogram(fmt.Sprintf(`fibgate_upstream_request_duration_seconds{operation=%q}`, operation)).UpdateDuration(started)
}

// RecordTokenRequest counts one token endpoint call by result.
func RecordTokenRequest(result string) {
	set.GetOrCreateCounter(fmt.Sprintf(`fibgate_token_requests_total{result=%q}`, result)).Inc()
}

// UpstreamRequestCount returns the current value of the upstream counter, mostly for tests.
func UpstreamRequestCount(operation string, status int) uint64 {
	label := StatusTransportError
	if status > 0 {
		label = strconv.Itoa(status)
	}
	return set.GetOrCreateCounter(fmt.Sprintf(`fibgate_upstream_requests_total{operation=%q,status=%q}`, operation, label)).Get()
}

// TokenRequestCount returns the current value of the token counter.
func TokenRequestCount(result string) uint64 {
	return set.GetOrCreateCounter(fmt.Sprintf(`fibgate_token_requests_total{result=%q}`, result)).Get()
}

// WritePrometheus writes the fibgate metrics followed by process metrics to w.
func WritePrometheus(w io.Writer) {
	set.WritePrometheus(w)
	vm.WriteProcessMetrics(w)
}
