package check

import (
	"time"

	"github.com/tuanvumaihuynh/catalog-e2e/internal/apperr"
	"github.com/tuanvumaihuynh/catalog-e2e/internal/model"
)

// DefaultMaxResponseTime is the latency ceiling used when callers pass none.
const DefaultMaxResponseTime = 3 * time.Second

// CheckResponseTime fails with a TimingViolation unless the response arrived
// in under maxTime. A non-positive maxTime selects DefaultMaxResponseTime.
func CheckResponseTime(resp model.Response, maxTime time.Duration) error {
	if maxTime <= 0 {
		maxTime = DefaultMaxResponseTime
	}
	if resp.Duration >= maxTime {
		return apperr.ResponseTooSlowErr.WithMsgf("response took %s, limit is %s", resp.Duration, maxTime)
	}
	return nil
}
