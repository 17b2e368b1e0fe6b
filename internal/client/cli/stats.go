package cli

import (
	"bytes"
	"context"
	"strings"

	"github.com/prometheus/common/expfmt"
)

// Stats prints the client counters in the Prometheus text format. Counters
// exist from startup, so "no requests" means every sample is still zero.
func (a *App) Stats(_ context.Context) error {
	mfs, err := a.registry.Gather()
	if err != nil {
		return err
	}

	var total float64
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	if total == 0 {
		printlnFn("No requests yet")
		return nil
	}

	var buf bytes.Buffer
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(&buf, mf); err != nil {
			return err
		}
	}
	printlnFn(strings.TrimRight(buf.String(), "\n"))
	return nil
}
