package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

// Module provides the metrics registry and collectors.
var Module = fx.Provide(
	NewRegistry,
	func(reg *prometheus.Registry) *Metrics { return New(reg) },
)
