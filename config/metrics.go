package config

// MetricsConfig controls whether solve instrumentation is exported as
// Prometheus metrics.
type MetricsConfig struct {
	PrometheusEnabled bool `json:"prometheus_enabled"`
	PrometheusPort    int  `json:"prometheus_port"`
}

// SetDefaults applies the conventional Prometheus scrape port.
func (c *MetricsConfig) SetDefaults() {
	if c.PrometheusPort == 0 {
		c.PrometheusPort = 9090
	}
}
