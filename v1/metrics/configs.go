package metrics

// Config controls the metrics registry and HTTP server.
type Config struct {
	// Address is the listen address of the /metrics HTTP server,
	// e.g. ":9090".
	Address string

	// ServiceName is attached to every metric as a constant "service" label.
	ServiceName string

	// EnableDefaultCollectors registers the standard Go runtime, process,
	// and build info collectors alongside the database collectors.
	EnableDefaultCollectors bool
}
