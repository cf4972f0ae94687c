package database

import (
	"context"
	"fmt"
	"sync"

	"github.com/helixbase/dbkit/v1/logger"
	"github.com/helixbase/dbkit/v1/metrics"
	"github.com/helixbase/dbkit/v1/mysql"
	"github.com/helixbase/dbkit/v1/postgres"
)

// connState is the service's connection state. Only the service itself
// transitions it; the adapter reference is valid only in stateConnected.
type connState int

const (
	stateDisconnected connState = iota
	stateConnecting
	stateConnected
)

// Compile-time checks that the engine adapters satisfy the Adapter contract.
var (
	_ Adapter = (*postgres.Adapter)(nil)
	_ Adapter = (*mysql.Adapter)(nil)
)

// selectAdapter dispatches on the engine type. It runs before any connection
// attempt, so configuration mistakes surface without touching the network.
func selectAdapter(opts Options) (Adapter, error) {
	switch opts.Engine {
	case EnginePostgres:
		if opts.Postgres == nil {
			return nil, fmt.Errorf("database: postgres config is required when engine=%s", EnginePostgres)
		}
		return postgres.NewAdapter(*opts.Postgres), nil

	case EngineMySQL:
		if opts.MySQL == nil {
			return nil, fmt.Errorf("database: mysql config is required when engine=%s", EngineMySQL)
		}
		return mysql.NewAdapter(*opts.MySQL), nil

	case EngineEmbedded, EngineSQLite:
		return nil, fmt.Errorf("%w: %s", ErrEngineNotImplemented, opts.Engine)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEngine, opts.Engine)
	}
}

// newAdapter is the dispatch entry point used by Start. Package variable so
// tests can substitute a stub adapter.
var newAdapter = selectAdapter

// Service owns exactly one connection adapter for the lifetime of the
// database dependency it represents. The service is the sole writer of the
// adapter reference; concurrent Disconnect calls are safe because the first
// caller clears the reference and later callers observe "already clear".
type Service struct {
	opts    Options
	log     *logger.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	state   connState
	adapter Adapter
	client  Client
}

// NewService creates a database service with the given options. Options are
// validated lazily: engine dispatch and connection happen in Start.
func NewService(opts Options) *Service {
	return &Service{opts: opts, log: logger.Nop()}
}

// WithLogger attaches a structured logger. Call before Start.
func (s *Service) WithLogger(log *logger.Logger) *Service {
	if log != nil {
		s.log = log
	}
	return s
}

// WithMetrics attaches Prometheus instrumentation. Call before Start; the
// service instruments the connection and maintains the connection-up gauge.
func (s *Service) WithMetrics(m *metrics.Metrics) *Service {
	s.metrics = m
	return s
}

// Start selects the adapter by engine type and connects it. It fails with
// ErrOptionsNotSet when the service has no options, ErrUnsupportedEngine or
// ErrEngineNotImplemented at dispatch, and a wrapped engine error when the
// connection or liveness probe fails.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.opts.Engine == "" {
		return ErrOptionsNotSet
	}

	adapter, err := newAdapter(s.opts)
	if err != nil {
		s.log.Error("database adapter selection failed", err, map[string]interface{}{
			"engine": string(s.opts.Engine),
		})
		return err
	}

	s.state = stateConnecting
	db, err := adapter.Connect(ctx)
	if err != nil {
		s.state = stateDisconnected
		s.log.Error("database connection failed", err, map[string]interface{}{
			"engine": string(s.opts.Engine),
		})
		return fmt.Errorf("database start: %w", err)
	}

	if s.metrics != nil {
		if err := s.metrics.InstrumentGorm(db); err != nil {
			s.log.Warn("query instrumentation not registered", err, nil)
		}
		s.metrics.SetConnectionUp(string(s.opts.Engine), true)
	}

	s.adapter = adapter
	s.client = NewClient(db)
	s.state = stateConnected

	fields := map[string]interface{}{"engine": string(s.opts.Engine)}
	if name := s.opts.connectionName(); name != "" {
		fields["connection"] = name
	}
	s.log.Info("database connected", nil, fields)

	return nil
}

// TestConnection reports connection health. It returns false when no adapter
// exists yet and otherwise delegates to the adapter's probe. It never
// returns an error.
func (s *Service) TestConnection(ctx context.Context) bool {
	s.mu.Lock()
	adapter := s.adapter
	s.mu.Unlock()

	if adapter == nil {
		return false
	}
	return adapter.TestConnection(ctx)
}

// Disconnect tears the connection down and clears the adapter reference.
// Safe to call multiple times; only the first call performs work.
func (s *Service) Disconnect(ctx context.Context) error {
	s.mu.Lock()
	adapter := s.adapter
	s.adapter = nil
	s.client = nil
	s.state = stateDisconnected
	s.mu.Unlock()

	if adapter == nil {
		return nil
	}

	if s.metrics != nil {
		s.metrics.SetConnectionUp(string(s.opts.Engine), false)
	}

	err := adapter.Disconnect(ctx)
	s.log.Info("database disconnected", nil, map[string]interface{}{
		"engine": string(s.opts.Engine),
	})
	return err
}

// Connection returns the live query handle. It fails with ErrNotConnected
// outside the window between a successful Start and Disconnect.
func (s *Service) Connection() (Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateConnected || s.client == nil {
		return nil, ErrNotConnected
	}
	return s.client, nil
}
