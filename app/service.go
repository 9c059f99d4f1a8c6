// Package app wires configuration, the record store, the coordinator and
// the observability adapters into a runnable service.
package app

import (
	"context"
	"fmt"

	"github.com/skyops/fieldcoord/config"
	"github.com/skyops/fieldcoord/core/coordinator"
	"github.com/skyops/fieldcoord/core/intent"
	"github.com/skyops/fieldcoord/core/metrics"
	"github.com/skyops/fieldcoord/core/store"
	"github.com/skyops/fieldcoord/infra/logger"
	inframetrics "github.com/skyops/fieldcoord/infra/metrics"
	"github.com/skyops/fieldcoord/infra/mqtt"
	memstore "github.com/skyops/fieldcoord/infra/store/memory"
	sqlstore "github.com/skyops/fieldcoord/infra/store/sqlite"
	"github.com/skyops/fieldcoord/internal/eventbus"
)

// Service holds the assembled coordination engine.
type Service struct {
	Coordinator *coordinator.Coordinator
	Store       store.Store

	cfg    *config.Config
	bus    *eventbus.Bus
	log    logger.Logger
	closer func() error
}

// New assembles a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logger.Configure(cfg.Logging.Level, cfg.Logging.Format)
	logg := logger.New("service")

	st, closer, err := openStore(cfg.Store)
	if err != nil {
		return nil, err
	}

	sink, err := inframetrics.NewSink(cfg.Metrics)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	bus := eventbus.New()
	coord := coordinator.New(st, logger.New("coordinator"), sink, bus)

	return &Service{
		Coordinator: coord,
		Store:       st,
		cfg:         cfg,
		bus:         bus,
		log:         logg,
		closer:      closer,
	}, nil
}

func openStore(cfg config.StoreConfig) (store.Store, func() error, error) {
	switch cfg.Driver {
	case "sqlite":
		st, err := sqlstore.New(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite store: %w", err)
		}
		return st, st.Close, nil
	default:
		st, err := memstore.NewFromFile(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("memory store: %w", err)
		}
		return st, func() error { return nil }, nil
	}
}

// Run starts the serve-mode adapters (MQTT bridge, Prometheus endpoint) and
// blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.cfg.MQTT.Enabled {
		bridge, err := mqtt.NewBridge(s.cfg.MQTT, func(it intent.Intent) any {
			return s.Coordinator.Do(it)
		})
		if err != nil {
			return fmt.Errorf("mqtt bridge: %w", err)
		}
		defer bridge.Close()

		events := s.bus.Subscribe()
		defer s.bus.Unsubscribe(events)
		go func() {
			for ev := range events {
				if err := bridge.Publish(ev); err != nil {
					s.log.Warnf("publish event: %v", err)
				}
			}
		}()
	}
	if hasSink(s.cfg.Metrics, "prometheus") && s.cfg.Metrics.PrometheusPort > 0 {
		go func() {
			if err := inframetrics.StartPromServer(ctx, s.cfg.Metrics.PrometheusPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	s.log.Infof("fieldcoord serving (store driver %s)", s.cfg.Store.Driver)
	<-ctx.Done()
	return nil
}

func hasSink(cfg metrics.Config, name string) bool {
	for _, s := range cfg.Sinks {
		if s == name {
			return true
		}
	}
	return false
}

// Close releases held resources.
func (s *Service) Close() error {
	s.bus.Close()
	if s.closer != nil {
		return s.closer()
	}
	return nil
}
