package metrics

import (
	"fmt"

	coremetrics "github.com/skyops/fieldcoord/core/metrics"
)

// NewSink builds the configured sink set. No configured sinks yields a
// NopSink; several are combined into a MultiSink.
func NewSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	var sinks []coremetrics.Sink
	for _, name := range cfg.Sinks {
		switch name {
		case "prometheus":
			s, err := NewPromSink()
			if err != nil {
				return nil, fmt.Errorf("prometheus sink: %w", err)
			}
			sinks = append(sinks, s)
		case "influxdb":
			sinks = append(sinks, NewInfluxSinkWithFallback(cfg.InfluxURL, cfg.InfluxToken, cfg.InfluxOrg, cfg.InfluxBucket))
		case "nop", "":
			sinks = append(sinks, coremetrics.NopSink{})
		default:
			return nil, fmt.Errorf("unknown metrics sink %q", name)
		}
	}
	switch len(sinks) {
	case 0:
		return coremetrics.NopSink{}, nil
	case 1:
		return sinks[0], nil
	}
	return NewMultiSink(sinks...), nil
}
