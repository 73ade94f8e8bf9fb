package flight

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "lava-flight/internal/sims/flight"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type sceneMetrics struct {
	spawned  metric.Int64Counter
	exploded metric.Int64Counter
	crashes  metric.Int64Counter

	// population mirrors len(Scene.bombs) for the gauge callback, which runs
	// on the reader's goroutine.
	population atomic.Int64
}

var (
	sourceVolcano   = metric.WithAttributes(attribute.String("source", "volcano"))
	sourceExplosion = metric.WithAttributes(attribute.String("source", "explosion"))
)

func newSceneMetrics(m metric.Meter) (*sceneMetrics, error) {
	sm := &sceneMetrics{}

	var err error
	sm.spawned, err = m.Int64Counter(
		"flight.lava_bombs.spawned",
		metric.WithDescription("Lava bombs launched"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating spawned counter: %w", err)
	}

	sm.exploded, err = m.Int64Counter(
		"flight.lava_bombs.exploded",
		metric.WithDescription("Dead lava bombs that exploded into fragments"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating exploded counter: %w", err)
	}

	sm.crashes, err = m.Int64Counter(
		"flight.aircraft.crashes",
		metric.WithDescription("Aircraft collisions with terrain or lava bombs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating crash counter: %w", err)
	}

	_, err = m.Int64ObservableGauge(
		"flight.lava_bombs.population",
		metric.WithDescription("Lava bombs currently in flight"),
		metric.WithInt64Callback(func(_ context.Context, o metric.Int64Observer) error {
			o.Observe(sm.population.Load())
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("creating population gauge: %w", err)
	}

	return sm, nil
}

func (sm *sceneMetrics) volcanoSpawn() {
	sm.spawned.Add(context.Background(), 1, sourceVolcano)
}

func (sm *sceneMetrics) explosion(fragments int) {
	ctx := context.Background()
	sm.exploded.Add(ctx, 1)
	sm.spawned.Add(ctx, int64(fragments), sourceExplosion)
}

func (sm *sceneMetrics) crash(cause string) {
	sm.crashes.Add(context.Background(), 1, metric.WithAttributes(attribute.String("cause", cause)))
}
