package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/mukhtar-travel/trip-platform/internal/api/metrics"
	"github.com/mukhtar-travel/trip-platform/internal/core/domain"
	"github.com/mukhtar-travel/trip-platform/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher routes activity events to a fixed set of workers using
// consistent hashing on the trip id, guaranteeing per-trip event ordering
// into the reporting aggregates.
type Dispatcher struct {
	workers   []chan domain.ActivityEvent
	processor ports.ActivityProcessor
	log       zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, processor ports.ActivityProcessor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:   make([]chan domain.ActivityEvent, numWorkers),
		processor: processor,
		log:       log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.ActivityEvent, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish sends an event to the worker responsible for its trip.
// Implements ports.ActivityPublisher. Non-blocking up to channelBuffer.
func (d *Dispatcher) Publish(ev domain.ActivityEvent) {
	i := d.shardIndex(ev.TripID)
	d.workers[i] <- ev
	metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a trip id deterministically to a worker index.
func (d *Dispatcher) shardIndex(tripID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(tripID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.ActivityEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-ch:
			if !ok {
				return
			}
			if err := d.processor.Process(ctx, ev); err != nil {
				d.log.Error().Err(err).
					Str("trip_id", ev.TripID).
					Int("worker_id", id).
					Msg("activity processing failed")
			}
			metrics.ActivityQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}
