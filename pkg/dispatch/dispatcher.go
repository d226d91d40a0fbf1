package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/liftmap/spotquery/pkg/engine"
	"github.com/liftmap/spotquery/pkg/geo"
	"go.uber.org/zap"
)

// Dispatcher is the single entry point of the engine. callers post commands
// and are notified with a response later; the dispatcher itself consumes its
// bounded queue with exactly one goroutine, processing each command fully
// (including result construction) before taking the next. there is no
// mid-command cancellation and no enforced timeout.
type Dispatcher struct {
	log    *zap.Logger
	engine *engine.Engine
	queue  chan request
}

type request struct {
	cmd   Command
	reply chan Response
}

func New(eng *engine.Engine, log *zap.Logger, queueSize int) *Dispatcher {
	return &Dispatcher{
		log:    log,
		engine: eng,
		queue:  make(chan request, queueSize),
	}
}

// Run consumes the command queue until ctx is cancelled. one command at a
// time, FIFO, no preemption.
func (d *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-d.queue:
			req.reply <- d.handle(req.cmd)
		}
	}
}

// Post enqueues a command and returns the channel the response will arrive
// on. the caller never blocks on the engine's progress; multiple commands
// may be outstanding.
func (d *Dispatcher) Post(cmd Command) <-chan Response {
	reply := make(chan Response, 1)
	d.queue <- request{cmd: cmd, reply: reply}
	return reply
}

// Dispatch posts a command and waits for its response or ctx expiry. the
// engine is stateless and idempotent, so callers may apply their own
// deadline and retry without engine-side coordination.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd Command) (Response, error) {
	reply := d.Post(cmd)
	select {
	case <-ctx.Done():
		return Response{}, ctx.Err()
	case resp := <-reply:
		return resp, nil
	}
}

// handle executes one command and builds its timed envelope. any internal
// panic is a defect: it is caught here, logged, and turned into a
// well-formed error envelope instead of crashing the consumer loop.
func (d *Dispatcher) handle(cmd Command) (resp Response) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("command handler panic",
				zap.String("type", string(cmd.Type)),
				zap.String("id", cmd.ID),
				zap.Any("panic", r))
			resp = Response{
				ID:         cmd.ID,
				Type:       cmd.Type,
				Result:     ErrorResult{Error: fmt.Sprintf("internal fault handling %q command", cmd.Type)},
				DurationMS: durationMS(start),
			}
		}
	}()

	result, count := d.execute(cmd)

	return Response{
		ID:         cmd.ID,
		Type:       cmd.Type,
		Result:     result,
		Count:      count,
		DurationMS: durationMS(start),
	}
}

func (d *Dispatcher) execute(cmd Command) (interface{}, *int) {
	switch cmd.Type {
	case TypeFilter:
		res := d.engine.Filter(cmd.Spots, criteriaOrZero(cmd))
		return res, count(len(res))

	case TypeSort:
		res := d.engine.Sort(cmd.Spots, cmd.SortKey, cmd.UserLocation)
		return res, count(len(res))

	case TypeFilterAndSort:
		res := d.engine.Sort(d.engine.Filter(cmd.Spots, criteriaOrZero(cmd)), cmd.SortKey, cmd.UserLocation)
		return res, count(len(res))

	case TypeDistances:
		if cmd.UserLocation == nil {
			return ErrorResult{Error: "distances command requires userLocation"}, nil
		}
		res := d.engine.Distances(cmd.Spots, *cmd.UserLocation)
		return res, count(len(res))

	case TypeRoute:
		if cmd.From == nil || cmd.To == nil {
			return ErrorResult{Error: "route command requires from and to"}, nil
		}
		res := d.engine.MatchAlongStraightRoute(cmd.Spots, *cmd.From, *cmd.To, cmd.CorridorWidthKM)
		return res, count(len(res))

	case TypeRouteCorridor:
		polyline, err := routeGeometry(cmd)
		if err != nil {
			return ErrorResult{Error: err.Error()}, nil
		}
		res := d.engine.MatchAlongPolyline(cmd.Spots, polyline, cmd.CorridorKM)
		return res, count(len(res))

	case TypeCluster:
		res := d.engine.Cluster(cmd.Spots, cmd.Zoom)
		return res, count(len(res))

	case TypeHaversine:
		if cmd.From == nil || cmd.To == nil {
			return ErrorResult{Error: "haversine command requires from and to"}, nil
		}
		return geo.HaversineDistance(*cmd.From, *cmd.To), nil

	default:
		return ErrorResult{Error: fmt.Sprintf("unrecognized command type: %q", cmd.Type)}, nil
	}
}

// routeGeometry resolves the corridor geometry, preferring decoded
// coordinates over the encoded polyline string.
func routeGeometry(cmd Command) ([]geo.Coordinate, error) {
	if len(cmd.Polyline) > 0 {
		return cmd.Polyline, nil
	}
	if cmd.EncodedPolyline != "" {
		polyline, err := geo.DecodePolyline(cmd.EncodedPolyline)
		if err != nil {
			return nil, fmt.Errorf("malformed encoded polyline: %w", err)
		}
		return polyline, nil
	}
	return nil, fmt.Errorf("routeCorridor command requires polyline or encodedPolyline")
}

func criteriaOrZero(cmd Command) engine.Criteria {
	if cmd.Criteria != nil {
		return *cmd.Criteria
	}
	return engine.Criteria{}
}

func count(n int) *int {
	return &n
}

func durationMS(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
