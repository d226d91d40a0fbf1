package usecases

import (
	"context"

	"github.com/liftmap/spotquery/pkg/dispatch"
	"github.com/liftmap/spotquery/pkg/spot"
	"github.com/liftmap/spotquery/pkg/util"
	"go.uber.org/zap"
)

// QueryService adapts the transport layer onto the dispatcher pool. when a
// command carries no spot collection the preloaded server dataset is
// supplied in its place, so thin clients need not ship tens of thousands of
// records per request.
type QueryService struct {
	log      *zap.Logger
	pool     CommandDispatcher
	defaults []*spot.Spot
}

func NewQueryService(log *zap.Logger, pool CommandDispatcher, defaults []*spot.Spot) *QueryService {
	return &QueryService{
		log:      log,
		pool:     pool,
		defaults: defaults,
	}
}

func (qs *QueryService) Query(ctx context.Context, cmd dispatch.Command) (dispatch.Response, error) {
	if len(cmd.Spots) == 0 {
		cmd.Spots = qs.defaults
	}

	resp, err := qs.pool.Dispatch(ctx, cmd)
	if err != nil {
		return dispatch.Response{}, util.WrapErrorf(err, util.ErrInternalServerError,
			"dispatching %q command", cmd.Type)
	}

	qs.log.Debug("command dispatched",
		zap.String("type", string(cmd.Type)),
		zap.String("id", cmd.ID),
		zap.Float64("durationMs", resp.DurationMS))
	return resp, nil
}
