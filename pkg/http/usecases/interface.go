package usecases

import (
	"context"

	"github.com/liftmap/spotquery/pkg/dispatch"
)

type CommandDispatcher interface {
	Dispatch(ctx context.Context, cmd dispatch.Command) (dispatch.Response, error)
}
