package controllers

import (
	"context"

	"github.com/liftmap/spotquery/pkg/dispatch"
)

type QueryService interface {
	Query(ctx context.Context, cmd dispatch.Command) (dispatch.Response, error)
}
