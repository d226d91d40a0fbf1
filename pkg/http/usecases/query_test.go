package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/liftmap/spotquery/pkg/dispatch"
	"github.com/liftmap/spotquery/pkg/spot"
	"github.com/liftmap/spotquery/pkg/util"
)

type stubDispatcher struct {
	lastCommand dispatch.Command
	resp        dispatch.Response
	err         error
}

func (s *stubDispatcher) Dispatch(ctx context.Context, cmd dispatch.Command) (dispatch.Response, error) {
	s.lastCommand = cmd
	return s.resp, s.err
}

func TestQueryFallsBackToDefaultDataset(t *testing.T) {
	defaults := []*spot.Spot{{ID: "a"}, {ID: "b"}}
	stub := &stubDispatcher{resp: dispatch.Response{ID: "q1"}}
	qs := NewQueryService(zap.NewNop(), stub, defaults)

	resp, err := qs.Query(context.Background(), dispatch.Command{ID: "q1", Type: dispatch.TypeFilter})
	require.NoError(t, err)
	assert.Equal(t, "q1", resp.ID)
	assert.Len(t, stub.lastCommand.Spots, 2)
}

func TestQueryKeepsSuppliedSpots(t *testing.T) {
	stub := &stubDispatcher{}
	qs := NewQueryService(zap.NewNop(), stub, []*spot.Spot{{ID: "default"}})

	supplied := []*spot.Spot{{ID: "mine"}}
	_, err := qs.Query(context.Background(), dispatch.Command{Type: dispatch.TypeFilter, Spots: supplied})
	require.NoError(t, err)
	require.Len(t, stub.lastCommand.Spots, 1)
	assert.Equal(t, "mine", stub.lastCommand.Spots[0].ID)
}

func TestQueryWrapsDispatchErrors(t *testing.T) {
	stub := &stubDispatcher{err: context.DeadlineExceeded}
	qs := NewQueryService(zap.NewNop(), stub, nil)

	_, err := qs.Query(context.Background(), dispatch.Command{Type: dispatch.TypeFilter})
	require.Error(t, err)

	var wrapped *util.Error
	require.True(t, errors.As(err, &wrapped))
	assert.Equal(t, util.ErrInternalServerError, wrapped.Code())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
