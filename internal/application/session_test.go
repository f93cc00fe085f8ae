package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"solar-inspector/internal/domain/entity"
	"solar-inspector/internal/infrastructure/storage"
)

func TestSessionService_BeginCheckAndCancel(t *testing.T) {
	svc := NewSessionService(storage.NewMemorySessionRepository(time.Minute))
	ctx := context.Background()

	cs, err := svc.BeginCheck(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingImageID, cs.State)

	cs, err = svc.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.True(t, cs.AwaitsImageID())

	cs, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, cs.State)
}

func TestSessionService_CompleteCheckRemembersImage(t *testing.T) {
	svc := NewSessionService(storage.NewMemorySessionRepository(time.Minute))
	ctx := context.Background()

	_, err := svc.BeginCheck(ctx, 2, 20)
	require.NoError(t, err)
	_, err = svc.CompleteCheck(ctx, 2, 20, "cell_0003.jpg")
	require.NoError(t, err)

	cs, err := svc.Get(ctx, 2, 20)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, cs.State)
	require.Equal(t, "cell_0003.jpg", cs.LastImageID)
}

func TestSessionService_Reset(t *testing.T) {
	svc := NewSessionService(storage.NewMemorySessionRepository(time.Minute))
	ctx := context.Background()

	_, err := svc.CompleteCheck(ctx, 3, 30, "cell_0001.jpg")
	require.NoError(t, err)
	require.NoError(t, svc.Reset(ctx, 3, 30))

	cs, err := svc.Get(ctx, 3, 30)
	require.NoError(t, err)
	require.Empty(t, cs.LastImageID)
}
