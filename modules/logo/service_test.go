package logo

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"can-kuruyemis-server/modules/common/apperr"
	"can-kuruyemis-server/modules/common/store"
)

const smallLogo = "data:image/png;base64,iVBORw0KGgo="

func TestUploadAndGet(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())

	require.NoError(t, svc.Upload(ctx, smallLogo))

	value, found, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, smallLogo, value)
}

func TestUploadRejectsNonImagePayload(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())

	err := svc.Upload(ctx, "data:text/plain;base64,aGVsbG8=")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	err = svc.Upload(ctx, "")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestUploadOversizedKeepsPreviousLogo(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())

	require.NoError(t, svc.Upload(ctx, smallLogo))

	oversized := "data:image/png;base64," + strings.Repeat("A", maxLogoChars)
	err := svc.Upload(ctx, oversized)
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	// Reddedilen yükleme önceki logoyu bozmamalı
	value, found, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, smallLogo, value)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	svc := NewService(store.NewMemoryStore())

	require.NoError(t, svc.Upload(ctx, smallLogo))
	require.NoError(t, svc.Remove(ctx))

	_, found, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
