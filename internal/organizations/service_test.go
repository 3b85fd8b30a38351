package organizations

import (
	"context"
	"testing"

	"cinetick/internal/dal"
	"cinetick/internal/shared/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrganizationCodeIsUnique(t *testing.T) {
	ctx := context.Background()
	svc := NewService(dal.NewMemStores())

	first, err := svc.Create(ctx, &OrganizationRequest{Name: "Studio Canal", Code: "SC"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, &OrganizationRequest{Name: "Second Canal", Code: "SC"})
	assert.ErrorIs(t, err, apperr.ErrAlreadyExists)

	// renaming keeps the code reachable
	updated, err := svc.Update(ctx, first.ID, &OrganizationRequest{Name: "StudioCanal", Code: "SC"})
	require.NoError(t, err)
	assert.Equal(t, "StudioCanal", updated.Name)

	found, total, err := svc.Search(ctx, "code", "SC", 0, 10, "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, found, 1)
	assert.Equal(t, "StudioCanal", found[0].Name)
}
