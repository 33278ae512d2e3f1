package leads

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func validRequest(i int) *CreateLeadRequest {
	return &CreateLeadRequest{
		SessionID: fmt.Sprintf("sess-%d", i),
		Name:      fmt.Sprintf("Visiteur %d", i),
		Phone:     "514-555-1234",
		Email:     fmt.Sprintf("v%d@example.com", i),
		Source:    "chat",
	}
}

func TestInMemoryRepository_CreateAndGet(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	lead, err := repo.Create(ctx, validRequest(1))
	require.NoError(t, err)
	require.NotEmpty(t, lead.ID)
	require.False(t, lead.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, lead.ID)
	require.NoError(t, err)
	require.Equal(t, lead, got)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, ErrLeadNotFound)
}

func TestInMemoryRepository_RejectsIncompleteLead(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &CreateLeadRequest{Phone: "514-555-1234", Email: "m@e.co"})
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = repo.Create(ctx, &CreateLeadRequest{Name: "Marc", Email: "m@e.co"})
	require.ErrorIs(t, err, ErrMissingContact)

	_, err = repo.Create(ctx, &CreateLeadRequest{Name: "Marc", Phone: "514-555-1234"})
	require.ErrorIs(t, err, ErrMissingContact)
}

func TestInMemoryRepository_ListNewestFirstWithPaging(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, validRequest(i))
		require.NoError(t, err)
	}

	page, err := repo.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, "Visiteur 4", page[0].Name)

	rest, err := repo.List(ctx, 10, 4)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, "Visiteur 0", rest[0].Name)

	empty, err := repo.List(ctx, 10, 50)
	require.NoError(t, err)
	require.Empty(t, empty)
}

func TestInMemoryRepository_ListDefaultsLimit(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		_, err := repo.Create(ctx, validRequest(i))
		require.NoError(t, err)
	}

	// A non-positive limit gets the same default-50 clamp as the Postgres
	// backend, never the whole remainder.
	page, err := repo.List(ctx, 0, 0)
	require.NoError(t, err)
	require.Len(t, page, 50)

	page, err = repo.List(ctx, -1, 0)
	require.NoError(t, err)
	require.Len(t, page, 50)
}
