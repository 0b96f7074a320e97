package repo

import (
	"context"
	"testing"

	"lostandfound/app/db"
	"lostandfound/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_ListAndChildren(t *testing.T) {
	ctx := context.Background()
	r := NewCategoryRepository(newTestDB(t))

	parent := &models.Category{Name: "Electronics", Slug: "electronics-aaaaa"}
	require.NoError(t, r.Create(ctx, parent))

	child := &models.Category{Name: "Phones", Slug: "phones-aaaaa", ParentCategoryID: &parent.ID}
	require.NoError(t, r.Create(ctx, child))

	hidden := &models.Category{Name: "Old", Slug: "old-aaaaa", ParentCategoryID: &parent.ID}
	require.NoError(t, r.Create(ctx, hidden))
	hidden.Active = false
	require.NoError(t, r.Save(ctx, hidden))

	list, err := r.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	ids, err := r.ChildIDs(ctx, parent.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{child.ID}, ids)
}

func TestCategoryRepository_SlugExists(t *testing.T) {
	ctx := context.Background()
	r := NewCategoryRepository(newTestDB(t))

	require.NoError(t, r.Create(ctx, &models.Category{Name: "Keys", Slug: "keys-aaaaa"}))

	ok, err := r.SlugExists(ctx, "keys-aaaaa")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.SlugExists(ctx, "keys-bbbbb")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCategoryRepository_UniqueSlug(t *testing.T) {
	ctx := context.Background()
	r := NewCategoryRepository(newTestDB(t))

	require.NoError(t, r.Create(ctx, &models.Category{Name: "Keys", Slug: "keys-aaaaa"}))
	err := r.Create(ctx, &models.Category{Name: "Keys", Slug: "keys-aaaaa"})
	require.Error(t, err)
	assert.True(t, db.IsUniqueViolation(err))
}
