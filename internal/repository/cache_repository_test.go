package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/students-api/internal/models"
)

func TestStudentCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewStudentCacheRepository(nil)
	ctx := context.Background()

	_, err := repo.Get(ctx, "students:all:")
	require.True(t, errors.Is(err, ErrCacheMiss))

	assert.NoError(t, repo.Set(ctx, "students:all:", []models.Student{{ID: 1}}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "students:*"))
	assert.NoError(t, repo.Close())
}
