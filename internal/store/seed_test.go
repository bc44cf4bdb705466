package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedPopulatesEmptyDatabase(t *testing.T) {
	if testing.Short() {
		t.Skip("seeding the full corpus is slow")
	}

	s, err := Open(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	n, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Greater(t, n, 1000)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, n, count)

	// Re-seeding a populated database is a no-op.
	again, err := s.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, again)

	// Every department the matcher penalizes against must exist.
	page, err := s.List(ctx, Query{})
	require.NoError(t, err)
	for _, dept := range []string{"Engineering", "Healthcare", "Design", "Legal", "Human Resources", "Hospitality & Tourism"} {
		assert.Contains(t, page.Facets.Departments, dept)
	}
}

func TestGenerateJobShape(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	defer s.Close()

	n, err := s.Seed(context.Background())
	if err != nil || n == 0 {
		t.Skip("seed unavailable")
	}

	jobs, err := s.All(context.Background())
	require.NoError(t, err)

	for _, j := range jobs[:50] {
		assert.NotEmpty(t, j.ID)
		assert.NotEmpty(t, j.Title)
		assert.NotEmpty(t, j.Company)
		assert.NotEmpty(t, j.Department)
		assert.NotEmpty(t, j.Level)
		assert.NotEmpty(t, j.PostedDate)
		assert.NotEmpty(t, j.Skills)
		assert.NotEmpty(t, j.Requirements)
		assert.Greater(t, j.Salary.Max, j.Salary.Min)
		if j.Level == "Intern" {
			assert.Equal(t, "Internship", j.Type)
		}
	}
}
