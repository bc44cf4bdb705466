package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleJob() Job {
	min, max := 2, 5
	return Job{
		Title:            "Backend Developer",
		Company:          "Nimbus",
		Department:       "Engineering",
		Industry:         "Technology",
		Location:         "Berlin, Germany",
		Type:             "Full-time",
		Level:            "Mid",
		RemoteType:       "Remote",
		Salary:           Salary{Min: 90000, Max: 130000, Currency: "EUR"},
		Description:      "build backend services",
		Requirements:     []string{"2+ years of experience", "Go or Python"},
		Responsibilities: []string{"ship features", "review code"},
		Skills:           []string{"Go", "PostgreSQL", "Docker"},
		PostedDate:       time.Now().UTC().Format("2006-01-02"),
		VisaSponsorship:  true,

		YearsExperienceMin: &min,
		YearsExperienceMax: &max,
		RecruiterName:      "Sam Lee",
		RecruiterEmail:     "sam.lee@company.com",
	}
}

func TestInsertAndGetByID(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	inserted, err := s.Insert(ctx, sampleJob())
	require.NoError(t, err)
	require.NotEmpty(t, inserted.ID, "insert should assign a UUID")

	got, err := s.GetByID(ctx, inserted.ID)
	require.NoError(t, err)

	assert.Equal(t, "Backend Developer", got.Title)
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker"}, got.Skills)
	assert.Equal(t, []string{"2+ years of experience", "Go or Python"}, got.Requirements)
	assert.Equal(t, Salary{Min: 90000, Max: 130000, Currency: "EUR"}, got.Salary)
	assert.True(t, got.VisaSponsorship)
	require.NotNil(t, got.YearsExperienceMin)
	assert.Equal(t, 2, *got.YearsExperienceMin)
	assert.Equal(t, "Sam Lee", got.RecruiterName)
}

func TestGetByIDNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestInsertDefaults(t *testing.T) {
	s := testStore(t)
	job := Job{Title: "Analyst", Company: "Atlas", Department: "Finance",
		Location: "Remote", Type: "Full-time", Level: "Mid", Description: "numbers"}

	inserted, err := s.Insert(context.Background(), job)
	require.NoError(t, err)

	got, err := s.GetByID(context.Background(), inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "On-site", got.RemoteType)
	assert.Equal(t, "USD", got.Salary.Currency)
	assert.NotEmpty(t, got.PostedDate)
	assert.Nil(t, got.YearsExperienceMin)
	assert.Empty(t, got.Skills)
}

func TestCountAndAll(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	for i := 0; i < 3; i++ {
		_, err := s.Insert(ctx, sampleJob())
		require.NoError(t, err)
	}

	n, err = s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	eng := sampleJob()
	fin := sampleJob()
	fin.Title = "Financial Analyst"
	fin.Department = "Finance"
	fin.Level = "Senior"
	fin.Location = "New York, NY"
	fin.Skills = []string{"Excel", "SQL"}

	_, err := s.Insert(ctx, eng)
	require.NoError(t, err)
	_, err = s.Insert(ctx, fin)
	require.NoError(t, err)

	page, err := s.List(ctx, Query{Department: "Finance"})
	require.NoError(t, err)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, "Financial Analyst", page.Jobs[0].Title)
	assert.Equal(t, 1, page.Total)

	page, err = s.List(ctx, Query{Location: "berlin"})
	require.NoError(t, err)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, "Backend Developer", page.Jobs[0].Title)

	page, err = s.List(ctx, Query{Text: "postgresql"})
	require.NoError(t, err)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, "Backend Developer", page.Jobs[0].Title)

	page, err = s.List(ctx, Query{Text: "no such thing anywhere"})
	require.NoError(t, err)
	assert.Empty(t, page.Jobs)
	assert.Equal(t, 0, page.Total)
}

func TestListFacets(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	_, err := s.Insert(ctx, sampleJob())
	require.NoError(t, err)

	page, err := s.List(ctx, Query{})
	require.NoError(t, err)
	assert.Contains(t, page.Facets.Departments, "Engineering")
	assert.Contains(t, page.Facets.Levels, "Mid")
	assert.Contains(t, page.Facets.RemoteTypes, "Remote")
	assert.Contains(t, page.Facets.Industries, "Technology")
}

func TestListPagination(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Insert(ctx, sampleJob())
		require.NoError(t, err)
	}

	page, err := s.List(ctx, Query{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, 3, page.TotalPages)

	page, err = s.List(ctx, Query{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, page.Jobs, 1)
}

func TestListSalaryOverlap(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	low := sampleJob()
	low.Salary = Salary{Min: 40000, Max: 60000, Currency: "USD"}
	high := sampleJob()
	high.Title = "Principal Engineer"
	high.Salary = Salary{Min: 180000, Max: 250000, Currency: "USD"}

	_, err := s.Insert(ctx, low)
	require.NoError(t, err)
	_, err = s.Insert(ctx, high)
	require.NoError(t, err)

	min := 150000
	page, err := s.List(ctx, Query{SalaryMin: &min})
	require.NoError(t, err)
	require.Len(t, page.Jobs, 1)
	assert.Equal(t, "Principal Engineer", page.Jobs[0].Title)
}
