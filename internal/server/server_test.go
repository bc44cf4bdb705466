package server

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_careers/internal/index"
	"github.com/anatolykoptev/go_careers/internal/store"
)

func testServer(t *testing.T) (*Server, *store.Store) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "jobs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	ctx := context.Background()
	jobs := []store.Job{
		{
			Title: "Senior Software Engineer", Company: "Nimbus", Department: "Engineering",
			Location: "Berlin, Germany", Type: "Full-time", Level: "Senior", RemoteType: "Remote",
			Description: "build backend services in python and go",
			Skills:      []string{"Python", "Go", "PostgreSQL"},
		},
		{
			Title: "Registered Nurse", Company: "Unity Healthcare", Department: "Healthcare",
			Location: "Boston, MA", Type: "Full-time", Level: "Mid", RemoteType: "On-site",
			Description: "provide patient care and clinical documentation",
			Skills:      []string{"Patient Care", "EHR Systems"},
		},
	}
	for _, j := range jobs {
		_, err := st.Insert(ctx, j)
		require.NoError(t, err)
	}

	cache := NewCache("", time.Minute, 100, time.Minute)
	srv := New(Config{Port: "0", AdminKey: "test-key", MatchPerMin: 100}, st, index.New(), cache)
	require.NoError(t, srv.RebuildIndex(ctx))
	return srv, st
}

func TestHealth(t *testing.T) {
	srv, _ := testServer(t)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, 2, body["indexed"])
}

func TestListJobs(t *testing.T) {
	srv, _ := testServer(t)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body jobsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Total)
	assert.Len(t, body.Jobs, 2)
	assert.Contains(t, body.Departments, "Engineering")
	assert.Contains(t, body.Departments, "Healthcare")
}

func TestListJobsFiltered(t *testing.T) {
	srv, _ := testServer(t)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs?department=Healthcare", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body jobsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Jobs, 1)
	assert.Equal(t, "Registered Nurse", body.Jobs[0].Title)
}

func TestGetJob(t *testing.T) {
	srv, st := testServer(t)

	all, err := st.All(context.Background())
	require.NoError(t, err)
	id := all[0].ID

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs/"+id, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var job store.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, id, job.ID)

	rec = httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("GET", "/api/jobs/does-not-exist", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMatchWithFormText(t *testing.T) {
	srv, _ := testServer(t)

	resume := `Experienced software engineer.
7 years of experience building backend services with Python, Go and PostgreSQL.
Software Engineer at Acme Corp | 2018 - Present`

	form := url.Values{"resumeText": {resume}}
	req := httptest.NewRequest("POST", "/api/match", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var body matchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Matches)
	assert.Equal(t, "Senior Software Engineer", body.Matches[0].Job.Title)
	assert.GreaterOrEqual(t, body.Matches[0].Score, 15)
	assert.NotEmpty(t, body.Matches[0].Reason)
	assert.Contains(t, body.ExtractedKeywords.Skills, "python")
	assert.Equal(t, len(body.Matches), body.TotalMatched)
	assert.NotEmpty(t, body.ResumeSummary)
}

func TestMatchFileUpload(t *testing.T) {
	srv, _ := testServer(t)

	var buf strings.Builder
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = fw.Write([]byte("python go postgresql backend engineer with 5 years of experience"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/match", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestMatchRejectsPDF(t *testing.T) {
	srv, _ := testServer(t)

	var buf strings.Builder
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume", "resume.pdf")
	require.NoError(t, err)
	_, err = fw.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/api/match", strings.NewReader(buf.String()))
	req.Header.Set("Content-Type", w.FormDataContentType())

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchEmptyResume(t *testing.T) {
	srv, _ := testServer(t)

	form := url.Values{"resumeText": {"   "}}
	req := httptest.NewRequest("POST", "/api/match", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminCreateJob(t *testing.T) {
	srv, _ := testServer(t)

	payload := `{"title":"Data Analyst","company":"DataPrime","department":"Data Science",
		"location":"Remote","type":"Full-time","level":"Mid","description":"analyze data",
		"skills":["SQL","Python"]}`

	// Missing key.
	req := httptest.NewRequest("POST", "/api/admin/jobs", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Wrong key.
	req = httptest.NewRequest("POST", "/api/admin/jobs", strings.NewReader(payload))
	req.Header.Set("X-Admin-Key", "wrong")
	rec = httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid key creates the job and reindexes.
	req = httptest.NewRequest("POST", "/api/admin/jobs", strings.NewReader(payload))
	req.Header.Set("X-Admin-Key", "test-key")
	rec = httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created store.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, 3, srv.index.Size())
}

func TestAdminReindex(t *testing.T) {
	srv, _ := testServer(t)

	req := httptest.NewRequest("POST", "/api/admin/reindex", nil)
	req.Header.Set("X-Admin-Key", "test-key")
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest("POST", "/api/admin/reindex", nil)
	rec = httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	srv, _ := testServer(t)
	rec := httptest.NewRecorder()
	srv.routes().ServeHTTP(rec, httptest.NewRequest("OPTIONS", "/api/jobs", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
