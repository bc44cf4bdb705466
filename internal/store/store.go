// Package store is the SQLite persistence and query layer for the job
// catalog. It owns the jobs schema and serves filtered, paginated,
// faceted listings to the API layer, and full-corpus reads to the
// index builder and match scorer.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Salary is a compensation band in a single currency.
type Salary struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

// Job is one job posting. The matching core treats this as read-only.
type Job struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Department         string   `json:"department"`
	Industry           string   `json:"industry,omitempty"`
	Location           string   `json:"location"`
	Type               string   `json:"type"`
	Level              string   `json:"level"`
	RemoteType         string   `json:"remoteType"`
	Salary             Salary   `json:"salary"`
	Description        string   `json:"description"`
	Requirements       []string `json:"requirements"`
	Responsibilities   []string `json:"responsibilities"`
	Skills             []string `json:"skills"`
	PostedDate         string   `json:"postedDate"`
	VisaSponsorship    bool     `json:"visaSponsorship"`
	YearsExperienceMin *int     `json:"yearsExperienceMin,omitempty"`
	YearsExperienceMax *int     `json:"yearsExperienceMax,omitempty"`
	RecruiterName      string   `json:"recruiterName,omitempty"`
	RecruiterRole      string   `json:"recruiterRole,omitempty"`
	RecruiterEmail     string   `json:"recruiterEmail,omitempty"`
	CompanySize        string   `json:"companySize,omitempty"`
}

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS jobs (
	id                    TEXT PRIMARY KEY,
	title                 TEXT NOT NULL,
	company               TEXT NOT NULL,
	department            TEXT NOT NULL,
	industry              TEXT NOT NULL DEFAULT '',
	location              TEXT NOT NULL,
	type                  TEXT NOT NULL,
	level                 TEXT NOT NULL,
	remote_type           TEXT NOT NULL DEFAULT 'On-site',
	salary_min            INTEGER,
	salary_max            INTEGER,
	salary_currency       TEXT NOT NULL DEFAULT 'USD',
	description           TEXT NOT NULL,
	requirements          TEXT NOT NULL,
	responsibilities      TEXT NOT NULL,
	skills                TEXT NOT NULL,
	posted_date           TEXT NOT NULL,
	visa_sponsorship      INTEGER NOT NULL DEFAULT 0,
	years_experience_min  INTEGER,
	years_experience_max  INTEGER,
	recruiter_name        TEXT,
	recruiter_role        TEXT,
	recruiter_email       TEXT,
	company_size          TEXT,
	created_at            TEXT DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_jobs_department ON jobs(department);
CREATE INDEX IF NOT EXISTS idx_jobs_level ON jobs(level);
CREATE INDEX IF NOT EXISTS idx_jobs_type ON jobs(type);
CREATE INDEX IF NOT EXISTS idx_jobs_remote_type ON jobs(remote_type);
CREATE INDEX IF NOT EXISTS idx_jobs_posted_date ON jobs(posted_date);
CREATE INDEX IF NOT EXISTS idx_jobs_visa ON jobs(visa_sponsorship);
`

// Open opens (or creates) the jobs database at path.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("store: mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open db: %w", err)
	}
	db.SetMaxOpenConns(1) // SQLite: single writer
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Count returns the total number of jobs.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count: %w", err)
	}
	return n, nil
}

// Insert stores a job, assigning a UUID when the ID is empty, and
// returns the stored record.
func (s *Store) Insert(ctx context.Context, job Job) (Job, error) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.RemoteType == "" {
		job.RemoteType = "On-site"
	}
	if job.Salary.Currency == "" {
		job.Salary.Currency = "USD"
	}
	if job.PostedDate == "" {
		job.PostedDate = time.Now().UTC().Format("2006-01-02")
	}

	reqs, _ := json.Marshal(emptyIfNil(job.Requirements))
	resps, _ := json.Marshal(emptyIfNil(job.Responsibilities))
	skills, _ := json.Marshal(emptyIfNil(job.Skills))

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO jobs (
			id, title, company, department, industry, location, type, level,
			remote_type, salary_min, salary_max, salary_currency,
			description, requirements, responsibilities, skills,
			posted_date, visa_sponsorship,
			years_experience_min, years_experience_max,
			recruiter_name, recruiter_role, recruiter_email, company_size
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		job.ID, job.Title, job.Company, job.Department, job.Industry,
		job.Location, job.Type, job.Level, job.RemoteType,
		job.Salary.Min, job.Salary.Max, job.Salary.Currency,
		job.Description, string(reqs), string(resps), string(skills),
		job.PostedDate, boolToInt(job.VisaSponsorship),
		nullableInt(job.YearsExperienceMin), nullableInt(job.YearsExperienceMax),
		nullableStr(job.RecruiterName), nullableStr(job.RecruiterRole),
		nullableStr(job.RecruiterEmail), nullableStr(job.CompanySize),
	)
	if err != nil {
		return Job{}, fmt.Errorf("store: insert: %w", err)
	}
	return job, nil
}

// GetByID returns a single job, or sql.ErrNoRows wrapped when absent.
func (s *Store) GetByID(ctx context.Context, id string) (Job, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` FROM jobs WHERE id = ?`, id)
	job, err := scanJob(row)
	if err != nil {
		return Job{}, fmt.Errorf("store: get %s: %w", id, err)
	}
	return job, nil
}

// All returns every job ordered by posted date descending. Used for
// index builds and resume matching.
func (s *Store) All(ctx context.Context) ([]Job, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` FROM jobs ORDER BY posted_date DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: all: %w", err)
	}
	defer rows.Close()
	return scanJobs(rows)
}

const selectColumns = `SELECT id, title, company, department, industry, location, type, level,
	remote_type, salary_min, salary_max, salary_currency,
	description, requirements, responsibilities, skills,
	posted_date, visa_sponsorship, years_experience_min, years_experience_max,
	recruiter_name, recruiter_role, recruiter_email, company_size`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJob(r rowScanner) (Job, error) {
	var (
		j                                  Job
		salaryMin, salaryMax               sql.NullInt64
		yearsMin, yearsMax                 sql.NullInt64
		reqs, resps, skills                string
		visa                               int
		recName, recRole, recEmail, coSize sql.NullString
	)
	err := r.Scan(&j.ID, &j.Title, &j.Company, &j.Department, &j.Industry,
		&j.Location, &j.Type, &j.Level, &j.RemoteType,
		&salaryMin, &salaryMax, &j.Salary.Currency,
		&j.Description, &reqs, &resps, &skills,
		&j.PostedDate, &visa, &yearsMin, &yearsMax,
		&recName, &recRole, &recEmail, &coSize)
	if err != nil {
		return Job{}, err
	}

	j.Salary.Min = int(salaryMin.Int64)
	j.Salary.Max = int(salaryMax.Int64)
	j.VisaSponsorship = visa != 0
	j.YearsExperienceMin = intPtr(yearsMin)
	j.YearsExperienceMax = intPtr(yearsMax)
	j.RecruiterName = recName.String
	j.RecruiterRole = recRole.String
	j.RecruiterEmail = recEmail.String
	j.CompanySize = coSize.String

	// Arrays are stored as JSON text columns.
	json.Unmarshal([]byte(reqs), &j.Requirements)      //nolint:errcheck
	json.Unmarshal([]byte(resps), &j.Responsibilities) //nolint:errcheck
	json.Unmarshal([]byte(skills), &j.Skills)          //nolint:errcheck
	return j, nil
}

func scanJobs(rows *sql.Rows) ([]Job, error) {
	var jobs []Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("store: scan: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func nullableStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func intPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

// Query holds listing filters, sort, and pagination.
type Query struct {
	Text            string
	Department      string
	Level           string
	Type            string
	RemoteType      string
	Location        string
	VisaSponsorship *bool
	YearsMin        *int
	YearsMax        *int
	SalaryMin       *int
	SalaryMax       *int
	PostedWithin    string // "24h", "7d", "30d"
	Sort            string // "date", "salary-high", "salary-low", "relevance"
	Page            int
	PageSize        int
}

// Facets are the distinct filter values for the browse dropdowns.
type Facets struct {
	Departments []string `json:"departments"`
	Levels      []string `json:"levels"`
	Locations   []string `json:"locations"`
	Types       []string `json:"types"`
	RemoteTypes []string `json:"remoteTypes"`
	Industries  []string `json:"industries"`
}

// Page is one page of query results.
type Page struct {
	Jobs       []Job
	Total      int
	PageNum    int
	TotalPages int
	Facets     Facets
}

// List queries jobs with filters, free-text search, sort, and
// pagination.
func (s *Store) List(ctx context.Context, q Query) (Page, error) {
	var conditions []string
	var params []any

	add := func(cond string, args ...any) {
		conditions = append(conditions, cond)
		params = append(params, args...)
	}

	if q.Department != "" {
		add("department = ?", q.Department)
	}
	if q.Level != "" {
		add("level = ?", q.Level)
	}
	if q.Type != "" {
		add("type = ?", q.Type)
	}
	if q.RemoteType != "" {
		add("remote_type = ?", q.RemoteType)
	}
	if q.VisaSponsorship != nil {
		add("visa_sponsorship = ?", boolToInt(*q.VisaSponsorship))
	}
	if q.Location != "" {
		add("location LIKE ?", "%"+q.Location+"%")
	}
	if q.SalaryMin != nil {
		add("salary_max >= ?", *q.SalaryMin)
	}
	if q.SalaryMax != nil {
		add("salary_min <= ?", *q.SalaryMax)
	}
	if q.YearsMin != nil {
		add("(years_experience_min IS NULL OR years_experience_min <= ?)", *q.YearsMin)
	}
	if q.YearsMax != nil {
		add("(years_experience_max IS NULL OR years_experience_max >= ?)", *q.YearsMax)
	}
	if cutoff := postedCutoff(q.PostedWithin); cutoff != "" {
		add("posted_date >= ?", cutoff)
	}

	// Free text: every word must hit at least one searchable column.
	for _, word := range strings.Fields(strings.ToLower(q.Text)) {
		like := "%" + word + "%"
		add(`(LOWER(title) LIKE ? OR LOWER(description) LIKE ?
			OR LOWER(skills) LIKE ? OR LOWER(company) LIKE ?
			OR LOWER(location) LIKE ? OR LOWER(department) LIKE ?)`,
			like, like, like, like, like, like)
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM jobs`+where, params...).Scan(&total); err != nil {
		return Page{}, fmt.Errorf("store: list count: %w", err)
	}

	order := "ORDER BY posted_date DESC"
	switch q.Sort {
	case "salary-high":
		order = "ORDER BY salary_max DESC"
	case "salary-low":
		order = "ORDER BY salary_min ASC"
	}

	page, pageSize := q.Page, q.PageSize
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 12
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	offset := (page - 1) * pageSize

	rows, err := s.db.QueryContext(ctx,
		selectColumns+` FROM jobs`+where+` `+order+` LIMIT ? OFFSET ?`,
		append(params, pageSize, offset)...)
	if err != nil {
		return Page{}, fmt.Errorf("store: list query: %w", err)
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return Page{}, err
	}
	if jobs == nil {
		jobs = []Job{}
	}

	facets, err := s.facets(ctx)
	if err != nil {
		return Page{}, err
	}

	return Page{Jobs: jobs, Total: total, PageNum: page, TotalPages: totalPages, Facets: facets}, nil
}

func postedCutoff(within string) string {
	var d time.Duration
	switch within {
	case "24h":
		d = 24 * time.Hour
	case "7d":
		d = 7 * 24 * time.Hour
	case "30d":
		d = 30 * 24 * time.Hour
	default:
		return ""
	}
	return time.Now().UTC().Add(-d).Format("2006-01-02")
}

func (s *Store) facets(ctx context.Context) (Facets, error) {
	var f Facets
	for _, col := range []struct {
		name string
		dst  *[]string
	}{
		{"department", &f.Departments},
		{"level", &f.Levels},
		{"location", &f.Locations},
		{"type", &f.Types},
		{"remote_type", &f.RemoteTypes},
		{"industry", &f.Industries},
	} {
		vals, err := s.distinct(ctx, col.name)
		if err != nil {
			return Facets{}, err
		}
		*col.dst = vals
	}
	return f, nil
}

func (s *Store) distinct(ctx context.Context, column string) ([]string, error) {
	// column names come from the fixed facet list above, never from input
	rows, err := s.db.QueryContext(ctx,
		fmt.Sprintf(`SELECT DISTINCT %s FROM jobs WHERE %s != '' ORDER BY %s`, column, column, column))
	if err != nil {
		return nil, fmt.Errorf("store: distinct %s: %w", column, err)
	}
	defer rows.Close()

	vals := []string{}
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("store: distinct %s: %w", column, err)
		}
		vals = append(vals, v)
	}
	return vals, rows.Err()
}
