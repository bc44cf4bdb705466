package server

import (
	"database/sql"
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/anatolykoptev/go_careers/internal/store"
)

// jobsResponse is the browse payload: one page of jobs plus facet
// values for the filter dropdowns.
type jobsResponse struct {
	Jobs        []store.Job `json:"jobs"`
	Total       int         `json:"total"`
	Page        int         `json:"page"`
	TotalPages  int         `json:"totalPages"`
	Departments []string    `json:"departments"`
	Levels      []string    `json:"levels"`
	Locations   []string    `json:"locations"`
	Types       []string    `json:"types"`
	RemoteTypes []string    `json:"remoteTypes"`
	Industries  []string    `json:"industries"`
}

func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	text := qs.Get("q")
	if text == "" {
		text = qs.Get("search")
	}

	q := store.Query{
		Text:         text,
		Department:   qs.Get("department"),
		Level:        qs.Get("level"),
		Type:         qs.Get("type"),
		RemoteType:   qs.Get("remoteType"),
		Location:     qs.Get("location"),
		PostedWithin: qs.Get("postedWithin"),
		Sort:         qs.Get("sort"),
		Page:         intParam(qs.Get("page"), 1),
		PageSize:     intParam(qs.Get("pageSize"), 12),
	}
	q.VisaSponsorship = boolParamPtr(qs.Get("visaSponsorship"))
	q.YearsMin = intParamPtr(qs.Get("yearsMin"))
	q.YearsMax = intParamPtr(qs.Get("yearsMax"))
	q.SalaryMin = intParamPtr(qs.Get("salaryMin"))
	q.SalaryMax = intParamPtr(qs.Get("salaryMax"))

	page, err := s.store.List(r.Context(), q)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to query jobs")
		return
	}

	// Relevance sort: re-rank the page by index similarity when the
	// user searched without picking an explicit sort.
	if text != "" && (q.Sort == "" || q.Sort == "relevance") {
		if ranked := s.index.Search(text, 500); len(ranked) > 0 {
			scores := make(map[string]float64, len(ranked))
			for _, res := range ranked {
				scores[res.JobID] = res.Score
			}
			sort.SliceStable(page.Jobs, func(i, j int) bool {
				return scores[page.Jobs[i].ID] > scores[page.Jobs[j].ID]
			})
		}
	}

	writeJSON(w, http.StatusOK, jobsResponse{
		Jobs:        page.Jobs,
		Total:       page.Total,
		Page:        page.PageNum,
		TotalPages:  page.TotalPages,
		Departments: page.Facets.Departments,
		Levels:      page.Facets.Levels,
		Locations:   page.Facets.Locations,
		Types:       page.Facets.Types,
		RemoteTypes: page.Facets.RemoteTypes,
		Industries:  page.Facets.Industries,
	})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	job, err := s.store.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Job not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load job")
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func intParam(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

func intParamPtr(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func boolParamPtr(raw string) *bool {
	switch raw {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}
