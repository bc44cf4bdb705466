package server

import (
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"

	"github.com/anatolykoptev/go_careers/internal/match"
	"github.com/anatolykoptev/go_careers/internal/store"
)

// maxResumeBytes caps the uploaded resume size.
const maxResumeBytes = 2 << 20

const resumeSummaryRunes = 500

// matchedJob pairs the full job record with its match score and the
// human-readable explanation.
type matchedJob struct {
	Job    store.Job `json:"job"`
	Score  int       `json:"score"`
	Reason string    `json:"reason"`
}

type matchResponse struct {
	Matches           []matchedJob  `json:"matches"`
	ResumeSummary     string        `json:"resumeSummary"`
	TotalMatched      int           `json:"totalMatched"`
	ExtractedKeywords match.Profile `json:"extractedKeywords"`
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if !s.matchRL.Allow() {
		writeError(w, http.StatusTooManyRequests, "Too many match requests. Please try again shortly.")
		return
	}

	resumeText, errStatus, errMsg := readResumeText(r)
	if errMsg != "" {
		writeError(w, errStatus, errMsg)
		return
	}
	if strings.TrimSpace(resumeText) == "" {
		writeError(w, http.StatusBadRequest, "Could not extract text from resume. Please try a different file.")
		return
	}

	// Identical resume text returns the cached response.
	key := cacheKey("match", resumeText)
	if cached, ok := cacheGet[matchResponse](r.Context(), s.cache, key); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	profile := match.Extract(resumeText)

	jobs, err := s.store.All(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load jobs")
		return
	}

	similarity := s.index.ScoreAll(resumeText)
	results := match.Match(profile, matchJobs(jobs), similarity)

	byID := make(map[string]store.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	matches := make([]matchedJob, 0, len(results))
	for _, res := range results {
		matches = append(matches, matchedJob{
			Job:    byID[res.Job.ID],
			Score:  res.Score,
			Reason: res.Reason,
		})
	}

	resp := matchResponse{
		Matches:           matches,
		ResumeSummary:     strutil.TruncateWith(resumeText, resumeSummaryRunes, "..."),
		TotalMatched:      len(matches),
		ExtractedKeywords: profile,
	}
	cacheSet(r.Context(), s.cache, key, resp)

	slog.Info("resume matched",
		slog.Int("matches", len(matches)),
		slog.Int("skills", len(profile.Skills)),
		slog.String("level", string(profile.ExperienceLevel)),
	)
	writeJSON(w, http.StatusOK, resp)
}

// readResumeText pulls resume text from a multipart "resume" file or a
// "resumeText" form field. Returns the text, or a non-empty error
// message with its HTTP status.
func readResumeText(r *http.Request) (text string, status int, errMsg string) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxResumeBytes)

	if err := r.ParseMultipartForm(maxResumeBytes); err != nil {
		// Not multipart: fall back to a plain form body.
		if err := r.ParseForm(); err == nil {
			if t := r.FormValue("resumeText"); t != "" {
				return t, 0, ""
			}
		}
		return "", http.StatusBadRequest, "Expected a multipart resume upload or resumeText field."
	}

	if t := r.FormValue("resumeText"); t != "" {
		return t, 0, ""
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return "", http.StatusBadRequest, "Missing resume file."
	}
	defer file.Close()

	filename := strings.ToLower(header.Filename)
	contentType := header.Header.Get("Content-Type")

	if strings.Contains(contentType, "pdf") || strings.HasSuffix(filename, ".pdf") {
		return "", http.StatusBadRequest, "PDF parsing is not supported. Please upload a TXT or MD file."
	}
	if !strings.Contains(contentType, "text") &&
		!strings.HasSuffix(filename, ".txt") && !strings.HasSuffix(filename, ".md") {
		return "", http.StatusBadRequest, "Unsupported file type. Please upload a TXT file."
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return "", http.StatusBadRequest, "Could not read resume file."
	}
	return string(data), 0, ""
}
