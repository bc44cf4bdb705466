// Package index maintains an in-memory term-weighted vector index over
// job documents. It serves two query modes: free-text search for the
// browse surface, and resume-to-corpus similarity scoring for match
// fusion.
//
// Rebuilds are atomic from a reader's perspective: a new snapshot is
// constructed fully, then published with a single pointer swap. Any
// number of Search/ScoreAll calls may run concurrently against the
// current snapshot.
package index

import (
	"sort"
	"strings"
	"sync"
	"sync/atomic"
)

// Field repetition factors: more important fields are repeated so their
// terms weigh more in the document vector.
const (
	titleRepeat      = 4
	departmentRepeat = 3
	skillsRepeat     = 2
)

// searchThreshold drops results with negligible similarity.
const searchThreshold = 0.01

// DefaultTopN bounds Search results when the caller passes topN <= 0.
const DefaultTopN = 200

// Job is the slice of a job record the index builds documents from.
type Job struct {
	ID           string
	Title        string
	Department   string
	Description  string
	Skills       []string
	Requirements []string
}

// Result is one ranked search hit.
type Result struct {
	JobID string  `json:"jobId"`
	Score float64 `json:"score"`
}

// snapshot is one immutable fitted index state. Replaced wholesale on
// rebuild, never mutated in place.
type snapshot struct {
	vocab   *vocabulary
	jobIDs  []string
	vectors []sparseVec
}

// Index is the shared search component: single writer (Build),
// many readers (Search, ScoreAll).
type Index struct {
	buildMu sync.Mutex
	snap    atomic.Pointer[snapshot]
}

func New() *Index { return &Index{} }

// Built reports whether the index holds a usable snapshot.
func (ix *Index) Built() bool { return ix.snap.Load() != nil }

// Size returns the number of indexed jobs.
func (ix *Index) Size() int {
	if s := ix.snap.Load(); s != nil {
		return len(s.jobIDs)
	}
	return 0
}

// Build fits a new snapshot over the job corpus and publishes it
// atomically. Building on an empty corpus leaves the index unbuilt.
// Only one Build runs at a time; readers keep the previous snapshot
// until the swap.
func (ix *Index) Build(jobs []Job) {
	ix.buildMu.Lock()
	defer ix.buildMu.Unlock()

	if len(jobs) == 0 {
		ix.snap.Store(nil)
		return
	}

	docs := make([][]string, len(jobs))
	jobIDs := make([]string, len(jobs))
	for i, job := range jobs {
		jobIDs[i] = job.ID
		docs[i] = ngrams(jobDocument(job))
	}

	vocab := fitVocabulary(docs)
	vectors := make([]sparseVec, len(docs))
	for i, terms := range docs {
		vectors[i] = vocab.transform(terms)
	}

	ix.snap.Store(&snapshot{vocab: vocab, jobIDs: jobIDs, vectors: vectors})
}

// jobDocument concatenates job fields with repetition proportional to
// importance: title ×4, department ×3, skills ×2, description and
// requirements ×1.
func jobDocument(job Job) string {
	var parts []string
	for i := 0; i < titleRepeat; i++ {
		parts = append(parts, job.Title)
	}
	for i := 0; i < departmentRepeat; i++ {
		parts = append(parts, job.Department)
	}
	skills := strings.Join(job.Skills, " ")
	for i := 0; i < skillsRepeat; i++ {
		parts = append(parts, skills)
	}
	parts = append(parts, job.Description, strings.Join(job.Requirements, " "))
	return strings.Join(parts, " ")
}

// Search projects the query into the fitted space and returns job
// IDs ranked by cosine similarity, truncated to topN and filtered to
// scores above the threshold. Empty query or unbuilt index returns nil.
func (ix *Index) Search(query string, topN int) []Result {
	snap := ix.snap.Load()
	if snap == nil || strings.TrimSpace(query) == "" {
		return nil
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	scores := snap.scoreAll(query)

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	// Score descending; equal scores keep corpus order for determinism.
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	var results []Result
	for _, i := range order {
		if len(results) >= topN {
			break
		}
		if scores[i] <= searchThreshold {
			break // sorted: everything after is at or below the threshold
		}
		results = append(results, Result{JobID: snap.jobIDs[i], Score: scores[i]})
	}
	return results
}

// ScoreAll returns a cosine similarity score for every indexed job,
// keyed by job ID, with no threshold or truncation. Unbuilt index or
// blank text returns an empty map.
func (ix *Index) ScoreAll(text string) map[string]float64 {
	snap := ix.snap.Load()
	if snap == nil || strings.TrimSpace(text) == "" {
		return map[string]float64{}
	}

	scores := snap.scoreAll(text)
	out := make(map[string]float64, len(scores))
	for i, s := range scores {
		out[snap.jobIDs[i]] = s
	}
	return out
}

// scoreAll computes cosine similarity of text against every document.
// Vectors are L2-normalized at transform time, so cosine is a dot
// product.
func (s *snapshot) scoreAll(text string) []float64 {
	queryVec := s.vocab.transform(ngrams(text))
	scores := make([]float64, len(s.vectors))
	if len(queryVec.idx) == 0 {
		return scores
	}
	for i, docVec := range s.vectors {
		scores[i] = queryVec.dot(docVec)
	}
	return scores
}
