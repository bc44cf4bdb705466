package index

import (
	"math"
	"reflect"
	"testing"
)

func testCorpus() []Job {
	return []Job{
		{
			ID:          "swe",
			Title:       "Software Engineer",
			Department:  "Engineering",
			Description: "build backend services in python and go with postgresql",
			Skills:      []string{"python", "go", "postgresql"},
		},
		{
			ID:          "nurse",
			Title:       "Registered Nurse",
			Department:  "Healthcare",
			Description: "provide patient care and clinical documentation in ehr systems",
			Skills:      []string{"patient care", "ehr"},
		},
		{
			ID:          "designer",
			Title:       "Product Designer",
			Department:  "Design",
			Description: "design user interfaces and prototypes in figma",
			Skills:      []string{"figma", "prototyping"},
		},
		{
			ID:          "analyst",
			Title:       "Data Analyst",
			Department:  "Data Science",
			Description: "analyze datasets with sql and python dashboards",
			Skills:      []string{"sql", "python", "tableau"},
		},
	}
}

func TestBuildAndSize(t *testing.T) {
	ix := New()
	if ix.Built() {
		t.Fatal("fresh index reports built")
	}
	if ix.Size() != 0 {
		t.Fatalf("fresh index size = %d", ix.Size())
	}

	ix.Build(testCorpus())
	if !ix.Built() {
		t.Fatal("index not built after Build")
	}
	if ix.Size() != 4 {
		t.Fatalf("size = %d, want 4", ix.Size())
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	ix := New()
	ix.Build(nil)
	if ix.Built() {
		t.Fatal("empty corpus produced a built index")
	}
	if got := ix.Search("python", 10); got != nil {
		t.Errorf("Search on unbuilt index = %v, want nil", got)
	}
	if got := ix.ScoreAll("python"); len(got) != 0 {
		t.Errorf("ScoreAll on unbuilt index = %v, want empty", got)
	}
}

func TestSearchRanking(t *testing.T) {
	ix := New()
	ix.Build(testCorpus())

	results := ix.Search("software engineer python backend", 10)
	if len(results) == 0 {
		t.Fatal("no results")
	}
	if results[0].JobID != "swe" {
		t.Errorf("top result = %q, want swe", results[0].JobID)
	}
	for i := 1; i < len(results); i++ {
		if results[i].Score > results[i-1].Score {
			t.Errorf("results not sorted descending at %d", i)
		}
	}
	for _, r := range results {
		if r.Score <= searchThreshold {
			t.Errorf("result %q score %.4f at or below threshold", r.JobID, r.Score)
		}
	}
}

func TestSearchDeterministic(t *testing.T) {
	ix := New()
	ix.Build(testCorpus())

	a := ix.Search("patient care clinical", 10)
	b := ix.Search("patient care clinical", 10)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated searches differ: %v vs %v", a, b)
	}
	if len(a) == 0 || a[0].JobID != "nurse" {
		t.Errorf("clinical query top = %v, want nurse", a)
	}
}

func TestSearchBlankQuery(t *testing.T) {
	ix := New()
	ix.Build(testCorpus())
	if got := ix.Search("   ", 10); got != nil {
		t.Errorf("blank query = %v, want nil", got)
	}
}

func TestSearchTopN(t *testing.T) {
	ix := New()
	ix.Build(testCorpus())
	results := ix.Search("python sql data", 1)
	if len(results) > 1 {
		t.Errorf("topN=1 returned %d results", len(results))
	}
}

func TestScoreAll(t *testing.T) {
	ix := New()
	corpus := testCorpus()
	ix.Build(corpus)

	scores := ix.ScoreAll("experienced python engineer building backend services")
	if len(scores) != len(corpus) {
		t.Fatalf("scores for %d jobs, want %d", len(scores), len(corpus))
	}
	for id, s := range scores {
		if s < 0 || s > 1.0001 {
			t.Errorf("score[%s] = %f, outside [0, 1]", id, s)
		}
	}
	if scores["swe"] <= scores["nurse"] {
		t.Errorf("swe (%.4f) should outscore nurse (%.4f) for an engineering resume",
			scores["swe"], scores["nurse"])
	}

	// Text sharing no vocabulary scores zero everywhere.
	zeros := ix.ScoreAll("zzz qqq xxx")
	for id, s := range zeros {
		if s != 0 {
			t.Errorf("unrelated text score[%s] = %f, want 0", id, s)
		}
	}
}

func TestRebuildSwapsAtomically(t *testing.T) {
	ix := New()
	ix.Build(testCorpus())
	if ix.Size() != 4 {
		t.Fatalf("size = %d", ix.Size())
	}

	ix.Build(testCorpus()[:2])
	if ix.Size() != 2 {
		t.Errorf("size after rebuild = %d, want 2", ix.Size())
	}
}

func TestNgrams(t *testing.T) {
	terms := ngrams("the quick brown fox")
	// "the" is a stopword; bigrams bridge the removed stopword.
	want := []string{"quick", "brown", "fox", "quick brown", "brown fox"}
	if !reflect.DeepEqual(terms, want) {
		t.Errorf("ngrams = %v, want %v", terms, want)
	}
}

func TestTransformNormalized(t *testing.T) {
	docs := [][]string{
		ngrams("python backend services"),
		ngrams("patient clinical care"),
		ngrams("design figma prototypes"),
	}
	vocab := fitVocabulary(docs)

	vec := vocab.transform(ngrams("python backend services"))
	if len(vec.idx) == 0 {
		t.Fatal("empty vector for in-vocabulary text")
	}
	norm := 0.0
	for _, v := range vec.val {
		norm += v * v
	}
	if math.Abs(norm-1.0) > 1e-9 {
		t.Errorf("vector norm^2 = %f, want 1", norm)
	}

	if self := vec.dot(vec); math.Abs(self-1.0) > 1e-9 {
		t.Errorf("self similarity = %f, want 1", self)
	}
}
