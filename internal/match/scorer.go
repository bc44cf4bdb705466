package match

import (
	"fmt"
	"sort"
	"strings"
	"unicode"
)

// Scoring tunables. Compiled-in by design: every weight is part of the
// auditable heuristic, not runtime configuration.
const (
	MinScore   = 15  // results below this are excluded
	MaxResults = 100 // cap on returned matches

	similarityWeight    = 25.0
	skillWeight         = 35.0
	titleWeight         = 5.0
	domainWeight        = 15.0
	domainPartialWeight = 6.0
	levelWeight         = 10.0
	roleWeight          = 10.0
	rolePartialWeight   = 5.0
)

// scorerLadder is the fixed 9-rung ladder used for level proximity.
// Note it diverges from the extractor's ladder above "director": the
// scorer distinguishes vp and c-suite, and has no "executive" rung, so
// an executive profile scores the unknown-level default.
var scorerLadder = []string{
	"intern", "entry", "mid", "senior", "lead",
	"manager", "director", "vp", "c-suite",
}

var scorerLadderIndex = func() map[string]int {
	m := make(map[string]int, len(scorerLadder))
	for i, l := range scorerLadder {
		m[l] = i
	}
	return m
}()

// proximityByDistance maps rung distance to a closeness factor.
var proximityByDistance = map[int]float64{0: 1.0, 1: 0.7, 2: 0.4, 3: 0.2}

const unknownLevelProximity = 0.3

// incompatibleDepartments lists departments a primary domain is
// penalized against (×0.5), unless the technical-background carve-out
// in scoreJob applies.
var incompatibleDepartments = map[Domain][]string{
	DomainEngineering: {"design", "marketing", "hospitality & tourism", "human resources", "legal"},
	DomainDesign:      {"engineering", "healthcare", "legal", "hospitality & tourism"},
	DomainHospitality: {"engineering", "data science", "legal", "finance"},
	DomainLegal:       {"engineering", "data science", "design", "hospitality & tourism"},
	DomainFinance:     {"engineering", "design", "healthcare", "hospitality & tourism"},
}

var techCategories = map[RoleCategory]bool{
	RoleSWE: true, RoleML: true, RoleDataScience: true, RoleManagement: true,
}

var techDepartments = map[string]bool{
	"engineering": true, "data science": true, "ai & data science": true,
}

// Match scores every job against the profile and returns results with
// score >= MinScore, sorted by score descending, capped at MaxResults.
// Equal scores keep the input job order (explicit secondary sort key).
func Match(profile Profile, jobs []Job, similarity map[string]float64) []MatchResult {
	type ranked struct {
		result MatchResult
		order  int
	}
	var results []ranked

	for i, job := range jobs {
		raw, reasons := scoreJob(profile, job, similarity[job.ID])
		score := clampScore(raw)
		if score < MinScore {
			continue
		}
		results = append(results, ranked{
			result: MatchResult{Job: job, Score: score, Reason: buildReason(reasons)},
			order:  i,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].result.Score != results[j].result.Score {
			return results[i].result.Score > results[j].result.Score
		}
		return results[i].order < results[j].order
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}

	out := make([]MatchResult, len(results))
	for i, r := range results {
		out[i] = r.result
	}
	return out
}

// scoreJob computes the raw 100-point score and the explanatory
// fragments that fired.
func scoreJob(p Profile, job Job, similarity float64) (float64, []string) {
	score := 0.0
	var reasons []string

	// 1. Vector similarity (25 pts).
	score += minFloat(similarity*similarityWeight, similarityWeight)

	// 2. Direct skill overlap (35 pts). No contribution when the job
	// lists no skills — never divide by zero.
	jobSkills := lowerAll(job.Skills)
	var matched []string
	for _, resumeSkill := range p.Skills {
		for _, js := range jobSkills {
			if resumeSkill == js {
				matched = append(matched, js)
				break
			}
		}
	}
	matched = dedupe(matched)
	if len(jobSkills) > 0 {
		score += float64(len(matched)) / float64(len(jobSkills)) * skillWeight
		if len(matched) > 0 {
			display := matched
			if len(display) > 6 {
				display = display[:6]
			}
			reasons = append(reasons, "Skills match: "+strings.Join(titleCaseAll(display), ", "))
		}
	}

	// 3. Title relevance (5 pts): fraction of meaningful title words
	// that equal a profile skill.
	titleWords := meaningfulWords(strings.ToLower(job.Title))
	if len(titleWords) > 0 {
		hits := 0
		for _, w := range titleWords {
			for _, sk := range p.Skills {
				if w == sk {
					hits++
					break
				}
			}
		}
		score += minFloat(float64(hits)/float64(len(titleWords))*titleWeight, titleWeight)
	}

	// 4. Domain alignment (15 pts full, 6 pts partial).
	jobDept := strings.ToLower(job.Department)
	if len(p.Domains) > 0 {
		aligned := false
		for _, d := range p.Domains {
			ds := string(d)
			if strings.Contains(jobDept, ds) || strings.Contains(ds, jobDept) {
				score += domainWeight
				reasons = append(reasons, "Domain alignment with "+job.Department)
				aligned = true
				break
			}
		}
		if !aligned {
			desc := strings.ToLower(job.Description)
			for _, d := range p.Domains {
				hits := 0
				for _, kw := range domainIndicators(d) {
					if strings.Contains(desc, kw) {
						hits++
					}
				}
				if hits >= 2 {
					score += domainPartialWeight
					break
				}
			}
		}
	}

	// 5. Level proximity (10 pts).
	if p.ExperienceLevel != "" {
		prox := levelProximity(p.ExperienceLevel, job.Level)
		score += prox * levelWeight
		if prox > 0.6 {
			reasons = append(reasons, fmt.Sprintf("Experience level aligns with %s role", job.Level))
		}
	}

	// 6. Role category match (10 pts full, 5 pts partial).
	if len(p.RoleCategories) > 0 {
		rolePts := roleCategoryScore(p.RoleCategories, job)
		score += rolePts
		if rolePts >= 8 {
			display := strings.ToUpper(strings.ReplaceAll(string(p.RoleCategories[0]), "_", " "))
			reasons = append(reasons, fmt.Sprintf("Your %s background matches this role", display))
		}
	}

	// 7. Healthcare penalty, applied multiplicatively last.
	healthcareJob := strings.Contains(jobDept, string(DomainHealthcare))
	healthcareResume := hasDomain(p.Domains, DomainHealthcare)
	if healthcareJob && !healthcareResume {
		score *= 0.3
	} else if !healthcareJob && healthcareResume && len(p.Domains) > 0 && p.Domains[0] == DomainHealthcare {
		score *= 0.5
	}

	// 7b. General cross-domain penalty, with a carve-out so a
	// technical background in a technical department is never punished.
	if len(p.Domains) > 0 {
		primary := p.Domains[0]
		if deptListContains(incompatibleDepartments[primary], jobDept) {
			techBackground := false
			for _, rc := range p.RoleCategories {
				if techCategories[rc] {
					techBackground = true
					break
				}
			}
			if !(techBackground && techDepartments[jobDept]) {
				score *= 0.5
			}
		}
	}

	return score, reasons
}

// levelProximity maps two levels onto the scorer ladder and returns a
// closeness factor in [0, 1]. Unrecognized levels score the neutral
// default.
func levelProximity(resumeLevel Level, jobLevel string) float64 {
	ri, rok := scorerLadderIndex[string(resumeLevel)]
	ji, jok := scorerLadderIndex[strings.ToLower(jobLevel)]
	if !rok || !jok {
		return unknownLevelProximity
	}
	dist := ri - ji
	if dist < 0 {
		dist = -dist
	}
	if p, ok := proximityByDistance[dist]; ok {
		return p
	}
	return 0.05
}

// roleCategoryScore returns 10 for a direct title/department keyword
// hit, 5 for a department-affinity hit, 0 otherwise.
func roleCategoryScore(categories []RoleCategory, job Job) float64 {
	title := strings.ToLower(job.Title)
	dept := strings.ToLower(job.Department)

	for _, cat := range categories {
		for _, kw := range jobRoleKeywords[cat] {
			if strings.Contains(title, kw) || strings.Contains(dept, kw) {
				return roleWeight
			}
		}
	}
	for _, cat := range categories {
		for _, affinity := range deptAffinity[cat] {
			if strings.Contains(dept, affinity) {
				return rolePartialWeight
			}
		}
	}
	return 0
}

// buildReason joins the first three fired fragments, or falls back to a
// generic reason so the string is never empty.
func buildReason(reasons []string) string {
	if len(reasons) == 0 {
		return "Partial match based on your profile."
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return strings.Join(reasons, ". ") + "."
}

func clampScore(raw float64) int {
	s := roundInt(raw)
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

func hasDomain(domains []Domain, want Domain) bool {
	for _, d := range domains {
		if d == want {
			return true
		}
	}
	return false
}

func deptListContains(depts []string, dept string) bool {
	for _, d := range depts {
		if d == dept {
			return true
		}
	}
	return false
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = strings.ToLower(s)
	}
	return out
}

func dedupe(ss []string) []string {
	seen := make(map[string]bool, len(ss))
	var out []string
	for _, s := range ss {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// meaningfulWords returns whitespace-separated words longer than two
// characters.
func meaningfulWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		if len(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// titleCaseAll capitalizes the first letter of every word in each
// skill for display.
func titleCaseAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = titleCase(s)
	}
	return out
}

func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	capNext := true
	for _, r := range s {
		if unicode.IsLetter(r) {
			if capNext {
				b.WriteRune(unicode.ToUpper(r))
				capNext = false
			} else {
				b.WriteRune(r)
			}
		} else {
			b.WriteRune(r)
			capNext = true
		}
	}
	return b.String()
}

func minFloat(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
