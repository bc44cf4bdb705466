// Package match turns raw resume text into a structured profile and
// scores it against a job catalog.
//
// Every rule is a fixed, auditable heuristic: curated skill
// dictionaries, ordinal level ladders, keyword-count domain detection,
// and regex-based work-history recovery. No models, no I/O, no state —
// extraction and scoring are pure and safe to run concurrently.
package match

import (
	"math"
	"regexp"
	"strings"
	"time"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// extraction accumulates intermediate state as the pipeline steps run.
type extraction struct {
	raw  string // original text, for structure-aware steps
	text string // normalized: lowercase, collapsed whitespace
	year int

	keywordLevel Level
	years        *int
	profile      Profile
}

// pipeline is the ordered sequence of pure transforms applied to every
// resume. Later steps may read what earlier steps produced.
var pipeline = []func(*extraction){
	stepSkills,
	stepKeywordLevel,
	stepYears,
	stepEducation,
	stepDomains,
	stepWorkHistory,
	stepRoleCategories,
	stepEducationStatus,
	stepInferLevel,
	stepBestYears,
}

// Extract runs the full extraction pipeline over resume text. It is
// pure, deterministic, and total: malformed or adversarial input
// degrades to absent signals, never to an error.
func Extract(text string) Profile {
	return extractAt(text, time.Now().Year())
}

// extractAt is Extract with an injectable current year for testing.
func extractAt(text string, currentYear int) Profile {
	e := &extraction{
		raw:  text,
		text: normalize(text),
		year: currentYear,
	}
	for _, step := range pipeline {
		step(e)
	}
	return e.profile
}

func normalize(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.ToLower(text), " "))
}

func stepSkills(e *extraction) {
	e.profile.Skills = extractSkills(e.text)
}

func stepKeywordLevel(e *extraction) {
	e.keywordLevel = detectKeywordLevel(e.text)
}

func stepYears(e *extraction) {
	e.years = detectYears(e.text)
}

func stepEducation(e *extraction) {
	e.profile.Education = detectEducation(e.text)
}

func stepDomains(e *extraction) {
	e.profile.Domains = detectDomains(e.text)
}

func stepWorkHistory(e *extraction) {
	e.profile.WorkHistory = extractWorkHistory(e.raw, e.year)
	e.profile.CalculatedYears = calculateTotalYears(e.profile.WorkHistory)
}

func stepRoleCategories(e *extraction) {
	e.profile.RoleCategories = detectRoleCategories(e.profile.WorkHistory)
}

func stepEducationStatus(e *extraction) {
	e.profile.EducationStatus, e.profile.GraduationProximity = detectEducationStatus(e.raw, e.year)
}

func stepInferLevel(e *extraction) {
	e.profile.ExperienceLevel = inferLevel(e.keywordLevel, e.years,
		e.profile.CalculatedYears, e.profile.EducationStatus, e.profile.GraduationProximity)
}

func stepBestYears(e *extraction) {
	e.profile.YearsOfExperience = bestYearsEstimate(e.years, e.profile.CalculatedYears)
}

func roundInt(f float64) int { return int(math.Round(f)) }
