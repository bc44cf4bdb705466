package match

import (
	"regexp"
	"strconv"
	"strings"
)

// levelIndicators maps each seniority rung to indicator phrases,
// ordered junior to senior. Detection scans from the most senior rung
// downward so the highest stated seniority wins when cues co-occur.
var levelIndicators = []struct {
	level      Level
	indicators []string
}{
	{LevelIntern, []string{"intern", "internship", "co-op", "coop"}},
	{LevelEntry, []string{"entry level", "entry-level", "junior", "associate",
		"new grad", "recent graduate", "0-2 years"}},
	{LevelMid, []string{"mid level", "mid-level", "2-4 years", "3-5 years",
		"intermediate"}},
	{LevelSenior, []string{"senior", "sr.", "5+ years", "5-7 years", "6+ years",
		"7+ years", "8+ years", "experienced"}},
	{LevelLead, []string{"lead", "tech lead", "team lead", "principal", "staff"}},
	{LevelManager, []string{"manager", "management", "managing"}},
	{LevelDirector, []string{"director", "head of", "vp", "vice president"}},
	{LevelExecutive, []string{"executive", "chief", "c-level", "cto", "ceo",
		"cfo", "coo", "cpo"}},
}

var yearsPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s+)?(?:experience|expertise|professional)`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:in|of|working)`),
	regexp.MustCompile(`over\s+(\d+)\s*years?`),
}

// educationChecks are non-exclusive: every credential that matches is
// included.
var educationChecks = []struct {
	label string
	re    *regexp.Regexp
}{
	{"PhD", regexp.MustCompile(`\bph\.?d\b|\bdoctorate\b|\bdoctoral\b`)},
	{"Master's", regexp.MustCompile(`\bmaster'?s?\b|\bm\.?s\.?\b|\bm\.?b\.?a\.?\b`)},
	{"Bachelor's", regexp.MustCompile(`\bbachelor'?s?\b|\bb\.?s\.?\b|\bb\.?a\.?\b|\bundergraduate\b`)},
}

var pursuingRe = regexp.MustCompile(
	`(?:currently|presently)\s+(?:pursuing|studying|enrolled|completing)` +
		`|(?:pursuing|studying)\s+(?:a\s+)?(?:bachelor|master|ph\.?d|mba|degree)` +
		`|candidate\s+for\s+(?:a\s+)?(?:bachelor|master|ph\.?d|mba)` +
		`|(?:bachelor|master|ph\.?d|mba)\s+(?:candidate|student)`)

const seasonOrMonthPat = `(?:spring|summer|fall|winter|jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|` +
	`apr(?:il)?|may|jun(?:e)?|jul(?:y)?|aug(?:ust)?|sep(?:tember)?|` +
	`oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

var graduationYearRe = regexp.MustCompile(
	`(?:expected|anticipated)\s+(?:graduation|completion)\s*:?\s*(?:` + seasonOrMonthPat + `\s+)?(\d{4})` +
		`|(?:graduating|graduation)\s*:?\s*(?:` + seasonOrMonthPat + `\s+)?(\d{4})` +
		`|class\s+of\s+(\d{4})`)

var completedDegreeRe = regexp.MustCompile(`\b(?:bachelor|master|ph\.?d|mba)\b`)

// detectKeywordLevel returns the most senior rung with any indicator
// present as a substring, or "" if none match.
func detectKeywordLevel(text string) Level {
	for i := len(levelIndicators) - 1; i >= 0; i-- {
		for _, ind := range levelIndicators[i].indicators {
			if strings.Contains(text, ind) {
				return levelIndicators[i].level
			}
		}
	}
	return ""
}

// detectYears returns the maximum stated years of experience across all
// numeric phrase patterns, or nil if none match.
func detectYears(text string) *int {
	var best *int
	for _, re := range yearsPatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			y, err := strconv.Atoi(m[1])
			if err != nil {
				continue
			}
			if best == nil || y > *best {
				v := y
				best = &v
			}
		}
	}
	return best
}

func detectEducation(text string) []string {
	var found []string
	for _, check := range educationChecks {
		if check.re.MatchString(text) {
			found = append(found, check.label)
		}
	}
	return found
}

// detectEducationStatus reports whether the candidate is pursuing or has
// completed a degree, and how near graduation is. Operates on the
// original text, lowercased but not whitespace-collapsed.
func detectEducationStatus(rawText string, currentYear int) (EducationStatus, Proximity) {
	text := strings.ToLower(rawText)

	pursuing := pursuingRe.MatchString(text)

	gradYear := 0
	if m := graduationYearRe.FindStringSubmatch(text); m != nil {
		for _, g := range m[1:] {
			if g != "" {
				if y, err := strconv.Atoi(g); err == nil {
					gradYear = y
					break
				}
			}
		}
	}

	// "Class of 2027" or "Expected graduation 2027" implies pursuing.
	if !pursuing && gradYear >= currentYear && gradYear != 0 {
		pursuing = true
	}

	if !pursuing {
		if completedDegreeRe.MatchString(text) {
			return StatusCompleted, ""
		}
		return "", ""
	}

	if gradYear != 0 && gradYear-currentYear > 1 {
		return StatusPursuing, ProximityFar
	}
	return StatusPursuing, ProximityNear
}

// inferLevel combines the detected signals into a final seniority rung.
// Precedence: pursuing students with under a year of work, then the
// best years estimate mapped through fixed breakpoints, then the
// keyword-detected level, then absent.
func inferLevel(keywordLevel Level, years *int, calculatedYears *float64,
	status EducationStatus, proximity Proximity) Level {

	totalWorkYears := 0.0
	if calculatedYears != nil {
		totalWorkYears = *calculatedYears
	}

	if status == StatusPursuing && totalWorkYears < 1 {
		if proximity == ProximityFar {
			return LevelIntern
		}
		return LevelEntry
	}

	var bestYears *float64
	switch {
	case calculatedYears != nil && years != nil:
		v := maxFloat(*calculatedYears, float64(*years))
		bestYears = &v
	case calculatedYears != nil:
		bestYears = calculatedYears
	case years != nil:
		v := float64(*years)
		bestYears = &v
	}

	if bestYears != nil {
		switch y := *bestYears; {
		case y < 1:
			return LevelIntern
		case y <= 2:
			return LevelEntry
		case y <= 4:
			return LevelMid
		case y <= 7:
			return LevelSenior
		case y <= 10:
			return LevelLead
		default:
			return LevelDirector
		}
	}

	return keywordLevel
}

// bestYearsEstimate rounds the larger of the stated and calculated
// years, or whichever is present, or nil.
func bestYearsEstimate(parsedYears *int, calculatedYears *float64) *int {
	switch {
	case calculatedYears != nil && parsedYears != nil:
		v := roundInt(maxFloat(*calculatedYears, float64(*parsedYears)))
		return &v
	case calculatedYears != nil:
		v := roundInt(*calculatedYears)
		return &v
	default:
		return parsedYears
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
