package match

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const monthPat = `(?:jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|jun(?:e)?|` +
	`jul(?:y)?|aug(?:ust)?|sep(?:tember)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?)`

// dateRangeRe matches ranges like "Jan 2020 - Present" and "2018 – 2022".
// Group 1 is the start year, group 2 the open-ended marker, group 3 the
// end year.
var dateRangeRe = regexp.MustCompile(`(?i)(?:` + monthPat + `\s*\.?\s*)?(\d{4})\s*[-–—]+\s*` +
	`(?:(present|current|now|ongoing)|(?:` + monthPat + `\s*\.?\s*)?(\d{4}))`)

// workSectionRe recognizes headers that open a work-experience section.
var workSectionRe = regexp.MustCompile(`(?im)^[ \t]*(?:work\s+)?(?:experience|employment|professional\s+experience|` +
	`work\s+history|career\s+history|relevant\s+experience)[ \t]*:?[ \t]*$`)

// sectionEndRe recognizes headers that close a work-experience section.
var sectionEndRe = regexp.MustCompile(`(?im)^[ \t]*(?:education|skills|certifications?|projects?|publications?|` +
	`awards?|volunteer|interests|references|summary|objective|` +
	`technical\s+skills|core\s+competencies|languages)[ \t]*:?[ \t]*$`)

var (
	leadingBulletRe = regexp.MustCompile(`^[\s\-•*·]+`)
	trailingSepRe   = regexp.MustCompile(`[\s|,]+$`)
	atSplitRe       = regexp.MustCompile(`\s+at\s+`)
	sepSplitRe      = regexp.MustCompile(`\s*[|–—]\s*|\s*,\s+`)
)

// bulletVerbs reject candidate titles that read like bullet-point
// descriptions rather than role titles.
var bulletVerbs = []string{
	"developed ", "built ", "managed ", "led ",
	"created ", "designed ", "implemented ",
}

// extractWorkHistory parses work entries from the original,
// non-normalized text. It scopes the scan to a recognized experience
// section when one exists, then recovers a date range plus
// title/company per line. Implausible ranges are silently discarded.
func extractWorkHistory(text string, currentYear int) []WorkEntry {
	workText := text
	if loc := workSectionRe.FindStringIndex(text); loc != nil {
		rest := text[loc[1]:]
		if end := sectionEndRe.FindStringIndex(rest); end != nil {
			workText = rest[:end[0]]
		} else {
			workText = rest
		}
	}

	var entries []WorkEntry
	lines := strings.Split(workText, "\n")

	for i, line := range lines {
		m := dateRangeRe.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}

		startYear, err := strconv.Atoi(line[m[2]:m[3]])
		if err != nil {
			continue
		}
		isPresent := m[4] >= 0
		endYear := currentYear
		if !isPresent && m[6] >= 0 {
			endYear, err = strconv.Atoi(line[m[6]:m[7]])
			if err != nil {
				continue
			}
		}

		if startYear < 1980 || startYear > currentYear+1 {
			continue
		}
		if endYear < startYear {
			continue
		}

		duration := math.Max(float64(endYear-startYear), 0.5)

		title, company := extractTitleCompany(lines, i, m[0], m[1])
		if title == "" {
			continue
		}
		entries = append(entries, WorkEntry{
			Title:         title,
			Company:       company,
			DurationYears: math.Round(duration*10) / 10,
		})
	}

	return entries
}

// calculateTotalYears sums the recovered durations. Concurrent roles
// are summed unconditionally, so the total can exceed the calendar
// span — preserved as observed behavior, not corrected.
func calculateTotalYears(history []WorkEntry) *float64 {
	if len(history) == 0 {
		return nil
	}
	total := 0.0
	counted := false
	for _, e := range history {
		if e.DurationYears > 0 {
			total += e.DurationYears
			counted = true
		}
	}
	if !counted {
		return nil
	}
	total = math.Round(total*10) / 10
	return &total
}

// extractTitleCompany recovers a title/company pair from the text
// around the date span, falling back to the previous line when the
// date line carries no usable text.
func extractTitleCompany(lines []string, dateLineIdx, dateStart, dateEnd int) (title, company string) {
	line := lines[dateLineIdx]

	candidate := strings.TrimSpace(line[:dateStart])
	if candidate == "" {
		candidate = strings.TrimSpace(line[dateEnd:])
	}
	if candidate == "" && dateLineIdx > 0 {
		candidate = strings.TrimSpace(lines[dateLineIdx-1])
	}
	if candidate == "" {
		return "", ""
	}

	candidate = leadingBulletRe.ReplaceAllString(candidate, "")
	candidate = trailingSepRe.ReplaceAllString(candidate, "")

	title = candidate

	// "Title at Company"
	if loc := atSplitRe.FindStringIndex(candidate); loc != nil && loc[0] >= 3 {
		title = strings.TrimSpace(candidate[:loc[0]])
		company = strings.TrimRight(strings.TrimSpace(candidate[loc[1]:]), " |,–—")
	}

	// "Title | Company" or "Title, Company"
	if company == "" {
		if loc := sepSplitRe.FindStringIndex(candidate); loc != nil && loc[0] >= 3 {
			title = strings.TrimSpace(candidate[:loc[0]])
			company = strings.TrimRight(strings.TrimSpace(candidate[loc[1]:]), " |,–—")
		}
	}

	if n := len([]rune(title)); n < 3 || n > 80 {
		return "", ""
	}

	lower := strings.ToLower(title)
	for _, verb := range bulletVerbs {
		if strings.HasPrefix(lower, verb) {
			return "", ""
		}
	}

	if n := len([]rune(company)); company != "" && (n < 2 || n > 60) {
		company = ""
	}

	return title, company
}
