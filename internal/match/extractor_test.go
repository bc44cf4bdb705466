package match

import (
	"reflect"
	"testing"
)

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "single word skills",
			text: "proficient in python, docker and kubernetes",
			want: []string{"docker", "kubernetes", "python"},
		},
		{
			name: "multi word phrase captured whole",
			text: "focused on machine learning and data engineering",
			want: []string{"data engineering", "machine learning"},
		},
		{
			name: "dotted tech names survive punctuation",
			text: "shipped apps with node.js, react and next.js.",
			want: []string{"next.js", "node.js", "react"},
		},
		{
			name: "tokens inside matched phrase are subsumed",
			text: "built services with ruby on rails",
			want: []string{"ruby on rails"},
		},
		{
			name: "no partial token matches",
			text: "wrote pythonic scripts in a javascripty style",
			want: []string{},
		},
		{
			name: "empty input",
			text: "",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractSkills(normalize(tt.text))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("extractSkills(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectKeywordLevel(t *testing.T) {
	tests := []struct {
		text string
		want Level
	}{
		{"junior developer seeking opportunities", LevelEntry},
		{"senior engineer with platform experience", LevelSenior},
		{"junior developer reporting to a senior architect", LevelSenior}, // most senior wins
		{"engineering manager", LevelManager},
		{"director of product", LevelDirector},
		{"cto and co-founder", LevelExecutive},
		{"no seniority cues here", ""},
	}
	for _, tt := range tests {
		if got := detectKeywordLevel(normalize(tt.text)); got != tt.want {
			t.Errorf("detectKeywordLevel(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestDetectYears(t *testing.T) {
	tests := []struct {
		text string
		want int // -1 means nil
	}{
		{"7 years of experience in backend systems", 7},
		{"3 years in sales, over 10 years overall", 10}, // max wins
		{"5+ years of professional software work", 5},
		{"years of experience", -1},
		{"", -1},
	}
	for _, tt := range tests {
		got := detectYears(normalize(tt.text))
		if tt.want == -1 {
			if got != nil {
				t.Errorf("detectYears(%q) = %d, want nil", tt.text, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("detectYears(%q) = %v, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDetectEducation(t *testing.T) {
	got := detectEducation(normalize("Bachelor of Science, then a Master's in CS"))
	want := []string{"Master's", "Bachelor's"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("detectEducation = %v, want %v", got, want)
	}

	if got := detectEducation(normalize("no formal credentials listed")); got != nil {
		t.Errorf("detectEducation on plain text = %v, want nil", got)
	}
}

func TestDetectEducationStatus(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		year      int
		wantStat  EducationStatus
		wantProx  Proximity
	}{
		{
			name: "explicit pursuing near graduation",
			text: "Currently pursuing a Bachelor of Science. Expected graduation: May 2026.",
			year: 2026, wantStat: StatusPursuing, wantProx: ProximityNear,
		},
		{
			name: "graduation year far out implies pursuing",
			text: "Class of 2028",
			year: 2025, wantStat: StatusPursuing, wantProx: ProximityFar,
		},
		{
			name: "completed degree",
			text: "Bachelor of Arts in Economics, graduated with honors",
			year: 2025, wantStat: StatusCompleted, wantProx: "",
		},
		{
			name: "no education signal",
			text: "ten years of plumbing experience",
			year: 2025, wantStat: "", wantProx: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stat, prox := detectEducationStatus(tt.text, tt.year)
			if stat != tt.wantStat || prox != tt.wantProx {
				t.Errorf("detectEducationStatus(%q) = (%q, %q), want (%q, %q)",
					tt.text, stat, prox, tt.wantStat, tt.wantProx)
			}
		})
	}
}

func TestDetectDomains(t *testing.T) {
	// One indicator is not enough to register a domain.
	if got := detectDomains(normalize("spent time with a patient")); len(got) != 0 {
		t.Errorf("single indicator registered domains: %v", got)
	}

	got := detectDomains(normalize("registered nurse providing patient care at a hospital, clinical documentation in ehr"))
	if len(got) == 0 || got[0] != DomainHealthcare {
		t.Errorf("healthcare text domains = %v, want healthcare first", got)
	}
}

func TestInferLevelBreakpoints(t *testing.T) {
	years := func(f float64) *float64 { return &f }
	tests := []struct {
		calc *float64
		want Level
	}{
		{years(0.5), LevelIntern},
		{years(2), LevelEntry},
		{years(4), LevelMid},
		{years(7), LevelSenior},
		{years(10), LevelLead},
		{years(15), LevelDirector},
	}
	for _, tt := range tests {
		got := inferLevel("", nil, tt.calc, "", "")
		if got != tt.want {
			t.Errorf("inferLevel(calc=%.1f) = %q, want %q", *tt.calc, got, tt.want)
		}
	}

	// Keyword fallback when no numeric signal exists.
	if got := inferLevel(LevelSenior, nil, nil, "", ""); got != LevelSenior {
		t.Errorf("keyword fallback = %q, want senior", got)
	}

	// Pursuing students with little work history.
	if got := inferLevel("", nil, nil, StatusPursuing, ProximityFar); got != LevelIntern {
		t.Errorf("pursuing far = %q, want intern", got)
	}
	if got := inferLevel("", nil, nil, StatusPursuing, ProximityNear); got != LevelEntry {
		t.Errorf("pursuing near = %q, want entry", got)
	}
}

func TestExtractFullResume(t *testing.T) {
	resume := `Jane Roe
jane@example.com

Experience
Software Engineer at Acme Corp | Jan 2020 - Dec 2023
Senior Software Engineer at Beta Inc | 2023 - Present

Skills
Python, Django, PostgreSQL, Docker, machine learning

Education
Bachelor of Science in Computer Science`

	p := extractAt(resume, 2025)

	for _, skill := range []string{"python", "django", "postgresql", "docker", "machine learning"} {
		if !containsStr(p.Skills, skill) {
			t.Errorf("missing skill %q in %v", skill, p.Skills)
		}
	}

	if len(p.WorkHistory) != 2 {
		t.Fatalf("work history = %v, want 2 entries", p.WorkHistory)
	}
	if p.WorkHistory[0].Title != "Software Engineer" || p.WorkHistory[0].Company != "Acme Corp" {
		t.Errorf("entry 0 = %+v", p.WorkHistory[0])
	}
	if p.WorkHistory[0].DurationYears != 3.0 {
		t.Errorf("entry 0 duration = %.1f, want 3.0", p.WorkHistory[0].DurationYears)
	}
	if p.WorkHistory[1].DurationYears != 2.0 {
		t.Errorf("entry 1 duration = %.1f, want 2.0 (open-ended through 2025)", p.WorkHistory[1].DurationYears)
	}

	if p.CalculatedYears == nil || *p.CalculatedYears != 5.0 {
		t.Errorf("calculated years = %v, want 5.0", p.CalculatedYears)
	}
	if p.YearsOfExperience == nil || *p.YearsOfExperience != 5 {
		t.Errorf("years of experience = %v, want 5", p.YearsOfExperience)
	}
	if p.ExperienceLevel != LevelSenior {
		t.Errorf("level = %q, want senior", p.ExperienceLevel)
	}
	if !containsCat(p.RoleCategories, RoleSWE) {
		t.Errorf("role categories = %v, want swe", p.RoleCategories)
	}
	if !reflect.DeepEqual(p.Education, []string{"Bachelor's"}) {
		t.Errorf("education = %v, want [Bachelor's]", p.Education)
	}
}

func TestExtractIsTotal(t *testing.T) {
	for _, text := range []string{"", "   \n\t  ", "!!!@@@###", "2020 - 2019 nonsense"} {
		p := Extract(text)
		if p.Skills == nil {
			t.Errorf("Extract(%q).Skills is nil, want empty slice", text)
		}
	}
}

func containsStr(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}

func containsCat(cs []RoleCategory, want RoleCategory) bool {
	for _, c := range cs {
		if c == want {
			return true
		}
	}
	return false
}
