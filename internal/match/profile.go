package match

// Level is a rung on the seniority ladder detected from resume text.
type Level string

const (
	LevelIntern    Level = "intern"
	LevelEntry     Level = "entry"
	LevelMid       Level = "mid"
	LevelSenior    Level = "senior"
	LevelLead      Level = "lead"
	LevelManager   Level = "manager"
	LevelDirector  Level = "director"
	LevelExecutive Level = "executive"
)

// EducationStatus reports whether a candidate is still in school.
type EducationStatus string

const (
	StatusPursuing  EducationStatus = "pursuing"
	StatusCompleted EducationStatus = "completed"
)

// Proximity is how close a pursuing candidate is to graduation.
type Proximity string

const (
	ProximityNear Proximity = "near"
	ProximityFar  Proximity = "far"
)

// WorkEntry is a single parsed work-history position.
// Never constructed for implausible date ranges (start year outside
// [1980, currentYear+1], or end before start).
type WorkEntry struct {
	Title         string  `json:"title"`
	Company       string  `json:"company,omitempty"`
	DurationYears float64 `json:"duration_years,omitempty"`
}

// Profile is the structured output of Extract — one per resume,
// immutable once produced. Absent signals are zero values (empty
// string, nil slice, nil pointer), never errors.
type Profile struct {
	Skills              []string        `json:"skills"`
	ExperienceLevel     Level           `json:"experience_level,omitempty"`
	YearsOfExperience   *int            `json:"years_of_experience,omitempty"`
	Education           []string        `json:"education,omitempty"`
	Domains             []Domain        `json:"domains,omitempty"`
	WorkHistory         []WorkEntry     `json:"work_history,omitempty"`
	CalculatedYears     *float64        `json:"calculated_years,omitempty"`
	RoleCategories      []RoleCategory  `json:"role_categories,omitempty"`
	EducationStatus     EducationStatus `json:"education_status,omitempty"`
	GraduationProximity Proximity       `json:"graduation_proximity,omitempty"`
}

// Job is the read-only slice of a job record the scorer consumes.
// The storage layer owns the full record; the scorer never mutates this.
type Job struct {
	ID           string
	Title        string
	Company      string
	Department   string
	Level        string
	Description  string
	Skills       []string
	Requirements []string
}

// MatchResult is one scored job, created fresh per Match call.
type MatchResult struct {
	Job    Job    `json:"job"`
	Score  int    `json:"score"`
	Reason string `json:"reason"`
}
