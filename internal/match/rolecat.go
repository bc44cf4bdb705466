package match

import (
	"sort"
	"strings"
)

// RoleCategory is a cluster of job titles grouped by functional
// similarity.
type RoleCategory string

const (
	RoleSWE         RoleCategory = "swe"
	RoleML          RoleCategory = "ml"
	RoleDataScience RoleCategory = "data_science"
	RoleProduct     RoleCategory = "product"
	RoleDesign      RoleCategory = "design"
	RoleManagement  RoleCategory = "management"
)

// roleCategoryKeywords maps each category to title keywords. Used to
// classify the candidate's own work history.
var roleCategoryKeywords = []struct {
	category RoleCategory
	keywords []string
}{
	{RoleSWE, []string{
		"software engineer", "software developer", "web developer",
		"frontend developer", "backend developer", "full-stack developer",
		"full stack developer", "mobile developer", "ios developer",
		"android developer", "platform engineer", "site reliability",
		"devops engineer", "infrastructure engineer", "embedded engineer",
		"qa engineer", "sdet", "automation engineer", "cloud engineer",
		"security engineer", "build engineer",
	}},
	{RoleML, []string{
		"machine learning engineer", "ml engineer", "deep learning",
		"ai engineer", "ai researcher", "research engineer",
		"nlp engineer", "computer vision engineer", "applied scientist",
		"mlops engineer",
	}},
	{RoleDataScience, []string{
		"data scientist", "data analyst", "analytics engineer",
		"data engineer", "business intelligence", "research scientist",
		"statistician",
	}},
	{RoleProduct, []string{
		"product manager", "product owner", "program manager",
		"technical program manager", "product lead",
	}},
	{RoleDesign, []string{
		"ux designer", "ui designer", "product designer",
		"graphic designer", "visual designer", "interaction designer",
		"design lead", "ux researcher",
	}},
	{RoleManagement, []string{
		"engineering manager", "director of engineering", "vp of engineering",
		"cto", "tech lead", "team lead", "principal engineer",
		"staff engineer",
	}},
}

// jobRoleKeywords maps categories to keywords looked up in job titles
// and departments when scoring. Trailing spaces on short fragments
// ("ml ", "ai ") avoid matching inside longer words.
var jobRoleKeywords = map[RoleCategory][]string{
	RoleSWE: {
		"software", "developer", "frontend", "backend", "full-stack",
		"full stack", "devops", "sre", "platform", "mobile",
		"ios", "android", "qa", "embedded", "engineer",
	},
	RoleML: {
		"machine learning", "ml ", "deep learning", "ai ",
		"artificial intelligence", "nlp", "computer vision",
		"applied scientist",
	},
	RoleDataScience: {
		"data scien", "data analy", "analytics",
		"data engineer", "business intelligence",
	},
	RoleProduct:    {"product manager", "product owner", "program manager"},
	RoleDesign:     {"designer", "ux ", "ui ", "design lead"},
	RoleManagement: {"engineering manager", "director of engineering", "vp of engineering", "cto"},
}

// deptAffinity maps categories to departments they are compatible with,
// for partial role-match credit.
var deptAffinity = map[RoleCategory][]string{
	RoleSWE:         {"engineering"},
	RoleML:          {"engineering", "data science", "ai"},
	RoleDataScience: {"data science", "ai", "engineering"},
	RoleProduct:     {"product"},
	RoleDesign:      {"design"},
	RoleManagement:  {"engineering"},
}

// detectRoleCategories classifies work-history titles into categories.
// Each entry counts at most once per category (first keyword hit wins).
// Categories are ordered by total hit count descending, ties in
// declaration order.
func detectRoleCategories(history []WorkEntry) []RoleCategory {
	if len(history) == 0 {
		return nil
	}

	counts := make(map[RoleCategory]int)
	for _, entry := range history {
		title := strings.ToLower(entry.Title)
		for _, rc := range roleCategoryKeywords {
			for _, kw := range rc.keywords {
				if strings.Contains(title, kw) {
					counts[rc.category]++
					break
				}
			}
		}
	}
	if len(counts) == 0 {
		return nil
	}

	out := make([]RoleCategory, 0, len(counts))
	for _, rc := range roleCategoryKeywords {
		if counts[rc.category] > 0 {
			out = append(out, rc.category)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return counts[out[i]] > counts[out[j]] })
	return out
}
