package match

import (
	"regexp"
	"sort"
	"strings"
)

// multiWordSkills are curated skill phrases matched before single tokens,
// so "machine learning" is captured whole instead of as fragments.
var multiWordSkills = []string{
	// Engineering & CS
	"machine learning", "deep learning", "natural language processing",
	"computer vision", "data science", "data engineering", "data analysis",
	"software engineering", "web development", "mobile development",
	"full stack", "front end", "back end", "cloud computing",
	"artificial intelligence", "neural networks", "distributed systems",
	"system design", "object oriented", "functional programming",
	"test driven", "continuous integration", "continuous deployment",
	"version control", "code review", "agile methodology",
	"project management", "product management", "program management",
	"user experience", "user interface", "user research",
	"graphic design", "visual design", "interaction design",
	"content strategy", "content marketing", "digital marketing",
	"search engine optimization", "social media marketing",
	"public relations", "brand management", "market research",
	"financial analysis", "financial modeling", "risk management",
	"supply chain", "operations management", "quality assurance",
	"human resources", "talent acquisition", "employee relations",
	"patient care", "clinical research", "electronic health records",
	"regulatory compliance", "contract negotiation", "intellectual property",
	"customer success", "account management", "business development",
	"sales operations", "revenue operations",
	"next.js", "node.js", "vue.js", "express.js", "nest.js",
	"react native", "ruby on rails",
	"amazon web services", "google cloud", "microsoft azure",
	"rest api", "rest apis", "graphql api",
	"ci/cd", "ci cd",
	"unit testing", "integration testing", "end to end testing",
	"data visualization", "business intelligence",
	"a/b testing", "ab testing",
	"cross functional",
	"adobe creative suite", "adobe photoshop", "adobe illustrator",
	"design systems", "design thinking",
	"curriculum development", "classroom management",
	"team leadership", "team management",
	"budget management", "vendor management",
	"dental hygiene", "pharmacy technician",
	"civil engineering", "structural engineering", "mechanical engineering",
	"legal research", "case management",
	"performance management", "compensation and benefits",
	"pivot tables",
	"event planning", "hotel management", "food service",
	"guest relations", "revenue management", "front desk operations",
	"banquet coordination", "menu planning", "food safety",
	"wedding planning", "conference planning",
}

// singleWordSkills are single-token skills matched against the token set.
var singleWordSkills = []string{
	// Programming languages
	"python", "javascript", "typescript", "java", "kotlin", "swift",
	"rust", "golang", "ruby", "php", "scala", "haskell",
	"c++", "c#", "r", "matlab", "julia", "perl", "lua",
	"html", "css", "sass", "less",
	"sql", "nosql", "graphql",
	// Frameworks & libraries
	"react", "angular", "vue", "svelte", "django", "flask", "fastapi",
	"spring", "express", "rails", "laravel", "nextjs",
	"tailwind", "bootstrap", "material",
	"tensorflow", "pytorch", "keras", "scikit",
	"pandas", "numpy", "matplotlib", "seaborn",
	"redux", "mobx", "zustand",
	// Databases
	"postgresql", "postgres", "mysql", "sqlite", "oracle",
	"mongodb", "dynamodb", "cassandra", "couchdb",
	"redis", "memcached", "elasticsearch",
	"neo4j",
	// Cloud & DevOps
	"aws", "azure", "gcp", "heroku", "vercel", "netlify",
	"docker", "kubernetes", "terraform", "ansible", "jenkins",
	"circleci", "github", "gitlab", "bitbucket",
	"nginx", "apache",
	"linux", "unix", "bash",
	// Tools & platforms
	"git", "jira", "confluence", "slack", "notion",
	"figma", "sketch", "invision", "zeplin", "framer",
	"webpack", "vite", "rollup", "babel", "eslint",
	"jest", "mocha", "cypress", "playwright", "selenium",
	"postman", "swagger",
	"tableau", "powerbi", "looker",
	"salesforce", "hubspot", "zendesk",
	"quickbooks", "sap", "netsuite",
	// Concepts & methodologies
	"agile", "scrum", "kanban", "lean",
	"devops", "mlops",
	"microservices", "serverless", "api",
	"oauth", "jwt", "authentication",
	"encryption", "security", "compliance",
	"accessibility", "wcag",
	"seo", "sem", "ppc",
	"crm", "erp", "saas",
	"etl", "pipeline",
	"hipaa", "gdpr", "sox",
	"autocad", "revit",
	// Soft skills & business
	"leadership", "communication", "collaboration",
	"mentoring", "coaching", "negotiation",
	"budgeting", "forecasting", "analytics",
	"copywriting",
	"excel", "powerpoint",
}

// multiWordByLen holds multiWordSkills sorted longest-first so longer
// phrases win before their fragments are considered.
var multiWordByLen = func() []string {
	s := make([]string, len(multiWordSkills))
	copy(s, multiWordSkills)
	sort.SliceStable(s, func(i, j int) bool { return len(s[i]) > len(s[j]) })
	return s
}()

// tokenRe matches alphanumeric/symbol tokens, preserving tech spellings
// like c++, c#, node.js.
var tokenRe = regexp.MustCompile(`[a-z0-9+#/.]+`)

// phraseInText reports whether phrase occurs in text with no lowercase
// letter immediately adjacent on either side. This is the phrase-boundary
// rule: digits and punctuation do not block a match, so "node.js" still
// matches inside "node.js," and "(node.js)".
func phraseInText(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	for start := 0; start <= len(text)-len(phrase); {
		i := strings.Index(text[start:], phrase)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(phrase)
		beforeOK := i == 0 || !isLowerAlpha(text[i-1])
		afterOK := end == len(text) || !isLowerAlpha(text[end])
		if beforeOK && afterOK {
			return true
		}
		start = i + 1
	}
	return false
}

func isLowerAlpha(b byte) bool { return b >= 'a' && b <= 'z' }

// extractSkills matches the skill dictionaries against normalized text.
// Multi-word phrases first (longest-phrase-first), then single tokens
// not already subsumed by a matched phrase. Result is deduplicated and
// sorted.
func extractSkills(text string) []string {
	var found []string
	for _, phrase := range multiWordByLen {
		if phraseInText(text, phrase) {
			found = append(found, phrase)
		}
	}
	phrases := found[:len(found):len(found)]

	tokens := make(map[string]bool)
	for _, tok := range tokenRe.FindAllString(text, -1) {
		tokens[tok] = true
	}

	for _, skill := range singleWordSkills {
		if !tokens[skill] {
			continue
		}
		subsumed := false
		for _, phrase := range phrases {
			if strings.Contains(phrase, skill) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			found = append(found, skill)
		}
	}

	seen := make(map[string]bool, len(found))
	out := make([]string, 0, len(found))
	for _, s := range found {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
