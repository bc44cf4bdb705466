package match

import (
	"sort"
	"strings"
)

// Domain is a coarse occupational category inferred from keyword
// co-occurrence in resume text.
type Domain string

const (
	DomainEngineering     Domain = "engineering"
	DomainDataScience     Domain = "data science"
	DomainDesign          Domain = "design"
	DomainMarketing       Domain = "marketing"
	DomainSales           Domain = "sales"
	DomainFinance         Domain = "finance"
	DomainHealthcare      Domain = "healthcare"
	DomainHR              Domain = "hr"
	DomainLegal           Domain = "legal"
	DomainEducation       Domain = "education"
	DomainOperations      Domain = "operations"
	DomainProduct         Domain = "product"
	DomainCustomerSuccess Domain = "customer success"
	DomainHospitality     Domain = "hospitality"
)

// domainKeywords maps each domain to its indicator terms. Declaration
// order is the tie-break when hit counts are equal. A domain registers
// only with >= 2 distinct indicator hits.
var domainKeywords = []struct {
	domain   Domain
	keywords []string
}{
	{DomainEngineering, []string{
		"software", "engineer", "developer", "programming", "code",
		"coding", "technical", "backend", "frontend", "fullstack",
		"devops", "infrastructure", "platform", "systems",
	}},
	{DomainDataScience, []string{
		"data science", "machine learning", "deep learning", "ai",
		"artificial intelligence", "nlp", "computer vision",
		"statistics", "analytics", "data analysis", "neural",
	}},
	{DomainDesign, []string{
		"ui design", "ux design", "user experience", "user interface",
		"figma", "sketch", "prototyping", "wireframe", "visual design",
		"graphic design", "creative director", "branding",
		"interaction design", "design systems",
	}},
	{DomainMarketing, []string{
		"marketing", "seo", "sem", "social media", "content",
		"campaign", "brand", "advertising", "digital marketing",
		"growth", "acquisition",
	}},
	{DomainSales, []string{
		"sales", "revenue", "quota", "pipeline", "prospecting",
		"account", "b2b", "b2c", "crm", "salesforce",
		"business development",
	}},
	{DomainFinance, []string{
		"finance", "accounting", "financial", "budget", "audit",
		"tax", "revenue", "bookkeeping", "quickbooks", "gaap",
		"forecasting",
	}},
	{DomainHealthcare, []string{
		"healthcare", "medical", "clinical", "patient", "nursing",
		"nurse", "pharmacy", "dental", "hipaa", "ehr", "diagnosis",
		"treatment", "hospital",
	}},
	{DomainHR, []string{
		"human resources", "hr", "recruiting", "talent", "hiring",
		"onboarding", "payroll", "benefits", "compensation",
		"employee relations",
	}},
	{DomainLegal, []string{
		"legal", "law", "attorney", "lawyer", "contract",
		"compliance", "litigation", "regulatory",
		"intellectual property", "patent",
	}},
	{DomainEducation, []string{
		"education", "teaching", "teacher", "curriculum",
		"classroom", "student", "academic", "instruction",
		"learning", "pedagogy",
	}},
	{DomainOperations, []string{
		"operations", "supply chain", "logistics", "procurement",
		"inventory", "warehouse", "manufacturing",
		"process improvement", "lean", "six sigma",
	}},
	{DomainProduct, []string{
		"product management", "product manager", "roadmap",
		"backlog", "stakeholder", "product strategy",
		"user stories", "sprint planning",
	}},
	{DomainCustomerSuccess, []string{
		"customer success", "customer support", "customer service",
		"client relations", "retention", "churn", "nps",
	}},
	{DomainHospitality, []string{
		"hospitality", "hotel", "restaurant", "guest", "tourism",
		"catering", "front desk", "concierge", "chef", "food service",
		"event planning", "banquet", "resort", "lodging",
	}},
}

// domainIndicators returns the indicator list for a domain, or nil.
func domainIndicators(d Domain) []string {
	for _, entry := range domainKeywords {
		if entry.domain == d {
			return entry.keywords
		}
	}
	return nil
}

// detectDomains counts distinct indicator hits per domain over
// normalized text and returns domains with >= 2 hits, ordered by hit
// count descending, ties in declaration order.
func detectDomains(text string) []Domain {
	type hit struct {
		domain Domain
		count  int
	}
	var hits []hit
	for _, entry := range domainKeywords {
		n := 0
		for _, kw := range entry.keywords {
			if strings.Contains(text, kw) {
				n++
			}
		}
		if n >= 2 {
			hits = append(hits, hit{entry.domain, n})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].count > hits[j].count })

	out := make([]Domain, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.domain)
	}
	return out
}
