package store

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// seedRandSeed fixes the generator so repeated seeds of a fresh
// database produce the same corpus.
const seedRandSeed = 42

// industrySpec is the per-industry taxonomy the generator draws from.
type industrySpec struct {
	name         string
	department   string
	target       int
	visaRate     float64
	companies    []string
	rolesByLevel map[string][]string
	skillsPool   []string
	salaryBands  map[string][2]int
	descriptions []string
	requirements []string
	duties       []string
}

var levelWeights = []struct {
	level  string
	weight float64
}{
	{"Intern", 0.08}, {"Entry", 0.22}, {"Mid", 0.28}, {"Senior", 0.20},
	{"Lead", 0.09}, {"Manager", 0.06}, {"Director", 0.04},
	{"VP", 0.02}, {"C-Suite", 0.01},
}

var yearsByLevel = map[string][2]int{
	"Intern": {0, -1}, "Entry": {0, 2}, "Mid": {2, 5}, "Senior": {5, 10},
	"Lead": {7, 12}, "Manager": {5, 12}, "Director": {10, 18},
	"VP": {12, 20}, "C-Suite": {15, -1},
}

var skillCountByLevel = map[string][2]int{
	"Intern": {3, 5}, "Entry": {4, 6}, "Mid": {5, 8}, "Senior": {6, 10},
	"Lead": {6, 10}, "Manager": {5, 8}, "Director": {4, 7},
	"VP": {4, 6}, "C-Suite": {3, 5},
}

var seedLocations = []string{
	"San Francisco, CA", "New York, NY", "Austin, TX", "Seattle, WA",
	"Boston, MA", "Chicago, IL", "Denver, CO", "Los Angeles, CA",
	"Miami, FL", "Atlanta, GA", "Portland, OR", "Raleigh, NC",
	"London, UK", "Manchester, UK", "Toronto, Canada", "Vancouver, Canada",
	"Bangalore, India", "Mumbai, India", "Sydney, Australia",
	"Berlin, Germany", "Amsterdam, Netherlands", "Dublin, Ireland",
	"Singapore", "Tokyo, Japan",
}

var seedRemoteTypes = []string{"On-site", "Remote", "Hybrid"}
var seedRemoteWeights = []float64{0.35, 0.35, 0.30}

var seedCompanySizes = []string{"1-50", "51-200", "201-1000", "1001-5000", "5000+"}

var recruiterFirst = []string{
	"Sarah", "Mike", "Emily", "James", "Jessica", "David", "Amanda",
	"Chris", "Rachel", "Alex", "Lauren", "Ryan", "Megan", "Brian",
}

var recruiterLast = []string{
	"Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Anderson", "Taylor", "Lee",
}

var recruiterRoles = []string{
	"Technical Recruiter", "Senior Recruiter", "Talent Acquisition Specialist",
	"Recruiting Manager", "HR Coordinator", "People Operations",
}

var defaultRequirements = []string{
	"{years}+ years of experience in a similar role",
	"Strong {skill1} skills",
	"Experience with {skill2} and {skill3}",
	"Excellent communication and collaboration skills",
	"Bachelor's degree in a relevant field or equivalent experience",
	"Ability to work independently and in a team environment",
	"Strong attention to detail and organizational skills",
}

var defaultDuties = []string{
	"Contribute to team goals and organizational objectives",
	"Collaborate with cross-functional teams on key initiatives",
	"Analyze and solve complex problems in your domain",
	"Communicate progress and insights to stakeholders",
	"Stay current with industry trends and best practices",
	"Participate in team meetings and planning sessions",
}

var seedIndustries = []industrySpec{
	{
		name: "Technology", department: "Engineering", target: 500, visaRate: 0.40,
		companies: []string{
			"NovaTech", "Quantum Labs", "CloudNine Systems", "DataStream Inc",
			"ByteForge", "CipherStack", "Orion Software", "VelocityAI",
			"SkyBridge Tech", "Lumina Labs", "TerraCode", "Nexus Engineering",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Software Engineering Intern", "Frontend Intern", "Backend Intern", "DevOps Intern"},
			"Entry":   {"Junior Software Engineer", "Junior Frontend Developer", "Junior Backend Developer", "Associate Software Engineer", "Junior DevOps Engineer"},
			"Mid":     {"Software Engineer", "Frontend Developer", "Backend Developer", "Full-Stack Developer", "DevOps Engineer", "Cloud Engineer", "Platform Engineer", "Site Reliability Engineer"},
			"Senior":  {"Senior Software Engineer", "Senior Frontend Developer", "Senior Backend Developer", "Senior Full-Stack Developer", "Senior DevOps Engineer", "Senior Platform Engineer"},
			"Lead":    {"Lead Software Engineer", "Principal Engineer", "Staff Engineer", "Tech Lead"},
			"Manager": {"Engineering Manager", "DevOps Manager", "Platform Engineering Manager"},
			"Director": {"Director of Engineering", "Director of Platform", "Director of Infrastructure"},
			"VP":      {"VP of Engineering", "VP of Technology"},
			"C-Suite": {"CTO", "Chief Technology Officer"},
		},
		skillsPool: []string{
			"Python", "JavaScript", "TypeScript", "Java", "Go", "Rust", "C++",
			"React", "Angular", "Vue.js", "Next.js", "Node.js", "Express.js",
			"Django", "Flask", "FastAPI", "Spring Boot", "Ruby on Rails",
			"PostgreSQL", "MySQL", "MongoDB", "Redis", "Elasticsearch",
			"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform",
			"CI/CD", "Jenkins", "GitHub Actions", "REST APIs", "GraphQL", "gRPC",
			"Microservices", "Linux", "Bash", "Git", "Agile", "Scrum",
			"Kafka", "RabbitMQ", "Prometheus", "Grafana",
		},
		salaryBands: map[string][2]int{
			"Intern": {40000, 75000}, "Entry": {70000, 110000}, "Mid": {100000, 160000},
			"Senior": {140000, 220000}, "Lead": {170000, 260000}, "Manager": {180000, 270000},
			"Director": {220000, 330000}, "VP": {280000, 420000}, "C-Suite": {350000, 550000},
		},
		descriptions: []string{
			"Join our engineering team to build scalable, high-performance systems that serve millions of users.",
			"Work on cutting-edge technology to solve complex problems in a fast-paced, collaborative environment.",
			"Design and implement robust software solutions that drive business growth and improve user experience.",
			"Build distributed systems that handle billions of requests with high reliability.",
			"Work across the stack to deliver features that directly impact our users.",
		},
		requirements: []string{
			"{years}+ years of experience in software development",
			"Proficiency in {skill1} and {skill2}",
			"Experience with {skill3} or similar technologies",
			"Strong understanding of data structures and algorithms",
			"Experience building and deploying production systems",
			"Bachelor's degree in Computer Science or related field, or equivalent experience",
			"Familiarity with CI/CD pipelines and DevOps practices",
		},
		duties: []string{
			"Design, develop, and maintain high-quality software solutions",
			"Collaborate with cross-functional teams to define and implement new features",
			"Write clean, testable, and well-documented code",
			"Participate in code reviews and contribute to engineering best practices",
			"Troubleshoot and resolve complex technical issues",
			"Mentor junior team members and contribute to team growth",
		},
	},
	{
		name: "Data Science & AI", department: "Data Science", target: 250, visaRate: 0.45,
		companies: []string{
			"Cortex AI", "Synapse Labs", "DataPrime", "AlgoVerse",
			"TensorForge", "Insight Engine", "BrainWave AI", "CogniTech",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Data Science Intern", "Machine Learning Intern", "Data Analytics Intern"},
			"Entry":   {"Junior Data Scientist", "Junior ML Engineer", "Junior Data Analyst", "Associate Data Scientist"},
			"Mid":     {"Data Scientist", "Machine Learning Engineer", "AI Engineer", "Data Analyst", "NLP Engineer", "MLOps Engineer", "Analytics Engineer"},
			"Senior":  {"Senior Data Scientist", "Senior ML Engineer", "Senior AI Engineer", "Senior Applied Scientist"},
			"Lead":    {"Lead Data Scientist", "Principal ML Engineer", "Staff ML Engineer"},
			"Manager": {"Data Science Manager", "ML Engineering Manager"},
			"Director": {"Director of Data Science", "Director of AI"},
			"VP":      {"VP of Data Science", "VP of AI"},
			"C-Suite": {"Chief Data Officer"},
		},
		skillsPool: []string{
			"Python", "R", "SQL", "TensorFlow", "PyTorch", "Scikit-learn",
			"Pandas", "NumPy", "Keras", "XGBoost", "Hugging Face",
			"Natural Language Processing", "Computer Vision", "Deep Learning",
			"Machine Learning", "Neural Networks", "Statistical Modeling",
			"A/B Testing", "Feature Engineering", "MLOps",
			"Apache Spark", "Airflow", "dbt", "Tableau", "Power BI",
			"Docker", "Kubernetes", "ETL", "Data Warehousing", "Snowflake", "BigQuery",
		},
		salaryBands: map[string][2]int{
			"Intern": {45000, 80000}, "Entry": {80000, 120000}, "Mid": {110000, 175000},
			"Senior": {150000, 240000}, "Lead": {180000, 280000}, "Manager": {190000, 290000},
			"Director": {240000, 360000}, "VP": {300000, 450000}, "C-Suite": {370000, 580000},
		},
		descriptions: []string{
			"Apply machine learning and statistical methods to solve impactful business problems at scale.",
			"Build and deploy ML models that power intelligent features used by millions of users.",
			"Work on cutting-edge NLP, computer vision, and deep learning projects.",
			"Design and implement data pipelines and ML infrastructure for production systems.",
			"Drive data-driven decision making through advanced analytics and experimentation.",
		},
		requirements: []string{
			"{years}+ years of experience in data science or machine learning",
			"Strong proficiency in {skill1} and {skill2}",
			"Experience with {skill3} or similar ML frameworks",
			"Solid foundation in statistics, probability, and linear algebra",
			"Experience deploying ML models to production environments",
			"MS or PhD in Computer Science, Statistics, or related quantitative field preferred",
			"Experience with experiment design and A/B testing",
		},
		duties: []string{
			"Develop and deploy machine learning models to solve business problems",
			"Analyze large datasets to extract insights and identify patterns",
			"Design and run experiments to validate hypotheses and measure impact",
			"Build and maintain data pipelines and ML infrastructure",
			"Present findings and recommendations to stakeholders",
		},
	},
	{
		name: "Healthcare", department: "Healthcare", target: 200, visaRate: 0.15,
		companies: []string{
			"Unity Healthcare", "Pacific Health Network", "Sunrise Medical Group",
			"Horizon Hospital", "CareFirst Clinic", "Cascade Health",
			"Mercy General Hospital", "Valley Health System",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Healthcare Intern", "Clinical Research Intern", "Nursing Intern"},
			"Entry":   {"Certified Nursing Assistant", "Pharmacy Technician", "Medical Assistant", "Patient Care Technician", "Phlebotomist"},
			"Mid":     {"Registered Nurse", "Physical Therapist", "Dental Hygienist", "Medical Coder", "Nurse Practitioner", "ICU Nurse", "Emergency Room Nurse", "Clinical Data Analyst"},
			"Senior":  {"Senior Registered Nurse", "Senior Physical Therapist", "Clinical Research Coordinator", "Clinical Nurse Specialist"},
			"Lead":    {"Charge Nurse", "Lead Pharmacist", "Nurse Educator"},
			"Manager": {"Nurse Manager", "Clinical Operations Manager"},
			"Director": {"Director of Nursing", "Director of Clinical Operations"},
			"VP":      {"VP of Clinical Services", "VP of Patient Care"},
		},
		skillsPool: []string{
			"Patient Care", "Clinical Assessment", "IV Therapy", "EHR Systems",
			"Epic", "HIPAA Compliance", "Medication Administration", "Wound Care",
			"CPR", "ACLS", "BLS", "Triage", "Phlebotomy", "Medical Terminology",
			"Patient Education", "Care Planning", "Infection Control",
			"Medical Coding", "ICD-10", "Critical Care", "Telehealth",
		},
		salaryBands: map[string][2]int{
			"Intern": {30000, 45000}, "Entry": {35000, 55000}, "Mid": {55000, 95000},
			"Senior": {85000, 130000}, "Lead": {100000, 145000}, "Manager": {110000, 160000},
			"Director": {140000, 210000}, "VP": {180000, 280000},
		},
		descriptions: []string{
			"Provide compassionate, evidence-based patient care in a dynamic healthcare setting.",
			"Join our clinical team dedicated to improving patient outcomes through innovative care delivery.",
			"Deliver high-quality nursing care to patients across diverse medical specialties.",
			"Collaborate with interdisciplinary teams to ensure comprehensive patient-centered care.",
		},
		requirements: []string{
			"{years}+ years of clinical or healthcare experience",
			"Proficiency in {skill1} and {skill2}",
			"Current licensure/certification in relevant specialty",
			"Knowledge of HIPAA regulations and compliance requirements",
			"Ability to work in fast-paced clinical environments",
			"BLS/CPR certification required",
		},
		duties: []string{
			"Provide direct patient care in accordance with established protocols",
			"Assess patient conditions and develop appropriate care plans",
			"Document patient information accurately in EHR systems",
			"Collaborate with interdisciplinary healthcare teams",
			"Educate patients and families on health conditions and treatments",
		},
	},
	{
		name: "Finance", department: "Finance", target: 150, visaRate: 0.25,
		companies: []string{
			"Meridian Capital", "Atlas Financial", "SilverOak Partners",
			"Granite Financial", "Summit Wealth Management", "Harbor Financial",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Finance Intern", "Accounting Intern"},
			"Entry":   {"Junior Financial Analyst", "Staff Accountant", "Tax Associate"},
			"Mid":     {"Financial Analyst", "Auditor", "Risk Analyst", "Compliance Analyst", "Investment Analyst"},
			"Senior":  {"Senior Financial Analyst", "Senior Risk Analyst", "Quantitative Analyst"},
			"Lead":    {"Lead Financial Analyst", "Principal Risk Analyst"},
			"Manager": {"Finance Manager", "Accounting Manager", "Risk Manager"},
			"Director": {"Director of Finance", "Director of Risk Management"},
			"VP":      {"VP of Finance"},
			"C-Suite": {"CFO"},
		},
		skillsPool: []string{
			"Financial Analysis", "Financial Modeling", "Excel", "SQL",
			"Tableau", "Python", "GAAP", "SOX Compliance", "Budgeting",
			"Forecasting", "Risk Assessment", "Portfolio Management",
			"Audit", "Tax Preparation", "Regulatory Compliance", "Valuation",
		},
		salaryBands: map[string][2]int{
			"Intern": {45000, 70000}, "Entry": {60000, 90000}, "Mid": {85000, 130000},
			"Senior": {120000, 180000}, "Lead": {150000, 220000}, "Manager": {140000, 210000},
			"Director": {190000, 300000}, "VP": {250000, 400000}, "C-Suite": {300000, 500000},
		},
		descriptions: []string{
			"Drive financial strategy and provide analytical insights to support business decision-making.",
			"Join our finance team to help shape the financial future of our organization.",
			"Analyze complex financial data to identify trends, risks, and opportunities for growth.",
		},
	},
	{
		name: "Design", department: "Design", target: 100, visaRate: 0.25,
		companies: []string{
			"CreativeForge", "PixelCraft Studio", "DesignHub Agency",
			"Artisan Digital", "FormLab",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Design Intern", "UX Research Intern"},
			"Entry":   {"Junior UX Designer", "Junior UI Designer", "Junior Graphic Designer"},
			"Mid":     {"UX Designer", "UI Designer", "Product Designer", "Graphic Designer", "UX Researcher", "Visual Designer"},
			"Senior":  {"Senior UX Designer", "Senior Product Designer", "Senior Visual Designer"},
			"Lead":    {"Lead Product Designer", "Principal Designer"},
			"Manager": {"Design Manager"},
			"Director": {"Director of Design", "Director of UX"},
			"VP":      {"VP of Design"},
		},
		skillsPool: []string{
			"Figma", "Sketch", "Adobe Illustrator", "Adobe Photoshop",
			"InVision", "Zeplin", "Framer", "User Research", "Usability Testing",
			"Wireframing", "Prototyping", "Design Systems", "Typography",
			"Interaction Design", "Accessibility", "WCAG", "HTML", "CSS",
		},
		salaryBands: map[string][2]int{
			"Intern": {35000, 55000}, "Entry": {55000, 85000}, "Mid": {80000, 130000},
			"Senior": {120000, 180000}, "Lead": {150000, 220000}, "Manager": {150000, 220000},
			"Director": {190000, 280000}, "VP": {240000, 380000},
		},
		descriptions: []string{
			"Create intuitive, beautiful user experiences that delight our customers and drive engagement.",
			"Join our design team to shape the visual and interactive experience of our products.",
			"Work closely with engineering and product teams to bring designs from concept to reality.",
		},
	},
	{
		name: "Marketing", department: "Marketing", target: 100, visaRate: 0.20,
		companies: []string{
			"GrowthSpark", "BrightPath Marketing", "Catalyst Agency",
			"ReachMedia", "Pulse Digital",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Marketing Intern", "Content Intern"},
			"Entry":   {"Marketing Coordinator", "Content Writer", "SEO Specialist"},
			"Mid":     {"Digital Marketing Manager", "Content Strategist", "Social Media Manager", "Brand Manager", "Copywriter"},
			"Senior":  {"Senior Marketing Manager", "Senior Content Strategist", "Senior Brand Manager"},
			"Lead":    {"Lead Marketing Strategist"},
			"Manager": {"Marketing Manager", "PR Manager"},
			"Director": {"Director of Marketing", "Director of Growth"},
			"VP":      {"VP of Marketing"},
			"C-Suite": {"CMO"},
		},
		skillsPool: []string{
			"Google Analytics", "Google Ads", "SEO", "SEM", "Content Marketing",
			"Social Media Marketing", "Email Marketing", "HubSpot", "Copywriting",
			"Brand Strategy", "Market Research", "A/B Testing",
			"Marketing Automation", "Adobe Creative Suite", "WordPress",
		},
		salaryBands: map[string][2]int{
			"Intern": {30000, 50000}, "Entry": {45000, 70000}, "Mid": {65000, 110000},
			"Senior": {95000, 150000}, "Lead": {120000, 180000}, "Manager": {100000, 160000},
			"Director": {150000, 240000}, "VP": {200000, 350000}, "C-Suite": {250000, 450000},
		},
		descriptions: []string{
			"Drive brand awareness and customer acquisition through creative marketing strategies.",
			"Join our marketing team to build campaigns that engage and convert audiences across channels.",
			"Shape our brand story and grow our market presence through data-driven marketing.",
		},
	},
	{
		name: "Sales", department: "Sales", target: 100, visaRate: 0.15,
		companies: []string{
			"SalesForward", "RevenueFirst", "Pipeline Partners", "DealPoint",
		},
		rolesByLevel: map[string][]string{
			"Entry":   {"Sales Development Representative", "Business Development Representative"},
			"Mid":     {"Account Executive", "Sales Engineer", "Customer Success Manager", "Solutions Consultant"},
			"Senior":  {"Senior Account Executive", "Senior Sales Engineer", "Strategic Account Manager"},
			"Lead":    {"Lead Sales Engineer", "Principal Solutions Architect"},
			"Manager": {"Sales Manager", "Regional Sales Manager"},
			"Director": {"Director of Sales", "Director of Customer Success"},
			"VP":      {"VP of Sales", "VP of Revenue"},
		},
		skillsPool: []string{
			"Salesforce", "HubSpot CRM", "Cold Calling", "Prospecting",
			"Pipeline Management", "Contract Negotiation", "Solution Selling",
			"Account Management", "Revenue Forecasting", "SaaS Sales",
			"Enterprise Sales", "Lead Generation", "Customer Retention",
		},
		salaryBands: map[string][2]int{
			"Entry": {45000, 70000}, "Mid": {70000, 120000}, "Senior": {100000, 170000},
			"Lead": {130000, 200000}, "Manager": {120000, 190000},
			"Director": {170000, 280000}, "VP": {220000, 380000},
		},
		descriptions: []string{
			"Drive revenue growth by building strong relationships with enterprise clients.",
			"Join our sales team to help organizations discover solutions that transform their business.",
			"Partner with prospects and customers to understand their needs and deliver value.",
		},
	},
	{
		name: "Legal", department: "Legal", target: 120, visaRate: 0.20,
		companies: []string{
			"Whitfield & Associates", "Sterling Law Group", "Pacific Legal Counsel",
			"Meridian Compliance Group", "Summit Legal Advisors", "Thornton & Partners",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Legal Intern", "Law Clerk"},
			"Entry":   {"Paralegal", "Legal Assistant", "Contract Administrator", "Litigation Paralegal"},
			"Mid":     {"Corporate Attorney", "Compliance Analyst", "Contract Specialist", "IP Attorney", "Employment Attorney", "Litigation Associate", "Legal Analyst"},
			"Senior":  {"Senior Corporate Attorney", "Senior Compliance Analyst", "Senior Litigation Attorney"},
			"Lead":    {"Lead Compliance Counsel", "Principal Attorney"},
			"Manager": {"Legal Operations Manager", "Compliance Manager"},
			"Director": {"Director of Legal", "Director of Compliance"},
			"VP":      {"General Counsel", "VP of Legal"},
		},
		skillsPool: []string{
			"Legal Research", "Contract Drafting", "Contract Review", "Compliance",
			"Regulatory Affairs", "Corporate Law", "Intellectual Property",
			"Data Privacy", "GDPR", "Litigation", "Negotiation", "Due Diligence",
			"Legal Writing", "Case Management", "Westlaw", "Employment Law",
		},
		salaryBands: map[string][2]int{
			"Intern": {35000, 55000}, "Entry": {50000, 75000}, "Mid": {80000, 140000},
			"Senior": {130000, 200000}, "Lead": {160000, 240000}, "Manager": {140000, 210000},
			"Director": {200000, 310000}, "VP": {260000, 420000},
		},
		descriptions: []string{
			"Provide legal counsel to support business operations and ensure regulatory compliance.",
			"Join our legal team to navigate complex legal landscapes and protect the organization.",
			"Draft, review, and negotiate contracts while advising on legal risks and opportunities.",
		},
		requirements: []string{
			"{years}+ years of legal experience in relevant practice area",
			"Strong {skill1} and {skill2} skills",
			"Excellent legal writing and research abilities",
			"J.D. from an accredited law school and active bar membership",
			"Ability to manage multiple cases and meet deadlines",
		},
		duties: []string{
			"Research and analyze legal issues and provide guidance to business teams",
			"Draft, review, and negotiate contracts and legal documents",
			"Ensure compliance with applicable laws, regulations, and policies",
			"Advise on legal risks and develop mitigation strategies",
		},
	},
	{
		name: "HR", department: "Human Resources", target: 80, visaRate: 0.15,
		companies: []string{
			"TalentBridge", "PeopleFirst HR", "Greenfield Consulting",
		},
		rolesByLevel: map[string][]string{
			"Entry":   {"HR Coordinator", "Recruiting Coordinator"},
			"Mid":     {"HR Business Partner", "Recruiter", "Talent Acquisition Specialist", "Compensation Analyst"},
			"Senior":  {"Senior HR Business Partner", "Senior Recruiter"},
			"Manager": {"HR Manager", "Talent Acquisition Manager"},
			"Director": {"Director of HR", "Director of People Operations"},
			"VP":      {"VP of People"},
		},
		skillsPool: []string{
			"Recruiting", "Talent Acquisition", "Employee Relations",
			"Performance Management", "Benefits Administration", "HRIS",
			"Workday", "Onboarding", "HR Analytics", "Employment Law", "Payroll",
		},
		salaryBands: map[string][2]int{
			"Entry": {40000, 60000}, "Mid": {60000, 95000}, "Senior": {85000, 130000},
			"Manager": {100000, 160000}, "Director": {140000, 220000}, "VP": {180000, 310000},
		},
		descriptions: []string{
			"Build and support a thriving workplace culture that attracts and retains top talent.",
			"Join our people team to shape employee experience and drive organizational growth.",
			"Partner with business leaders to develop people strategies aligned with company goals.",
		},
	},
	{
		name: "Product", department: "Product", target: 100, visaRate: 0.30,
		companies: []string{
			"ProductForge", "LaunchPad", "Catalyst Product Studio", "NovaTech",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Product Management Intern"},
			"Entry":   {"Associate Product Manager", "Junior Product Analyst"},
			"Mid":     {"Product Manager", "Technical Product Manager", "Product Analyst", "Technical Writer"},
			"Senior":  {"Senior Product Manager", "Senior Technical Product Manager"},
			"Lead":    {"Principal Product Manager", "Group Product Manager"},
			"Manager": {"Product Management Lead"},
			"Director": {"Director of Product"},
			"VP":      {"VP of Product"},
			"C-Suite": {"CPO"},
		},
		skillsPool: []string{
			"Product Strategy", "Roadmap Planning", "User Stories", "Agile",
			"Scrum", "JIRA", "Market Research", "Competitive Analysis",
			"Data Analysis", "SQL", "A/B Testing", "User Research",
			"Stakeholder Management", "Go-to-Market Strategy",
		},
		salaryBands: map[string][2]int{
			"Intern": {50000, 80000}, "Entry": {60000, 90000}, "Mid": {90000, 140000},
			"Senior": {130000, 190000}, "Lead": {160000, 240000}, "Manager": {150000, 220000},
			"Director": {190000, 300000}, "VP": {250000, 400000}, "C-Suite": {300000, 500000},
		},
		descriptions: []string{
			"Define and drive product strategy that delivers value to users and the business.",
			"Join our product team to shape the roadmap and bring innovative features to market.",
			"Work cross-functionally to identify opportunities and build products users love.",
		},
	},
	{
		name: "Hospitality", department: "Hospitality & Tourism", target: 100, visaRate: 0.10,
		companies: []string{
			"Grand Horizon Hotel", "Oceanview Resorts", "Summit Lodge",
			"Metropolitan Hotel Group", "Starlight Events", "Heritage Hospitality Group",
		},
		rolesByLevel: map[string][]string{
			"Intern":  {"Hospitality Intern", "Event Planning Intern"},
			"Entry":   {"Front Desk Agent", "Guest Services Associate", "Concierge", "Banquet Server"},
			"Mid":     {"Hotel Manager", "Restaurant Manager", "Event Coordinator", "Revenue Manager", "Sous Chef", "Guest Relations Manager", "Wedding Planner"},
			"Senior":  {"Senior Hotel Manager", "Senior Event Manager", "Executive Chef"},
			"Lead":    {"Lead Event Planner", "Head Concierge"},
			"Manager": {"General Manager", "Front Office Manager", "Food & Beverage Director"},
			"Director": {"Director of Hospitality", "Director of Events"},
			"VP":      {"VP of Hospitality"},
		},
		skillsPool: []string{
			"Guest Relations", "Hospitality Management", "Front Desk Operations",
			"Revenue Management", "Event Planning", "Banquet Coordination",
			"Catering", "Menu Planning", "Food Safety", "Hotel Operations",
			"Reservation Systems", "Customer Service", "Budget Management",
			"Staff Scheduling", "Wedding Planning", "Conference Planning",
		},
		salaryBands: map[string][2]int{
			"Intern": {25000, 35000}, "Entry": {28000, 42000}, "Mid": {40000, 70000},
			"Senior": {60000, 100000}, "Lead": {70000, 110000}, "Manager": {75000, 130000},
			"Director": {100000, 180000}, "VP": {140000, 260000},
		},
		descriptions: []string{
			"Create memorable guest experiences in a world-class hospitality environment.",
			"Join our team to deliver exceptional service and elevate every guest interaction.",
			"Plan and execute unforgettable events that exceed client expectations.",
			"Lead food and beverage operations to deliver culinary excellence and outstanding service.",
		},
		requirements: []string{
			"{years}+ years of experience in hospitality or related field",
			"Strong {skill1} and {skill2} skills",
			"Excellent customer service and communication abilities",
			"Ability to work flexible hours including weekends and holidays",
			"Strong organizational and multitasking abilities",
		},
		duties: []string{
			"Ensure exceptional guest experiences from check-in to check-out",
			"Manage daily operations including staffing, inventory, and budgets",
			"Handle guest inquiries, complaints, and special requests professionally",
			"Coordinate events and functions to meet client specifications",
		},
	},
}

// Seed fills an empty database with a synthetic job corpus covering
// every industry the matcher knows about. No-op when jobs already
// exist. Returns the number of jobs inserted.
func (s *Store) Seed(ctx context.Context) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	rng := rand.New(rand.NewSource(seedRandSeed))
	today := time.Now().UTC()

	inserted := 0
	for _, ind := range seedIndustries {
		for i := 0; i < ind.target; i++ {
			job := generateJob(rng, ind, today)
			if _, err := s.Insert(ctx, job); err != nil {
				return inserted, fmt.Errorf("store: seed: %w", err)
			}
			inserted++
		}
	}
	return inserted, nil
}

func generateJob(rng *rand.Rand, ind industrySpec, today time.Time) Job {
	level := pickLevel(rng, ind)
	roles := ind.rolesByLevel[level]
	title := roles[rng.Intn(len(roles))]

	skills := pickSkills(rng, ind.skillsPool, level)
	band, ok := ind.salaryBands[level]
	if !ok {
		band = [2]int{50000, 100000}
	}
	salaryMin := band[0] + rng.Intn(maxInt(band[1]-band[0]-10000, 1))
	salaryMax := salaryMin + 10000 + rng.Intn(maxInt(band[1]-salaryMin-10000, 1))

	yearsMin, yearsMax := yearsForLevel(level)

	jobType := "Internship"
	if level != "Intern" {
		jobType = weightedPick(rng, []string{"Full-time", "Part-time", "Contract"}, []float64{0.78, 0.08, 0.14})
	}

	job := Job{
		ID:                 uuid.NewString(),
		Title:              title,
		Company:            ind.companies[rng.Intn(len(ind.companies))],
		Department:         ind.department,
		Industry:           ind.name,
		Location:           seedLocations[rng.Intn(len(seedLocations))],
		Type:               jobType,
		Level:              level,
		RemoteType:         weightedPick(rng, seedRemoteTypes, seedRemoteWeights),
		Salary:             Salary{Min: salaryMin, Max: salaryMax, Currency: "USD"},
		Description:        ind.descriptions[rng.Intn(len(ind.descriptions))],
		Requirements:       fillTemplates(rng, ind.requirements, skills, yearsMin),
		Responsibilities:   pickSample(rng, nonEmpty(ind.duties, defaultDuties), 4, 6),
		Skills:             skills,
		PostedDate:         postedDate(rng, today),
		VisaSponsorship:    rng.Float64() < ind.visaRate,
		YearsExperienceMin: yearsMin,
		YearsExperienceMax: yearsMax,
		CompanySize:        seedCompanySizes[rng.Intn(len(seedCompanySizes))],
	}

	// Roughly two thirds of postings carry a named recruiter.
	if rng.Float64() < 0.65 {
		first := recruiterFirst[rng.Intn(len(recruiterFirst))]
		last := recruiterLast[rng.Intn(len(recruiterLast))]
		job.RecruiterName = first + " " + last
		job.RecruiterRole = recruiterRoles[rng.Intn(len(recruiterRoles))]
		job.RecruiterEmail = strings.ToLower(first) + "." + strings.ToLower(last) + "@company.com"
	}
	return job
}

// pickLevel draws a level by weight, retrying into "Mid" when the
// industry has no roles at the drawn level.
func pickLevel(rng *rand.Rand, ind industrySpec) string {
	r := rng.Float64()
	acc := 0.0
	level := "Mid"
	for _, lw := range levelWeights {
		acc += lw.weight
		if r < acc {
			level = lw.level
			break
		}
	}
	if len(ind.rolesByLevel[level]) == 0 {
		for _, fallback := range []string{"Mid", "Senior", "Entry", "Lead", "Manager"} {
			if len(ind.rolesByLevel[fallback]) > 0 {
				return fallback
			}
		}
	}
	return level
}

func pickSkills(rng *rand.Rand, pool []string, level string) []string {
	bounds, ok := skillCountByLevel[level]
	if !ok {
		bounds = [2]int{4, 7}
	}
	n := bounds[0] + rng.Intn(bounds[1]-bounds[0]+1)
	if n > len(pool) {
		n = len(pool)
	}
	perm := rng.Perm(len(pool))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = pool[perm[i]]
	}
	return out
}

func yearsForLevel(level string) (*int, *int) {
	r, ok := yearsByLevel[level]
	if !ok {
		return nil, nil
	}
	lo := r[0]
	var hi *int
	if r[1] >= 0 {
		v := r[1]
		hi = &v
	}
	return &lo, hi
}

// postedDate skews recent: 5% today, 15% within a week, 40% within a
// month, the rest 30 to 90 days old.
func postedDate(rng *rand.Rand, today time.Time) string {
	r := rng.Float64()
	var daysAgo int
	switch {
	case r < 0.05:
		daysAgo = 0
	case r < 0.20:
		daysAgo = 1 + rng.Intn(6)
	case r < 0.60:
		daysAgo = 7 + rng.Intn(23)
	default:
		daysAgo = 30 + rng.Intn(60)
	}
	return today.AddDate(0, 0, -daysAgo).Format("2006-01-02")
}

func fillTemplates(rng *rand.Rand, templates, skills []string, yearsMin *int) []string {
	templates = nonEmpty(templates, defaultRequirements)
	years := 0
	if yearsMin != nil {
		years = *yearsMin
	}
	// Pad so skill placeholders always resolve.
	padded := append(append([]string{}, skills...), skills...)
	for len(padded) < 3 {
		padded = append(padded, "communication")
	}

	out := pickSample(rng, templates, 4, 6)
	for i, t := range out {
		r := strings.NewReplacer(
			"{years}", fmt.Sprintf("%d", years),
			"{skill1}", padded[0],
			"{skill2}", padded[1],
			"{skill3}", padded[2],
		)
		out[i] = r.Replace(t)
	}
	return out
}

func pickSample(rng *rand.Rand, items []string, lo, hi int) []string {
	n := lo + rng.Intn(hi-lo+1)
	if n > len(items) {
		n = len(items)
	}
	perm := rng.Perm(len(items))
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = items[perm[i]]
	}
	return out
}

func weightedPick(rng *rand.Rand, items []string, weights []float64) string {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return items[i]
		}
	}
	return items[len(items)-1]
}

func nonEmpty(primary, fallback []string) []string {
	if len(primary) > 0 {
		return primary
	}
	return fallback
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
