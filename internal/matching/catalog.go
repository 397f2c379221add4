package matching

// defaultSkills is the ordered skill catalog. Extraction results follow this order.
var defaultSkills = []string{
	"Python", "JavaScript", "React", "AWS", "Docker", "Git", "SQL", "HTML", "CSS",
	"REST APIs", "Machine Learning", "Data Science", "TensorFlow", "pandas", "scikit-learn",
	"R", "Statistics", "Java", "C++", "Node.js", "Angular", "Vue.js", "TypeScript",
	"MongoDB", "PostgreSQL", "MySQL", "Redis", "Kubernetes", "Jenkins", "CI/CD",
	"Agile", "Scrum", "Project Management", "Leadership", "Communication", "Teamwork",
	"Problem Solving", "Django", "Flask", "Express.js", "Spring Boot", "GraphQL",
	"Microservices", "DevOps", "Azure", "GCP", "Terraform", "Ansible",
}

var defaultIndustryKeywords = []string{
	"software", "technology", "development", "engineering", "data", "analytics",
	"machine learning", "artificial intelligence", "web", "mobile", "cloud",
}

var densityStopWords = map[string]struct{}{
	"this":      {},
	"that":      {},
	"with":      {},
	"will":      {},
	"have":      {},
	"must":      {},
	"required":  {},
	"preferred": {},
}

var atsTips = []string{
	"Use standard section headers like 'EXPERIENCE' and 'EDUCATION'",
	"Include keywords from the job description naturally in your content",
	"Save your resume as a PDF with a simple, clean format",
	"Avoid graphics, tables, and complex formatting that may confuse ATS systems",
	"Use bullet points to improve readability",
}

// SkillCatalog returns a copy of the built-in skill catalog.
func SkillCatalog() []string {
	return append([]string(nil), defaultSkills...)
}

// IndustryKeywords returns a copy of the built-in industry keyword list.
func IndustryKeywords() []string {
	return append([]string(nil), defaultIndustryKeywords...)
}

// ATSTips returns the fixed ATS formatting tips.
func ATSTips() []string {
	return append([]string(nil), atsTips...)
}
