package criteria

// synonymTable maps canonical labels to the surface forms that select them.
// Matching is plain substring containment against the normalized text, so
// iteration order must be deterministic: tables are ordered slices, not maps.
type synonymTable []struct {
	canonical string
	surfaces  []string
}

var jobTitleSynonyms = synonymTable{
	{"software engineer", []string{"software engineer", "software developer", "programmer", "developer", "software dev"}},
	{"electrical engineer", []string{"electrical engineer", "electrical", "power engineer", "electronics engineer"}},
	{"hr business partner", []string{"hr business partner", "hr partner", "human resources partner", "hr bp"}},
	{"marketing manager", []string{"marketing manager", "marketing lead", "marketing director"}},
	{"sales manager", []string{"sales manager", "sales lead", "sales director", "business development"}},
	{"project manager", []string{"project manager", "pm", "project lead"}},
	{"data scientist", []string{"data scientist", "data analyst", "ml engineer", "machine learning"}},
	{"technician", []string{"technician", "tech", "maintenance technician", "field technician"}},
	{"quality engineer", []string{"quality engineer", "qa engineer", "quality assurance", "test engineer"}},
	{"flight engineer", []string{"flight engineer", "aviation engineer", "aerospace engineer"}},
}

var skillSynonyms = synonymTable{
	{"python", []string{"python", "py"}},
	{"javascript", []string{"javascript", "js", "node.js", "nodejs"}},
	{"java", []string{"java"}},
	{"react", []string{"react", "reactjs", "react.js"}},
	{"angular", []string{"angular", "angularjs"}},
	{"sql", []string{"sql", "mysql", "postgresql", "database"}},
	{"aws", []string{"aws", "amazon web services", "cloud"}},
	{"docker", []string{"docker", "containerization"}},
	{"kubernetes", []string{"kubernetes", "k8s"}},
	{"machine learning", []string{"machine learning", "ml", "ai", "artificial intelligence"}},
}

var locationSynonyms = synonymTable{
	{"berlin", []string{"berlin", "berlín"}},
	{"hamburg", []string{"hamburg", "hambourg"}},
	{"munich", []string{"munich", "münchen", "muenchen"}},
	{"stuttgart", []string{"stuttgart"}},
	{"bremen", []string{"bremen"}},
	{"frankfurt", []string{"frankfurt"}},
	{"cologne", []string{"cologne", "köln", "koeln"}},
	{"düsseldorf", []string{"düsseldorf", "dusseldorf", "duesseldorf"}},
}

var experienceSynonyms = synonymTable{
	{"senior", []string{"senior", "experienced", "5+ years", "lead", "principal"}},
	{"mid level", []string{"mid level", "intermediate", "2-5 years", "3+ years"}},
	{"junior", []string{"junior", "entry level", "graduate", "fresher", "beginner", "0-2 years"}},
	{"intern", []string{"intern", "internship", "trainee"}},
}

var departmentSynonyms = synonymTable{
	{"engineering", []string{"engineering", "development", "technical", "software"}},
	{"human resources", []string{"human resources", "hr", "people"}},
	{"marketing", []string{"marketing", "communications", "digital marketing"}},
	{"sales", []string{"sales", "business development", "account management"}},
	{"production", []string{"production", "manufacturing", "operations"}},
	{"quality", []string{"quality", "testing", "qa", "quality assurance"}},
	{"research", []string{"research", "r&d", "innovation"}},
}

var jobTypeSynonyms = synonymTable{
	{"full-time", []string{"full-time", "fulltime", "permanent", "full time"}},
	{"part-time", []string{"part-time", "parttime", "part time"}},
	{"contract", []string{"contract", "contractor", "freelance"}},
	{"remote", []string{"remote", "work from home", "wfh", "telecommute"}},
	{"hybrid", []string{"hybrid", "flexible"}},
}
