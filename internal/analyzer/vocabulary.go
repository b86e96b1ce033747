package analyzer

// sectionHeaders 用于ATS/格式打分的固定章节标题集合
var sectionHeaders = []string{"summary", "experience", "education", "skills", "projects", "certifications"}

// actionVerbs 内容打分使用的行为动词全集
var actionVerbs = []string{
	"managed", "developed", "created", "implemented", "designed", "led", "achieved",
	"improved", "increased", "reduced", "negotiated", "collaborated", "coordinated",
}

// strengthVerbs 优势判定只检查动词子集的前7个
var strengthVerbs = []string{
	"managed", "developed", "created", "implemented", "designed", "led", "achieved",
}

// importantKeywords 重要关键词固定为7项，结果列表始终按此顺序完整输出
var importantKeywords = []string{"python", "java", "javascript", "html", "css", "react", "leadership"}

// experienceKeywords 定位工作经历章节的关键词，按优先级排列
var experienceKeywords = []string{"experience", "work history", "employment", "professional experience"}

// educationKeywords 定位教育背景章节的关键词
var educationKeywords = []string{"education", "academic", "qualification", "degree"}

// skillVocabulary 技能词表，运行期只读
// 匹配大小写不敏感且按词边界，展示时转为Title Case
var skillVocabulary = []string{
	"python", "java", "javascript", "html", "css", "react", "angular", "vue", "node",
	"django", "flask", "fastapi", "spring", "express", "postgresql", "mysql", "mongodb",
	"aws", "azure", "gcp", "docker", "kubernetes", "git", "github", "gitlab", "jenkins",
	"ci/cd", "agile", "scrum", "kanban", "jira", "confluence", "excel", "word", "powerpoint",
	"photoshop", "illustrator", "figma", "sketch", "adobe", "leadership", "communication",
	"teamwork", "problem-solving", "critical thinking", "project management", "time management",
	"data analysis", "data science", "machine learning", "ai", "artificial intelligence", "nlp",
	"natural language processing", "computer vision", "deep learning", "tensorflow", "pytorch",
	"keras", "scikit-learn", "pandas", "numpy", "r", "tableau", "power bi", "sql",
	"linux", "windows", "macos", "troubleshooting", "networking", "security", "firewall",
	"vpn", "encryption", "backup", "recovery", "automation", "scripting", "shell", "bash",
	"powershell", "c++", "c#", "php", "ruby", "go", "rust", "scala", "kotlin", "swift",
	"objective-c", "mobile", "android", "ios", "flutter", "react native", "xamarin", "ionic",
	"api", "rest", "graphql", "soap", "json", "xml", "yaml", "markdown", "html5", "css3",
	"sass", "less", "bootstrap", "material ui", "tailwind", "jquery", "typescript",
}
