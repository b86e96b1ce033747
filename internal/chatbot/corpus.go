package chatbot

// Intent 用户请求的离散类别标签
type Intent string

const (
	IntentGreeting       Intent = "greeting"
	IntentGoodbye        Intent = "goodbye"
	IntentThanks         Intent = "thanks"
	IntentUploadResume   Intent = "upload_resume"
	IntentViewResumes    Intent = "view_resumes"
	IntentATSExplanation Intent = "ats_explanation"
	IntentMatchScore     Intent = "match_score"
	IntentResumeLimit    Intent = "resume_limit"
	IntentBulkScreening  Intent = "bulk_screening"
	IntentResultsReading Intent = "results_interpretation"
	IntentScoreDiff      Intent = "score_difference"
	IntentUpgradeAccount Intent = "upgrade_account"
	IntentBusiness       Intent = "business_features"
	IntentDashboard      Intent = "dashboard"
	IntentProfile        Intent = "profile"
	IntentContactSupport Intent = "contact_support"
	IntentPricing        Intent = "pricing"
	IntentLogin          Intent = "login"
	IntentSignup         Intent = "signup"
	IntentNavigation     Intent = "navigation"
)

// TrainingExample 训练语料中的一条(短语, 意图)样本
type TrainingExample struct {
	Phrase string
	Label  Intent
}

// trainingPatterns 训练语料的紧凑写法，竖线分隔同一意图下的短语
// 构建时展开为TrainingExample列表，顺序即相似度并列时的优先顺序
var trainingPatterns = []struct {
	Pattern string
	Label   Intent
}{
	{"hello|hi|hey|greetings", IntentGreeting},
	{"bye|goodbye|see you|later", IntentGoodbye},
	{"thanks|thank you|appreciate", IntentThanks},
	{"upload|submit|send resume|file|document", IntentUploadResume},
	{"what is ats|applicant tracking|ats mean|ats system", IntentATSExplanation},
	{"match score|calculate|score work|how score|percentage match", IntentMatchScore},
	{"how many resume|resume limit|upload limit|maximum resume", IntentResumeLimit},
	{"bulk screening|multiple resume|many resume|batch|group", IntentBulkScreening},
	{"interpret result|read result|understand result|analysis mean", IntentResultsReading},
	{"difference between match|ats score|score differ|two score", IntentScoreDiff},
	{"upgrade account|premium|paid plan|subscription|better plan", IntentUpgradeAccount},
	{"business feature|company|enterprise|corporate|team feature", IntentBusiness},
	{"dashboard|my account|my resume|account page", IntentDashboard},
	{"profile|my profile|account setting|personal info", IntentProfile},
	{"contact|help|support|assistance|question", IntentContactSupport},
	{"price|cost|plan|subscription cost|how much", IntentPricing},
	{"login|sign in|access account|enter account", IntentLogin},
	{"signup|register|create account|new account|join", IntentSignup},
	{"navigate|menu|page|section|where is|how to find|go to", IntentNavigation},
}

// responseStrategy 意图到回复的显式映射
// Navigation为true的意图回复固定文案并携带跳转地址，其余从Pool随机挑选
type responseStrategy struct {
	Navigation  bool
	Destination string
	Text        string
	Pool        []string
}

var responseTable = map[Intent]responseStrategy{
	IntentGreeting: {Pool: []string{
		"Hello! How can I help you with resume screening today?",
		"Hi there! I can help you upload, view, or analyze resumes. What would you like to do?",
		"Welcome! I'm your resume screening assistant. How can I assist you today?",
		"Hello! I'm here to help with your resume screening needs. What would you like to do?",
	}},
	IntentGoodbye: {Pool: []string{
		"Goodbye! Come back if you need help with resume screening.",
		"See you later! Feel free to return if you have more questions.",
		"Farewell! I'm here whenever you need assistance with resumes.",
		"Take care! I'll be here if you need more help with resume screening.",
	}},
	IntentThanks: {Pool: []string{
		"You're welcome! Happy to help.",
		"No problem at all! Is there anything else you need?",
		"You're welcome! Feel free to ask if you need more assistance.",
		"Glad I could help! Let me know if you need anything else.",
	}},
	IntentUploadResume: {
		Navigation:  true,
		Destination: "/upload/",
		Text:        "You can upload a resume for analysis on the Upload page. I'll take you there!",
	},
	IntentViewResumes: {
		Navigation:  true,
		Destination: "/view_resumes/",
		Text:        "You can view your analyzed resumes on the Resumes page. Let me take you there!",
	},
	IntentDashboard: {
		Navigation:  true,
		Destination: "/dashboard/",
		Text:        "Your dashboard shows all your resume analyses and account information. I'll take you there!",
	},
	IntentProfile: {
		Navigation:  true,
		Destination: "/profile/",
		Text:        "You can view and edit your profile settings on the Profile page. Here you go!",
	},
	IntentATSExplanation: {Pool: []string{
		"ATS (Applicant Tracking System) is software used by employers to manage job applications. Our system checks if your resume is ATS-friendly and provides suggestions to improve compatibility.",
		"An ATS or Applicant Tracking System is software that employers use to filter and sort resumes. We analyze how well your resume would perform in these systems and suggest improvements.",
	}},
	IntentMatchScore: {Pool: []string{
		"The match score is calculated by comparing the skills, experience, and education in your resume against the job requirements. It considers factors like keyword matching, experience relevance, and skill alignment.",
		"Our match score algorithm analyzes your resume against job requirements, considering keywords, skills, experience level, and education to generate a percentage match.",
	}},
	IntentResumeLimit: {Pool: []string{
		"The number of resumes you can upload depends on your subscription plan. Free users can upload 25 resumes, Standard plan allows 100 resumes, and Premium plan offers unlimited resume uploads.",
		"Your resume upload limit is based on your current plan. Free: 25 resumes, Standard: 100 resumes, Premium: unlimited resumes.",
	}},
	IntentBulkScreening: {Pool: []string{
		"Bulk screening allows business users to upload and analyze multiple resumes at once against a specific job description. You can access this feature here: [Bulk Screening](/business/bulk-screening/)",
		"Business users can use bulk screening to process multiple resumes simultaneously against a job description. Access it here: [Bulk Screening](/business/bulk-screening/)",
	}},
	IntentResultsReading: {Pool: []string{
		"The resume analysis results show extracted skills, experience, education, and an overall match score. It also highlights strengths and weaknesses, and provides recommendations for improvement.",
		"Our analysis results include your ATS compatibility score, skills assessment, keyword matches, and specific recommendations to improve your resume.",
	}},
	IntentScoreDiff: {Pool: []string{
		"The match score measures how well your resume matches specific job requirements, while the ATS score indicates how likely your resume is to pass through automated applicant tracking systems.",
		"Match score is job-specific, showing how well you match a particular position. ATS score is a general measure of how well your resume will perform in automated screening systems.",
	}},
	IntentUpgradeAccount: {Pool: []string{
		"To upgrade your account, go to the Pricing page: [Pricing](/pricing/) and select a plan that suits your needs. You can pay securely online and your account will be upgraded immediately.",
		"Visit the Pricing section to view our different plans: [Pricing](/pricing/) - Click on 'Upgrade Now' under your preferred plan to enhance your account features.",
	}},
	IntentBusiness: {Pool: []string{
		"Business users get access to bulk resume screening, candidate ranking, analytics dashboards, team collaboration tools, and API integration options. Learn more here: [Business Features](/about/)",
		"Our business plans include features like bulk resume processing, detailed analytics, custom scoring algorithms, and team management capabilities. Upgrade here: [Upgrade](/business/signup/)",
	}},
	IntentContactSupport: {Pool: []string{
		"If you need assistance, you can contact our support team here: [Contact](/contact/) and we'll be happy to help you.",
		"For any questions or issues, please reach out through our contact page: [Contact](/contact/)",
	}},
	IntentPricing: {Pool: []string{
		"You can view our pricing plans here: [Pricing](/pricing/) to choose the best option for your needs.",
		"Check out our different subscription tiers here: [Pricing](/pricing/)",
	}},
	IntentLogin: {Pool: []string{
		"You can log in to your account here: [Login](/login/)",
		"Access your account by logging in here: [Login](/login/)",
	}},
	IntentSignup: {Pool: []string{
		"Create a new account here: [Sign Up](/signup/)",
		"Register for a new account here: [Sign Up](/signup/)",
	}},
	IntentNavigation: {Pool: []string{
		"Here are the main pages you can visit:\n- [Home](/)\n- [Upload Resume](/upload/)\n- [Dashboard](/dashboard/)\n- [Profile](/profile/)\n- [Pricing](/pricing/)\n- [Contact](/contact/)",
		"You can navigate to these pages:\n- [Home](/)\n- [Upload Resume](/upload/)\n- [Dashboard](/dashboard/)\n- [Pricing](/pricing/)\n- [Contact](/contact/)",
	}},
}

// fallbackReplies 相似度低于阈值时的兜底回复
var fallbackReplies = []string{
	"I'm not sure I understand. Could you rephrase your question? Or you can navigate to our main pages: [Home](/) | [Dashboard](/dashboard/) | [Upload Resume](/upload/)",
	"I don't have that information right now. You might find what you need on our [Home](/) page or [Dashboard](/dashboard/).",
	"I'm still learning. Would you like to go to our [Upload Resume](/upload/) page or [Contact Support](/contact/)?",
}

const (
	untrainedReply = "I'm not fully trained yet. Please try basic questions or use the navigation buttons."
	apologyReply   = "Sorry, I encountered an error. Please try again or use the navigation buttons above."
	unknownReply   = "I'm not sure how to respond to that. Please try another question or use the navigation buttons above."
)

// DefaultCorpus 展开内置训练语料，构建后只读
func DefaultCorpus() []TrainingExample {
	var corpus []TrainingExample
	for _, entry := range trainingPatterns {
		for _, phrase := range splitPattern(entry.Pattern) {
			corpus = append(corpus, TrainingExample{Phrase: phrase, Label: entry.Label})
		}
	}
	return corpus
}
