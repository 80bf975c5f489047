// Package taxonomy holds the static keyword table used to place candidates into
// job-title categories. Everything here is read-only after init.
package taxonomy

// CategoryID identifies a professional specialization.
type CategoryID string

const (
	AIML            CategoryID = "ai_ml"
	DataScience     CategoryID = "data_science"
	Backend         CategoryID = "backend_dev"
	Frontend        CategoryID = "frontend_dev"
	DataEngineering CategoryID = "data_engineering"
	CloudDevOps     CategoryID = "cloud_devops"
	Mobile          CategoryID = "mobile_dev"
)

// Category is a keyword cluster with its weight and candidate job titles.
// Keywords match as case-sensitive substrings. Titles[0] is the default pick.
type Category struct {
	ID       CategoryID
	Keywords []string
	Titles   []string
	Weight   float64
}

// DefaultTitle is returned when nothing in the profile matches any category.
const DefaultTitle = TitlePythonDeveloper

// Canonical job titles.
const (
	TitleLLMEngineer         = "LLM Algorithm Engineer"
	TitleMLEngineer          = "Machine Learning Engineer"
	TitleAIEngineer          = "AI Engineer"
	TitleAlgorithmEngineer   = "Algorithm Engineer"
	TitleNLPEngineer         = "NLP Engineer"
	TitleDataScientist       = "Data Scientist"
	TitleDataAnalyst         = "Data Analyst"
	TitleDataEngineer        = "Data Engineer"
	TitlePythonDeveloper     = "Python Developer"
	TitleBackendDeveloper    = "Backend Developer"
	TitleCloudNativeBackend  = "Cloud Native Backend Engineer"
	TitleSystemsEngineer     = "Systems Engineer"
	TitleFrontendDeveloper   = "Frontend Developer"
	TitleUIUXEngineer        = "UI/UX Engineer"
	TitleFullStackDeveloper  = "Full Stack Developer"
	TitleDataPlatform        = "Data Platform Engineer"
	TitleBigDataEngineer     = "Big Data Engineer"
	TitleDevOpsEngineer      = "DevOps Engineer"
	TitleCloudNativeEngineer = "Cloud Native Engineer"
	TitleOperationsEngineer  = "Operations Engineer"
	TitleMobileDeveloper     = "Mobile Developer"
	TitleAndroidDeveloper    = "Android Developer"
	TitleIOSDeveloper        = "iOS Developer"
	TitleSecurityEngineer    = "Security Engineer"
	TitleGameDeveloper       = "Game Developer"
	TitleSoftwareEngineer    = "Software Engineer"
	TitleFullStackAIEngineer = "Full Stack AI Engineer"
)

// Categories is declared in tie-break order: on equal scores the earlier entry wins.
var Categories = []Category{
	{
		ID: AIML,
		Keywords: []string{
			"大模型", "large model", "large-model", "Large Model", "LLM", "LoRA",
			"微调", "fine-tuning", "fine tuning", "Fine-tuning",
			"深度学习", "deep learning", "Deep Learning",
			"机器学习", "machine learning", "Machine Learning",
			"AI", "人工智能", "NLP", "自然语言处理", "计算机视觉", "computer vision", "Computer Vision",
			"推荐算法", "向量数据库", "vector database", "FAISS", "Milvus", "LangChain", "RAG",
			"Prompt Engineering", "Transformer", "BERT", "GPT",
			"强化学习", "reinforcement learning", "知识图谱", "knowledge graph",
		},
		Titles: []string{TitleLLMEngineer, TitleMLEngineer, TitleAIEngineer, TitleAlgorithmEngineer, TitleNLPEngineer},
		Weight: 1.5,
	},
	{
		ID: DataScience,
		Keywords: []string{
			"数据分析", "data analysis", "Data Analysis", "数据挖掘", "data mining",
			"数据可视化", "data visualization", "统计建模", "statistical modeling",
			"数据科学", "data science", "Data Science", "BI", "Tableau", "PowerBI", "数据建模",
		},
		Titles: []string{TitleDataScientist, TitleDataAnalyst, TitleDataEngineer},
		Weight: 1.3,
	},
	{
		ID: Backend,
		Keywords: []string{
			"Django", "Flask", "FastAPI", "MySQL", "PostgreSQL", "Redis", "Docker",
			"微服务", "microservice", "Microservice", "高并发", "high concurrency",
			"API", "后端", "backend", "Backend", "Spring Boot", "Node.js", "Go", "Python",
			"微服务架构", "分布式系统", "distributed system", "Distributed System",
			"Saga", "TCC", "Seata",
		},
		Titles: []string{TitlePythonDeveloper, TitleBackendDeveloper, TitleCloudNativeBackend, TitleSystemsEngineer},
		Weight: 1.0,
	},
	{
		ID: Frontend,
		Keywords: []string{
			"React", "Vue", "Angular", "JavaScript", "TypeScript", "前端", "frontend", "Frontend",
			"UI/UX", "Web开发", "web development", "移动端", "小程序", "HTML", "CSS",
		},
		Titles: []string{TitleFrontendDeveloper, TitleUIUXEngineer, TitleFullStackDeveloper},
		Weight: 0.8,
	},
	{
		ID: DataEngineering,
		Keywords: []string{
			"数据工程", "data engineering", "Data Engineering", "ETL", "数据仓库", "data warehouse",
			"Spark", "Hadoop", "Kafka", "数据湖", "data lake", "数据管道", "data pipeline",
			"数据治理", "data governance", "数据平台", "data platform",
		},
		Titles: []string{TitleDataEngineer, TitleDataPlatform, TitleBigDataEngineer},
		Weight: 1.2,
	},
	{
		ID: CloudDevOps,
		Keywords: []string{
			"Kubernetes", "AWS", "Azure", "GCP", "云原生", "cloud native", "cloud-native", "Cloud Native",
			"DevOps", "CI/CD", "Jenkins", "GitLab", "监控", "monitoring", "日志", "logging",
			"容器化", "containerization", "阿里云", "腾讯云",
		},
		Titles: []string{TitleDevOpsEngineer, TitleCloudNativeEngineer, TitleOperationsEngineer},
		Weight: 1.1,
	},
	{
		ID: Mobile,
		Keywords: []string{
			"Android", "iOS", "移动开发", "mobile development", "React Native", "Flutter", "移动端",
		},
		Titles: []string{TitleMobileDeveloper, TitleAndroidDeveloper, TitleIOSDeveloper},
		Weight: 0.9,
	},
}

// Lookup returns the category with the given id.
func Lookup(id CategoryID) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}

	return Category{}, false
}

// Default returns the first declared title of a category.
func (c Category) Default() string {
	if len(c.Titles) == 0 {
		return DefaultTitle
	}

	return c.Titles[0]
}

var labels = map[CategoryID]string{
	AIML:            "AI/Machine Learning",
	DataScience:     "Data Science",
	Backend:         "Backend Development",
	Frontend:        "Frontend Development",
	DataEngineering: "Data Engineering",
	CloudDevOps:     "Cloud Native/DevOps",
	Mobile:          "Mobile Development",
}

// Label returns a human readable name of the category.
func Label(id CategoryID) string {
	if l, ok := labels[id]; ok {
		return l
	}
	return string(id)
}
