package taxonomy

import "strings"

// aliases maps local-language and free-form titles to canonical ones.
// Keys are lower-cased.
var aliases = map[string]string{
	"python开发工程师": TitlePythonDeveloper,
	"python工程师": TitlePythonDeveloper,
	"后端开发工程师": TitleBackendDeveloper,
	"backend engineer": TitleBackendDeveloper,
	"前端开发工程师": TitleFrontendDeveloper,
	"全栈开发工程师": TitleFullStackDeveloper,
	"软件工程师": TitleSoftwareEngineer,
	"系统工程师": TitleSystemsEngineer,
	"devops工程师": TitleDevOpsEngineer,
	"云原生后端工程师": TitleCloudNativeBackend,
	"云原生工程师": TitleCloudNativeEngineer,
	"运维工程师": TitleOperationsEngineer,
	"数据后端工程师": "Data Backend Engineer",
	"数据科学家": TitleDataScientist,
	"数据分析师": TitleDataAnalyst,
	"机器学习工程师": TitleMLEngineer,
	"深度学习工程师": "Deep Learning Engineer",
	"ai工程师": TitleAIEngineer,
	"人工智能工程师": TitleAIEngineer,
	"数据工程师": TitleDataEngineer,
	"数据平台工程师": TitleDataPlatform,
	"大数据工程师": TitleBigDataEngineer,
	"算法工程师": TitleAlgorithmEngineer,
	"大模型算法工程师": TitleLLMEngineer,
	"llm engineer": TitleLLMEngineer,
	"nlp工程师": TitleNLPEngineer,
	"自然语言处理工程师": TitleNLPEngineer,
	"计算机视觉工程师": "Computer Vision Engineer",
	"推荐算法工程师": "Recommendation Algorithm Engineer",
	"全栈ai工程师": TitleFullStackAIEngineer,
	"移动开发工程师": TitleMobileDeveloper,
	"android开发工程师": TitleAndroidDeveloper,
	"ios开发工程师": TitleIOSDeveloper,
	"安全工程师": TitleSecurityEngineer,
	"网络安全工程师": "Cybersecurity Engineer",
	"游戏开发工程师": TitleGameDeveloper,
	"ui/ux工程师": TitleUIUXEngineer,
}

var canonical = func() map[string]string {
	out := make(map[string]string)
	for _, c := range Categories {
		for _, t := range c.Titles {
			out[strings.ToLower(t)] = t
		}
	}
	for _, t := range []string{TitleSecurityEngineer, TitleGameDeveloper, TitleSoftwareEngineer, TitleFullStackAIEngineer} {
		out[strings.ToLower(t)] = t
	}
	return out
}()

// CanonicalTitle normalizes a title for baseline lookups and market queries.
// Unknown titles are returned trimmed but otherwise untouched.
func CanonicalTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	key := strings.ToLower(trimmed)

	if t, ok := canonical[key]; ok {
		return t
	}
	if t, ok := aliases[key]; ok {
		return t
	}

	return trimmed
}
