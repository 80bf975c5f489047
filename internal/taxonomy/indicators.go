package taxonomy

// Indicator keyword sets used by the classifier's sub-title rules.
// They match as case-sensitive substrings, like category keywords.
var (
	// LargeModelKeywords point at large language model work specifically.
	LargeModelKeywords = []string{"大模型", "large model", "large-model", "Large Model", "LLM"}

	// OverrideKeywords trigger the large-model override of the classifier.
	OverrideKeywords = append(append([]string{}, LargeModelKeywords...), "LoRA")

	// MLKeywords point at general machine learning or deep learning work.
	MLKeywords = []string{
		"机器学习", "machine learning", "Machine Learning",
		"深度学习", "deep learning", "Deep Learning",
	}

	// CloudBackendKeywords select the cloud-native backend title.
	CloudBackendKeywords = []string{
		"云原生", "cloud native", "cloud-native", "Cloud Native",
		"微服务", "microservice", "Microservice",
	}
)
