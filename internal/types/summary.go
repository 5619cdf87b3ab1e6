package types

type ClassSummary struct {
	Topics         []string `json:"topics"`
	KeyTakeaways   []string `json:"key_takeaways"`
	RecapQuestions []string `json:"recap_questions"`
}
