// Package prompts carries the canned instruction templates that parameterize
// the assistant's tone per interview stage, plus the builders for the
// per-turn user prompts sent alongside them.
package prompts

import (
	"fmt"
	"strings"
)

// QuestionCount is the fixed number of technical questions asked per interview.
const QuestionCount = 5

// answerPreviewLimit bounds how much of a candidate answer is embedded in
// the feedback prompt.
const answerPreviewLimit = 200

// Templates holds the system prompts for each interview stage. Every field
// is required.
type Templates struct {
	Greeting          string `yaml:"greeting"`
	CollectInfo       string `yaml:"collect_info"`
	GenerateQuestions string `yaml:"generate_questions"`
	EvaluateAnswer    string `yaml:"evaluate_answer"`
	Farewell          string `yaml:"farewell"`
}

// Defaults returns the built-in system prompts.
func Defaults() *Templates {
	return &Templates{
		Greeting: "You are a friendly AI hiring assistant for TalentScout.\n" +
			"Greet the candidate warmly and explain you'll collect their information and ask technical questions. Keep it to 2-3 sentences.",

		CollectInfo: "You are collecting candidate information.\n" +
			"Ask for the specified information naturally and briefly. One short question only. " +
			"If the prompt contains 'Thank them briefly', include a short thank you before the question.",

		GenerateQuestions: fmt.Sprintf("Generate %d technical interview questions based on the tech stack.\n"+
			"Be specific to the technologies mentioned. Return ONLY numbered questions 1-%d.", QuestionCount, QuestionCount),

		EvaluateAnswer: "Provide brief encouraging feedback in 1-2 sentences. Under 30 words.",

		Farewell: "Thank the candidate professionally. Mention the team will review responses " +
			"and contact them in 3-5 business days. Keep brief.",
	}
}

// GreetingRequest is the user prompt paired with the greeting template.
func GreetingRequest() string {
	return "Greet the candidate for a hiring interview"
}

// FirstFieldAsk builds the prompt asking for the first profile field.
func FirstFieldAsk(label string) string {
	return fmt.Sprintf("Ask for their %s. One short question.", label)
}

// NextFieldAsk builds the prompt thanking the candidate and asking for the
// next profile field.
func NextFieldAsk(label string) string {
	return fmt.Sprintf("Thank them briefly. Then ask for their %s. Keep short.", label)
}

// QuestionGeneration builds the prompt requesting the numbered technical
// questions for the declared tech stack.
func QuestionGeneration(techStack string) string {
	return fmt.Sprintf("Tech stack: %s\n\nGenerate %d specific technical questions. Format: numbered 1-%d only.",
		techStack, QuestionCount, QuestionCount)
}

// AnswerFeedback builds the prompt requesting feedback on a technical
// answer. Long answers are truncated so the prompt stays small.
func AnswerFeedback(answer string) string {
	return fmt.Sprintf("Brief encouraging feedback on the answer: %s", previewAnswer(answer))
}

// FarewellRequest is the user prompt paired with the farewell template.
func FarewellRequest() string {
	return "Generate farewell"
}

func previewAnswer(answer string) string {
	answer = strings.TrimSpace(answer)
	runes := []rune(answer)
	if len(runes) <= answerPreviewLimit {
		return answer
	}
	return string(runes[:answerPreviewLimit]) + "..."
}
