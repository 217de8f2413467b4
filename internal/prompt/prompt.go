// Package prompt renders the two interview prompts: one that asks the model
// for a question on a topic and one that asks it to critique and rate an
// answer. Inputs are substituted verbatim.
package prompt

import "fmt"

const questionTemplate = `
You are a professional technical interviewer.
Ask a relevant technical question about the topic: %s.
Keep it short and clear.
`

const evaluationTemplate = `
You are a technical evaluator. A candidate answered a question.
Question: %s
Answer: %s

Evaluate the candidate's response. Provide helpful feedback and rate it out of 10.
`

// Question builds the prompt that asks for one short technical question.
func Question(topic string) string {
	return fmt.Sprintf(questionTemplate, topic)
}

// Evaluation builds the prompt that asks for feedback and a rating out of 10.
func Evaluation(question, answer string) string {
	return fmt.Sprintf(evaluationTemplate, question, answer)
}
