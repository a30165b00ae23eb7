package rag

import (
	"fmt"
	"strings"

	"finlit-agent/internal/models"
)

// GroundingPrompt builds the single text block sent to the model for a chat
// question: the retrieved documents as reference material, then the user's
// question verbatim. Pure function of its inputs.
func GroundingPrompt(docs []models.RankedDocument, question string) string {
	var b strings.Builder
	b.WriteString("You are a helpful AI assistant for digital financial literacy. Use the following trusted information to answer the user's question:\n\n")
	for _, doc := range docs {
		fmt.Fprintf(&b, "- %s: %s\n\n", doc.Title, doc.Content)
	}
	fmt.Fprintf(&b, "User Question: %s\n\n", question)
	b.WriteString("Please provide a clear, helpful answer based on the information above. If the information doesn't cover the specific question, provide general best practices for digital financial safety. Keep your response concise and educational.")
	return b.String()
}

// GenerationPrompt builds the instruction block asking the model for count
// multiple-choice items about a category, as a bare JSON array.
func GenerationPrompt(category string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d multiple choice questions about %s for a digital financial literacy quiz.\n\n", count, category)
	b.WriteString("Requirements:\n")
	b.WriteString("- Each question should have 4 options (A, B, C, D)\n")
	b.WriteString("- Only one option should be correct\n")
	b.WriteString("- Questions should be practical and relevant to daily financial activities\n")
	b.WriteString("- Include questions about safety, best practices, and common scenarios\n")
	b.WriteString("- Make questions suitable for beginners to intermediate level\n")
	b.WriteString("- Questions should be specific and educational, not generic\n")
	b.WriteString("- Focus on real-world applications and common mistakes people make\n\n")
	b.WriteString("Format each question as JSON:\n")
	fmt.Fprintf(&b, `{
  "question": "Specific question about %s?",
  "options": ["Specific option A", "Specific option B", "Specific option C", "Specific option D"],
  "correctAnswer": 0,
  "explanation": "Brief explanation of why this is correct"
}`, category)
	b.WriteString("\n\nReturn only the JSON array of questions, no additional text. Make sure each question is unique and educational.")
	return b.String()
}
