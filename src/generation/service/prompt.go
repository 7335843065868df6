package generation_service

import (
	"fmt"
	"strings"
)

// ConversationPrompt formats the user's last message for instruct models.
func ConversationPrompt(message string) string {
	return fmt.Sprintf("<|user|>\n%s\n<|assistant|>", message)
}

// CodePrompt formats the user's last message for code-generation models.
func CodePrompt(message string) string {
	return fmt.Sprintf(
		"\n<|user|>\nYou are a code generator. You must answer only in markdown code snippets. Use code comments for explanations.\n\n%s\n<|assistant|>",
		message,
	)
}

// EnsureCodeFence trims the raw model output and guarantees the reply carries
// a fenced code block. Output already containing a fence is left unchanged
// apart from trimming — this is an output-shape guarantee, nothing more.
func EnsureCodeFence(raw string) string {
	result := strings.TrimSpace(raw)
	if !strings.Contains(result, "```") {
		result = "```\n" + result + "\n```"
	}
	return result
}
