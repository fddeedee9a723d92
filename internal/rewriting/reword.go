// Package rewriting rewords resume bullets to incorporate a target keyword
// without inventing accomplishments the original never claimed.
package rewriting

import (
	"context"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
)

// RewordError wraps a failed reword attempt with the keyword being
// incorporated, for diagnostics.
type RewordError struct {
	Keyword string
	Message string
	Cause   error
}

func (e *RewordError) Error() string {
	if e.Cause != nil {
		return "failed to reword bullet for keyword " + e.Keyword + ": " + e.Message + ": " + e.Cause.Error()
	}
	return "failed to reword bullet for keyword " + e.Keyword + ": " + e.Message
}

func (e *RewordError) Unwrap() error {
	return e.Cause
}

// Reword asks the LLM to rewrite bullet so it incorporates keyword. The
// rewritten bullet is returned trimmed; an empty oracle response is an
// error, never an empty replacement.
func Reword(ctx context.Context, client llm.Client, bullet, keyword string) (string, error) {
	template, err := prompts.Get("rewriting.json", "reword")
	if err != nil {
		return "", &RewordError{Keyword: keyword, Message: "prompt unavailable", Cause: err}
	}
	prompt := prompts.Format(template, map[string]string{
		"Keyword": keyword,
		"Bullet":  bullet,
	})

	response, err := client.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return "", &RewordError{Keyword: keyword, Message: "generation failed", Cause: err}
	}

	reworded := strings.TrimSpace(response)
	reworded = strings.Trim(reworded, "\"")
	if reworded == "" {
		return "", &RewordError{Keyword: keyword, Message: "empty response"}
	}
	return reworded, nil
}
