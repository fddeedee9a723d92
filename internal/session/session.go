// Package session holds the per-user state machine driving the
// reword/confirm interaction loop and the store that keys sessions by
// opaque token.
package session

import (
	"sync"
	"time"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/markup"
	"github.com/jonathan/resume-matcher/internal/types"
)

// State is the session's position in the interaction loop.
type State string

// Session states
const (
	StateNoResume           State = "no_resume"
	StateResumeLoaded       State = "resume_loaded"
	StateJobScored          State = "job_scored"
	StatePrompting          State = "prompting"
	StateAwaitingConfirm    State = "awaiting_confirm"
	StatePromptingExhausted State = "prompting_exhausted"
)

// Session is the mutable per-user state. All fields are guarded by mu;
// requests for the same session run one at a time.
type Session struct {
	mu sync.Mutex

	ResumeText     string
	ResumeKeywords []*types.KeywordEntry
	Contact        ingestion.ContactInfo
	Sections       []types.Section

	JobText     string
	JobKeywords []*types.KeywordEntry
	JobMarkup   string

	// ResumeDoc is the accepted rendering; PendingDoc stages at most one
	// candidate rewrite awaiting confirmation.
	ResumeDoc  *markup.Document
	PendingDoc *markup.Document

	Matched        map[string]int
	UnmatchedQueue []*types.KeywordEntry
	ActiveKeyword  string

	State State

	createdAt  time.Time
	lastActive time.Time
}

func newSession(now time.Time) *Session {
	return &Session{
		State:      StateNoResume,
		Matched:    make(map[string]int),
		createdAt:  now,
		lastActive: now,
	}
}

// Score returns the current display score.
func (s *Session) Score() int {
	return types.ScorePercent(len(s.Matched), len(s.JobKeywords))
}

// promptHead returns the keyword currently being prompted, or nil.
func (s *Session) promptHead() *types.KeywordEntry {
	if len(s.UnmatchedQueue) == 0 {
		return nil
	}
	return s.UnmatchedQueue[0]
}

// popQueue removes the queue head and advances the prompting state.
func (s *Session) popQueue() {
	if len(s.UnmatchedQueue) > 0 {
		s.UnmatchedQueue = s.UnmatchedQueue[1:]
	}
}

// advancePrompting moves to the next prompt, or to the terminal state when
// the queue has drained.
func (s *Session) advancePrompting() {
	if len(s.UnmatchedQueue) > 0 {
		s.State = StatePrompting
	} else {
		s.State = StatePromptingExhausted
	}
}
