package session

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jonathan/resume-matcher/internal/highlight"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/keywords"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/markup"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/ranking"
	"github.com/jonathan/resume-matcher/internal/rewriting"
	"github.com/jonathan/resume-matcher/internal/sections"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Guidance errors returned when an operation arrives before its
// prerequisites. They carry no state mutation.
var (
	ErrNoResumeLoaded = errors.New("no resume loaded yet; upload a resume first")
	ErrNoJobLoaded    = errors.New("no job posting submitted yet; submit a job first")
)

// Manager executes session operations, wiring the extraction, matching,
// ranking, and rewording components together. Oracle and embedding
// failures degrade to a no-change outcome instead of corrupting state.
type Manager struct {
	extractor *keywords.Extractor
	segmenter *sections.Segmenter
	client    llm.Client
	ranker    *ranking.Ranker
}

// NewManager wires a Manager. client and ranker may be nil, in which case
// semantic matching, section structuring, and rewording all degrade to
// their exact-only or no-change paths.
func NewManager(extractor *keywords.Extractor, segmenter *sections.Segmenter, client llm.Client, ranker *ranking.Ranker) *Manager {
	return &Manager{
		extractor: extractor,
		segmenter: segmenter,
		client:    client,
		ranker:    ranker,
	}
}

// View is the read-only projection of a session returned to the caller
// after every operation.
type View struct {
	State      State    `json:"state"`
	Score      int      `json:"score"`
	Matched    []string `json:"matched"`
	Unmatched  []string `json:"unmatched"`
	Prompt     string   `json:"prompt,omitempty"`
	ResumeHTML string   `json:"resume_html,omitempty"`
	JobHTML    string   `json:"job_html,omitempty"`
}

// LoadResume ingests resume bytes, extracts keywords and sections, and
// builds the block document. Any previous match progress is discarded;
// empty extraction is valid and simply yields zero keywords.
func (m *Manager) LoadResume(ctx context.Context, sess *Session, filename string, data []byte) (*View, error) {
	raw, err := ingestion.ExtractText(filename, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	normalized := ingestion.Normalize(raw)

	entries, err := m.extractor.Extract(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume keywords: %w", err)
	}

	contact := ingestion.ExtractContactInfo(raw)
	secs, err := m.segmenter.Segment(ctx, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to segment resume: %w", err)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.ResumeText = normalized
	sess.ResumeKeywords = entries
	sess.Contact = contact
	sess.Sections = secs
	sess.ResumeDoc = markup.FromSections(contact, secs)
	sess.PendingDoc = nil
	sess.ActiveKeyword = ""
	sess.Matched = make(map[string]int)
	sess.UnmatchedQueue = nil
	sess.JobText = ""
	sess.JobKeywords = nil
	sess.JobMarkup = ""
	sess.State = StateResumeLoaded
	return m.view(sess), nil
}

// SubmitJob scores the loaded resume against a job posting and starts the
// prompting loop over the unmatched keywords.
func (m *Manager) SubmitJob(ctx context.Context, sess *Session, jobText string) (*View, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.State == StateNoResume {
		return m.view(sess), ErrNoResumeLoaded
	}

	normalized := ingestion.Normalize(jobText)
	jobKeywords, err := m.extractor.Extract(normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to extract job keywords: %w", err)
	}

	result := matching.Match(ctx, m.client, jobKeywords, sess.ResumeKeywords)

	sess.JobText = jobText
	sess.JobKeywords = jobKeywords
	sess.JobMarkup = highlight.Mark(jobText, highlightTerms(jobKeywords))
	sess.Matched = result.Matched
	sess.UnmatchedQueue = result.Unmatched
	sess.PendingDoc = nil
	sess.ActiveKeyword = ""
	// Scoring is transient; the session lands on either the first prompt
	// or, with nothing unmatched, directly on the terminal state.
	sess.State = StateJobScored
	sess.advancePrompting()
	return m.view(sess), nil
}

// AnswerRewordPrompt handles the "have you used this keyword" answer for
// the keyword at the head of the queue. A "no" skips the keyword. A "yes"
// ranks the resume's bullets, rewords the best one, and stages the result
// for confirmation. If ranking or rewording fails, or no bullet exists to
// rework, the keyword is skipped and the session stays consistent.
func (m *Manager) AnswerRewordPrompt(ctx context.Context, sess *Session, yes bool) (*View, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	switch sess.State {
	case StateNoResume:
		return m.view(sess), ErrNoResumeLoaded
	case StateResumeLoaded:
		return m.view(sess), ErrNoJobLoaded
	case StatePrompting:
	default:
		// Nothing is being prompted; treat as a read.
		return m.view(sess), nil
	}

	keyword := sess.promptHead()
	if !yes {
		sess.popQueue()
		sess.advancePrompting()
		return m.view(sess), nil
	}

	pending, ok := m.stageReword(ctx, sess, keyword)
	if !ok {
		// No bullet to rework or the oracle failed. The resume is
		// unchanged and the keyword is skipped rather than lost to a
		// broken state.
		sess.popQueue()
		sess.advancePrompting()
		return m.view(sess), nil
	}

	sess.PendingDoc = pending
	sess.ActiveKeyword = keyword.Lemma
	sess.popQueue()
	sess.State = StateAwaitingConfirm
	return m.view(sess), nil
}

// ConfirmReword commits or discards the staged rewrite. A confirm with no
// pending rewrite is a no-op returning the current view.
func (m *Manager) ConfirmReword(ctx context.Context, sess *Session, yes bool) (*View, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.State != StateAwaitingConfirm || sess.PendingDoc == nil {
		return m.view(sess), nil
	}

	if yes {
		sess.ResumeDoc = sess.PendingDoc
		sess.Matched[sess.ActiveKeyword] = 1
	}
	sess.PendingDoc = nil
	sess.ActiveKeyword = ""
	sess.advancePrompting()
	return m.view(sess), nil
}

// CurrentView returns the session's read-only projection without mutating
// anything.
func (m *Manager) CurrentView(sess *Session) *View {
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return m.view(sess)
}

// stageReword builds the candidate document for a keyword. It mutates
// nothing on the session; failure leaves no trace.
func (m *Manager) stageReword(ctx context.Context, sess *Session, keyword *types.KeywordEntry) (*markup.Document, bool) {
	if sess.ResumeDoc == nil || m.ranker == nil || m.client == nil {
		return nil, false
	}
	bullets := sess.ResumeDoc.Bullets()
	if len(bullets) == 0 {
		return nil, false
	}

	pool := make([]string, len(bullets))
	for i, b := range bullets {
		pool[i] = b.Text
	}
	idx, _, err := m.ranker.BestBullet(ctx, keyword.DisplayForm, pool)
	if err != nil || idx < 0 {
		return nil, false
	}

	reworded, err := rewriting.Reword(ctx, m.client, bullets[idx].Text, keyword.DisplayForm)
	if err != nil {
		return nil, false
	}

	pending := sess.ResumeDoc.Clone()
	if err := pending.ReplaceBlock(bullets[idx].BlockID, reworded); err != nil {
		return nil, false
	}
	return pending, true
}

// view builds the projection. Callers hold sess.mu.
func (m *Manager) view(sess *Session) *View {
	v := &View{
		State:     sess.State,
		Score:     sess.Score(),
		Unmatched: types.Lemmas(sess.UnmatchedQueue),
		JobHTML:   sess.JobMarkup,
	}
	for lemma := range sess.Matched {
		v.Matched = append(v.Matched, lemma)
	}
	sort.Strings(v.Matched)

	if sess.ResumeDoc != nil {
		v.ResumeHTML = sess.ResumeDoc.RenderHTML()
	}
	v.Prompt = m.prompt(sess)
	return v
}

// prompt renders the user-facing question for the current state.
func (m *Manager) prompt(sess *Session) string {
	switch sess.State {
	case StateNoResume:
		return "Upload a resume to get started."
	case StateResumeLoaded:
		return "Submit a job posting to score your resume against it."
	case StatePrompting:
		head := sess.promptHead()
		if head == nil {
			return ""
		}
		return fmt.Sprintf("Have you used or encountered %q? (yes/no)", head.DisplayForm)
	case StateAwaitingConfirm:
		return fmt.Sprintf("Keep the reworded bullet for %q? (yes/no)", sess.ActiveKeyword)
	case StatePromptingExhausted:
		return "No more unmatched keywords detected. Submit another job posting to start over."
	default:
		return ""
	}
}

// highlightTerms collects the display form and lemma of every job keyword,
// deduplicated, for marking up the job text.
func highlightTerms(entries []*types.KeywordEntry) []string {
	seen := make(map[string]struct{}, len(entries)*2)
	var terms []string
	for _, entry := range entries {
		for _, term := range []string{entry.DisplayForm, entry.Lemma} {
			if term == "" {
				continue
			}
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			terms = append(terms, term)
		}
	}
	return terms
}
