package interview

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry in the conversation transcript.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// SessionState owns everything a single interview mutates: the candidate
// record, the transcript, the current stage and the bookkeeping flags. It is
// mutated exclusively by the Controller, one turn at a time.
type SessionState struct {
	record         CandidateRecord
	transcript     []Message
	stage          Stage
	questionsAsked int
	active         bool
	greeted        bool
	lastUserInput  string
}

// NewSession creates a session in the greeting stage with a fresh ID.
func NewSession() *SessionState {
	return &SessionState{
		record: CandidateRecord{SessionID: uuid.New().String()},
		stage:  StageGreeting,
		active: true,
	}
}

// Reset restores the session to its initial values under a new session ID.
// The transcript is cleared; this is the only way any collected value is
// ever discarded.
func (s *SessionState) Reset() {
	*s = SessionState{
		record: CandidateRecord{SessionID: uuid.New().String()},
		stage:  StageGreeting,
		active: true,
	}
}

// Stage returns the current interview stage.
func (s *SessionState) Stage() Stage { return s.stage }

// Active reports whether the conversation still accepts input.
func (s *SessionState) Active() bool { return s.active }

// Deactivate ends the conversation.
func (s *SessionState) Deactivate() { s.active = false }

// Record returns the candidate record owned by this session.
func (s *SessionState) Record() *CandidateRecord { return &s.record }

// Transcript returns the append-only conversation history.
func (s *SessionState) Transcript() []Message { return s.transcript }

// QuestionsAsked returns how many technical answers have been stored.
func (s *SessionState) QuestionsAsked() int { return s.questionsAsked }

// Advance moves the session to the given stage, rejecting anything outside
// the closed transition table.
func (s *SessionState) Advance(to Stage) error {
	if !s.stage.canAdvance(to) {
		return fmt.Errorf("invalid stage transition from %s to %s", s.stage, to)
	}
	s.stage = to
	return nil
}

// Append adds a message to the transcript.
func (s *SessionState) Append(role, content string) {
	s.transcript = append(s.transcript, Message{Role: role, Content: content})
}

// SetField stores a collected value. A field is set at most once; a second
// write is rejected to keep the record immutable outside of Reset.
func (s *SessionState) SetField(field Field, value string) error {
	if s.record.Get(field) != "" {
		return fmt.Errorf("field %s is already set", field)
	}
	s.record.set(field, value)
	return nil
}

// AppendAnswer stores a technical answer under the next sequential question
// number and advances the counter.
func (s *SessionState) AppendAnswer(answer string, now time.Time) TechnicalAnswer {
	qa := TechnicalAnswer{
		QuestionNumber: s.questionsAsked + 1,
		Answer:         answer,
		Timestamp:      now,
	}
	s.record.TechnicalAnswers = append(s.record.TechnicalAnswers, qa)
	s.questionsAsked++
	return qa
}

// IsDuplicate reports whether raw matches the immediately preceding user
// input. Guards against accidental double-submits.
func (s *SessionState) IsDuplicate(raw string) bool {
	return raw != "" && raw == s.lastUserInput
}

// RememberInput records the input used for the duplicate guard.
func (s *SessionState) RememberInput(raw string) { s.lastUserInput = raw }

// MarkGreeted flips the greeted flag, returning false if the greeting
// already happened. Ensures the greeting exchange fires once per session.
func (s *SessionState) MarkGreeted() bool {
	if s.greeted {
		return false
	}
	s.greeted = true
	return true
}
