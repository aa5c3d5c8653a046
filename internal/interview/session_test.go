package interview

import (
	"testing"
	"time"
)

func TestAdvanceFollowsTransitionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		from  Stage
		to    Stage
		valid bool
	}{
		{"greeting to collect_info", StageGreeting, StageCollectInfo, true},
		{"greeting to farewell", StageGreeting, StageFarewell, true},
		{"collect_info to technical", StageCollectInfo, StageTechnicalQuestions, true},
		{"collect_info to farewell", StageCollectInfo, StageFarewell, true},
		{"technical to farewell", StageTechnicalQuestions, StageFarewell, true},
		{"greeting skips to technical", StageGreeting, StageTechnicalQuestions, false},
		{"collect_info back to greeting", StageCollectInfo, StageGreeting, false},
		{"technical back to collect_info", StageTechnicalQuestions, StageCollectInfo, false},
		{"farewell goes nowhere", StageFarewell, StageCollectInfo, false},
		{"no self transition", StageCollectInfo, StageCollectInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := &SessionState{stage: tt.from}
			err := s.Advance(tt.to)
			if tt.valid && err != nil {
				t.Fatalf("expected transition to succeed, got %v", err)
			}
			if !tt.valid {
				if err == nil {
					t.Fatal("expected transition to be rejected")
				}
				if s.Stage() != tt.from {
					t.Fatalf("stage mutated on rejected transition: %s", s.Stage())
				}
			}
		})
	}
}

func TestSetFieldRejectsOverwrite(t *testing.T) {
	s := NewSession()

	if err := s.SetField(FieldName, "Ada"); err != nil {
		t.Fatalf("expected first set to succeed, got %v", err)
	}

	if err := s.SetField(FieldName, "Grace"); err == nil {
		t.Fatal("expected overwrite to be rejected")
	}

	if s.Record().Name != "Ada" {
		t.Fatalf("field mutated on rejected set: %q", s.Record().Name)
	}
}

func TestAppendAnswerNumbersSequentially(t *testing.T) {
	s := NewSession()
	now := time.Now()

	for i := 1; i <= 3; i++ {
		qa := s.AppendAnswer("answer", now)
		if qa.QuestionNumber != i {
			t.Fatalf("expected question number %d, got %d", i, qa.QuestionNumber)
		}
		if s.QuestionsAsked() != len(s.Record().TechnicalAnswers) {
			t.Fatalf("counter %d does not match stored answers %d",
				s.QuestionsAsked(), len(s.Record().TechnicalAnswers))
		}
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	s := NewSession()
	firstID := s.Record().SessionID

	s.Append(RoleUser, "hello")
	_ = s.SetField(FieldName, "Ada")
	s.AppendAnswer("answer", time.Now())
	_ = s.Advance(StageCollectInfo)
	s.RememberInput("hello")
	s.MarkGreeted()
	s.Deactivate()

	s.Reset()

	if s.Stage() != StageGreeting || !s.Active() {
		t.Fatalf("expected fresh greeting stage, got %s active=%v", s.Stage(), s.Active())
	}
	if len(s.Transcript()) != 0 {
		t.Fatalf("expected cleared transcript, got %d messages", len(s.Transcript()))
	}
	if s.Record().Name != "" || len(s.Record().TechnicalAnswers) != 0 {
		t.Fatalf("expected cleared record, got %+v", s.Record())
	}
	if s.Record().SessionID == firstID || s.Record().SessionID == "" {
		t.Fatalf("expected a fresh session id, got %q", s.Record().SessionID)
	}
	if !s.MarkGreeted() {
		t.Fatal("expected greeting flag to be reset")
	}
	if s.IsDuplicate("hello") {
		t.Fatal("expected duplicate guard to be reset")
	}
}

func TestNextUnsetFieldFollowsOrder(t *testing.T) {
	s := NewSession()

	for _, expected := range FieldOrder {
		field, ok := s.Record().NextUnsetField()
		if !ok {
			t.Fatalf("expected a missing field, all set after %s", expected)
		}
		if field != expected {
			t.Fatalf("expected next field %s, got %s", expected, field)
		}
		if err := s.SetField(field, "value"); err != nil {
			t.Fatalf("setting %s: %v", field, err)
		}
	}

	if _, ok := s.Record().NextUnsetField(); ok {
		t.Fatal("expected no missing fields after filling all")
	}
	if got := s.Record().CollectedFields(); got != len(FieldOrder) {
		t.Fatalf("expected %d collected fields, got %d", len(FieldOrder), got)
	}
}
