package interview_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/interview"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/storage"

	"go.uber.org/zap"
)

type scriptedGenerator struct{}

func (scriptedGenerator) Generate(_ context.Context, _, user string) (string, error) {
	return "reply to: " + user, nil
}

// TestFullInterviewPersistsRecord walks an entire interview through the
// exported API and checks the file written at the end.
func TestFullInterviewPersistsRecord(t *testing.T) {
	dir := t.TempDir()
	store := storage.New(dir)
	session := interview.NewSession()
	controller := interview.NewController(session, scriptedGenerator{}, store, nil, zap.NewNop())

	controller.Start(context.Background())

	inputs := []string{
		"Ada Lovelace",
		"ada@example.com",
		"+44 20 7946 0100",
		"I have about 5 years of experience",
		"Software Developer",
		"London",
		"Python, SQL",
	}
	for _, input := range inputs {
		controller.HandleInput(context.Background(), input)
	}

	if session.Stage() != interview.StageTechnicalQuestions {
		t.Fatalf("expected technical stage after info collection, got %s", session.Stage())
	}

	for i := 1; i <= 5; i++ {
		controller.HandleInput(context.Background(), fmt.Sprintf("technical answer %d", i))
	}

	if session.Active() {
		t.Fatal("expected session to finish after five answers")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly 1 persisted record, got %d", len(entries))
	}

	name := entries[0].Name()
	if !strings.HasPrefix(name, "Ada_Lovelace_") || !strings.HasSuffix(name, ".json") {
		t.Fatalf("unexpected record filename: %s", name)
	}

	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}

	var record interview.CandidateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("parsing record: %v", err)
	}

	if record.SessionID == "" {
		t.Fatal("expected session id in persisted record")
	}
	if record.Experience != "5 years" {
		t.Fatalf("expected extracted experience, got %q", record.Experience)
	}
	if record.TechStack != "Python, SQL" {
		t.Fatalf("unexpected tech stack: %q", record.TechStack)
	}
	if len(record.TechnicalAnswers) != 5 {
		t.Fatalf("expected 5 technical answers, got %d", len(record.TechnicalAnswers))
	}
	for i, qa := range record.TechnicalAnswers {
		if qa.QuestionNumber != i+1 {
			t.Fatalf("expected sequential numbering, got %d at index %d", qa.QuestionNumber, i)
		}
	}
}

// TestEarlyQuitPersistsPartialRecord exercises the exit shortcut after only
// two fields were collected.
func TestEarlyQuitPersistsPartialRecord(t *testing.T) {
	dir := t.TempDir()
	store := storage.New(dir)
	session := interview.NewSession()
	controller := interview.NewController(session, scriptedGenerator{}, store, nil, zap.NewNop())

	controller.Start(context.Background())
	controller.HandleInput(context.Background(), "Grace Hopper")
	controller.HandleInput(context.Background(), "grace@example.com")
	controller.HandleInput(context.Background(), "quit")

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading output dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 persisted record, got %d", len(entries))
	}

	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("reading record: %v", err)
	}

	var record interview.CandidateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("parsing record: %v", err)
	}

	if record.Name != "Grace Hopper" || record.Email != "grace@example.com" {
		t.Fatalf("unexpected record: %+v", record)
	}
	if record.Phone != "" || record.Experience != "" || record.Position != "" ||
		record.Location != "" || record.TechStack != "" {
		t.Fatalf("expected remaining fields unset, got %+v", record)
	}
	if len(record.TechnicalAnswers) != 0 {
		t.Fatalf("expected no technical answers, got %d", len(record.TechnicalAnswers))
	}
}
