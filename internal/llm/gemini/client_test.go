package gemini

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

type modelCall struct {
	model    string
	contents []*genai.Content
	config   *genai.GenerateContentConfig
}

type fakeModels struct {
	calls []modelCall
	resp  *genai.GenerateContentResponse
	err   error
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.calls = append(f.calls, modelCall{model: model, contents: contents, config: config})
	return f.resp, f.err
}

func textResponse(parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{}
	for _, text := range parts {
		content.Parts = append(content.Parts, &genai.Part{Text: text})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content}},
	}
}

func TestGenerateSetsSystemInstruction(t *testing.T) {
	fake := &fakeModels{resp: textResponse("hello candidate")}
	c := &Client{models: fake, model: "gemini-test", logger: zap.NewNop()}

	output, err := c.Generate(context.Background(), "be friendly", "greet the candidate")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "hello candidate" {
		t.Fatalf("unexpected output: %q", output)
	}

	if len(fake.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(fake.calls))
	}

	call := fake.calls[0]
	if call.model != "gemini-test" {
		t.Fatalf("unexpected model: %q", call.model)
	}

	if call.config == nil || call.config.SystemInstruction == nil {
		t.Fatal("expected system instruction to be set")
	}

	if got := call.config.SystemInstruction.Parts[0].Text; got != "be friendly" {
		t.Fatalf("unexpected system instruction: %q", got)
	}

	if call.config.Temperature == nil || *call.config.Temperature != float32(temperature) {
		t.Fatalf("unexpected temperature: %v", call.config.Temperature)
	}

	if len(call.contents) == 0 || call.contents[0].Parts[0].Text != "greet the candidate" {
		t.Fatalf("unexpected contents: %+v", call.contents)
	}
}

func TestGenerateJoinsCandidateParts(t *testing.T) {
	fake := &fakeModels{resp: textResponse(" first ", "", "second")}
	c := &Client{models: fake, model: "gemini-test", logger: zap.NewNop()}

	output, err := c.Generate(context.Background(), "", "prompt")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output != "first\nsecond" {
		t.Fatalf("unexpected output: %q", output)
	}

	// An empty system prompt must not produce a system instruction.
	if fake.calls[0].config.SystemInstruction != nil {
		t.Fatal("did not expect system instruction")
	}
}

func TestGenerateReturnsErrorOnEmptyResponse(t *testing.T) {
	fake := &fakeModels{resp: &genai.GenerateContentResponse{}}
	c := &Client{models: fake, model: "gemini-test", logger: zap.NewNop()}

	_, err := c.Generate(context.Background(), "sys", "prompt")
	if err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestGeneratePropagatesAPIError(t *testing.T) {
	fake := &fakeModels{err: errors.New("backend unavailable")}
	c := &Client{models: fake, model: "gemini-test", logger: zap.NewNop()}

	_, err := c.Generate(context.Background(), "sys", "prompt")
	if err == nil {
		t.Fatal("expected error from backend")
	}
}

func TestGenerateRejectsEmptyPrompt(t *testing.T) {
	c := &Client{models: &fakeModels{}, model: "gemini-test", logger: zap.NewNop()}

	if _, err := c.Generate(context.Background(), "sys", "   "); err == nil {
		t.Fatal("expected error for empty prompt")
	}
}
