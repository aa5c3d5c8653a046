package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/llm"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/logger"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/prompts"

	"go.uber.org/zap"
)

// exitKeywords end the interview from any stage when found anywhere in the
// input, case-insensitively.
var exitKeywords = []string{"bye", "goodbye", "exit", "quit", "end", "stop"}

// RecordStore persists completed interview records.
type RecordStore interface {
	Save(record *CandidateRecord) (string, error)
}

// Controller is the stage state machine. Given one user input it decides
// what to store, what to ask next and when to call the text generator. All
// generator and persistence failures degrade to visible transcript messages;
// nothing here ever aborts the session.
type Controller struct {
	session   *SessionState
	generator llm.Generator
	store     RecordStore
	templates *prompts.Templates
	logger    *zap.Logger
	now       func() time.Time
}

// NewController wires a controller around the given session. A nil
// generator, templates or logger fall back to safe defaults; a nil store
// disables persistence.
func NewController(session *SessionState, generator llm.Generator, store RecordStore, templates *prompts.Templates, log *zap.Logger) *Controller {
	if generator == nil {
		generator = llm.NewUnconfigured("none", "no text generator is configured")
	}
	if templates == nil {
		templates = prompts.Defaults()
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Controller{
		session:   session,
		generator: generator,
		store:     store,
		templates: templates,
		logger:    log,
		now:       time.Now,
	}
}

// Start fires the greeting exchange: a greeting message, the transition to
// info collection and the request for the first field. It runs exactly once
// per session; later calls are no-ops.
func (c *Controller) Start(ctx context.Context) {
	if !c.session.MarkGreeted() {
		return
	}

	c.session.Append(RoleAssistant, c.generate(ctx, c.templates.Greeting, prompts.GreetingRequest()))

	if err := c.session.Advance(StageCollectInfo); err != nil {
		c.logger.Error("advancing stage", zap.Error(err))
		return
	}

	c.askNextField(ctx, true)
}

// HandleInput processes one user submission according to the current stage.
func (c *Controller) HandleInput(ctx context.Context, raw string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return
	}

	if c.session.IsDuplicate(raw) {
		c.logger.Debug("duplicate input ignored",
			zap.String(logger.FieldStage, c.session.Stage().String()))
		return
	}
	c.session.RememberInput(raw)
	c.session.Append(RoleUser, raw)

	if containsExitKeyword(raw) {
		c.logger.Info("exit keyword received",
			zap.String(logger.FieldStage, c.session.Stage().String()))
		c.finish(ctx)
		return
	}

	switch c.session.Stage() {
	case StageCollectInfo:
		c.handleCollectInfo(ctx, raw)
	case StageTechnicalQuestions:
		c.handleTechnicalAnswer(ctx, raw)
	default:
		c.logger.Warn("input received in unexpected stage",
			zap.String(logger.FieldStage, c.session.Stage().String()))
	}
}

func (c *Controller) handleCollectInfo(ctx context.Context, raw string) {
	field, ok := c.session.Record().NextUnsetField()
	if !ok {
		c.beginTechnicalQuestions(ctx)
		return
	}

	value := extractFieldValue(field, raw)
	if err := c.session.SetField(field, value); err != nil {
		c.logger.Error("storing candidate field", zap.Error(err))
		return
	}

	c.logger.Debug("collected candidate field", zap.String("field", string(field)))
	c.askNextField(ctx, false)
}

// askNextField requests the next missing field, or moves to the technical
// stage when everything is collected.
func (c *Controller) askNextField(ctx context.Context, first bool) {
	field, ok := c.session.Record().NextUnsetField()
	if !ok {
		c.beginTechnicalQuestions(ctx)
		return
	}

	userPrompt := prompts.NextFieldAsk(field.Label())
	if first {
		userPrompt = prompts.FirstFieldAsk(field.Label())
	}

	c.session.Append(RoleAssistant, c.generate(ctx, c.templates.CollectInfo, userPrompt))
}

func (c *Controller) beginTechnicalQuestions(ctx context.Context) {
	if err := c.session.Advance(StageTechnicalQuestions); err != nil {
		c.logger.Error("advancing stage", zap.Error(err))
		return
	}

	techStack := c.session.Record().TechStack
	if techStack == "" {
		techStack = "unspecified tech stack"
	}

	c.session.Append(RoleAssistant, fmt.Sprintf(
		"Perfect! Now let's assess your %s skills. I'll ask %d questions.",
		techStack, prompts.QuestionCount))
	c.session.Append(RoleAssistant, c.generate(ctx, c.templates.GenerateQuestions, prompts.QuestionGeneration(techStack)))
	c.session.Append(RoleAssistant, "Please answer Question 1:")
}

func (c *Controller) handleTechnicalAnswer(ctx context.Context, raw string) {
	qa := c.session.AppendAnswer(raw, c.now())
	c.logger.Debug("technical answer stored", zap.Int("question_number", qa.QuestionNumber))

	c.session.Append(RoleAssistant, c.generate(ctx, c.templates.EvaluateAnswer, prompts.AnswerFeedback(raw)))

	if c.session.QuestionsAsked() < prompts.QuestionCount {
		c.session.Append(RoleAssistant, fmt.Sprintf("Please answer Question %d:", c.session.QuestionsAsked()+1))
		return
	}

	c.finish(ctx)
}

// finish emits the farewell, persists the record and deactivates the
// session. It serves both the normal completion path and the exit-keyword
// shortcut.
func (c *Controller) finish(ctx context.Context) {
	c.session.Append(RoleAssistant, c.generate(ctx, c.templates.Farewell, prompts.FarewellRequest()))

	if c.session.Stage() != StageFarewell {
		if err := c.session.Advance(StageFarewell); err != nil {
			c.logger.Error("advancing stage", zap.Error(err))
		}
	}

	c.persist()
	c.session.Deactivate()
}

func (c *Controller) persist() {
	record := c.session.Record()
	record.CompletedAt = c.now()

	if c.store == nil {
		c.logger.Warn("no record store configured, skipping persistence")
		return
	}

	filename, err := c.store.Save(record)
	if err != nil {
		c.logger.Error("saving candidate record", zap.Error(err))
		c.session.Append(RoleAssistant, fmt.Sprintf("Error saving data: %s", err))
		return
	}

	c.logger.Info("candidate record saved",
		zap.String("filename", filename),
		zap.Int("collected_fields", record.CollectedFields()),
		zap.Int("technical_answers", len(record.TechnicalAnswers)),
	)
	c.session.Append(RoleAssistant, fmt.Sprintf("Data saved: %s", filename))
}

// generate runs the collaborator call and converts failures into visible
// chat text so the conversation degrades instead of crashing. Missing
// credentials become a warning, everything else an error message.
func (c *Controller) generate(ctx context.Context, systemPrompt, userPrompt string) string {
	output, err := c.generator.Generate(ctx, systemPrompt, userPrompt)
	if err == nil {
		return output
	}

	var notConfigured *llm.NotConfiguredError
	if errors.As(err, &notConfigured) {
		c.logger.Warn("text generator is not configured", zap.Error(err))
		return "⚠️ " + notConfigured.Reason
	}

	c.logger.Error("generating response", zap.Error(err))
	return fmt.Sprintf("Error generating response: %s", err)
}

func containsExitKeyword(raw string) bool {
	lower := strings.ToLower(raw)
	for _, keyword := range exitKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}
