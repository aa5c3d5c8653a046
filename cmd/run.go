package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/interview"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/llm"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/llm/gemini"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/llm/groq"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/logger"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/prompts"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/secrets"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/storage"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptViewSummary  = "View collected information"
	PromptNewInterview = "Start new interview"
	PromptExit         = "Exit"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an interactive screening interview",
	Run: func(_ *cobra.Command, _ []string) {
		run()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("output-dir", "o", "", "directory for persisted interview records")
	runCmd.Flags().String("prompts-file", "", "YAML file overriding the built-in system prompts")

	viper.BindPFlag("output-dir", runCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("prompts-file", runCmd.Flags().Lookup("prompts-file"))
}

// run is the main command for the cli.
func run() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the talentscout assistant", zap.String("version", version))

	templates, err := loadTemplates(config)
	if err != nil {
		logger.Fatal("loading prompt templates", zap.Error(err))
	}

	generator := newGenerator(ctx, config, logger)
	store := storage.New(viper.GetString("output-dir"))

	logger.Info("persisting interview records", zap.String("output_dir", store.Dir()))

	session := interview.NewSession()
	controller := interview.NewController(session, generator, store, templates, logger)

	for {
		if err := runSession(ctx, controller, session); err != nil {
			logger.Fatal("running interview session", zap.Error(err))
		}

		again, err := closingMenu(session)
		if err != nil {
			logger.Fatal("reading menu selection", zap.Error(err))
		}
		if !again {
			logger.Info("exiting", zap.String("reason", "interview completed"))
			return
		}

		session.Reset()
		logger.Info("starting a new interview", zap.String("session_id", session.Record().SessionID))
	}
}

// runSession drives one interview from greeting to deactivation, printing
// assistant messages as they are appended to the transcript.
func runSession(ctx context.Context, controller *interview.Controller, session *interview.SessionState) error {
	controller.Start(ctx)
	printed := printNewMessages(session, 0)

	input := promptui.Prompt{Label: "You"}
	for session.Active() {
		raw, err := input.Run()
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		before := len(session.Transcript())
		controller.HandleInput(ctx, raw)

		if strings.TrimSpace(raw) != "" && len(session.Transcript()) == before {
			fmt.Println("(duplicate message ignored)")
		}
		printed = printNewMessages(session, printed)
	}

	return nil
}

func printNewMessages(session *interview.SessionState, printed int) int {
	transcript := session.Transcript()
	for _, message := range transcript[printed:] {
		if message.Role == interview.RoleAssistant {
			fmt.Printf("\nAssistant: %s\n\n", message.Content)
		}
	}
	return len(transcript)
}

// closingMenu runs the post-interview menu. It returns true when the user
// wants a fresh interview.
func closingMenu(session *interview.SessionState) (bool, error) {
	for {
		menu := promptui.Select{
			Label: "Interview completed",
			Items: []string{PromptViewSummary, PromptNewInterview, PromptExit},
		}

		_, action, err := menu.Run()
		if err != nil {
			return false, err
		}

		switch action {
		case PromptViewSummary:
			printSummary(session)
		case PromptNewInterview:
			return true, nil
		case PromptExit:
			return false, nil
		}
	}
}

func printSummary(session *interview.SessionState) {
	record := session.Record()

	fmt.Println("\nCollected information:")
	for _, field := range interview.FieldOrder {
		value := record.Get(field)
		if value == "" {
			value = "N/A"
		}
		fmt.Printf("  %-20s %s\n", field+":", value)
	}

	fmt.Printf("  %-20s %d/%d\n", "questions answered:", len(record.TechnicalAnswers), prompts.QuestionCount)
	for _, qa := range record.TechnicalAnswers {
		fmt.Printf("\n  Q%d answer: %s\n", qa.QuestionNumber, qa.Answer)
	}
	fmt.Println()
}

func loadTemplates(config *Config) (*prompts.Templates, error) {
	path := strings.TrimSpace(viper.GetString("prompts-file"))
	if path == "" && config != nil {
		path = strings.TrimSpace(config.PromptsFile)
	}

	if path == "" {
		return prompts.Defaults(), nil
	}

	return prompts.Load(path)
}

// newGenerator builds the configured provider. A missing credential is not
// fatal: the interview still runs and shows a warning in place of generated
// content.
func newGenerator(ctx context.Context, config *Config, logger *zap.Logger) llm.Generator {
	provider := strings.ToLower(strings.TrimSpace(viper.GetString("ai.provider")))
	if config != nil && config.AI != nil && strings.TrimSpace(config.AI.Provider) != "" {
		provider = strings.ToLower(strings.TrimSpace(config.AI.Provider))
	}

	switch provider {
	case "groq":
		apiKey, err := resolveGroqKey(config)
		if err != nil {
			logger.Warn("running without a text generator",
				zap.Error(err),
				zap.String("hint", "set GROQ_API_KEY or the ai.groq.api-key key in the configuration file"),
			)
			return llm.NewUnconfigured(provider, "add GROQ_API_KEY to the environment or configuration to enable AI responses")
		}

		model := ""
		if config != nil && config.AI != nil && config.AI.Groq != nil {
			model = config.AI.Groq.Model
		}

		return groq.New(apiKey, model, logger)
	case "gemini":
		apiKey, err := resolveGeminiKey(config)
		if err != nil {
			logger.Warn("running without a text generator",
				zap.Error(err),
				zap.String("hint", "set GEMINI_API_KEY or the ai.gemini.api-key key in the configuration file"),
			)
			return llm.NewUnconfigured(provider, "add GEMINI_API_KEY to the environment or configuration to enable AI responses")
		}

		model := ""
		if config != nil && config.AI != nil && config.AI.Gemini != nil {
			model = config.AI.Gemini.Model
		}

		generator, err := gemini.New(ctx, apiKey, model, logger)
		if err != nil {
			logger.Warn("running without a text generator", zap.Error(err))
			return llm.NewUnconfigured(provider, "the Gemini client could not be initialized")
		}

		return generator
	default:
		err := fmt.Errorf("unsupported ai provider: %s", provider)
		logger.Warn("running without a text generator", zap.Error(err))
		return llm.NewUnconfigured(provider, err.Error())
	}
}

func resolveGroqKey(config *Config) (string, error) {
	src := secrets.Source{Name: "groq api key", Env: "GROQ_API_KEY"}
	if config != nil && config.AI != nil && config.AI.Groq != nil {
		src.Value = config.AI.Groq.APIKey
		src.File = config.AI.Groq.APIKeyFile
	}

	return secrets.Load(src)
}

func resolveGeminiKey(config *Config) (string, error) {
	src := secrets.Source{Name: "gemini api key", Env: "GEMINI_API_KEY"}
	if config != nil && config.AI != nil && config.AI.Gemini != nil {
		src.Value = config.AI.Gemini.APIKey
		src.File = config.AI.Gemini.APIKeyFile
	}

	return secrets.Load(src)
}
