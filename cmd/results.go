package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/logger"
	"github.com/Ayaan-Skh/TalentScout-Chatbot/internal/storage"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var resultsCmd = &cobra.Command{
	Use:   "results [filename]",
	Short: "List persisted interview records, or show one record",
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		results(args)
	},
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}

func results(args []string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	store := storage.New(viper.GetString("output-dir"))

	if len(args) == 1 {
		record, err := store.Load(args[0])
		if err != nil {
			logger.Fatal("loading interview record", zap.Error(err))
		}

		// do not bother error since the record was just unmarshaled
		pretty, _ := json.MarshalIndent(record, "", "  ")
		fmt.Println(string(pretty))
		return
	}

	names, err := store.List()
	if err != nil {
		logger.Fatal("listing interview records", zap.Error(err))
	}

	if len(names) == 0 {
		fmt.Printf("no interview records found in %s\n", store.Dir())
		return
	}

	for _, name := range names {
		fmt.Println(name)
	}
}
