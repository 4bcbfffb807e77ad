package cmd

import (
	"fmt"
	"log"

	"repcomp/core/config"
	"repcomp/core/database"
	"repcomp/core/logger"
	"repcomp/feature/history"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var historyLimit int

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent comparison runs",
	Long:  `Lists the most recent comparison runs recorded in the history database.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()

		conn, err := database.Connect(cfg.Database)
		if err != nil {
			logg.Fatal("Failed to connect to run-history database", zap.Error(err))
		}

		hist := history.NewService(conn, logg)
		runs, err := hist.Recent(cmd.Context(), historyLimit)
		if err != nil {
			logg.Fatal("Failed to list runs", zap.Error(err))
		}

		if len(runs) == 0 {
			fmt.Println("No recorded runs.")
			return
		}

		for _, run := range runs {
			archived := ""
			if run.Archived {
				archived = "  [archived]"
			}
			fmt.Printf("%s  %s  %s vs %s  matched=%d missing1=%d missing2=%d  %dms%s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.ID,
				run.File1, run.File2,
				run.Matched, run.MissingInFirst, run.MissingInSecond,
				run.DurationMS,
				archived,
			)
		}
	},
}

func init() {
	RootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list")
}
