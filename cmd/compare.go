package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"repcomp/core/compare"
	"repcomp/core/config"
	"repcomp/core/database"
	"repcomp/core/logger"
	"repcomp/core/parse"
	"repcomp/core/storage"
	"repcomp/feature/history"
	"repcomp/feature/report"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var compareFlags struct {
	file1    string
	file2    string
	keyCols1 string
	keyCols2 string
	valCol1  string
	valCol2  string
	workers  int
	outDir   string
	upload   bool
}

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare two report files by instance key",
	Long: `Parses two report files with parallel chunk workers, reconciles their
instance keys and writes the comparison artifacts. Inputs not given as
flags are prompted for interactively.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Collect inputs, prompting for whatever the flags left out
		in := bufio.NewReader(os.Stdin)

		file1 := promptIfEmpty(in, compareFlags.file1, "Path of the first file: ")
		file2 := promptIfEmpty(in, compareFlags.file2, "Path of the second file: ")

		key1 := parseColumnList(logg, promptIfEmpty(in, compareFlags.keyCols1,
			"Key columns of the first file (comma separated, 0-based): "))
		key2 := parseColumnList(logg, promptIfEmpty(in, compareFlags.keyCols2,
			"Key columns of the second file (comma separated, 0-based): "))
		if len(key1) != len(key2) {
			logg.Fatal("Key column counts differ",
				zap.Int("file1_columns", len(key1)),
				zap.Int("file2_columns", len(key2)),
			)
		}

		val1 := parseColumn(logg, promptIfEmpty(in, compareFlags.valCol1,
			"Value column of the first file (0-based): "))
		val2 := parseColumn(logg, promptIfEmpty(in, compareFlags.valCol2,
			"Value column of the second file (0-based): "))

		workers := compareFlags.workers
		if workers == 0 {
			workers = cfg.Compare.Workers
		}
		outDir := compareFlags.outDir
		if outDir == "" {
			outDir = cfg.Compare.OutDir
		}
		upload := compareFlags.upload || cfg.Compare.Upload

		runID := uuid.NewString()
		logg = logger.WithRunID(logg, runID)

		ctx := context.Background()
		start := time.Now()

		// 4. Parse both files. An empty or unreadable file degrades to an
		// empty result so the other side is still fully reported.
		res1 := parseOrEmpty(ctx, logg, file1, parse.Options{
			Columns: parse.Columns{Key: key1, Value: val1},
			Workers: workers,
		})
		res2 := parseOrEmpty(ctx, logg, file2, parse.Options{
			Columns: parse.Columns{Key: key2, Value: val2},
			Workers: workers,
		})

		// 5. Reconcile key sets
		recon := compare.Reconcile(res1.Keys, res2.Keys)

		name1 := filepath.Base(file1)
		name2 := filepath.Base(file2)

		// 6. Write artifacts
		var store storage.Client
		if upload {
			store, err = storage.NewClient(cfg.Storage)
			if err != nil {
				logg.Fatal("Failed to create storage client", zap.Error(err))
			}
		}

		svc := report.NewService(store, cfg.Storage.Bucket, logg)
		arts, err := svc.Write(outDir, report.Inputs{
			File1:      name1,
			File2:      name2,
			Values1:    res1.Values,
			Values2:    res2.Values,
			Recon:      recon,
			ValueName1: report.ColumnName(file1, val1),
			ValueName2: report.ColumnName(file2, val2),
		})
		if err != nil {
			logg.Fatal("Failed to write report", zap.Error(err))
		}

		archived := false
		if upload {
			if err := svc.Upload(ctx, runID, arts); err != nil {
				logg.Error("Archiving report failed", zap.Error(err))
			} else {
				archived = true
			}
		}

		elapsed := time.Since(start)
		logg.Info("Comparison finished",
			zap.Int("matched", len(recon.Matched)),
			zap.Int("missing_in_second", len(recon.MissingInSecond)),
			zap.Int("missing_in_first", len(recon.MissingInFirst)),
			zap.Duration("elapsed", elapsed),
		)

		// 7. Record the run (Optional)
		// A missing database only costs the history entry, never the report.
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			hist := history.NewService(conn, logg)
			if err := hist.Migrate(); err != nil {
				logg.Warn("Run-history migration failed", zap.Error(err))
			} else if err := hist.Record(ctx, &history.Run{
				ID:              runID,
				File1:           name1,
				File2:           name2,
				Matched:         len(recon.Matched),
				MissingInFirst:  len(recon.MissingInFirst),
				MissingInSecond: len(recon.MissingInSecond),
				DurationMS:      elapsed.Milliseconds(),
				Archived:        archived,
			}); err != nil {
				logg.Warn("Recording run failed", zap.Error(err))
			}
		}
	},
}

// promptIfEmpty returns value as-is, or reads one line from in after
// printing prompt when the flag was left empty.
func promptIfEmpty(in *bufio.Reader, value, prompt string) string {
	if value != "" {
		return value
	}
	fmt.Print(prompt)
	line, _ := in.ReadString('\n')
	return strings.TrimSpace(line)
}

// parseColumnList parses a comma separated list of 0-based column indices.
func parseColumnList(logg *zap.Logger, raw string) []int {
	parts := strings.Split(raw, ",")
	cols := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			logg.Fatal("Invalid column index", zap.String("input", raw), zap.Error(err))
		}
		cols = append(cols, n)
	}
	return cols
}

// parseColumn parses a single 0-based column index.
func parseColumn(logg *zap.Logger, raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logg.Fatal("Invalid column index", zap.String("input", raw), zap.Error(err))
	}
	return n
}

// parseOrEmpty parses one file, degrading to an empty result when the file
// has no data. Every key of the other file then shows up as missing instead
// of the run aborting.
func parseOrEmpty(ctx context.Context, logg *zap.Logger, path string, opts parse.Options) *parse.Result {
	res, err := parse.File(ctx, path, opts)
	if err != nil {
		if errors.Is(err, parse.ErrNoData) {
			logg.Warn("File has no parseable data", zap.String("file", path))
			return parse.NewResult()
		}
		logg.Fatal("Parsing failed", zap.String("file", path), zap.Error(err))
	}
	logg.Info("File parsed",
		zap.String("file", path),
		zap.Int("keys", len(res.Keys)),
	)
	return res
}

func init() {
	RootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&compareFlags.file1, "file1", "", "path of the first report file")
	compareCmd.Flags().StringVar(&compareFlags.file2, "file2", "", "path of the second report file")
	compareCmd.Flags().StringVar(&compareFlags.keyCols1, "keycols1", "", "key columns of the first file, comma separated (0-based)")
	compareCmd.Flags().StringVar(&compareFlags.keyCols2, "keycols2", "", "key columns of the second file, comma separated (0-based)")
	compareCmd.Flags().StringVar(&compareFlags.valCol1, "valcol1", "", "value column of the first file (0-based)")
	compareCmd.Flags().StringVar(&compareFlags.valCol2, "valcol2", "", "value column of the second file (0-based)")
	compareCmd.Flags().IntVar(&compareFlags.workers, "workers", 0, "number of parallel parse workers (0 = number of CPUs)")
	compareCmd.Flags().StringVar(&compareFlags.outDir, "out-dir", "", "directory for the report artifacts")
	compareCmd.Flags().BoolVar(&compareFlags.upload, "upload", false, "archive the report artifacts to object storage")
}
