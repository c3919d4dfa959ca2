package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"

	"github.com/subosito/gotenv"

	"github.com/civicsignal/remark/internal/extract"
	"github.com/civicsignal/remark/internal/logging"
	"github.com/civicsignal/remark/pkg/remark"
	"github.com/civicsignal/remark/pkg/remark/config"
	"github.com/civicsignal/remark/pkg/remark/stance"
	"github.com/civicsignal/remark/pkg/remark/store/sqlite"
)

func main() {
	var (
		input         = flag.String("input", "", "Path to comments file: .txt, .md or .html (required)")
		keywordsCfg   = flag.String("keywords", "", "Optional: keyword lists YAML")
		stoplistCfg   = flag.String("stoplist", "", "Optional: stopword list YAML")
		rulesCfg      = flag.String("rules", "", "Optional: theme/concern/suggestion rules YAML")
		dbPath        = flag.String("db", "", "Optional: SQLite path to archive the run")
		envFile       = flag.String("env", "", "Optional: env file to load")
		maxComments   = flag.Int("max", extract.DefaultMaxComments, "Maximum comments to analyze")
		deterministic = flag.Bool("deterministic", false, "Pin tie-break confidence to 0.8")
		verbose       = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logging.InitLogger(level)

	if *input == "" {
		slog.Error("--input required")
		os.Exit(1)
	}

	if *envFile != "" {
		if err := gotenv.Load(*envFile); err != nil {
			slog.Warn("no env file found, using OS environment", "path", *envFile)
		}
	}

	ctx := context.Background()

	comments, err := extract.FromFile(*input, *maxComments)
	if err != nil {
		slog.Error("extract comments", "path", *input, "error", err)
		os.Exit(1)
	}
	slog.Debug("comments extracted", "count", len(comments))

	loader := config.Loader{
		KeywordsPath: *keywordsCfg,
		StoplistPath: *stoplistCfg,
		RulesPath:    *rulesCfg,
	}
	components, err := loader.Load()
	if err != nil {
		slog.Error("load configs", "error", err)
		os.Exit(1)
	}

	if *deterministic {
		components.Classifier.SetRandom(stance.FixedRandom(0.5))
	}

	opts := remark.Options{
		Tokenizer:  components.Tokenizer,
		Classifier: components.Classifier,
		Summarizer: components.Summarizer,
	}

	if *dbPath != "" {
		st, err := sqlite.Open(ctx, *dbPath)
		if err != nil {
			slog.Error("open store", "path", *dbPath, "error", err)
			os.Exit(1)
		}
		opts.Store = st
	}

	engine := remark.New(opts)
	defer engine.Close()

	analysis, err := engine.Analyze(ctx, comments)
	if err != nil {
		slog.Error("analyze", "error", err)
		os.Exit(1)
	}

	if analysis.RunID != "" {
		slog.Info("run archived", "id", analysis.RunID)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(analysis); err != nil {
		slog.Error("encode report", "error", err)
		os.Exit(1)
	}
}
