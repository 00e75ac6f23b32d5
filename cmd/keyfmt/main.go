// Command keyfmt renders a placeholder pattern against a batch of files and
// optionally renames them to the result. The pattern is compiled once and
// applied to every file, so large batches never re-parse the template.
//
//	keyfmt -pattern '{date}_{stem}.{ext}' photos/*.jpg
//	keyfmt -manifest naming.yml -name track -rename *.flac
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-keyfmt/internal/config"
	"github.com/goliatone/go-keyfmt/pkg/filekeys"
	"github.com/goliatone/go-keyfmt/pkg/manifest"
	"github.com/goliatone/go-keyfmt/pkg/registry"
	"github.com/goliatone/go-keyfmt/pkg/template"
	"github.com/goliatone/go-keyfmt/pkg/tui"
)

// item is the per-file render input: file metadata plus the file's ordinal
// within the batch, exposed as {n}.
type item struct {
	info filekeys.Info
	n    int
}

func main() {
	pattern := flag.String("pattern", "", "template pattern, e.g. {stem}_{date}.{ext}")
	manifestPath := flag.String("manifest", "", "manifest file holding named patterns")
	name := flag.String("name", "", "pattern name to select from the manifest")
	rename := flag.Bool("rename", false, "apply the results as renames (default is a dry run)")
	yes := flag.Bool("yes", false, "skip the confirmation prompt before renaming")
	jobs := flag.Int("jobs", 0, "concurrent render workers (overrides KEYFMT_JOBS)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if *jobs > 0 {
		cfg.Jobs = *jobs
	}
	if *yes {
		cfg.AssumeYes = true
	}

	files := flag.Args()
	if len(files) == 0 {
		logger.Fatal("no input files given")
	}

	tmpl, err := resolvePattern(*pattern, *manifestPath, *name)
	if err != nil {
		logger.Fatal("pattern selection failed", zap.Error(err))
	}

	seq, err := template.Compile(batchRegistry(), tmpl)
	if err != nil {
		logger.Fatal("pattern does not compile", zap.String("pattern", tmpl), zap.Error(err))
	}
	logger.Debug("pattern compiled",
		zap.String("pattern", tmpl),
		zap.Strings("keys", seq.Keys()),
	)

	ctx := context.Background()
	results, err := renderBatch(ctx, seq, files, cfg.Jobs)
	if err != nil {
		logger.Fatal("render failed", zap.Error(err))
	}

	for i, file := range files {
		fmt.Printf("%s -> %s\n", file, results[i])
	}

	if !*rename {
		logger.Info("dry run complete", zap.Int("files", len(files)))
		return
	}

	if !cfg.AssumeYes {
		ok, err := tui.NewSurveyDriver().Confirm(ctx, tui.ConfirmConfig{
			Message: fmt.Sprintf("Rename %d file(s)?", len(files)),
			Help:    "Each file on the left is renamed to the path on the right.",
		})
		if err != nil {
			logger.Fatal("confirmation failed", zap.Error(err))
		}
		if !ok {
			logger.Info("rename aborted")
			return
		}
	}

	for i, file := range files {
		if results[i] == file {
			continue
		}
		if err := os.Rename(file, results[i]); err != nil {
			logger.Fatal("rename failed", zap.String("from", file), zap.Error(err))
		}
		logger.Info("renamed", zap.String("from", file), zap.String("to", results[i]))
	}
}

// resolvePattern picks the raw template from -pattern or from a manifest entry.
func resolvePattern(pattern, manifestPath, name string) (string, error) {
	switch {
	case pattern != "" && manifestPath != "":
		return "", fmt.Errorf("use either -pattern or -manifest, not both")
	case pattern != "":
		return pattern, nil
	case manifestPath == "":
		return "", fmt.Errorf("either -pattern or -manifest is required")
	}

	set, err := manifest.LoadFile(manifestPath)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", fmt.Errorf("-name is required with -manifest (available: %v)", set.Names())
	}
	tmpl, ok := set.Pattern(name)
	if !ok {
		return "", fmt.Errorf("manifest has no pattern %q (available: %v)", name, set.Names())
	}
	return tmpl, nil
}

// batchRegistry extends the file-metadata registry with batch-scoped keys.
func batchRegistry() *registry.Registry[item] {
	reg := registry.Adapt(filekeys.New(), func(it item) filekeys.Info { return it.info })
	reg.Insert("n", func(it item) (string, bool) {
		return strconv.Itoa(it.n), true
	})
	return reg
}

// renderBatch stats and renders every file, fanning out across workers. The
// compiled sequence is shared by all workers; results line up with files.
func renderBatch(ctx context.Context, seq *template.Sequence[item], files []string, jobs int) ([]string, error) {
	results := make([]string, len(files))

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, file := range files {
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			info, err := filekeys.Stat(file)
			if err != nil {
				return err
			}
			out, err := seq.Render(item{info: info, n: i + 1})
			if err != nil {
				return fmt.Errorf("render %s: %w", file, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func initLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}
