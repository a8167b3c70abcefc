package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
)

type options struct {
	inPath     string
	xmlPath    string
	refDir     string
	outPath    string
	api        string
	configPath string
	verbose    bool
}

type cliApp struct {
	stdout io.Writer
	stderr io.Writer
	opts   options
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute() error {
	opts := app.opts
	level := slog.LevelInfo
	if opts.configPath != "" {
		cfg, err := loadRunConfig(opts.configPath)
		if err != nil {
			return err
		}
		cfg.merge(&opts)
		level = cfg.slogLevel()
	}
	if opts.api == "" {
		opts.api = "gl"
	}
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(app.errWriter(), &slog.HandlerOptions{Level: level}))

	switch {
	case opts.inPath == "":
		return errors.New("missing input header (--in)")
	case opts.xmlPath == "":
		return errors.New("missing registry document (--xml)")
	case opts.outPath == "":
		return errors.New("missing output path (--out)")
	}

	reg, err := NewRegistry(opts.xmlPath, opts.api, logger)
	if err != nil {
		return err
	}
	refs := NewRefPages(opts.refDir, logger)
	if opts.refDir == "" {
		logger.Debug("no refpage directory, using registry data only")
	}

	var stats rewriteStats
	if opts.outPath == "-" {
		var data []byte
		data, stats, err = rewriteHeader(opts.inPath, reg, refs, logger)
		if err == nil {
			_, err = app.stdout.Write(data)
		}
	} else {
		stats, err = processFile(opts.inPath, opts.outPath, reg, refs, logger)
	}
	if err != nil {
		return err
	}
	logger.Info("rewrite complete",
		"in", opts.inPath,
		"out", opts.outPath,
		"defines", stats.defines,
		"docblocks", stats.blocks)
	return nil
}

func (app *cliApp) errWriter() io.Writer {
	if app.stderr != nil {
		return app.stderr
	}
	return os.Stderr
}
