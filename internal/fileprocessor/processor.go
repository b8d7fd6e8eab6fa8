// Package fileprocessor handles file loading and processing operations
package fileprocessor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/snesgoanalyzer/internal/analyzer"
	"github.com/retroenv/snesgoanalyzer/internal/classify"
	"github.com/retroenv/snesgoanalyzer/internal/config"
	"github.com/retroenv/snesgoanalyzer/internal/options"
	"github.com/retroenv/snesgoanalyzer/internal/rom"
)

// ProcessFile handles the complete file processing workflow
func ProcessFile(ctx context.Context, logger *log.Logger, opts options.Program,
	analysisOptions options.Analysis,
) error {
	image, err := loadImage(opts)
	if err != nil {
		return fmt.Errorf("loading ROM image: %w", err)
	}
	logImage(logger, opts, image)

	ana := analyzer.New(logger, image, analysisOptions)
	result, err := ana.Run(ctx)
	if err != nil {
		return fmt.Errorf("analyzing: %w", err)
	}

	logResult(logger, image, result)

	if opts.Memviz != "" {
		if err := writeMemviz(opts.Memviz, result); err != nil {
			return fmt.Errorf("writing memviz dump: %w", err)
		}
	}
	return nil
}

// GetFilesToProcess returns list of files to process based on options
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files matching pattern %s found", opts.Batch)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}

func loadImage(opts options.Program) (*rom.Image, error) {
	mapping, err := config.MappingOverride(opts.Mapping)
	if err != nil {
		return nil, err
	}
	return rom.LoadFile(opts.Input, mapping)
}

func logImage(logger *log.Logger, opts options.Program, image *rom.Image) {
	header := image.Header()
	logger.Info("Loaded ROM image",
		log.String("file", opts.Input),
		log.String("title", header.Title),
		log.Stringer("mapping", image.Mapping()),
		log.Int("banks", image.Banks()))

	if image.HadCopierHeader() {
		logger.Debug("Stripped copier header")
	}
	if !header.ChecksumOK {
		logger.Warn("Header checksum does not match its complement")
	}
	if header.DeclaredSize != 0 && header.DeclaredSize != image.Size() {
		logger.Debug("Declared ROM size differs from file size",
			log.Int("declared", header.DeclaredSize),
			log.Int("file", image.Size()))
	}
}

func logResult(logger *log.Logger, image *rom.Image, result *analyzer.Result) {
	covered := result.TagBytes()
	total := image.Size()
	for _, tag := range []classify.Tag{
		classify.TagCode, classify.TagDataTable, classify.TagGraphics,
		classify.TagAudio, classify.TagText, classify.TagCompressed,
		classify.TagUnknown,
	} {
		size := covered[tag]
		if size == 0 {
			continue
		}
		logger.Info("Classified",
			log.Stringer("tag", tag),
			log.Int("bytes", size),
			log.String("share", fmt.Sprintf("%.1f%%", float64(size)*100/float64(total))))
	}

	logger.Info("Code",
		log.Int("instructions", len(result.Instructions())))
	logger.Info("Cross references",
		log.Int("total", result.References().Len()),
		log.Int("pointer_tables", len(result.PointerTables())))
	logger.Info("Assets",
		log.Int("graphics_chunks", len(result.Graphics())),
		log.Int("audio_samples", len(result.Samples())))
}

// writeMemviz dumps the object graph of the analysis result as a DOT
// file for debugging.
func writeMemviz(name string, result *analyzer.Result) error {
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating file %s: %w", name, err)
	}
	defer func() { _ = file.Close() }()

	memviz.Map(file, result)
	return nil
}

// PrintBanner prints application version information
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	versionString := version
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		versionString += fmt.Sprintf(" (%s)", commit)
	}

	logger.Info("snesgoanalyzer", log.String("version", versionString))

	if date != "" && !strings.Contains(date, "unknown") {
		logger.Info("Build", log.String("date", date))
	}
}
