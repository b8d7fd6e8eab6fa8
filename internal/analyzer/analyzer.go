// Package analyzer runs the ROM analysis, it classifies all banks in
// parallel and merges the verdicts into one result.
package analyzer

import (
	"context"
	"fmt"
	"runtime"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"

	"github.com/retroenv/snesgoanalyzer/internal/arch/w65816"
	"github.com/retroenv/snesgoanalyzer/internal/assets"
	"github.com/retroenv/snesgoanalyzer/internal/classify"
	"github.com/retroenv/snesgoanalyzer/internal/options"
	"github.com/retroenv/snesgoanalyzer/internal/rom"
	"github.com/retroenv/snesgoanalyzer/internal/snes"
	"github.com/retroenv/snesgoanalyzer/internal/xref"
)

const pointerTableSource = "pointer-table"

// Analyzer classifies the content of a ROM image.
type Analyzer struct {
	logger *log.Logger
	image  *rom.Image
	opts   options.Analysis

	translator *snes.Translator
	decoder    *w65816.Decoder
	engine     *classify.Engine
}

// New creates an analyzer for the loaded ROM image.
func New(logger *log.Logger, image *rom.Image, opts options.Analysis) *Analyzer {
	translator := snes.NewTranslator(image.Mapping(), image.Size())
	decoder := w65816.NewDecoder()

	return &Analyzer{
		logger:     logger,
		image:      image,
		opts:       opts,
		translator: translator,
		decoder:    decoder,
		engine:     classify.NewEngine(translator, decoder, opts),
	}
}

// bankResult collects the per bank analysis output before the merge.
type bankResult struct {
	regions      []classify.Region
	refs         *xref.Index
	tables       []xref.Table
	graphics     []assets.GraphicsChunk
	samples      []assets.AudioSample
	instructions []w65816.Instruction
	stats        BankStats
}

// Run analyzes all banks of the ROM, each bank on its own worker, and
// merges the bank results in bank order. A canceled context stops the
// remaining banks, their content is reported as unknown.
func (a *Analyzer) Run(ctx context.Context) (*Result, error) {
	banks := a.image.Banks()
	bankResults := make([]bankResult, banks)

	workers := a.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for bank := 0; bank < banks; bank++ {
		bank := bank
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				bankResults[bank] = a.skippedBank(bank)
				return nil
			}

			bankResults[bank] = a.analyzeBank(bank)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyzing banks: %w", err)
	}

	return a.mergeBanks(bankResults), nil
}

// analyzeBank classifies the windows of one bank, detects pointer
// tables and scans the code regions for control flow references.
func (a *Analyzer) analyzeBank(bank int) bankResult {
	data := a.image.Bank(bank)
	base := bank * a.image.Mapping().BankWindowSize()

	a.logger.Debug("analyzing bank",
		log.Int("bank", bank),
		log.String("offset", fmt.Sprintf("0x%06X", base)))

	windows := a.engine.ClassifyBank(data, base)

	refs := xref.NewIndex()
	scanner := xref.NewScanner(a.decoder, a.translator,
		a.opts.PointerTableMinEntries, a.opts.PointerTableDensity)

	tables := scanner.ScanPointerTables(data, base, refs)
	a.applyTableOverrides(windows, tables)
	instructions := a.scanCodeRuns(data, base, windows, scanner, refs)

	regions := classify.MergeWindows(windows)

	result := bankResult{
		regions:      regions,
		refs:         refs,
		tables:       tables,
		instructions: instructions,
	}
	for _, region := range regions {
		start := region.Start - base
		chunk := data[start : start+region.Length]

		switch region.Tag {
		case classify.TagGraphics, classify.TagUnknown:
			result.graphics = append(result.graphics,
				assets.DetectGraphics(chunk, region.Start)...)
		}
		switch region.Tag {
		case classify.TagAudio, classify.TagUnknown:
			result.samples = append(result.samples,
				assets.DetectAudio(chunk, region.Start)...)
		}
	}
	result.stats = bankStats(bank, result)
	return result
}

// bankStats summarizes the analysis output of one bank.
func bankStats(bank int, result bankResult) BankStats {
	stats := BankStats{
		Bank:         bank,
		Instructions: len(result.instructions),
		References:   result.refs.Len(),
		TagBytes:     map[classify.Tag]int{},
	}
	for _, region := range result.regions {
		stats.TagBytes[region.Tag] += region.Length
	}
	return stats
}

// skippedBank reports the whole bank as unknown with zero confidence.
func (a *Analyzer) skippedBank(bank int) bankResult {
	data := a.image.Bank(bank)
	base := bank * a.image.Mapping().BankWindowSize()

	result := bankResult{
		regions: []classify.Region{{
			Start:  base,
			Length: len(data),
			Tag:    classify.TagUnknown,
		}},
		refs: xref.NewIndex(),
	}
	result.stats = bankStats(bank, result)
	return result
}

// applyTableOverrides retags all windows covered by a detected pointer
// table as data tables. Code windows keep their tag, code outranks
// table evidence.
func (a *Analyzer) applyTableOverrides(windows []classify.WindowClass, tables []xref.Table) {
	for _, table := range tables {
		start := table.Offset

		for i := range windows {
			window := &windows[i]
			if window.Offset+window.Length <= start || window.Offset >= start+table.Length {
				continue
			}
			if window.Tag.Priority() >= classify.TagDataTable.Priority() {
				continue
			}
			window.Override(classify.TagDataTable, 0.95, pointerTableSource)
		}
	}
}

// scanCodeRuns feeds every run of consecutive code windows through the
// reference scanner and returns the decoded instructions of all runs.
func (a *Analyzer) scanCodeRuns(data []byte, base int, windows []classify.WindowClass,
	scanner *xref.Scanner, refs *xref.Index,
) []w65816.Instruction {
	var instructions []w65816.Instruction
	runStart := -1
	runEnd := 0
	flush := func() {
		if runStart < 0 {
			return
		}
		instructions = append(instructions,
			scanner.ScanCode(data[runStart-base:runEnd-base], runStart, refs)...)
		runStart = -1
	}

	for _, window := range windows {
		if window.Tag != classify.TagCode {
			flush()
			continue
		}
		if runStart < 0 {
			runStart = window.Offset
		}
		runEnd = window.Offset + window.Length
	}
	flush()
	return instructions
}

// mergeBanks joins the per bank results in bank order into the final
// result. Adjacent regions of the same tag are coalesced across bank
// boundaries.
func (a *Analyzer) mergeBanks(bankResults []bankResult) *Result {
	result := &Result{refs: xref.NewIndex()}

	var windows []classify.WindowClass
	for _, bank := range bankResults {
		for _, region := range bank.regions {
			windows = append(windows, classify.WindowClass{
				Offset:     region.Start,
				Length:     region.Length,
				Tag:        region.Tag,
				Confidence: region.Confidence,
				Evidence:   region.Evidence,
			})
		}
		result.refs.Merge(bank.refs)
		result.tables = append(result.tables, bank.tables...)
		result.graphics = append(result.graphics, bank.graphics...)
		result.samples = append(result.samples, bank.samples...)
		result.instructions = append(result.instructions, bank.instructions...)
		result.stats = append(result.stats, bank.stats)
	}
	result.regions = classify.MergeWindows(windows)
	return result
}
