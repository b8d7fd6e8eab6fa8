package fileprocessor

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"

	"github.com/retroenv/snesgoanalyzer/internal/options"
)

// writeTestROM writes a minimal LoROM image with a valid internal
// header to the given directory.
func writeTestROM(t *testing.T, dir, name string) string {
	t.Helper()

	data := make([]byte, 0x10000)
	copy(data[0x7FC0:], "TEST ROM             ")
	data[0x7FC0+0x15] = 0x20 // map mode, LoROM
	data[0x7FC0+0x17] = 0x0A // declared size
	data[0x7FC0+0x1C] = 0xFF // complement
	data[0x7FC0+0x1D] = 0xAB
	data[0x7FC0+0x1E] = 0x00 // checksum
	data[0x7FC0+0x1F] = 0x54

	file := filepath.Join(dir, name)
	assert.NoError(t, os.WriteFile(file, data, 0o644))
	return file
}

func TestProcessFile(t *testing.T) {
	file := writeTestROM(t, t.TempDir(), "test.sfc")

	opts := options.Program{Input: file, Quiet: true}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewAnalysis())
	assert.NoError(t, err)
}

func TestProcessFileForcedMapping(t *testing.T) {
	file := writeTestROM(t, t.TempDir(), "test.sfc")

	opts := options.Program{Input: file, Mapping: "lorom", Quiet: true}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewAnalysis())
	assert.NoError(t, err)
}

func TestProcessFileMemviz(t *testing.T) {
	dir := t.TempDir()
	file := writeTestROM(t, dir, "test.sfc")
	dotFile := filepath.Join(dir, "result.dot")

	opts := options.Program{Input: file, Memviz: dotFile, Quiet: true}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewAnalysis())
	assert.NoError(t, err)

	dot, err := os.ReadFile(dotFile)
	assert.NoError(t, err)
	assert.True(t, len(dot) > 0)
}

func TestProcessFileMissing(t *testing.T) {
	opts := options.Program{Input: filepath.Join(t.TempDir(), "missing.sfc")}
	err := ProcessFile(context.Background(), log.NewTestLogger(t), opts, options.NewAnalysis())
	assert.True(t, err != nil)
}

func TestGetFilesToProcess(t *testing.T) {
	dir := t.TempDir()
	writeTestROM(t, dir, "first.sfc")
	writeTestROM(t, dir, "second.sfc")

	opts := &options.Program{Batch: filepath.Join(dir, "*.sfc")}
	files, err := GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(files))

	opts = &options.Program{Input: "single.sfc"}
	files, err = GetFilesToProcess(opts)
	assert.NoError(t, err)
	assert.Equal(t, []string{"single.sfc"}, files)

	opts = &options.Program{Batch: filepath.Join(dir, "*.smc")}
	_, err = GetFilesToProcess(opts)
	assert.True(t, err != nil)
}
