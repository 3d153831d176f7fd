// Package app implements the adkdng command's orchestration: walking the
// input path, deciding encrypt vs. decrypt per file by header sniffing,
// and (in test mode) round-tripping without writing output.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kurenai-dev/go-adkdng/internal/archtool/config"
	"github.com/kurenai-dev/go-adkdng/internal/archtool/fsutil"
	"github.com/kurenai-dev/go-adkdng/pkg/codec"
)

// App orchestrates the codec over the filesystem.
type App struct {
	config *config.Config
	logger zerolog.Logger
	fs     fsutil.FileSystem
}

// Options carries dependencies for New, letting tests substitute a fake
// filesystem.
type Options struct {
	FileSystem fsutil.FileSystem
}

// New creates an App using the real OS filesystem.
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions creates an App, defaulting any unset dependency.
func NewWithOptions(cfg *config.Config, opts Options) *App {
	fs := opts.FileSystem
	if fs == nil {
		fs = fsutil.NewOSFileSystem()
	}
	return &App{
		config: cfg,
		logger: config.NewLogger(cfg.Debug),
		fs:     fs,
	}
}

// Run walks cfg.Path and processes every file it finds.
func (a *App) Run(ctx context.Context) error {
	files, err := fsutil.WalkFiles(a.fs, a.config.Path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return ErrNoFilesFound
	}

	for _, path := range files {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := a.processFile(path); err != nil {
			a.logger.Error().Err(err).Str("path", path).Msg("failed to process file")
		}
	}
	return nil
}

func (a *App) processFile(path string) error {
	data, err := a.fs.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyFile, path)
	}

	if a.config.Test {
		return a.RunTest(path, data)
	}

	name := filepath.Base(path)

	if fsutil.LooksLikeArchive(data) {
		header, err := codec.ReadHeader(data)
		if err != nil {
			return err
		}
		game, err := codec.GameFromTypeTag(header.TypeTag)
		if err != nil {
			return err
		}

		payload, err := codec.Decrypt(data, name, game)
		if err != nil && payload == nil {
			return fmt.Errorf("decrypt %s: %w", path, err)
		}
		if err != nil {
			a.logger.Warn().Err(err).Str("path", path).Msg("payload CRC mismatch, keeping decoded bytes")
		}

		return a.writeResult(path, true, game, payload)
	}

	game, err := codec.GameFromFilename(name)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", path, err)
	}
	encrypted, err := codec.Encrypt(data, name)
	if err != nil {
		return fmt.Errorf("encrypt %s: %w", path, err)
	}
	return a.writeResult(path, false, game, encrypted)
}

func (a *App) writeResult(path string, decrypted bool, game codec.Game, data []byte) error {
	if a.config.DryRun {
		a.logger.Info().Str("path", path).Int("bytes", len(data)).Msg("dry run, not writing")
		return nil
	}
	out := fsutil.OutputPath(a.config.OutputDir, path, decrypted, game)
	if err := a.fs.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return err
	}
	if err := a.fs.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	a.logger.Info().Str("path", out).Int("bytes", len(data)).Msg("wrote file")
	return nil
}

// RunTest decrypts then re-encrypts path without writing output, reporting
// the change in compressed size — the test-mode behavior the original tool
// performs before ever writing a file.
func (a *App) RunTest(path string, data []byte) error {
	name := filepath.Base(path)

	if !fsutil.LooksLikeArchive(data) {
		a.logger.Warn().Str("path", path).Msg("skipping non-archive file in test mode")
		return nil
	}

	header, err := codec.ReadHeader(data)
	if err != nil {
		return err
	}
	game, err := codec.GameFromTypeTag(header.TypeTag)
	if err != nil {
		return err
	}

	payload, err := codec.Decrypt(data, name, game)
	if err != nil && payload == nil {
		return fmt.Errorf("decrypt %s: %w", path, err)
	}

	reencrypted, err := codec.Encrypt(payload, innerName(name, game))
	if err != nil {
		return fmt.Errorf("re-encrypt %s: %w", path, err)
	}

	switch {
	case len(data) > len(reencrypted):
		a.logger.Info().Str("path", path).Int("saved", len(data)-len(reencrypted)).Msg("saved bytes")
	case len(data) < len(reencrypted):
		a.logger.Warn().Str("path", path).Int("lost", len(reencrypted)-len(data)).Msg("lost bytes in compression")
	}

	if _, err := codec.Decrypt(reencrypted, name, game); err != nil {
		return fmt.Errorf("round-trip decrypt %s: %w", path, err)
	}
	return nil
}

// innerName ensures the filename re-encrypt derives its game from carries
// the inner .adk/.dng extension GameFromFilename expects, even when the
// original on-disk name was already stripped of it. A ".cmp" marker just
// before the outer extension is replaced by the game marker, so the
// re-encrypted archive's key derives from the same name Decrypt uses.
func innerName(name string, game codec.Game) string {
	ext := "adk"
	if game == codec.DNG {
		ext = "dng"
	}
	base := name
	if e := filepath.Ext(base); e != "" {
		base = base[:len(base)-len(e)]
		if m := filepath.Ext(base); strings.EqualFold(m, ".cmp") {
			base = base[:len(base)-len(m)]
		}
		return base + "." + ext + e
	}
	return base + "." + ext
}
