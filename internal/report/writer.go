package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/skyrim-alchemy/internal/logger"
	"github.com/osse101/skyrim-alchemy/internal/metrics"
)

// WriterConfig controls what the writer emits
type WriterConfig struct {
	// Workers bounds concurrent page generation
	Workers int
	// Recommended caps recommended.json. 0 writes every group.
	Recommended int
}

// Writer renders a Service into a directory of JSON files
type Writer struct {
	svc Service
	cfg WriterConfig
}

// NewWriter creates a writer over svc
func NewWriter(svc Service, cfg WriterConfig) *Writer {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Writer{svc: svc, cfg: cfg}
}

// Write generates the full report under dir and returns the number of files written
func (w *Writer) Write(ctx context.Context, dir string) (int, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgReportWriting, "dir", dir, "workers", w.cfg.Workers)

	for _, d := range []string{dir, filepath.Join(dir, IngredientsDir), filepath.Join(dir, EffectsDir)} {
		if err := os.MkdirAll(d, dirPerm); err != nil {
			return 0, fmt.Errorf(ErrMsgCreateDirFailed, d, err)
		}
	}

	var written atomic.Int64
	write := func(path string, v any) error {
		if err := writeJSON(path, v); err != nil {
			return err
		}
		written.Add(1)
		metrics.ReportFilesWritten.Inc()
		log.Debug(LogMsgPageWritten, "path", path)
		return nil
	}

	index, err := w.svc.Index(ctx)
	if err != nil {
		return 0, err
	}
	ingredients, err := w.svc.Ingredients(ctx)
	if err != nil {
		return 0, err
	}
	effects, err := w.svc.Effects(ctx)
	if err != nil {
		return 0, err
	}
	recommended, err := w.svc.Recommended(ctx, w.cfg.Recommended)
	if err != nil {
		return 0, err
	}

	if err := write(filepath.Join(dir, IndexFile), index); err != nil {
		return 0, err
	}
	if err := write(filepath.Join(dir, IngredientsFile), ingredients); err != nil {
		return 0, err
	}
	if err := write(filepath.Join(dir, EffectsFile), effects); err != nil {
		return 0, err
	}
	if err := write(filepath.Join(dir, RecommendedFile), recommended); err != nil {
		return 0, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.cfg.Workers)
	for _, row := range ingredients {
		name := row.Name
		g.Go(func() error {
			page, err := w.svc.Ingredient(gctx, name)
			if err != nil {
				return err
			}
			return write(filepath.Join(dir, IngredientsDir, Slug(name)+".json"), page)
		})
	}
	for _, row := range effects {
		name := row.Name
		g.Go(func() error {
			page, err := w.svc.Effect(gctx, name)
			if err != nil {
				return err
			}
			return write(filepath.Join(dir, EffectsDir, Slug(name)+".json"), page)
		})
	}
	if err := g.Wait(); err != nil {
		return int(written.Load()), err
	}

	n := int(written.Load())
	log.Info(LogMsgReportWritten, "dir", dir, "files", n)
	return n, nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf(ErrMsgEncodeFailed, path, err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf(ErrMsgWriteFileFailed, path, err)
	}
	return nil
}
