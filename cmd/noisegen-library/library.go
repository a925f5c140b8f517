// ABOUTME: Parallel rendering of library presets
// ABOUTME: Writes one atomic WAV per preset and collects summaries
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/Resonate-Protocol/resonate-noise/internal/config"
	"github.com/Resonate-Protocol/resonate-noise/internal/render"
	"github.com/Resonate-Protocol/resonate-noise/internal/stats"
	"golang.org/x/sync/errgroup"
)

// entry is the outcome of one preset
type entry struct {
	Name     string
	Path     string
	Duration time.Duration
	Layers   int
	Stats    stats.Summary
}

func (e entry) String() string {
	return fmt.Sprintf("%-20s %-30s %8s  %d layer(s)  peak %.3f  rms %.3f",
		e.Name, e.Path, e.Duration, e.Layers, e.Stats.Peak, e.Stats.RMS)
}

// renderLibrary renders every preset into dir, at most jobs at a time, and
// returns entries in manifest order. The first failure cancels the rest.
func renderLibrary(ctx context.Context, m *config.Manifest, dir string, jobs int, debug bool) ([]entry, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	if jobs < 1 {
		jobs = 1
	}

	entries := make([]entry, len(m.Presets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, preset := range m.Presets {
		g.Go(func() error {
			var obs render.Observer
			if debug {
				obs = render.ObserverFunc(func(e render.Event) {
					log.Printf("[%s] %-8s %s", preset.Name, e.Stage, e.Detail)
				})
			}

			result, err := render.Render(ctx, preset.RenderOptions(), obs)
			if err != nil {
				return fmt.Errorf("preset %s: %w", preset.Name, err)
			}

			path := filepath.Join(dir, preset.Name+".wav")
			if err := render.Write(result, path, true); err != nil {
				return fmt.Errorf("preset %s: %w", preset.Name, err)
			}

			summary, err := stats.Summarize(result.Samples)
			if err != nil {
				return fmt.Errorf("preset %s: %w", preset.Name, err)
			}

			entries[i] = entry{
				Name:     preset.Name,
				Path:     path,
				Duration: result.Duration(),
				Layers:   len(result.Layers),
				Stats:    summary,
			}
			log.Printf("Rendered %s in %s", preset.Name, result.Elapsed.Round(time.Millisecond))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
