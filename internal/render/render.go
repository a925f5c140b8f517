// ABOUTME: Render pipeline from noise generation to channel expansion
// ABOUTME: Synthesizes ambient layers concurrently and mixes them in order
package render

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/Resonate-Protocol/resonate-noise/pkg/ambient"
	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
	"github.com/Resonate-Protocol/resonate-noise/pkg/audio/decode"
	"github.com/Resonate-Protocol/resonate-noise/pkg/audio/resample"
	"github.com/Resonate-Protocol/resonate-noise/pkg/envelope"
	"github.com/Resonate-Protocol/resonate-noise/pkg/mix"
	"github.com/Resonate-Protocol/resonate-noise/pkg/noise"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Render runs the full pipeline. ctx is checked between stages; obs may
// be nil.
func Render(ctx context.Context, opts Options, obs Observer) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = Observers(nil)
	}

	start := time.Now()
	id := uuid.New()
	emit := func(stage Stage, format string, args ...any) {
		obs.Observe(Event{
			RenderID: id,
			Stage:    stage,
			Detail:   fmt.Sprintf(format, args...),
			Elapsed:  time.Since(start),
		})
	}

	log.Printf("Render %s: %s noise, %.2fs at %dHz, %d channel(s)",
		id, opts.NoiseType, opts.Duration, opts.SampleRate, opts.Channels())

	base, err := noise.Generate(opts.NoiseType, opts.Duration, opts.SampleRate, opts.Seed)
	if err != nil {
		return nil, err
	}
	emit(StageNoise, "%d samples of %s noise", len(base), opts.NoiseType)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layers, err := synthesizeLayers(ctx, base, opts)
	if err != nil {
		return nil, err
	}
	emit(StageLayers, "%d synthesized layer(s)", len(layers))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	infos := make([]LayerInfo, 0, len(layers)+len(opts.LayerFiles))
	for _, l := range layers {
		infos = append(infos, LayerInfo{Name: l.Name, Description: l.Description, Source: "synth"})
	}

	for _, path := range opts.LayerFiles {
		l, err := loadExternal(path, opts.SampleRate, len(base))
		if err != nil {
			return nil, err
		}
		layers = append(layers, l)
		infos = append(infos, LayerInfo{Name: l.Name, Description: l.Description, Source: path})
	}
	emit(StageExternal, "%d external layer(s)", len(opts.LayerFiles))
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	mixed := mix.Mix(base, layers, opts.Levels)
	emit(StageMix, "base %.2f, layers %.2f", opts.Levels.Base, opts.Levels.Layer)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	shaped := envelope.Apply(mixed, opts.FadeIn, opts.FadeOut, opts.SampleRate)
	emit(StageEnvelope, "fade in %.2fs, fade out %.2fs", opts.FadeIn, opts.FadeOut)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := envelope.Expand(shaped, opts.Channels())
	emit(StageChannels, "%d channel(s)", opts.Channels())

	result := &Result{
		ID:         id,
		Samples:    out,
		SampleRate: opts.SampleRate,
		Channels:   opts.Channels(),
		Layers:     infos,
		Elapsed:    time.Since(start),
	}
	emit(StageDone, "rendered in %s", result.Elapsed.Round(time.Millisecond))
	log.Printf("Render %s complete: %d frames, %d layer(s), %s",
		id, result.Frames(), len(infos), result.Elapsed.Round(time.Millisecond))

	return result, nil
}

// synthesizeLayers computes each requested layer in its own goroutine and
// returns them in request order
func synthesizeLayers(ctx context.Context, base []float32, opts Options) ([]ambient.Layer, error) {
	layers := make([]ambient.Layer, len(opts.Layers))
	if len(layers) == 0 {
		return layers, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	for i, layer := range opts.Layers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			synth, err := ambient.For(layer.Kind)
			if err != nil {
				return err
			}
			layers[i] = synth.Synthesize(base, opts.SampleRate, ambient.Options{
				Intensity: layer.Intensity,
				Variation: layer.Variation,
				Seed:      opts.layerSeed(layer),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return layers, nil
}

// loadExternal decodes an audio file into a mono layer at sampleRate,
// looped or truncated to length
func loadExternal(path string, sampleRate, length int) (ambient.Layer, error) {
	buf, err := decode.File(path)
	if err != nil {
		return ambient.Layer{}, fmt.Errorf("failed to load layer file: %w", err)
	}

	mono := audio.Downmix(audio.ToFloat(buf.Samples), buf.Format.Channels)
	if buf.Format.SampleRate != sampleRate {
		mono = resample.Convert(mono, buf.Format.SampleRate, sampleRate, 1)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	desc := fmt.Sprintf("External audio from %s (%dHz, %d channel(s))",
		filepath.Base(path), buf.Format.SampleRate, buf.Format.Channels)

	return ambient.External(name, desc, mono, length), nil
}
