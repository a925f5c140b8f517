// ABOUTME: Entry point for the noisegen renderer
// ABOUTME: Parses CLI flags, renders a noise file and optionally plays it
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Resonate-Protocol/resonate-noise/internal/config"
	"github.com/Resonate-Protocol/resonate-noise/internal/render"
	"github.com/Resonate-Protocol/resonate-noise/internal/stats"
	"github.com/Resonate-Protocol/resonate-noise/internal/ui"
	"github.com/Resonate-Protocol/resonate-noise/internal/version"
	"github.com/Resonate-Protocol/resonate-noise/pkg/ambient"
	"github.com/Resonate-Protocol/resonate-noise/pkg/audio/output"
	"github.com/Resonate-Protocol/resonate-noise/pkg/noise"
)

// layerFiles collects repeated -layer-file flags
type layerFiles []string

func (l *layerFiles) String() string {
	return strings.Join(*l, ",")
}

func (l *layerFiles) Set(v string) error {
	*l = append(*l, v)
	return nil
}

var (
	configPath = flag.String("config", "", "YAML preset file (flags override its values)")
	savePath   = flag.String("save-config", "", "Write the effective preset to this YAML file")
	noiseType  = flag.String("type", "white", "Noise type: white, pink or brown")
	duration   = flag.Float64("duration", 60, "Duration in seconds")
	sampleRate = flag.Int("rate", 44100, "Sample rate in Hz")
	seed       = flag.Int("seed", 0, "PRNG seed (omit for a random render)")
	stereo     = flag.Bool("stereo", false, "Write two identical channels")
	fadeIn     = flag.Float64("fade-in", 0, "Fade-in length in seconds")
	fadeOut    = flag.Float64("fade-out", 0, "Fade-out length in seconds")
	rain       = flag.Float64("rain", 0, "Rain layer intensity 0-1 (0 disables)")
	birds      = flag.Float64("birds", 0, "Bird layer intensity 0-1 (0 disables)")
	water      = flag.Float64("water", 0, "Running water layer intensity 0-1 (0 disables)")
	variation  = flag.Float64("variation", 0.5, "How strongly the noise modulates layer events, 0-1")
	baseLevel  = flag.Float64("base-level", 0.7, "Mix gain of the noise bed")
	layerLevel = flag.Float64("layer-level", 0.3, "Mix gain shared by all layers")
	outPath    = flag.String("o", "noise.wav", "Output WAV path")
	atomic     = flag.Bool("atomic", false, "Write to a temporary file and rename into place")
	play       = flag.Bool("play", false, "Play the render after writing it")
	volume     = flag.Int("volume", 80, "Playback volume 0-100")
	useTUI     = flag.Bool("tui", false, "Show render progress in a TUI")
	logFile    = flag.String("log-file", "", "Also write logs to this file")
	debug      = flag.Bool("debug", false, "Log every pipeline stage")
	showVer    = flag.Bool("version", false, "Print version and exit")
	files      layerFiles
)

func init() {
	flag.Var(&files, "layer-file", "External WAV, MP3 or FLAC layer (repeatable)")
}

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version.String())
		return
	}

	// Set up logging
	var logOut io.Writer = os.Stdout
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatalf("error opening log file: %v", err)
		}
		defer func() { _ = f.Close() }()

		if *useTUI {
			// TUI mode: log only to file
			logOut = f
		} else {
			logOut = io.MultiWriter(os.Stdout, f)
		}
	} else if *useTUI {
		logOut = io.Discard
	}
	log.SetOutput(logOut)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	visited := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { visited[f.Name] = true })
	if err := applyFlags(cfg, visited); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := savePreset(cfg); err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := cfg.RenderOptions()

	var result *render.Result
	var err error
	if *useTUI {
		result, err = renderWithTUI(ctx, cfg, opts)
	} else {
		result, err = renderAndWrite(ctx, cfg, opts, debugObserver())
	}
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if *play {
		if err := playResult(result); err != nil {
			log.Fatalf("Playback failed: %v", err)
		}
	}
}

// applyFlags copies explicitly set flags over the preset
func applyFlags(cfg *config.Config, visited map[string]bool) error {
	if visited["type"] {
		t, err := noise.ParseType(*noiseType)
		if err != nil {
			return err
		}
		cfg.Type = t
	}
	if visited["duration"] {
		cfg.Duration = *duration
	}
	if visited["rate"] {
		cfg.SampleRate = *sampleRate
	}
	if visited["seed"] {
		if *seed < math.MinInt32 || *seed > math.MaxInt32 {
			return fmt.Errorf("seed %d outside the 32-bit range [%d, %d]", *seed, math.MinInt32, math.MaxInt32)
		}
		s := int32(*seed)
		cfg.Seed = &s
	}
	if visited["stereo"] {
		cfg.Stereo = *stereo
	}
	if visited["fade-in"] {
		cfg.FadeIn = *fadeIn
	}
	if visited["fade-out"] {
		cfg.FadeOut = *fadeOut
	}
	if visited["variation"] {
		cfg.Variation = *variation
	}
	if visited["base-level"] {
		cfg.Levels.Base = *baseLevel
	}
	if visited["layer-level"] {
		cfg.Levels.Layer = *layerLevel
	}
	if visited["rain"] {
		cfg.SetLayer(ambient.Rain, *rain)
	}
	if visited["birds"] {
		cfg.SetLayer(ambient.Birds, *birds)
	}
	if visited["water"] {
		cfg.SetLayer(ambient.Water, *water)
	}
	if visited["layer-file"] {
		cfg.LayerFiles = append([]string(nil), files...)
	}
	if visited["o"] || cfg.Output == "" {
		cfg.Output = *outPath
	}
	return nil
}

// savePreset writes the effective preset when -save-config is set
func savePreset(cfg *config.Config) error {
	if *savePath == "" {
		return nil
	}
	if err := config.Save(*savePath, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	log.Printf("Saved preset to %s", *savePath)
	return nil
}

// debugObserver logs stage events when -debug is set
func debugObserver() render.Observer {
	if !*debug {
		return nil
	}
	return render.ObserverFunc(func(e render.Event) {
		log.Printf("[%s] %-8s %s (%s)", e.RenderID, e.Stage, e.Detail, e.Elapsed)
	})
}

// renderAndWrite renders the preset, writes it and logs level statistics
func renderAndWrite(ctx context.Context, cfg *config.Config, opts render.Options, obs render.Observer) (*render.Result, error) {
	result, err := render.Render(ctx, opts, obs)
	if err != nil {
		return nil, err
	}

	if err := render.Write(result, cfg.Output, *atomic); err != nil {
		return nil, err
	}

	for _, l := range result.Layers {
		log.Printf("Layer %s: %s", l.Name, l.Description)
	}

	summary, err := stats.Summarize(result.Samples)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize render: %w", err)
	}
	log.Printf("Wrote %s: %s, %s", cfg.Output, result.Duration(), summary)

	return result, nil
}

// renderWithTUI runs the render in the background while the TUI shows
// progress. It returns once the user quits.
func renderWithTUI(ctx context.Context, cfg *config.Config, opts render.Options) (*render.Result, error) {
	prog, err := ui.Run(ui.Request{
		Title:      describe(cfg),
		Output:     cfg.Output,
		SampleRate: opts.SampleRate,
		Channels:   opts.Channels(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		result *render.Result
		err    error
	}
	done := make(chan outcome, 1)

	go func() {
		obs := render.Observers{ui.Observer(prog), debugObserver()}
		result, err := renderAndWrite(ctx, cfg, opts, obs)
		msg := ui.DoneMsg{Err: err}
		if err == nil {
			msg.Summary = fmt.Sprintf("Wrote %s (%s, %d layer(s))", cfg.Output, result.Duration(), len(result.Layers))
			if s, serr := stats.Summarize(result.Samples); serr == nil {
				msg.Summary += ". " + s.String()
			}
		}
		prog.Send(msg)
		done <- outcome{result, err}
	}()

	if _, err := prog.Run(); err != nil {
		return nil, fmt.Errorf("TUI failed: %w", err)
	}

	// Quitting early abandons the render at the next stage boundary
	cancel()
	o := <-done
	return o.result, o.err
}

// describe returns a short title such as "pink 60s + rain, birds"
func describe(cfg *config.Config) string {
	s := fmt.Sprintf("%s %gs", cfg.Type, cfg.Duration)
	var names []string
	for _, l := range cfg.Layers {
		names = append(names, l.Kind.String())
	}
	names = append(names, cfg.LayerFiles...)
	if len(names) > 0 {
		s += " + " + strings.Join(names, ", ")
	}
	return s
}

// playResult plays the rendered buffer through the default device
func playResult(result *render.Result) error {
	out := output.NewOto()
	out.SetVolume(*volume)

	if err := out.Open(result.SampleRate, result.Channels); err != nil {
		return err
	}
	log.Printf("Playing %s at volume %d", result.Duration(), out.GetVolume())

	if err := out.Write(result.Samples); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
