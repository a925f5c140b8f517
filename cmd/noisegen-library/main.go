// ABOUTME: Entry point for the sample library renderer
// ABOUTME: Renders every preset in a YAML manifest into an output directory
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/Resonate-Protocol/resonate-noise/internal/config"
	"github.com/Resonate-Protocol/resonate-noise/internal/version"
)

var (
	manifestPath = flag.String("manifest", "library.yaml", "YAML manifest of presets")
	outDir       = flag.String("out", "", "Output directory (default: manifest output_dir)")
	jobs         = flag.Int("jobs", runtime.NumCPU(), "Presets rendered in parallel")
	logFile      = flag.String("log-file", "noisegen-library.log", "Log file path")
	debug        = flag.Bool("debug", false, "Enable debug logging")
	showVer      = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVer {
		fmt.Println(version.String())
		return
	}

	// Set up logging (both file and console)
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer f.Close()

	multiWriter := io.MultiWriter(os.Stdout, f)
	log.SetOutput(multiWriter)

	manifest, err := config.LoadManifest(*manifestPath)
	if err != nil {
		log.Fatalf("Failed to load manifest: %v", err)
	}

	dir := manifest.OutputDir
	if *outDir != "" {
		dir = *outDir
	}

	log.Printf("%s: rendering %d preset(s) from %s into %s (%d jobs)",
		version.String(), len(manifest.Presets), *manifestPath, dir, *jobs)
	if *debug {
		log.Printf("Debug logging enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	entries, err := renderLibrary(ctx, manifest, dir, *jobs, *debug)
	if err != nil {
		log.Fatalf("Library render failed: %v", err)
	}

	for _, e := range entries {
		fmt.Println(e)
	}
	log.Printf("Library complete: %d file(s) in %s", len(entries), dir)
}
