// ABOUTME: Oto-based audio output implementation
// ABOUTME: Plays float sample buffers with software volume control
package output

import (
	"fmt"
	"io"
	"log"
	"time"

	"github.com/Resonate-Protocol/resonate-noise/pkg/audio"
	"github.com/Resonate-Protocol/resonate-noise/pkg/audio/encode"
	"github.com/ebitengine/oto/v3"
)

// Oto output implementation using oto library
type Oto struct {
	otoCtx     *oto.Context
	player     *oto.Player
	encoder    encode.Encoder
	pipeReader *io.PipeReader
	pipeWriter *io.PipeWriter
	sampleRate int
	channels   int
	volume     int
	muted      bool
	ready      bool
}

// NewOto creates a new Oto output
func NewOto() *Oto {
	return &Oto{
		volume: 100,
	}
}

// Open initializes the output device
func (o *Oto) Open(sampleRate, channels int) error {
	// oto allows one context per process
	if o.otoCtx != nil {
		if o.sampleRate != sampleRate || o.channels != channels {
			return fmt.Errorf("output already open at %dHz %dch", o.sampleRate, o.channels)
		}
		return nil
	}

	encoder, err := encode.NewPCM(audio.Format{
		Codec:      "pcm",
		SampleRate: sampleRate,
		Channels:   channels,
		BitDepth:   audio.DefaultBitDepth,
	})
	if err != nil {
		return err
	}

	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("failed to create oto context: %w", err)
	}
	<-readyChan

	o.otoCtx = ctx
	o.encoder = encoder
	o.sampleRate = sampleRate
	o.channels = channels

	o.pipeReader, o.pipeWriter = io.Pipe()
	o.player = o.otoCtx.NewPlayer(o.pipeReader)
	o.player.Play()
	o.ready = true

	log.Printf("Audio output initialized: %dHz, %d channels", sampleRate, channels)

	return nil
}

// Write queues samples for playback (blocks until the player accepts them)
func (o *Oto) Write(samples []float32) error {
	if !o.ready {
		return fmt.Errorf("output not initialized")
	}

	pcm, err := o.encoder.Encode(applyVolume(samples, o.volume, o.muted))
	if err != nil {
		return fmt.Errorf("failed to encode samples: %w", err)
	}
	if _, err := o.pipeWriter.Write(pcm); err != nil {
		return fmt.Errorf("pipe write failed: %w", err)
	}

	return nil
}

// Close waits for buffered audio to drain and releases the device
func (o *Oto) Close() error {
	if o.pipeWriter != nil {
		o.pipeWriter.Close()
		o.pipeWriter = nil
	}
	if o.player != nil {
		for o.player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		if err := o.player.Close(); err != nil {
			log.Printf("Warning: player close failed: %v", err)
		}
		o.player = nil
	}
	if o.pipeReader != nil {
		o.pipeReader.Close()
		o.pipeReader = nil
	}
	if o.otoCtx != nil {
		if err := o.otoCtx.Suspend(); err != nil {
			return fmt.Errorf("failed to suspend output: %w", err)
		}
	}
	if o.encoder != nil {
		o.encoder.Close()
	}
	o.ready = false
	return nil
}

// SetVolume sets the volume (0-100)
func (o *Oto) SetVolume(volume int) {
	o.volume = clampVolume(volume)
}

// SetMuted sets mute state
func (o *Oto) SetMuted(muted bool) {
	o.muted = muted
}

// GetVolume returns current volume
func (o *Oto) GetVolume() int {
	return o.volume
}

// IsMuted returns mute state
func (o *Oto) IsMuted() bool {
	return o.muted
}

func clampVolume(volume int) int {
	if volume < 0 {
		return 0
	}
	if volume > 100 {
		return 100
	}
	return volume
}

// applyVolume scales samples and clamps them to [-1, 1]
func applyVolume(samples []float32, volume int, muted bool) []float32 {
	multiplier := getVolumeMultiplier(volume, muted)

	result := make([]float32, len(samples))
	for i, sample := range samples {
		scaled := float64(sample) * multiplier
		if scaled > 1 {
			scaled = 1
		} else if scaled < -1 {
			scaled = -1
		}
		result[i] = float32(scaled)
	}

	return result
}

func getVolumeMultiplier(volume int, muted bool) float64 {
	if muted {
		return 0.0
	}
	return float64(volume) / 100.0
}
