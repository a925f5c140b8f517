// ABOUTME: Pipeline stage events
// ABOUTME: Lets callers follow a render as each stage completes
package render

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is a step of the render pipeline
type Stage int

const (
	StageNoise Stage = iota
	StageLayers
	StageExternal
	StageMix
	StageEnvelope
	StageChannels
	StageDone
)

// Stages lists pipeline steps in execution order
var Stages = []Stage{StageNoise, StageLayers, StageExternal, StageMix, StageEnvelope, StageChannels, StageDone}

func (s Stage) String() string {
	switch s {
	case StageNoise:
		return "noise"
	case StageLayers:
		return "layers"
	case StageExternal:
		return "external"
	case StageMix:
		return "mix"
	case StageEnvelope:
		return "envelope"
	case StageChannels:
		return "channels"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Event reports a completed stage
type Event struct {
	RenderID uuid.UUID
	Stage    Stage
	Detail   string
	Elapsed  time.Duration // since the render started
}

// Observer receives stage events. Observe is called from the rendering
// goroutine and should not block.
type Observer interface {
	Observe(Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}

// Observers fans events out to several observers
type Observers []Observer

func (obs Observers) Observe(e Event) {
	for _, o := range obs {
		if o != nil {
			o.Observe(e)
		}
	}
}
