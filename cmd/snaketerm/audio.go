package main

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Audio plays short sine cues. A nil *Audio is silent.
type Audio struct{}

func NewAudio() (*Audio, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &Audio{}, nil
}

func (a *Audio) tone(freq float64, d time.Duration) {
	if a == nil {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Eat is the food pickup cue
func (a *Audio) Eat() {
	a.tone(880, 50*time.Millisecond)
}

// Die is the collision cue
func (a *Audio) Die() {
	a.tone(220, 150*time.Millisecond)
}

func (a *Audio) Close() {
	if a == nil {
		return
	}
	speaker.Close()
}
