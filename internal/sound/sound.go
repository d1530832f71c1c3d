// Package sound plays the optional completion sound.
package sound

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// Play decodes the wav file at path and plays it to completion through the
// default audio device. It blocks until playback ends.
func Play(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening sound file: %w", err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return fmt.Errorf("decoding sound file %s: %w", path, err)
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("initializing audio: %w", err)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   0,
	}, beep.Callback(func() {
		close(done)
	})))
	<-done

	return nil
}
