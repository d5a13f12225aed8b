package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Asset file names looked up in the configured assets directory.
const (
	SuccessFile = "success.wav"
	ErrorFile   = "error.wav"
	MusicFile   = "music.wav"
)

// resampleQuality is the beep resampler quality used for assets and music speed.
const resampleQuality = 4

// format is the output format every buffer is stored in.
var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// LoadWAV decodes a WAV file into a buffer at the output sample rate.
func LoadWAV(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}
	defer f.Close()

	s, srcFormat, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot decode %s: %w", path, err)
	}
	defer s.Close()

	var stream beep.Streamer = s
	if srcFormat.SampleRate != sampleRate {
		stream = beep.Resample(resampleQuality, srcFormat.SampleRate, sampleRate, s)
	}

	buf := beep.NewBuffer(format)
	buf.Append(stream)
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s has no samples", path)
	}
	return buf, nil
}

// bufferOf renders a finite streamer into a buffer.
func bufferOf(s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return buf
}

// sounds holds the three sounds ready to play.
type sounds struct {
	success *beep.Buffer
	errBuzz *beep.Buffer
	music   *beep.Buffer
}

// loadSounds builds the synthesized sounds and replaces any that have a
// WAV file in dir. A missing file is not an error; a broken one is reported
// and the synthesized sound is kept.
func loadSounds(dir string) (sounds, []error) {
	snd := sounds{
		success: bufferOf(NewSuccessSound(sampleRate)),
		errBuzz: bufferOf(NewErrorSound(sampleRate)),
		music:   bufferOf(NewMelody(sampleRate)),
	}
	if dir == "" {
		return snd, nil
	}

	var errs []error
	for _, a := range []struct {
		name string
		dst  **beep.Buffer
	}{
		{SuccessFile, &snd.success},
		{ErrorFile, &snd.errBuzz},
		{MusicFile, &snd.music},
	} {
		buf, err := LoadWAV(filepath.Join(dir, a.name))
		switch {
		case err == nil:
			*a.dst = buf
		case errors.Is(err, fs.ErrNotExist):
		default:
			errs = append(errs, err)
		}
	}
	return snd, errs
}
