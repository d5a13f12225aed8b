package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/floor-quiz/internal/config"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(config.DefaultFloorQuizConfig().Audio, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlaySuccess()
	sm.PlayError()
	sm.StartMusic()
	sm.StopMusic()
	sm.Close()
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.PlaySuccess()
	p.PlayError()
	p.StartMusic()
	p.StopMusic()
	p.Close()
}

// writeWAV encodes a short tone to a file.
func writeWAV(t *testing.T, path string, rate beep.SampleRate) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	f2 := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, NewOscillator(440, 100*time.Millisecond, WaveSine, rate), f2); err != nil {
		t.Fatalf("wav.Encode: %v", err)
	}
}

func TestLoadWAV(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		rate beep.SampleRate
	}{
		{"native rate", sampleRate},
		{"resampled", beep.SampleRate(22050)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".wav")
			writeWAV(t, path, tt.rate)

			buf, err := LoadWAV(path)
			if err != nil {
				t.Fatalf("LoadWAV: %v", err)
			}
			// 100ms at the output rate, within resampling slack
			want := sampleRate.N(100 * time.Millisecond)
			if got := buf.Len(); got < want*9/10 || got > want*11/10 {
				t.Errorf("Len = %d, want about %d", got, want)
			}
		})
	}
}

func TestLoadWAVErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadWAV(filepath.Join(dir, "missing.wav")); err == nil {
		t.Error("Expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.wav")
	if err := os.WriteFile(bad, []byte("not a wav file"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWAV(bad); err == nil {
		t.Error("Expected error for corrupt file")
	}
}

func TestLoadSoundsFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeWAV(t, filepath.Join(dir, SuccessFile), sampleRate)
	if err := os.WriteFile(filepath.Join(dir, ErrorFile), []byte("junk"), 0o644); err != nil {
		t.Fatal(err)
	}

	snd, errs := loadSounds(dir)
	if len(errs) != 1 {
		t.Errorf("Expected 1 error for the corrupt file, got %v", errs)
	}
	if snd.success == nil || snd.errBuzz == nil || snd.music == nil {
		t.Fatal("Every sound should be available")
	}

	// success.wav replaced the chime; the others stay synthesized
	if got, want := snd.success.Len(), sampleRate.N(100*time.Millisecond); got != want {
		t.Errorf("success Len = %d, want %d from the WAV file", got, want)
	}
	if got, want := snd.music.Len(), sampleRate.N(MelodyDuration()); got != want {
		t.Errorf("music Len = %d, want %d from the melody", got, want)
	}
}

func TestLoadSoundsNoDir(t *testing.T) {
	snd, errs := loadSounds("")
	if len(errs) != 0 {
		t.Errorf("Unexpected errors: %v", errs)
	}
	if snd.success.Len() == 0 || snd.errBuzz.Len() == 0 || snd.music.Len() == 0 {
		t.Error("Synthesized sounds should not be empty")
	}
}

func TestStartMusicRestartsFromTop(t *testing.T) {
	sm := NewSoundManager(config.DefaultFloorQuizConfig().Audio, nil)
	// Skip speaker.Init so the test needs no audio device
	sm.sounds = sounds{music: bufferOf(beep.Silence(sampleRate.N(time.Second)))}
	sm.initialized = true

	sm.StartMusic()
	first := sm.music
	if first == nil {
		t.Fatal("StartMusic() did not queue music")
	}
	samples := make([][2]float64, 512)
	sm.mixer.Stream(samples)

	sm.StopMusic()
	if !first.Paused {
		t.Error("StopMusic() should pause the music")
	}

	sm.StartMusic()
	if sm.music == first {
		t.Fatal("StartMusic() resumed the old loop instead of starting over")
	}
	if first.Streamer != nil {
		t.Error("previous loop should be detached")
	}

	sm.mixer.Stream(samples)
	if got := sm.mixer.Len(); got != 1 {
		t.Errorf("mixer holds %d streamers, expected 1", got)
	}
}
