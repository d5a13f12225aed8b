package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/floor-quiz/internal/config"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// SoundManager plays game sounds through the system speaker.
// Every method is a no-op until Initialize succeeds, so a machine without an
// audio device still runs the game.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	logger      *log.Logger
	mixer       *beep.Mixer
	music       *beep.Ctrl
	sounds      sounds
	initialized bool
}

// NewSoundManager creates a sound manager. logger may be nil.
func NewSoundManager(cfg config.AudioConfig, logger *log.Logger) *SoundManager {
	if logger == nil {
		logger = log.Default()
	}
	return &SoundManager{
		cfg:    cfg,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Initialize builds the sounds and opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	snd, errs := loadSounds(sm.cfg.AssetsDir)
	for _, err := range errs {
		sm.logger.Warn("using synthesized sound", "err", err)
	}
	sm.sounds = snd

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(newVolume(sm.mixer, sm.cfg.Volume))
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", int(sampleRate), "volume", sm.cfg.Volume, "assets", sm.cfg.AssetsDir)
	return nil
}

// play adds a one-shot buffer to the mixer.
func (sm *SoundManager) play(buf *beep.Buffer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || buf == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(buf.Streamer(0, buf.Len()))
	speaker.Unlock()
}

// PlaySuccess plays the correct-floor chime.
func (sm *SoundManager) PlaySuccess() {
	sm.play(sm.sounds.success)
}

// PlayError plays the wrong-floor buzz.
func (sm *SoundManager) PlayError() {
	sm.play(sm.sounds.errBuzz)
}

// StartMusic plays the looping background music from the top.
// Music already playing or paused is dropped first.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.sounds.music == nil {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	retire(sm.music)
	buf := sm.sounds.music
	var s beep.Streamer = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	if speed := sm.cfg.MusicSpeed; speed > 0 && speed != 1 {
		s = beep.ResampleRatio(resampleQuality, speed, s)
	}
	sm.music = &beep.Ctrl{Streamer: s, Paused: false}
	sm.mixer.Add(sm.music)
}

// StopMusic pauses the background music where it is.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.music == nil {
		return
	}
	speaker.Lock()
	sm.music.Paused = true
	speaker.Unlock()
}

// retire detaches c from its source; the mixer drops it on the next buffer.
func retire(c *beep.Ctrl) {
	if c != nil {
		c.Streamer = nil
	}
}

// Close stops all sounds.
func (sm *SoundManager) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	if sm.music != nil {
		sm.music.Paused = true
	}
	sm.mixer.Clear()
	speaker.Unlock()

	// beep has no way to release the device per manager; clearing the mixer silences it
	sm.music = nil
	sm.initialized = false
}
