// Package config provides YAML-based game configuration loading and
// difficulty management for the floor quiz.
package config

// FloorQuizConfig contains all tunables for the floor quiz.
type FloorQuizConfig struct {
	Timer      TimerConfig      `yaml:"timer"`
	Questions  QuestionsConfig  `yaml:"questions"`
	Panel      PanelConfig      `yaml:"panel"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// TimerConfig defines the countdown and keyboard entry timing.
type TimerConfig struct {
	Seconds       int `yaml:"seconds"`         // Countdown start value for timed mode
	DigitWindowMs int `yaml:"digit_window_ms"` // How long a typed "1" waits for a second digit
}

// QuestionsConfig bounds generated questions. Ranges are inclusive.
type QuestionsConfig struct {
	Operators  []string `yaml:"operators"`
	OperandMin int      `yaml:"operand_min"`
	OperandMax int      `yaml:"operand_max"`
	AnswerMin  int      `yaml:"answer_min"`
	AnswerMax  int      `yaml:"answer_max"`
}

// PanelConfig defines the elevator button grid.
type PanelConfig struct {
	Buttons []int `yaml:"buttons"` // Floors in row-major order
	Columns int   `yaml:"columns"`
}

// FeedbackConfig defines visual feedback timing.
type FeedbackConfig struct {
	FlashMs int `yaml:"flash_ms"` // Score stays red this long after a wrong answer
}

// AudioConfig defines playback settings.
type AudioConfig struct {
	Volume     float64 `yaml:"volume"`      // Master volume, 0.0 - 1.0
	MusicSpeed float64 `yaml:"music_speed"` // Playback ratio for background music
	AssetsDir  string  `yaml:"assets_dir"`  // Optional directory with success.wav, error.wav, music.wav
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	OperandBoost int `yaml:"operand_boost"` // Added to operand_max at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// ParsePreset accepts a preset name; "" means no preset.
func ParsePreset(s string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	default:
		return "", false
	}
}
