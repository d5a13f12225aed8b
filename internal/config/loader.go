package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/floor-quiz/internal/quiz"
)

// MaxOperandSpan bounds operand_max - operand_min. Wider ranges make
// rejection sampling miss the answer range almost every draw.
const MaxOperandSpan = 1000

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// LoadFloorQuiz loads the floor quiz configuration.
// Search order: customPath -> ~/.floorquiz/configs/floorquiz.yaml -> ./configs/floorquiz.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadFloorQuiz(customPath string) (FloorQuizConfig, error) {
	cfg := DefaultFloorQuizConfig()

	// An explicit path must exist and parse
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := decode(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("floorquiz.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := decode(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultFloorQuizConfig()
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "floorquiz.yaml")); err == nil {
		if err := decode(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultFloorQuizConfig()
	}

	if err := decode(defaultFloorQuizYAML, &cfg); err != nil {
		return DefaultFloorQuizConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode unmarshals YAML over cfg. Lists replace, they do not merge.
func decode(data []byte, cfg *FloorQuizConfig) error {
	return yaml.Unmarshal(data, cfg)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floorquiz", "configs", filename)
}

// ApplyFloorQuizPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyFloorQuizPreset(cfg *FloorQuizConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Timer.Seconds = 90
		cfg.Questions.OperandMax = 10
	case DifficultyHard:
		cfg.Timer.Seconds = 45
		cfg.Difficulty.Progression = ProgressionConfig{Type: "score", MaxAt: 20}
		cfg.Difficulty.Scaling.OperandBoost = 10
	}
}

// QuestionOptions converts the questions section to generator options.
func (c FloorQuizConfig) QuestionOptions() quiz.Options {
	ops := make([]quiz.Operator, len(c.Questions.Operators))
	for i, s := range c.Questions.Operators {
		ops[i] = quiz.Operator(s)
	}
	return quiz.Options{
		Operators:  ops,
		OperandMin: c.Questions.OperandMin,
		OperandMax: c.Questions.OperandMax,
		AnswerMin:  c.Questions.AnswerMin,
		AnswerMax:  c.Questions.AnswerMax,
	}
}

// Validate checks every field. The returned error wraps ErrInvalid and names the field.
func (c FloorQuizConfig) Validate() error {
	invalid := func(field, format string, args ...any) error {
		return fmt.Errorf("%w: %s: %s", ErrInvalid, field, fmt.Sprintf(format, args...))
	}

	if c.Timer.Seconds <= 0 {
		return invalid("timer.seconds", "must be positive, got %d", c.Timer.Seconds)
	}
	if c.Timer.DigitWindowMs < 0 || c.Timer.DigitWindowMs > 5000 {
		return invalid("timer.digit_window_ms", "must be in [0, 5000], got %d", c.Timer.DigitWindowMs)
	}

	if span := c.Questions.OperandMax - c.Questions.OperandMin; span > MaxOperandSpan {
		return invalid("questions.operand_max", "operand range may span at most %d, got %d", MaxOperandSpan, span)
	}
	if err := c.QuestionOptions().Validate(); err != nil {
		return invalid("questions", "%v", err)
	}

	if len(c.Panel.Buttons) == 0 {
		return invalid("panel.buttons", "must not be empty")
	}
	if c.Panel.Columns <= 0 || c.Panel.Columns > len(c.Panel.Buttons) {
		return invalid("panel.columns", "must be in [1, %d], got %d", len(c.Panel.Buttons), c.Panel.Columns)
	}
	seen := make(map[int]bool, len(c.Panel.Buttons))
	for _, b := range c.Panel.Buttons {
		if b < 0 || b > 99 {
			return invalid("panel.buttons", "floor %d outside [0, 99]", b)
		}
		if seen[b] {
			return invalid("panel.buttons", "floor %d listed twice", b)
		}
		seen[b] = true
	}
	for a := c.Questions.AnswerMin; a <= c.Questions.AnswerMax; a++ {
		if !seen[a] {
			return invalid("panel.buttons", "answer %d has no button", a)
		}
	}

	if c.Feedback.FlashMs < 0 {
		return invalid("feedback.flash_ms", "must not be negative, got %d", c.Feedback.FlashMs)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return invalid("audio.volume", "must be in [0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.MusicSpeed <= 0 || c.Audio.MusicSpeed > 4 {
		return invalid("audio.music_speed", "must be in (0, 4], got %g", c.Audio.MusicSpeed)
	}

	switch c.Difficulty.Progression.Type {
	case "none", "":
	case "score", "time":
		if c.Difficulty.Progression.MaxAt <= 0 {
			return invalid("difficulty.progression.max_at", "must be positive, got %d", c.Difficulty.Progression.MaxAt)
		}
	default:
		return invalid("difficulty.progression.type", "unknown type %q", c.Difficulty.Progression.Type)
	}
	if c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1 {
		return invalid("difficulty.initial_level", "must be in [0, 1], got %g", c.Difficulty.InitialLevel)
	}
	if c.Difficulty.Scaling.OperandBoost < 0 || c.Difficulty.Scaling.OperandBoost > MaxOperandSpan {
		return invalid("difficulty.scaling.operand_boost", "must be in [0, %d], got %d", MaxOperandSpan, c.Difficulty.Scaling.OperandBoost)
	}

	return nil
}
