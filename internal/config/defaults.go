package config

import (
	_ "embed"
)

//go:embed defaults/floorquiz.yaml
var defaultFloorQuizYAML []byte

// DefaultButtons is the classic elevator panel, top row first.
var DefaultButtons = []int{10, 11, 12, 7, 8, 9, 4, 5, 6, 1, 2, 3, 0}

// DefaultFloorQuizConfig returns the built-in configuration.
// It matches defaults/floorquiz.yaml and is used when the embedded file cannot be parsed.
func DefaultFloorQuizConfig() FloorQuizConfig {
	return FloorQuizConfig{
		Timer: TimerConfig{
			Seconds:       60,
			DigitWindowMs: 400,
		},
		Questions: QuestionsConfig{
			Operators:  []string{"+", "-", "*"},
			OperandMin: 1,
			OperandMax: 20,
			AnswerMin:  0,
			AnswerMax:  11,
		},
		Panel: PanelConfig{
			Buttons: append([]int(nil), DefaultButtons...),
			Columns: 3,
		},
		Feedback: FeedbackConfig{
			FlashMs: 500,
		},
		Audio: AudioConfig{
			Volume:     0.8,
			MusicSpeed: 0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 20,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "floorquiz", "floorquiz_practice":
		return defaultFloorQuizYAML
	default:
		return nil
	}
}
