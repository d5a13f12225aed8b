package core

// EventKind identifies something a game wants the platform to react to,
// such as playing a sound or starting background music.
type EventKind int

const (
	EventNone         EventKind = iota
	EventCorrect                // Answer matched; platform plays the success sound
	EventWrong                  // Answer missed; platform plays the error sound
	EventSceneChanged           // Scene field holds the new scene name
	EventTimeUp                 // Countdown reached zero
)

func (k EventKind) String() string {
	switch k {
	case EventNone:
		return "none"
	case EventCorrect:
		return "correct"
	case EventWrong:
		return "wrong"
	case EventSceneChanged:
		return "scene_changed"
	case EventTimeUp:
		return "time_up"
	default:
		return "unknown"
	}
}

// Event is a single game event.
type Event struct {
	Kind  EventKind
	Scene string // For EventSceneChanged
	Value int    // Kind-specific payload: the pressed floor, or the final score
}
