// Package audio plays the floor quiz sounds: a chime for a correct floor, a
// buzz for a wrong one, and looping elevator music while a session runs.
package audio

// Player is what front ends call in response to game events.
// Implementations must be safe to call from the UI goroutine at any time.
type Player interface {
	PlaySuccess()
	PlayError()
	StartMusic()
	StopMusic()
	Close()
}

// Nop is a silent Player for SSH sessions, --mute and tests.
type Nop struct{}

func (Nop) PlaySuccess() {}
func (Nop) PlayError()   {}
func (Nop) StartMusic()  {}
func (Nop) StopMusic()   {}
func (Nop) Close()       {}

var (
	_ Player = Nop{}
	_ Player = (*SoundManager)(nil)
)
