package simulation

// Command is one discrete input event. The input collaborator maps key
// presses onto these; Apply mutates the clock/view accordingly.
type Command int

const (
	CmdNone Command = iota
	CmdIncreaseSpeed
	CmdDecreaseSpeed
	CmdTogglePause
	CmdSwitchFace
)

// SpeedStep is the multiplicative speed change per key press.
const SpeedStep = 1.5

// Apply dispatches a command against the clock and view. It returns a new
// window caption when the face switched, otherwise the empty string.
func Apply(cmd Command, clock *Clock, view *View) string {
	switch cmd {
	case CmdIncreaseSpeed:
		clock.SetSpeed(SpeedStep)
	case CmdDecreaseSpeed:
		clock.SetSpeed(1 / SpeedStep)
	case CmdTogglePause:
		clock.TogglePause()
	case CmdSwitchFace:
		return view.Toggle()
	}
	return ""
}
