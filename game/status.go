package game

// Status is the state of a game. BlackWin and WhiteWin are terminal.
type Status int

const (
	Running Status = iota
	BlackWin
	WhiteWin
)

func (s Status) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case BlackWin:
		return "BLACK_WIN"
	case WhiteWin:
		return "WHITE_WIN"
	}
	return "UNKNOWN"
}

// Terminal reports whether the game has been decided.
func (s Status) Terminal() bool {
	return s != Running
}
