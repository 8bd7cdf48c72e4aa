package game

// Direction is the facing of a piece. Values are ordered clockwise so that a
// right turn is +1 and a left turn is -1 modulo 4.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists every facing in clockwise order.
var Directions = [4]Direction{Up, Right, Down, Left}

// unit steps per facing; y grows upwards
var steps = [4][2]int{
	Up:    {0, 1},
	Right: {1, 0},
	Down:  {0, -1},
	Left:  {-1, 0},
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "UP"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Left:
		return "LEFT"
	}
	return "UNKNOWN"
}

// Valid reports whether d is one of the four facings.
func (d Direction) Valid() bool {
	return d >= Up && d <= Left
}

// TurnLeft rotates the direction by 90° counter-clockwise.
func (d Direction) TurnLeft() Direction {
	return d.rotate(-1)
}

// TurnRight rotates the direction by 90° clockwise.
func (d Direction) TurnRight() Direction {
	return d.rotate(1)
}

// Step returns the unit offset of one move in this direction.
func (d Direction) Step() (dx, dy int) {
	s := steps[d]
	return s[0], s[1]
}

func (d Direction) rotate(quarters int) Direction {
	return Direction(((int(d)+quarters)%4 + 4) % 4)
}
