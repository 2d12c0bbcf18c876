package scene

// Key identifies a logical control.
type Key string

// Controls read by Update.
const (
	KeyForward    Key = "w"
	KeyTurnLeft   Key = "a"
	KeyTurnRight  Key = "d"
	KeyOrbitUp    Key = "i"
	KeyOrbitLeft  Key = "j"
	KeyOrbitDown  Key = "k"
	KeyOrbitRight Key = "l"
)

// Keys lists every control in a stable order.
var Keys = []Key{
	KeyForward, KeyTurnLeft, KeyTurnRight,
	KeyOrbitUp, KeyOrbitLeft, KeyOrbitDown, KeyOrbitRight,
}

// Input maps controls to their pressed state. A missing key is released.
type Input map[Key]bool
