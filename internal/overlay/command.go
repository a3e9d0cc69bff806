package overlay

// Op identifies one draw command type
type Op string

// Draw command operations
const (
	OpClear    Op = "clear"
	OpLine     Op = "line"
	OpCircle   Op = "circle"
	OpArc      Op = "arc"
	OpPolyline Op = "polyline"
)

// Color is an RGB color with an opacity in [0,1]
type Color struct {
	R uint8   `json:"r"`
	G uint8   `json:"g"`
	B uint8   `json:"b"`
	A float64 `json:"a"`
}

// Point is a display-space coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Command is one ephemeral draw instruction in display space. Commands are
// produced per tick, handed to the drawing surface and never persisted.
type Command struct {
	Op      Op      `json:"op"`
	Points  []Point `json:"points,omitempty"` // line: 2 points, polyline: n points
	Center  *Point  `json:"center,omitempty"` // circle, arc
	Radius  float64 `json:"radius,omitempty"`
	Start   float64 `json:"start,omitempty"`    // arc start angle, radians
	End     float64 `json:"end,omitempty"`      // arc end angle, radians
	LongArc bool    `json:"long_arc,omitempty"` // sweep the long way around
	Fill    bool    `json:"fill,omitempty"`
	Width   float64 `json:"width,omitempty"`
	Color   Color   `json:"color"`
}

func clear() Command {
	return Command{Op: OpClear}
}

func line(a, b Point, c Color, width float64) Command {
	return Command{Op: OpLine, Points: []Point{a, b}, Color: c, Width: width}
}

func circle(center Point, radius float64, c Color, width float64, fill bool) Command {
	return Command{Op: OpCircle, Center: &center, Radius: radius, Color: c, Width: width, Fill: fill}
}

func polyline(points []Point, c Color, width float64) Command {
	return Command{Op: OpPolyline, Points: points, Color: c, Width: width}
}

func arc(center Point, radius, start, end float64, longArc bool, c Color, width float64) Command {
	return Command{Op: OpArc, Center: &center, Radius: radius, Start: start, End: end, LongArc: longArc, Color: c, Width: width}
}
