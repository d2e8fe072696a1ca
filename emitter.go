package lenslab

// emitterExtent is the half-size of an emitter's bounding square.
const emitterExtent = 20

// Emitter is a laser source emitting one ray.
type Emitter struct {
	Position Vec2
	Angle    float64
}

// NewEmitter creates an emitter at position pointing at angle radians.
func NewEmitter(position Vec2, angle float64) Emitter {
	return Emitter{Position: position, Angle: angle}
}

// Ray returns the emitted ray.
func (e Emitter) Ray() Ray {
	return Ray{Origin: e.Position, Dir: FromAngle(e.Angle).Normalize()}
}

// Kind implements Component.
func (Emitter) Kind() Kind { return KindEmitter }

// Bounds implements Component.
func (e Emitter) Bounds() Rect {
	d := V2(emitterExtent, emitterExtent)
	return Rect{Min: e.Position.Sub(d), Max: e.Position.Add(d)}
}

// Draw implements Component: a filled disc with a direction tick.
func (e Emitter) Draw(d Drawer) {
	d.Circle(e.Position, 12, Style{Color: ColorEmitter, Fill: true})
	tip := e.Position.Add(FromAngle(e.Angle).Mul(40))
	d.Polyline([]Vec2{e.Position, tip}, false, Style{Color: ColorEmitter, Width: 4})
}

// Rotated implements Component.
func (e Emitter) Rotated(delta float64) Component {
	e.Angle += delta
	return e
}

// Translated implements Component.
func (e Emitter) Translated(offset Vec2) Component {
	e.Position = e.Position.Add(offset)
	return e
}

func (Emitter) component() {}
