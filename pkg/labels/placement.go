package labels

import "strconv"

// Placement holds the SVG text attributes a renderer applies to a tick label
// for a given rotation.
type Placement struct {
	Angle     Rotation `json:"angle"`
	Transform string   `json:"transform"`
	DX        string   `json:"dx"`
	DY        string   `json:"dy"`
	Anchor    string   `json:"anchor"`
}

// PlacementFor returns the label attributes for r. Angles outside the enumerated
// set get a generic placement anchored away from the tick.
func PlacementFor(r Rotation) Placement {
	switch r {
	case RotateNone:
		return Placement{Angle: r, Transform: "rotate(0)", DX: "0em", DY: "1.2em", Anchor: "middle"}
	case Rotate45:
		return Placement{Angle: r, Transform: "rotate(-45)", DX: "-0.5em", DY: "0.75em", Anchor: "end"}
	case Rotate90:
		return Placement{Angle: r, Transform: "rotate(-90)", DX: "-1.5em", DY: "-0.5em", Anchor: "end"}
	}

	p := Placement{
		Angle:     r,
		Transform: "rotate(" + strconv.Itoa(int(r)) + ")",
		DY:        "0.75em",
		DX:        "0.5em",
		Anchor:    "start",
	}
	if r < 0 {
		p.DX, p.Anchor = "-0.5em", "end"
	}
	return p
}
