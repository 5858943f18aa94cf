package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's box in the debug collision space.
type ObjectData struct {
	*resolv.Object
}

// MoveTo places the box at (x, y) and refreshes its space cells.
func (o ObjectData) MoveTo(x, y float64) {
	if o.Object == nil {
		return
	}
	o.X, o.Y = x, y
	o.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
