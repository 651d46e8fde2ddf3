// internal/component/tower.go
package component

import (
	"elemental-td/internal/defs"
	"elemental-td/pkg/grid"
)

// Tower is a placed tower. Identity (entity, cell, level) is separate from
// the definition: an elemental upgrade swaps DefID and Element while the
// entity, its position and its level stay put.
type Tower struct {
	DefID   string
	Level   int
	Element defs.ElementType // damage element; ElementNone for the basic tower
	Cell    grid.Cell
}
