// internal/component/render.go
package component

import "image/color"

// Renderable is the minimal draw data consumed by the presentation layer.
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
}
