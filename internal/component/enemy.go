// internal/component/enemy.go
package component

import "elemental-td/internal/defs"

// Enemy is a walker on the path. Wave records the wave it spawned in (its
// stats were scaled from it). ReachedEnd is terminal: once set the enemy is
// past the exit and waits for removal by the game loop.
type Enemy struct {
	DefID      string
	Wave       int
	Element    defs.ElementType // defender element, ElementNone for plain enemies
	Bounty     int
	ReachedEnd bool
}
