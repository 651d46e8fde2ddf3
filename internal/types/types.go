// internal/types/types.go
package types

// EntityID uniquely identifies an entity inside the ECS.
// ID 0 is reserved and never assigned.
type EntityID uint64
