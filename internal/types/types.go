// internal/types/types.go
package types

// EntityID is the integer handle of an entity in the world arena. Zero is never issued.
type EntityID uint64
