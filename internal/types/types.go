package types

// EntityID identifies an entity in the ECS store. Zero is never issued.
type EntityID uint64
