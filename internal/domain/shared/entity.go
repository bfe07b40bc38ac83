package shared

import (
	"time"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uint
	GetCreatedAt() time.Time
	GetUpdatedAt() time.Time
}

// BaseEntity provides common fields for all entities.
// The ID is assigned by the record store on first insert and is
// immutable for the lifetime of the record.
type BaseEntity struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uint {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// GetUpdatedAt returns the last update timestamp
func (e *BaseEntity) GetUpdatedAt() time.Time {
	return e.UpdatedAt
}

// NewBaseEntity creates a new base entity with both timestamps set to now.
// The ID is left zero until the store assigns one.
func NewBaseEntity() BaseEntity {
	now := time.Now().UTC()
	return BaseEntity{
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch refreshes the updated timestamp
func (e *BaseEntity) Touch() {
	e.UpdatedAt = time.Now().UTC()
}
