package models

import "time"

// Customer is the single aggregate managed by this service.
// Its identity is assigned once at creation time and never changes;
// the Email value is the uniqueness key across the whole stored set.
type Customer struct {
	// ID is the opaque unique identifier of the customer (UUID string).
	// Assigned by the service layer at creation, immutable afterwards.
	ID string `json:"id"`

	// Name is the display name of the customer.
	Name string `json:"name"`

	// Email is the customer's e-mail address. No two stored customers may
	// share the same value; the database enforces this with a unique
	// constraint as a backstop to the service-level check.
	Email string `json:"email"`

	// CreatedAt is the timestamp when the record was persisted.
	// Used for auditing; never updated within the service's scope.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Customer model.
func (c Customer) TableName() string {
	return "customers"
}
