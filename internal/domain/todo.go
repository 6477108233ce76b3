package domain

import "time"

// Domain entity: the business object. Does not depend on Gin, Postgres or Redis.
type Todo struct {
	ID          int64
	Title       string
	Description *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TodoPatch describes a partial update. A nil Title leaves the title
// unchanged. Description is consulted only when DescriptionSet is true;
// set-but-nil clears the field.
type TodoPatch struct {
	Title          *string
	Description    *string
	DescriptionSet bool
}
