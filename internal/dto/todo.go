package dto

import (
	"encoding/json"
	"time"

	dom "todoapi/internal/domain"
)

// Opt is an optional JSON field that remembers whether it appeared in the
// request body at all. Set is false when the field was omitted; Set with a
// nil Value means an explicit null. This is what lets PUT distinguish
// "leave description alone" from "clear description".
type Opt[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON is only invoked for fields present in the body, so reaching
// here means the field was supplied.
func (o *Opt[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

type CreateTodoRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type UpdateTodoRequest struct {
	Title       Opt[string] `json:"title"`
	Description Opt[string] `json:"description"`
}

// Patch converts the request into the domain patch shape.
func (r UpdateTodoRequest) Patch() dom.TodoPatch {
	return dom.TodoPatch{
		Title:          r.Title.Value,
		Description:    r.Description.Value,
		DescriptionSet: r.Description.Set,
	}
}

type TodoResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
