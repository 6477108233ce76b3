package service

import (
	"context"
	"errors"
	"strings"
	"time"

	dom "todoapi/internal/domain"
	"todoapi/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

var (
	ErrNotFound   = errors.New("todo not found")
	ErrEmptyTitle = errors.New("title must not be empty")
)

// ListCache is the slice of the todo cache the service uses: a cached list,
// refreshed on miss and dropped after every successful mutation.
// Satisfied by *cache.TodoCache.
type ListCache interface {
	GetList(ctx context.Context) ([]dom.Todo, error)
	SetList(ctx context.Context, list []dom.Todo) error
	Invalidate(ctx context.Context) error
}

type TodoService struct {
	repo  repo.TodoRepo
	cache ListCache
	sf    singleflight.Group
}

// NewTodoService creates a TodoService. If c is nil, caching is disabled.
func NewTodoService(r repo.TodoRepo, c ListCache) *TodoService {
	return &TodoService{repo: r, cache: c}
}

// Create validates the input, stamps both timestamps with the same instant
// and persists the todo. The returned entity carries the assigned id.
func (s *TodoService) Create(ctx context.Context, title string, desc *string) (dom.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return dom.Todo{}, ErrEmptyTitle
	}
	if desc != nil {
		d := strings.TrimSpace(*desc)
		desc = &d
	}

	now := time.Now().UTC()
	t, err := s.repo.Create(ctx, dom.Todo{
		Title:       title,
		Description: desc,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

// List returns every stored todo in insertion order. An empty store yields
// an empty slice, never an error.
func (s *TodoService) List(ctx context.Context) ([]dom.Todo, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			if list == nil {
				list = []dom.Todo{}
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Todo), nil
	}
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []dom.Todo{}
	}
	return list, nil
}

func (s *TodoService) GetByID(ctx context.Context, id int64) (dom.Todo, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	return t, nil
}

// Update applies only the fields present in patch and refreshes updated_at.
// An absent id performs no mutation and yields ErrNotFound.
func (s *TodoService) Update(ctx context.Context, id int64, patch dom.TodoPatch) (dom.Todo, error) {
	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return dom.Todo{}, ErrEmptyTitle
		}
		patch.Title = &trimmed
	}
	if patch.DescriptionSet && patch.Description != nil {
		d := strings.TrimSpace(*patch.Description)
		patch.Description = &d
	}

	t, err := s.repo.Update(ctx, id, patch, time.Now().UTC())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Todo{}, ErrNotFound
		}
		return dom.Todo{}, err
	}
	s.invalidateCache(ctx)
	return t, nil
}

// Delete removes the todo permanently. Reports whether a todo existed;
// deleting an absent id is not an error.
func (s *TodoService) Delete(ctx context.Context, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.invalidateCache(ctx)
	}
	return deleted, nil
}

func (s *TodoService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
