package services

import (
	"context"

	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
)

// catalog holds the list/read/create/update/delete flow shared by every
// catalog kind. Kind-specific services validate their input and build the
// entity or field set, then delegate here.
type catalog[T models.Entity] struct {
	kind   models.Kind
	repo   repositories.CatalogRepository[T]
	guard  *OwnershipGuard
	events EventPublisher
}

func newCatalog[T models.Entity](repo repositories.CatalogRepository[T], guard *OwnershipGuard, events EventPublisher) catalog[T] {
	var zero T
	return catalog[T]{kind: zero.EntityKind(), repo: repo, guard: guard, events: events}
}

func (s catalog[T]) list(ctx context.Context, storeID string, filter repositories.Filter) ([]T, error) {
	if storeID == "" {
		return nil, missing("Store id")
	}
	return s.repo.FindMany(ctx, storeID, filter)
}

func (s catalog[T]) get(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, missing(s.kind.Label() + " id")
	}
	return s.repo.FindUnique(ctx, id)
}

// reference is a lookup entity that the written entity points at.
type reference struct {
	kind models.Kind
	id   string
}

// authorize runs the ownership check, then makes sure every reference lives
// in the same store.
func (s catalog[T]) authorize(ctx context.Context, callerID, storeID string, refs []reference) error {
	if err := s.guard.Require(ctx, callerID, storeID); err != nil {
		return err
	}
	for _, ref := range refs {
		if err := s.guard.RequireReference(ctx, storeID, ref.kind, ref.id); err != nil {
			return err
		}
	}
	return nil
}

func (s catalog[T]) create(ctx context.Context, callerID, storeID string, entity *T, refs ...reference) (*T, error) {
	if err := s.authorize(ctx, callerID, storeID, refs); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, err
	}
	announce(ctx, s.events, storeID, s.kind, (*entity).EntityID(), models.ActionCreated)
	return entity, nil
}

// update applies fields and returns the entity as stored afterwards, or nil
// when no entity with id exists in the store.
func (s catalog[T]) update(ctx context.Context, callerID, storeID, id string, fields map[string]interface{}, refs ...reference) (*T, error) {
	return s.updateWith(ctx, callerID, storeID, id, func(ctx context.Context) (int64, error) {
		return s.repo.UpdateMany(ctx, storeID, id, fields)
	}, refs...)
}

// updateWith is update with a custom write step, which reports the number of
// matched rows.
func (s catalog[T]) updateWith(ctx context.Context, callerID, storeID, id string, write func(context.Context) (int64, error), refs ...reference) (*T, error) {
	if id == "" {
		return nil, missing(s.kind.Label() + " id")
	}
	if err := s.authorize(ctx, callerID, storeID, refs); err != nil {
		return nil, err
	}
	n, err := write(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	announce(ctx, s.events, storeID, s.kind, id, models.ActionUpdated)
	return s.repo.FindUnique(ctx, id)
}

func (s catalog[T]) delete(ctx context.Context, callerID, storeID, id string) (*T, error) {
	if id == "" {
		return nil, missing(s.kind.Label() + " id")
	}
	if err := s.guard.Require(ctx, callerID, storeID); err != nil {
		return nil, err
	}
	removed, err := s.repo.Delete(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if removed != nil {
		announce(ctx, s.events, storeID, s.kind, id, models.ActionDeleted)
	}
	return removed, nil
}
