// file: internals/features/classwork/assignments/repository/memory_repository.go
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"assignment_backend/internals/databases"
	"assignment_backend/internals/features/classwork/assignments/model"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

// MemoryRepository keeps assignments in insertion order for DB_DRIVER=memory and tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]model.AssignmentModel
	now   func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: map[string]model.AssignmentModel{}, now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, m *model.AssignmentModel) (database.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.AssignmentID == "" {
		m.AssignmentID = uuid.NewString()
	}
	now := r.now().UTC()
	m.AssignmentCreatedAt, m.AssignmentUpdatedAt = now, now

	if _, exists := r.items[m.AssignmentID]; !exists {
		r.order = append(r.order, m.AssignmentID)
	}
	r.items[m.AssignmentID] = *m
	return database.InsertResult{Acknowledged: true, InsertedID: m.AssignmentID}, nil
}

func (r *MemoryRepository) matching(p listquery.Predicate) []model.AssignmentModel {
	out := []model.AssignmentModel{}
	for _, id := range r.order {
		m := r.items[id]
		if p.Matches(m.FieldValue) {
			out = append(out, m)
		}
	}
	return out
}

func (r *MemoryRepository) List(_ context.Context, spec listquery.Spec) ([]model.AssignmentModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.matching(spec.Predicate)
	if spec.Page == nil {
		return all, nil
	}
	start := spec.Page.Skip()
	if start < 0 || start >= len(all) {
		return []model.AssignmentModel{}, nil
	}
	end := start + spec.Page.Limit()
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *MemoryRepository) Count(_ context.Context, p listquery.Predicate) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.matching(p))), nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.AssignmentModel, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[key]
	if !ok {
		return nil, helper.ErrNotFound
	}
	return &m, nil
}

func (r *MemoryRepository) Upsert(_ context.Context, id string, patch model.AssignmentPatch) (database.UpdateResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}
	if patch.IsEmpty() {
		return database.UpdateResult{}, helper.ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()
	m, exists := r.items[key]
	if !exists {
		m = model.AssignmentModel{AssignmentID: key, AssignmentCreatedAt: now}
		r.order = append(r.order, key)
	}
	patch.Apply(&m)
	m.AssignmentUpdatedAt = now
	r.items[key] = m

	if exists {
		return database.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return database.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: key}, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) (database.DeleteResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return database.DeleteResult{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[key]; !ok {
		return database.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.items, key)
	for i, v := range r.order {
		if v == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return database.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}
