// file: internals/features/classwork/submissions/repository/memory_repository.go
package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"assignment_backend/internals/databases"
	"assignment_backend/internals/features/classwork/submissions/model"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

type MemoryRepository struct {
	mu    sync.RWMutex
	order []string
	items map[string]model.SubmissionModel
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: map[string]model.SubmissionModel{}}
}

func (r *MemoryRepository) Create(_ context.Context, m *model.SubmissionModel) (database.InsertResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if m.SubmissionID == "" {
		m.SubmissionID = uuid.NewString()
	}
	if m.SubmissionStatus == "" {
		m.SubmissionStatus = model.StatusPending
	}
	now := time.Now().UTC()
	m.SubmissionCreatedAt, m.SubmissionUpdatedAt = now, now

	if _, exists := r.items[m.SubmissionID]; !exists {
		r.order = append(r.order, m.SubmissionID)
	}
	r.items[m.SubmissionID] = *m
	return database.InsertResult{Acknowledged: true, InsertedID: m.SubmissionID}, nil
}

func (r *MemoryRepository) List(_ context.Context, spec listquery.Spec) ([]model.SubmissionModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.SubmissionModel{}
	for _, id := range r.order {
		m := r.items[id]
		if spec.Predicate.Matches(m.FieldValue) {
			out = append(out, m)
		}
	}
	if spec.Page != nil {
		start := spec.Page.Skip()
		if start < 0 || start >= len(out) {
			return []model.SubmissionModel{}, nil
		}
		end := start + spec.Page.Limit()
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, nil
}

func (r *MemoryRepository) FindByID(_ context.Context, id string) (*model.SubmissionModel, error) {
	key, err := database.ParseUUID(id)
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

func (r *MemoryRepository) GradeUpsert(_ context.Context, id string, patch model.GradePatch) (database.UpdateResult, error) {
	key, err := database.ParseUUID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}
	if patch.IsEmpty() {
		return database.UpdateResult{}, helper.ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	m, exists := r.items[key]
	if !exists {
		m = model.SubmissionModel{SubmissionID: key, SubmissionCreatedAt: now}
		r.order = append(r.order, key)
	}
	patch.Apply(&m)
	m.SubmissionUpdatedAt = now
	r.items[key] = m

	if exists {
		return database.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	return database.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: key}, nil
}
