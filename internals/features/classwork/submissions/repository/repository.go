// file: internals/features/classwork/submissions/repository/repository.go
package repository

import (
	"context"

	"assignment_backend/internals/configs"
	"assignment_backend/internals/databases"
	"assignment_backend/internals/features/classwork/submissions/model"
	"assignment_backend/internals/helpers/listquery"
)

// Repository has no delete: submissions are never removed through the API.
type Repository interface {
	Create(ctx context.Context, m *model.SubmissionModel) (database.InsertResult, error)
	List(ctx context.Context, spec listquery.Spec) ([]model.SubmissionModel, error)
	FindByID(ctx context.Context, id string) (*model.SubmissionModel, error)
	GradeUpsert(ctx context.Context, id string, patch model.GradePatch) (database.UpdateResult, error)
}

func New(h *database.Handle) Repository {
	switch h.Driver {
	case configs.DriverMongo:
		return NewMongoRepository(h.Mongo)
	case configs.DriverMemory:
		return NewMemoryRepository()
	default:
		return NewPostgresRepository(h.Gorm)
	}
}

func storeErr(op string, err error) error { return database.StoreErr("submissions", op, err) }
