// file: internals/features/classwork/assignments/repository/repository.go
package repository

import (
	"context"

	"assignment_backend/internals/configs"
	"assignment_backend/internals/databases"
	"assignment_backend/internals/features/classwork/assignments/model"
	"assignment_backend/internals/helpers/listquery"
)

// Repository is the assignment store collaborator. FindByID returns
// helper.ErrNotFound when nothing matches; a malformed id is helper.ErrInvalidID.
type Repository interface {
	Create(ctx context.Context, m *model.AssignmentModel) (database.InsertResult, error)
	List(ctx context.Context, spec listquery.Spec) ([]model.AssignmentModel, error)
	Count(ctx context.Context, p listquery.Predicate) (int64, error)
	FindByID(ctx context.Context, id string) (*model.AssignmentModel, error)
	Upsert(ctx context.Context, id string, patch model.AssignmentPatch) (database.UpdateResult, error)
	Delete(ctx context.Context, id string) (database.DeleteResult, error)
}

// New picks the implementation matching the handle's driver.
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

func parseUUID(id string) (string, error) { return database.ParseUUID(id) }

func storeErr(op string, err error) error { return database.StoreErr("assignments", op, err) }
