// file: internals/features/classwork/assignments/repository/postgres_repository.go
package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"assignment_backend/internals/databases"
	"assignment_backend/internals/features/classwork/assignments/model"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

type PostgresRepository struct {
	DB *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *model.AssignmentModel) (database.InsertResult, error) {
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return database.InsertResult{}, storeErr("create", err)
	}
	return database.InsertResult{Acknowledged: true, InsertedID: m.AssignmentID}, nil
}

func (r *PostgresRepository) filtered(ctx context.Context, p listquery.Predicate) (*gorm.DB, error) {
	q := r.DB.WithContext(ctx).Model(&model.AssignmentModel{})
	return p.ApplyGorm(q, model.Columns)
}

func (r *PostgresRepository) List(ctx context.Context, spec listquery.Spec) ([]model.AssignmentModel, error) {
	q, err := r.filtered(ctx, spec.Predicate)
	if err != nil {
		return nil, err
	}
	out := []model.AssignmentModel{}
	err = spec.Page.ApplyGorm(q).
		Order("assignment_created_at ASC").
		Order("assignment_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list", err)
	}
	return out, nil
}

func (r *PostgresRepository) Count(ctx context.Context, p listquery.Predicate) (int64, error) {
	q, err := r.filtered(ctx, p)
	if err != nil {
		return 0, err
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, storeErr("count", err)
	}
	return total, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*model.AssignmentModel, error) {
	key, err := parseUUID(id)
	if err != nil {
		return nil, err
	}
	var m model.AssignmentModel
	err = r.DB.WithContext(ctx).Where("assignment_id = ?", key).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find", err)
	}
	return &m, nil
}

// Upsert updates the present columns of an existing row; when the row is
// absent it inserts one carrying the patch, guarded by ON CONFLICT so a
// concurrent insert of the same id turns into an update.
func (r *PostgresRepository) Upsert(ctx context.Context, id string, patch model.AssignmentPatch) (database.UpdateResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}
	if patch.IsEmpty() {
		return database.UpdateResult{}, helper.ErrValidation
	}

	var res database.UpdateResult
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cols := patch.ColumnUpdates()
		cols["assignment_updated_at"] = time.Now()

		upd := tx.Model(&model.AssignmentModel{}).Where("assignment_id = ?", key).Updates(cols)
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected > 0 {
			res = database.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
			return nil
		}

		m := model.AssignmentModel{AssignmentID: key}
		patch.Apply(&m)
		names := make([]string, 0, len(cols))
		for col := range cols {
			names = append(names, col)
		}
		sort.Strings(names)
		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "assignment_id"}},
			DoUpdates: clause.AssignmentColumns(names),
		}).Create(&m)
		if ins.Error != nil {
			return ins.Error
		}
		res = database.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: key}
		return nil
	})
	if err != nil {
		return database.UpdateResult{}, storeErr("upsert", err)
	}
	return res, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) (database.DeleteResult, error) {
	key, err := parseUUID(id)
	if err != nil {
		return database.DeleteResult{}, err
	}
	del := r.DB.WithContext(ctx).Where("assignment_id = ?", key).Delete(&model.AssignmentModel{})
	if del.Error != nil {
		return database.DeleteResult{}, storeErr("delete", del.Error)
	}
	return database.DeleteResult{Acknowledged: true, DeletedCount: del.RowsAffected}, nil
}
