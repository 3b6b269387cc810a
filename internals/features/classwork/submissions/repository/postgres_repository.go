// file: internals/features/classwork/submissions/repository/postgres_repository.go
package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"assignment_backend/internals/databases"
	"assignment_backend/internals/features/classwork/submissions/model"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

type PostgresRepository struct {
	DB *gorm.DB
}

func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) Create(ctx context.Context, m *model.SubmissionModel) (database.InsertResult, error) {
	if err := r.DB.WithContext(ctx).Create(m).Error; err != nil {
		return database.InsertResult{}, storeErr("create", err)
	}
	return database.InsertResult{Acknowledged: true, InsertedID: m.SubmissionID}, nil
}

func (r *PostgresRepository) List(ctx context.Context, spec listquery.Spec) ([]model.SubmissionModel, error) {
	q, err := spec.Predicate.ApplyGorm(r.DB.WithContext(ctx).Model(&model.SubmissionModel{}), model.Columns)
	if err != nil {
		return nil, err
	}
	out := []model.SubmissionModel{}
	err = spec.Page.ApplyGorm(q).
		Order("submission_created_at ASC").
		Order("submission_id ASC").
		Find(&out).Error
	if err != nil {
		return nil, storeErr("list", err)
	}
	return out, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id string) (*model.SubmissionModel, error) {
	key, err := database.ParseUUID(id)
	if err != nil {
		return nil, err
	}
	var m model.SubmissionModel
	err = r.DB.WithContext(ctx).Where("submission_id = ?", key).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find", err)
	}
	return &m, nil
}

// GradeUpsert writes only the grade columns. A missing row is created
// holding just the grade, same as the document-store upsert.
func (r *PostgresRepository) GradeUpsert(ctx context.Context, id string, patch model.GradePatch) (database.UpdateResult, error) {
	key, err := database.ParseUUID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}
	if patch.IsEmpty() {
		return database.UpdateResult{}, helper.ErrValidation
	}

	var res database.UpdateResult
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cols := patch.ColumnUpdates()
		cols["submission_updated_at"] = time.Now()

		upd := tx.Model(&model.SubmissionModel{}).Where("submission_id = ?", key).Updates(cols)
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected > 0 {
			res = database.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}
			return nil
		}

		m := model.SubmissionModel{SubmissionID: key}
		patch.Apply(&m)
		names := make([]string, 0, len(cols))
		for col := range cols {
			names = append(names, col)
		}
		sort.Strings(names)
		ins := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "submission_id"}},
			DoUpdates: clause.AssignmentColumns(names),
		}).Create(&m)
		if ins.Error != nil {
			return ins.Error
		}
		res = database.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: key}
		return nil
	})
	if err != nil {
		return database.UpdateResult{}, storeErr("grade", err)
	}
	return res, nil
}
