// file: internals/features/classwork/submissions/repository/mongo_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"assignment_backend/internals/databases"
	"assignment_backend/internals/features/classwork/submissions/model"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

const CollectionName = "submissions"

type submissionDocument struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	model.SubmissionModel `bson:",inline"`
}

func (d submissionDocument) toModel() model.SubmissionModel {
	m := d.SubmissionModel
	m.SubmissionID = d.ID.Hex()
	return m
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

func (r *MongoRepository) Create(ctx context.Context, m *model.SubmissionModel) (database.InsertResult, error) {
	now := time.Now().UTC()
	m.SubmissionCreatedAt, m.SubmissionUpdatedAt = now, now
	if m.SubmissionStatus == "" {
		m.SubmissionStatus = model.StatusPending
	}

	res, err := r.coll.InsertOne(ctx, submissionDocument{SubmissionModel: *m})
	if err != nil {
		return database.InsertResult{}, storeErr("create", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	m.SubmissionID = oid.Hex()
	return database.InsertResult{Acknowledged: true, InsertedID: m.SubmissionID}, nil
}

func (r *MongoRepository) List(ctx context.Context, spec listquery.Spec) ([]model.SubmissionModel, error) {
	filter, err := spec.Predicate.BSON(nil)
	if err != nil {
		return nil, err
	}
	cur, err := r.coll.Find(ctx, filter, spec.Page.FindOptions())
	if err != nil {
		return nil, storeErr("list", err)
	}
	defer cur.Close(ctx)

	var docs []submissionDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("list", err)
	}
	out := make([]model.SubmissionModel, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*model.SubmissionModel, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return nil, err
	}
	var d submissionDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&d)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, helper.ErrNotFound
	}
	if err != nil {
		return nil, storeErr("find", err)
	}
	m := d.toModel()
	return &m, nil
}

// GradeDocument is the $set over the three grade keys, nothing else.
func GradeDocument(patch model.GradePatch, now time.Time) bson.D {
	fields := patch.Fields()
	set := bson.D{}
	for _, key := range []string{model.KeyObtainedMarks, model.KeyStatus, model.KeyFeedback} {
		if v, ok := fields[key]; ok {
			set = append(set, bson.E{Key: key, Value: v})
		}
	}
	set = append(set, bson.E{Key: "updatedAt", Value: now})
	return bson.D{{Key: "$set", Value: set}}
}

func (r *MongoRepository) GradeUpsert(ctx context.Context, id string, patch model.GradePatch) (database.UpdateResult, error) {
	oid, err := database.ParseObjectID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}
	if patch.IsEmpty() {
		return database.UpdateResult{}, helper.ErrValidation
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		GradeDocument(patch, time.Now().UTC()),
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return database.UpdateResult{}, storeErr("grade", err)
	}
	out := database.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if up, ok := res.UpsertedID.(primitive.ObjectID); ok {
		out.UpsertedID = up.Hex()
	}
	return out, nil
}
