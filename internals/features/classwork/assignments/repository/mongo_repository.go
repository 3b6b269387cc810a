// file: internals/features/classwork/assignments/repository/mongo_repository.go
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
	"assignment_backend/internals/features/classwork/assignments/model"
	helper "assignment_backend/internals/helpers"
	"assignment_backend/internals/helpers/listquery"
)

const CollectionName = "createdAssignments"

// assignmentDocument carries the ObjectID next to the inlined model fields.
type assignmentDocument struct {
	ID                    primitive.ObjectID `bson:"_id,omitempty"`
	model.AssignmentModel `bson:",inline"`
}

func (d assignmentDocument) toModel() model.AssignmentModel {
	m := d.AssignmentModel
	m.AssignmentID = d.ID.Hex()
	return m
}

type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{coll: db.Collection(CollectionName)}
}

func parseObjectID(id string) (primitive.ObjectID, error) { return database.ParseObjectID(id) }

func (r *MongoRepository) Create(ctx context.Context, m *model.AssignmentModel) (database.InsertResult, error) {
	now := time.Now().UTC()
	m.AssignmentCreatedAt, m.AssignmentUpdatedAt = now, now

	res, err := r.coll.InsertOne(ctx, assignmentDocument{AssignmentModel: *m})
	if err != nil {
		return database.InsertResult{}, storeErr("create", err)
	}
	oid, _ := res.InsertedID.(primitive.ObjectID)
	m.AssignmentID = oid.Hex()
	return database.InsertResult{Acknowledged: true, InsertedID: m.AssignmentID}, nil
}

func (r *MongoRepository) List(ctx context.Context, spec listquery.Spec) ([]model.AssignmentModel, error) {
	filter, err := spec.Predicate.BSON(nil)
	if err != nil {
		return nil, err
	}
	opts := spec.Page.FindOptions().SetSort(bson.D{{Key: "_id", Value: 1}})

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, storeErr("list", err)
	}
	defer cur.Close(ctx)

	var docs []assignmentDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, storeErr("list", err)
	}
	out := make([]model.AssignmentModel, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, nil
}

func (r *MongoRepository) Count(ctx context.Context, p listquery.Predicate) (int64, error) {
	filter, err := p.BSON(nil)
	if err != nil {
		return 0, err
	}
	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, storeErr("count", err)
	}
	return n, nil
}

func (r *MongoRepository) FindByID(ctx context.Context, id string) (*model.AssignmentModel, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var d assignmentDocument
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

// UpsertDocument renders the $set/$setOnInsert update for a patch.
func UpsertDocument(patch model.AssignmentPatch, now time.Time) bson.D {
	fields := patch.Fields()
	set := bson.D{}
	for _, key := range []string{
		model.KeyTitle, model.KeyDescription, model.KeyMarks,
		model.KeyDifficulty, model.KeyStartDate, model.KeyPhoto,
	} {
		if v, ok := fields[key]; ok {
			set = append(set, bson.E{Key: key, Value: v})
		}
	}
	set = append(set, bson.E{Key: "updatedAt", Value: now})
	return bson.D{
		{Key: "$set", Value: set},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
	}
}

func (r *MongoRepository) Upsert(ctx context.Context, id string, patch model.AssignmentPatch) (database.UpdateResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}
	if patch.IsEmpty() {
		return database.UpdateResult{}, helper.ErrValidation
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		UpsertDocument(patch, time.Now().UTC()),
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return database.UpdateResult{}, storeErr("upsert", err)
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

func (r *MongoRepository) Delete(ctx context.Context, id string) (database.DeleteResult, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return database.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return database.DeleteResult{}, storeErr("delete", err)
	}
	return database.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
