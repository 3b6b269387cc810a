package database

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	helper "assignment_backend/internals/helpers"
)

// ParseUUID normalizes a postgres/memory id or fails with ErrInvalidID.
func ParseUUID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", helper.ErrInvalidID, id)
	}
	return u.String(), nil
}

func ParseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", helper.ErrInvalidID, id)
	}
	return oid, nil
}

// StoreErr wraps a driver failure so StatusFor maps it to 500.
func StoreErr(resource, op string, err error) error {
	return fmt.Errorf("%w: %s %s: %v", helper.ErrStore, resource, op, err)
}
