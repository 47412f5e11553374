package database

import (
	"context"

	"github.com/jalexanderII/spatial-todo/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrStoreUnavailable is returned when the backing store cannot be reached.
	ErrStoreUnavailable = errors.New("document store unavailable")
	// ErrInvalidID is returned when an id is not a valid ObjectID hex string.
	ErrInvalidID = errors.New("invalid todo id")
)

// ToDoStore is the persistence adapter behind the routes. Every method maps to a
// single call against the backing store, except the content and position
// updates which write and then re-read the record.
type ToDoStore interface {
	// List returns every todo in the store's natural order.
	List(ctx context.Context) ([]models.ToDo, error)

	// Create stores t under a fresh id and returns the stored record.
	Create(ctx context.Context, t models.ToDo) (*models.ToDo, error)

	// Delete removes the todo if present. Missing ids are not an error.
	Delete(ctx context.Context, id string) error

	// SetDone sets only the isDone field. Missing ids are not an error.
	SetDone(ctx context.Context, id string, done bool) error

	// UpdateContent writes title, description and isDone, then returns the
	// fresh record, or nil if the id does not exist.
	UpdateContent(ctx context.Context, id string, u models.ContentUpdate) (*models.ToDo, error)

	// UpdatePosition writes x and y, then returns the fresh record, or nil if
	// the id does not exist.
	UpdatePosition(ctx context.Context, id string, u models.PositionUpdate) (*models.ToDo, error)

	// Ping checks the store is reachable.
	Ping(ctx context.Context) error

	Close(ctx context.Context) error
}

// ParseID converts a path id into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrapf(ErrInvalidID, "%q", id)
	}
	return oid, nil
}

func newID() primitive.ObjectID {
	return primitive.NewObjectID()
}
