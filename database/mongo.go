package database

import (
	"context"
	"time"

	"github.com/jalexanderII/spatial-todo/config"
	"github.com/jalexanderII/spatial-todo/models"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const Performance = 100

// MongoStore keeps todos in a single MongoDB collection.
type MongoStore struct {
	client  *mongo.Client
	coll    *mongo.Collection
	timeout time.Duration
}

// NewMongoStore wraps an existing collection. client may be nil when the
// collection's client is owned elsewhere.
func NewMongoStore(client *mongo.Client, coll *mongo.Collection, timeout time.Duration) *MongoStore {
	return &MongoStore{client: client, coll: coll, timeout: timeout}
}

// StartMongoDB connects to cfg.DBToken and returns a store over
// cfg.Database/cfg.Collection. Connection problems are logged, not returned:
// the store then answers every call with ErrStoreUnavailable until the
// driver manages to reach the server.
func StartMongoDB(ctx context.Context, cfg *config.Config, l *logrus.Logger) *MongoStore {
	timeout := cfg.DBTimeout()
	s := &MongoStore{timeout: timeout}

	if cfg.DBToken == "" {
		l.Error("Error connecting to MongoDB: you must set your 'DB_TOKEN' environmental variable")
		return s
	}

	// Set client options
	clientOptions := options.Client().ApplyURI(cfg.DBToken)
	dbCtx, cancel := NewDBContext(ctx, timeout)
	defer cancel()

	// Connect to MongoDB
	client, err := mongo.Connect(dbCtx, clientOptions)
	if err != nil {
		l.WithError(err).Error("Error connecting to MongoDB")
		return s
	}
	s.client = client
	s.coll = client.Database(cfg.Database).Collection(cfg.Collection)

	// Check the connection
	if err = client.Ping(dbCtx, nil); err != nil {
		l.WithError(err).Error("Error connecting to MongoDB")
		return s
	}
	l.WithFields(logrus.Fields{"database": cfg.Database, "collection": cfg.Collection}).Info("Connected to Database!")
	return s
}

// NewDBContext returns a new Context according to app performance
func NewDBContext(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, d*Performance/100)
}

func (s *MongoStore) context(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return NewDBContext(ctx, s.timeout)
}

func (s *MongoStore) List(ctx context.Context) ([]models.ToDo, error) {
	if s.coll == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	todos := make([]models.ToDo, 0)
	cursor, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, mongoError(err, "find todos")
	}
	if err = cursor.All(ctx, &todos); err != nil {
		return nil, mongoError(err, "decode todos")
	}
	return todos, nil
}

func (s *MongoStore) Create(ctx context.Context, t models.ToDo) (*models.ToDo, error) {
	if s.coll == nil {
		return nil, ErrStoreUnavailable
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	t.ID = newID()
	if _, err := s.coll.InsertOne(ctx, t); err != nil {
		return nil, mongoError(err, "insert todo")
	}
	return &t, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	if s.coll == nil {
		return ErrStoreUnavailable
	}
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	if _, err = s.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return mongoError(err, "delete todo")
	}
	return nil
}

func (s *MongoStore) SetDone(ctx context.Context, id string, done bool) error {
	return s.set(ctx, id, bson.M{"isDone": done})
}

func (s *MongoStore) UpdateContent(ctx context.Context, id string, u models.ContentUpdate) (*models.ToDo, error) {
	if !u.IsEmpty() {
		fields := bson.M{}
		if u.Title != nil {
			fields["title"] = *u.Title
		}
		if u.Description != nil {
			fields["description"] = *u.Description
		}
		if u.IsDone != nil {
			fields["isDone"] = *u.IsDone
		}
		if err := s.set(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.findByID(ctx, id)
}

func (s *MongoStore) UpdatePosition(ctx context.Context, id string, u models.PositionUpdate) (*models.ToDo, error) {
	if !u.IsEmpty() {
		fields := bson.M{}
		if u.X != nil {
			fields["x"] = *u.X
		}
		if u.Y != nil {
			fields["y"] = *u.Y
		}
		if err := s.set(ctx, id, fields); err != nil {
			return nil, err
		}
	}
	return s.findByID(ctx, id)
}

// set applies a $set of fields to the document with the given id. Callers
// skip it for empty updates; Mongo rejects an empty $set.
func (s *MongoStore) set(ctx context.Context, id string, fields bson.M) error {
	if s.coll == nil {
		return ErrStoreUnavailable
	}
	oid, err := ParseID(id)
	if err != nil {
		return err
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	if _, err = s.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields}); err != nil {
		return mongoError(err, "update todo")
	}
	return nil
}

func (s *MongoStore) findByID(ctx context.Context, id string) (*models.ToDo, error) {
	if s.coll == nil {
		return nil, ErrStoreUnavailable
	}
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	var t models.ToDo
	err = s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, mongoError(err, "find todo")
	}
	return &t, nil
}

func (s *MongoStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrStoreUnavailable
	}
	ctx, cancel := s.context(ctx)
	defer cancel()

	if err := s.client.Ping(ctx, nil); err != nil {
		return mongoError(err, "ping")
	}
	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// mongoError tags connection level failures with ErrStoreUnavailable and
// wraps everything else with the failing operation.
func mongoError(err error, op string) error {
	if errors.Is(err, mongo.ErrClientDisconnected) || mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return errors.Wrapf(ErrStoreUnavailable, "%s: %v", op, err)
	}
	return errors.Wrap(err, op)
}
