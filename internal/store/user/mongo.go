package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// document is the stored shape. The password field only ever holds a hash.
type document struct {
	ID       bson.ObjectID `bson:"_id"`
	Name     string        `bson:"name"`
	Email    string        `bson:"email"`
	Password string        `bson:"password"`
}

func (d document) user() User {
	return User{ID: d.ID.Hex(), Name: d.Name, Email: d.Email, PasswordHash: d.Password}
}

// MongoStore keeps one document per user in a single collection.
type MongoStore struct {
	coll *mongo.Collection
}

func NewMongoStore(coll *mongo.Collection) *MongoStore {
	return &MongoStore{coll: coll}
}

func (s *MongoStore) List(ctx context.Context) ([]User, error) {
	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, mongoErr("find users", err)
	}

	var docs []document
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongoErr("decode users", err)
	}

	out := make([]User, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.user())
	}
	return out, nil
}

func (s *MongoStore) Create(ctx context.Context, u New) (string, error) {
	res, err := s.coll.InsertOne(ctx, bson.D{
		{Key: "name", Value: u.Name},
		{Key: "email", Value: u.Email},
		{Key: "password", Value: u.PasswordHash},
	})
	if err != nil {
		return "", mongoErr("insert user", err)
	}

	oid, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert user: %w: unexpected id type %T", ErrStore, res.InsertedID)
	}
	return oid.Hex(), nil
}

func (s *MongoStore) FindByID(ctx context.Context, id string) (User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return User{}, ErrInvalidID
	}
	return s.findOne(ctx, bson.D{{Key: "_id", Value: oid}})
}

func (s *MongoStore) FindByName(ctx context.Context, name string) (User, error) {
	return s.findOne(ctx, bson.D{{Key: "name", Value: name}})
}

func (s *MongoStore) Replace(ctx context.Context, id string, u Update) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := s.coll.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: updateFields(u)}},
	)
	if err != nil {
		return mongoErr("update user", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	if _, err := s.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return mongoErr("delete user", err)
	}
	return nil
}

func (s *MongoStore) findOne(ctx context.Context, filter bson.D) (User, error) {
	var d document
	if err := s.coll.FindOne(ctx, filter).Decode(&d); err != nil {
		return User{}, mongoErr("find user", err)
	}
	return d.user(), nil
}

// updateFields maps Update onto the stored field names.
func updateFields(u Update) bson.D {
	return bson.D{
		{Key: "name", Value: u.Name},
		{Key: "email", Value: u.Email},
		{Key: "password", Value: u.PasswordHash},
	}
}

func mongoErr(op string, err error) error {
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsNetworkError(err), mongo.IsTimeout(err), errors.Is(err, mongo.ErrClientDisconnected):
		return fmt.Errorf("%s: %w: %w", op, ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
	}
}
