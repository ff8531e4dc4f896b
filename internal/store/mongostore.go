package store

import (
	"context"
	"errors"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"enrollify/internal/models"
)

// MongoStore is the swap-in database implementation of Store, selected with
// STORE_DRIVER=mongo. It keeps the same contract as the file store: append
// only, no uniqueness on cnic, first match in insertion order.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection("user"),
	}, nil
}

// Init verifies the deployment is reachable before the server starts.
func (s *MongoStore) Init(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *MongoStore) Load(ctx context.Context) ([]models.User, error) {
	cur, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		log.Printf("store: mongo find: %v", err)
		return []models.User{}, nil
	}
	defer cur.Close(ctx)

	users := []models.User{}
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			log.Printf("store: decoding user document: %v", err)
			return []models.User{}, nil
		}
		users = append(users, u)
	}
	if err := cur.Err(); err != nil {
		log.Printf("store: mongo cursor: %v", err)
		return []models.User{}, nil
	}
	return users, nil
}

func (s *MongoStore) Append(ctx context.Context, user models.User) error {
	_, err := s.coll.InsertOne(ctx, user)
	return err
}

func (s *MongoStore) FindByCNIC(ctx context.Context, cnic string) (models.User, error) {
	var u models.User
	err := s.coll.FindOne(ctx, bson.M{"cnic": cnic}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return u, nil
}
