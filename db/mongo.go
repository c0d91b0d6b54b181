package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const NO_SINGLE_DOCUMENT = "mongo: no documents in result"

// Connection retries
const MAX_CONNECTION_RETRIES = 5
const CONNECTION_TIMEOUT = time.Second * 10

type MongoConnection struct {
	client   *mongo.Client
	database *mongo.Database
}

type MongoOptions struct {
	Connection string
	Host       string
	Username   string
	Password   string
	Database   string
}

func (o MongoOptions) URI() string {
	connection := o.Connection
	if connection == "" {
		connection = "mongodb"
	}
	if o.Username == "" {
		return fmt.Sprintf("%s://%s", connection, o.Host)
	}
	return fmt.Sprintf(
		"%s://%s:%s@%s",
		connection,
		o.Username,
		o.Password,
		o.Host,
	)
}

func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}

func NewConnection(opts MongoOptions) (*MongoConnection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), CONNECTION_TIMEOUT)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(opts.URI()))
	if err != nil {
		return nil, err
	}
	// Wait for the server
	retryBackoff := backoff.WithMaxRetries(
		backoff.NewExponentialBackOff(),
		MAX_CONNECTION_RETRIES,
	)
	err = backoff.Retry(func() error {
		pingCtx, pingCancel := context.WithTimeout(context.Background(), time.Second*2)
		defer pingCancel()

		return client.Ping(pingCtx, readpref.Primary())
	}, retryBackoff)
	if err != nil {
		return nil, err
	}
	return &MongoConnection{
		client:   client,
		database: client.Database(opts.Database),
	}, nil
}

func NewConnectionFromDatabase(database *mongo.Database) *MongoConnection {
	return &MongoConnection{
		client:   database.Client(),
		database: database,
	}
}

func (m *MongoConnection) GetCollection(collection string) *mongo.Collection {
	return m.database.Collection(collection)
}

func (m *MongoConnection) GetCollections(ctx context.Context) ([]string, error) {
	return m.database.ListCollectionNames(ctx, bson.D{})
}

func (m *MongoConnection) CreateCollection(
	ctx context.Context,
	name string,
	opts *options.CreateCollectionOptions,
) error {
	return m.database.CreateCollection(ctx, name, opts)
}

func (m *MongoConnection) Disconnect(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
