package dataset

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tmaxen/fpgrow/pkg/cache"
)

// mongoConnectTimeout bounds the initial connection handshake.
const mongoConnectTimeout = 10 * time.Second

// MongoSource reads baskets from a MongoDB collection. Each document is
// expected to carry an "items" array of strings; other fields are ignored.
type MongoSource struct {
	client     *mongo.Client
	database   string
	collection string
}

// NewMongoSource connects to MongoDB at uri and verifies the connection
// with a ping. Close must be called when the source is no longer needed.
func NewMongoSource(ctx context.Context, uri, database, collection string) (*MongoSource, error) {
	ctx, cancel := context.WithTimeout(ctx, mongoConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoSource{
		client:     client,
		database:   database,
		collection: collection,
	}, nil
}

// basketDoc is the expected document shape.
type basketDoc struct {
	Items []string `bson:"items"`
}

// Load fetches every basket in the collection. Transient cursor failures
// are retried with backoff; an empty collection returns ErrEmptyDataset.
func (s *MongoSource) Load(ctx context.Context) (*Dataset, error) {
	coll := s.client.Database(s.database).Collection(s.collection)

	var transactions [][]string
	err := cache.RetryWithBackoff(ctx, func() error {
		cur, err := coll.Find(ctx, bson.D{})
		if err != nil {
			return cache.Retryable(fmt.Errorf("find baskets: %w", err))
		}
		defer cur.Close(ctx)

		transactions = transactions[:0]
		for cur.Next(ctx) {
			var doc basketDoc
			if err := cur.Decode(&doc); err != nil {
				return fmt.Errorf("decode basket: %w", err)
			}
			if len(doc.Items) > 0 {
				transactions = append(transactions, doc.Items)
			}
		}
		if err := cur.Err(); err != nil {
			return cache.Retryable(fmt.Errorf("iterate baskets: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(transactions) == 0 {
		return nil, ErrEmptyDataset
	}
	return &Dataset{
		Name:         s.database + "." + s.collection,
		Transactions: transactions,
	}, nil
}

// Close disconnects from MongoDB.
func (s *MongoSource) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
