package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/INFR3120-F25/coursetrack-service/internal/repositories"
)

const (
	connectTimeout = 10 * time.Second

	// operationTimeout bounds every store operation so a dead backend
	// surfaces as an error instead of a hung request.
	operationTimeout = 5 * time.Second
)

// MongoRepository implements the main Repository interface backed by a
// MongoDB database.
type MongoRepository struct {
	client *mongo.Client
	db     *mongo.Database

	assignment repositories.AssignmentRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	URI      string
	Database string
}

// NewMongoRepositoryManager returns an uninitialized manager; Initialize
// establishes and verifies the connection.
func NewMongoRepositoryManager(config RepositoryConfig) *MongoRepositoryManager {
	return &MongoRepositoryManager{config: config}
}

// MongoRepositoryManager manages the MongoDB repository lifecycle.
type MongoRepositoryManager struct {
	config RepositoryConfig
	repo   *MongoRepository
}

func (m *MongoRepositoryManager) Initialize(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.config.URI))
	if err != nil {
		return fmt.Errorf("mongodb connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb ping: %w", err)
	}

	db := client.Database(m.config.Database)
	m.repo = &MongoRepository{
		client:     client,
		db:         db,
		assignment: NewAssignmentMongo(db),
	}

	return nil
}

func (m *MongoRepositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *MongoRepositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return repositories.ErrUnavailable
	}
	return m.repo.Ping(ctx)
}

func (m *MongoRepositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close(ctx)
}

func (r *MongoRepository) Assignment() repositories.AssignmentRepository {
	return r.assignment
}

func (r *MongoRepository) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%w: %v", repositories.ErrUnavailable, err)
	}
	return nil
}

func (r *MongoRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
