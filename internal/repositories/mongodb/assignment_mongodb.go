package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/INFR3120-F25/coursetrack-service/internal/models"
	"github.com/INFR3120-F25/coursetrack-service/internal/repositories"
)

// AssignmentMongo persists assignments in the "assignments" collection.
type AssignmentMongo struct {
	collection *mongo.Collection
}

func NewAssignmentMongo(db *mongo.Database) *AssignmentMongo {
	return &AssignmentMongo{
		collection: db.Collection(models.Assignment{}.CollectionName()),
	}
}

func (r *AssignmentMongo) List(ctx context.Context) ([]*models.Assignment, error) {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	// Secondary sort on _id keeps ties in insertion order; ObjectIDs carry
	// their creation timestamp.
	opts := options.Find().SetSort(bson.D{{Key: "dueDate", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, mapError("list assignments", err)
	}
	defer cursor.Close(ctx)

	assignments := make([]*models.Assignment, 0)
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, mapError("decode assignments", err)
	}

	return assignments, nil
}

func (r *AssignmentMongo) GetByID(ctx context.Context, id string) (*models.Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	var assignment models.Assignment
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&assignment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, mapError("get assignment", err)
	}

	return &assignment, nil
}

func (r *AssignmentMongo) Create(ctx context.Context, assignment *models.Assignment) error {
	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
	}

	if _, err := r.collection.InsertOne(ctx, assignment); err != nil {
		return mapError("create assignment", err)
	}

	return nil
}

func (r *AssignmentMongo) Update(ctx context.Context, id string, update repositories.AssignmentUpdate) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repositories.ErrNotFound
	}

	set := bson.M{}
	if update.CourseName != nil {
		set["courseName"] = *update.CourseName
	}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.DueDate != nil {
		set["dueDate"] = *update.DueDate
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if len(set) == 0 {
		// Nothing to apply; still report unknown ids.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return mapError("update assignment", err)
	}
	if result.MatchedCount == 0 {
		return repositories.ErrNotFound
	}

	return nil
}

func (r *AssignmentMongo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Unknown ids are a no-op at this layer.
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, operationTimeout)
	defer cancel()

	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return mapError("delete assignment", err)
	}

	return nil
}

// mapError converts driver failures into the repository error taxonomy.
func mapError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return fmt.Errorf("%s: %w: %v", op, repositories.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

var _ repositories.AssignmentRepository = (*AssignmentMongo)(nil)
