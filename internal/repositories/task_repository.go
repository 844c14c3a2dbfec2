package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "pomoplanner.com/pomoplanner/internal/errors"
	model "pomoplanner.com/pomoplanner/internal/models"
)

type TaskRepository struct {
	collection *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{collection: db.Collection("tasks")}
}

// Create persists the task with a driver-generated id. Completed is
// forced to false no matter what the caller set.
func (r *TaskRepository) Create(ctx context.Context, task *model.Task) (*model.Task, error) {
	task.ID = primitive.NewObjectID()
	task.Completed = false

	if _, err := r.collection.InsertOne(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListByUser returns the user's tasks in no particular order.
func (r *TaskRepository) ListByUser(ctx context.Context, userID string) ([]model.Task, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}
	tasks := []model.Task{}
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidTaskID
	}

	var task model.Task
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update overwrites only the given fields and returns the task as it
// stands after the update. An empty field set degrades to a plain read.
func (r *TaskRepository) Update(ctx context.Context, id string, fields map[string]any) (*model.Task, error) {
	if len(fields) == 0 {
		return r.FindByID(ctx, id)
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidTaskID
	}

	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}

	res := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var task model.Task
	if err := res.Decode(&task); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}
