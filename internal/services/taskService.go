package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/db"
	"taskboard/internal/models"
)

// TaskInput is the full field set accepted on task creation. Group and
// assignee are optional; creator is mandatory. Referenced ids are stored
// as given without checking they resolve.
type TaskInput struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	DueDate     time.Time `json:"dueDate"`
	Category    string    `json:"category"`
	Status      string    `json:"status"`
	Group       string    `json:"group"`
	AssignedTo  string    `json:"assignedTo"`
	Creator     string    `json:"creator"`
}

// TaskUpdate is a partial field set for task updates; nil fields keep
// their prior values. lastUpdated is never caller-controlled.
type TaskUpdate struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Category    *string    `json:"category"`
	Status      *string    `json:"status"`
	Group       *string    `json:"group"`
	AssignedTo  *string    `json:"assignedTo"`
}

func optionalObjectID(hex string) (*primitive.ObjectID, error) {
	if hex == "" {
		return nil, nil
	}
	objID, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, ErrInvalidID
	}
	return &objID, nil
}

// buildTaskUpdate converts a partial update into a $set document. Only
// supplied fields appear; lastUpdated is always forced to now.
func buildTaskUpdate(in TaskUpdate, now time.Time) (bson.M, error) {
	set := bson.M{"lastUpdated": now}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.DueDate != nil {
		set["dueDate"] = *in.DueDate
	}
	if in.Category != nil {
		set["category"] = *in.Category
	}
	if in.Status != nil {
		set["status"] = *in.Status
	}
	if in.Group != nil {
		objID, err := optionalObjectID(*in.Group)
		if err != nil {
			return nil, err
		}
		set["group"] = objID
	}
	if in.AssignedTo != nil {
		objID, err := optionalObjectID(*in.AssignedTo)
		if err != nil {
			return nil, err
		}
		set["assignedTo"] = objID
	}
	return set, nil
}

// CreateTask persists a new task with lastUpdated set to now.
func CreateTask(in TaskInput) (models.Task, error) {
	creator, err := primitive.ObjectIDFromHex(in.Creator)
	if err != nil {
		return models.Task{}, ErrInvalidID
	}
	group, err := optionalObjectID(in.Group)
	if err != nil {
		return models.Task{}, err
	}
	assignedTo, err := optionalObjectID(in.AssignedTo)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:          primitive.NewObjectID(),
		Name:        in.Name,
		Description: in.Description,
		DueDate:     in.DueDate,
		Category:    in.Category,
		Status:      in.Status,
		Group:       group,
		AssignedTo:  assignedTo,
		Creator:     creator,
		LastUpdated: time.Now(),
	}
	_, err = db.GetCollection("tasks").InsertOne(context.TODO(), task)
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask applies a partial update and returns the post-update record.
// An unknown id is reported as not found rather than the null-valued
// success some clients may expect from older deployments.
func UpdateTask(taskID string, in TaskUpdate) (models.Task, error) {
	objID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return models.Task{}, ErrTaskNotFound
	}

	set, err := buildTaskUpdate(in, time.Now())
	if err != nil {
		return models.Task{}, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var task models.Task
	err = db.GetCollection("tasks").FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": set},
		opts,
	).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// DeleteTask removes a task by id. Deleting an id that does not exist,
// or is not even a valid id, is a silent no-op.
func DeleteTask(taskID string) error {
	objID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return nil
	}
	_, err = db.GetCollection("tasks").DeleteOne(context.TODO(), bson.M{"_id": objID})
	return err
}

// ListAllTasks returns every task in the system, populated for display.
func ListAllTasks() ([]models.TaskView, error) {
	cursor, err := db.GetCollection("tasks").Find(context.TODO(), bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	tasks := []models.Task{}
	if err := cursor.All(context.TODO(), &tasks); err != nil {
		return nil, err
	}
	return PopulateTasks(tasks)
}

// ListGroupTasks returns the tasks belonging to one group, populated for
// display. An unknown group id simply yields an empty list.
func ListGroupTasks(groupID string) ([]models.TaskView, error) {
	objID, err := primitive.ObjectIDFromHex(groupID)
	if err != nil {
		return []models.TaskView{}, nil
	}

	cursor, err := db.GetCollection("tasks").Find(context.TODO(), bson.M{"group": objID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	tasks := []models.Task{}
	if err := cursor.All(context.TODO(), &tasks); err != nil {
		return nil, err
	}
	return PopulateTasks(tasks)
}
