package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"taskboard/internal/db"
	"taskboard/internal/models"
)

// ValidRole reports whether a role value is one of the two known roles.
func ValidRole(role int) bool {
	return role == models.RoleAdmin || role == models.RoleMember
}

// ListUsers returns every user with the password hash projected out.
func ListUsers() ([]models.User, error) {
	opts := options.Find().SetProjection(bson.M{"password": 0})
	cursor, err := db.GetCollection("users").Find(context.TODO(), bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	users := []models.User{}
	if err := cursor.All(context.TODO(), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUserRole sets the role on a user. The role value is validated
// before any storage call so a bad value never mutates state.
func UpdateUserRole(userID string, role int) (models.User, error) {
	if !ValidRole(role) {
		return models.User{}, ErrInvalidRole
	}

	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"password": 0})

	var user models.User
	err = db.GetCollection("users").FindOneAndUpdate(
		context.TODO(),
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"role": role}},
		opts,
	).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GroupsForUser lists the groups visible to a user, populated for display.
func GroupsForUser(userID string) ([]models.GroupView, error) {
	_, groups, err := VisibleGroups(userID)
	if err != nil {
		return nil, err
	}
	return PopulateGroups(groups)
}

// TasksForUser lists the tasks visible to a user, populated for display.
func TasksForUser(userID string) ([]models.TaskView, error) {
	tasks, err := VisibleTasks(userID)
	if err != nil {
		return nil, err
	}
	return PopulateTasks(tasks)
}
