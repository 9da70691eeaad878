package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskboard/internal/db"
	"taskboard/internal/models"
)

// The visibility rule: an admin sees every group and every task; a member
// sees the groups listing them as a member, and the tasks belonging to
// those groups. Both user-scoped listing endpoints go through
// VisibleGroups so the rule cannot drift between call sites.

// GroupFilter builds the groups query for a user.
func GroupFilter(user models.User) bson.M {
	if user.Role == models.RoleAdmin {
		return bson.M{}
	}
	return bson.M{"members": user.ID}
}

// TaskFilter builds the tasks query for a user given the groups already
// resolved as visible to them.
func TaskFilter(user models.User, groups []models.Group) bson.M {
	if user.Role == models.RoleAdmin {
		return bson.M{}
	}
	ids := make([]primitive.ObjectID, 0, len(groups))
	for _, g := range groups {
		ids = append(ids, g.ID)
	}
	return bson.M{"group": bson.M{"$in": ids}}
}

// VisibleGroups looks up the user and returns the groups visible to them.
func VisibleGroups(userID string) (models.User, []models.Group, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, nil, ErrUserNotFound
	}

	var user models.User
	err = db.GetCollection("users").FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, nil, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, nil, err
	}

	cursor, err := db.GetCollection("groups").Find(context.TODO(), GroupFilter(user))
	if err != nil {
		return models.User{}, nil, err
	}
	defer cursor.Close(context.TODO())

	groups := []models.Group{}
	if err := cursor.All(context.TODO(), &groups); err != nil {
		return models.User{}, nil, err
	}
	return user, groups, nil
}

// VisibleTasks returns the tasks visible to the user. For admins this is
// every task, grouped or not.
func VisibleTasks(userID string) ([]models.Task, error) {
	user, groups, err := VisibleGroups(userID)
	if err != nil {
		return nil, err
	}

	cursor, err := db.GetCollection("tasks").Find(context.TODO(), TaskFilter(user, groups))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	tasks := []models.Task{}
	if err := cursor.All(context.TODO(), &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}
