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

// CreateGroup creates a group with the supplied creator and member ids.
// The ids are stored as given; nothing checks that they reference real
// users (callers are trusted, a documented contract of this service).
// Membership is fixed at creation time.
func CreateGroup(name, creatorID string, memberIDs []string) (models.Group, error) {
	collection := db.GetCollection("groups")

	var existing models.Group
	err := collection.FindOne(context.TODO(), bson.M{"name": name}).Decode(&existing)
	if err == nil {
		return models.Group{}, ErrGroupNameTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Group{}, err
	}

	creator, err := primitive.ObjectIDFromHex(creatorID)
	if err != nil {
		return models.Group{}, ErrInvalidID
	}
	members := make([]primitive.ObjectID, 0, len(memberIDs))
	for _, id := range memberIDs {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return models.Group{}, ErrInvalidID
		}
		members = append(members, objID)
	}

	group := models.Group{
		ID:      primitive.NewObjectID(),
		Name:    name,
		Creator: creator,
		Members: members,
	}
	_, err = collection.InsertOne(context.TODO(), group)
	if mongo.IsDuplicateKeyError(err) {
		return models.Group{}, ErrGroupNameTaken
	}
	if err != nil {
		return models.Group{}, err
	}
	return group, nil
}

// ListGroups returns every group, populated for display.
func ListGroups() ([]models.GroupView, error) {
	cursor, err := db.GetCollection("groups").Find(context.TODO(), bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	groups := []models.Group{}
	if err := cursor.All(context.TODO(), &groups); err != nil {
		return nil, err
	}
	return PopulateGroups(groups)
}

// GetGroupByID returns a single group, populated for display.
func GetGroupByID(groupID string) (models.GroupView, error) {
	objID, err := primitive.ObjectIDFromHex(groupID)
	if err != nil {
		return models.GroupView{}, ErrGroupNotFound
	}

	var group models.Group
	err = db.GetCollection("groups").FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&group)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.GroupView{}, ErrGroupNotFound
	}
	if err != nil {
		return models.GroupView{}, err
	}

	views, err := PopulateGroups([]models.Group{group})
	if err != nil {
		return models.GroupView{}, err
	}
	return views[0], nil
}
