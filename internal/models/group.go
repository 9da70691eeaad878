package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Group struct {
	ID      primitive.ObjectID   `bson:"_id,omitempty" json:"id,omitempty"`
	Name    string               `bson:"name" json:"name"`
	Creator primitive.ObjectID   `bson:"creator" json:"creator"`
	Members []primitive.ObjectID `bson:"members" json:"members"`
}

// GroupRef is the shallow projection used when a group reference is
// resolved for display.
type GroupRef struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

func (g Group) Ref() GroupRef {
	return GroupRef{ID: g.ID, Name: g.Name}
}

// GroupView is a group with its creator and member ids resolved to
// display names. Built per response, never stored.
type GroupView struct {
	ID      primitive.ObjectID `json:"id"`
	Name    string             `json:"name"`
	Creator UserRef            `json:"creator"`
	Members []UserRef          `json:"members"`
}
