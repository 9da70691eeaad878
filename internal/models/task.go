package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Task struct {
	ID          primitive.ObjectID  `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string              `bson:"name" json:"name"`
	Description string              `bson:"description" json:"description"`
	DueDate     time.Time           `bson:"dueDate" json:"dueDate"`
	Category    string              `bson:"category" json:"category"`
	Status      string              `bson:"status" json:"status"`
	Group       *primitive.ObjectID `bson:"group,omitempty" json:"group,omitempty"`
	AssignedTo  *primitive.ObjectID `bson:"assignedTo,omitempty" json:"assignedTo,omitempty"`
	Creator     primitive.ObjectID  `bson:"creator" json:"creator"`
	LastUpdated time.Time           `bson:"lastUpdated" json:"lastUpdated"`
	Attachments []Attachment        `bson:"attachments,omitempty" json:"attachments,omitempty"`
}

// Attachment records a file stored in object storage for a task. The
// bytes live in MinIO; only this metadata lives on the task document.
type Attachment struct {
	Filename   string    `bson:"filename" json:"filename"`
	ObjectName string    `bson:"object_name" json:"-"`
	Size       int64     `bson:"size" json:"size"`
	UploadedAt time.Time `bson:"uploaded_at" json:"uploaded_at"`
}

// TaskView is a task with its group, assignee and creator ids resolved
// to display names. Built per response, never stored.
type TaskView struct {
	ID          primitive.ObjectID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	DueDate     time.Time          `json:"dueDate"`
	Category    string             `json:"category"`
	Status      string             `json:"status"`
	Group       *GroupRef          `json:"group,omitempty"`
	AssignedTo  *UserRef           `json:"assignedTo,omitempty"`
	Creator     UserRef            `json:"creator"`
	LastUpdated time.Time          `json:"lastUpdated"`
	Attachments []Attachment       `json:"attachments,omitempty"`
}
