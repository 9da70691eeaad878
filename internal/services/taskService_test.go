package services

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strptr(s string) *string { return &s }

func TestBuildTaskUpdateOnlyStatus(t *testing.T) {
	now := time.Now()
	set, err := buildTaskUpdate(TaskUpdate{Status: strptr("done")}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(set) != 2 {
		t.Fatalf("expected only status and lastUpdated, got %v", set)
	}
	if set["status"] != "done" {
		t.Fatalf("expected status done, got %v", set["status"])
	}
	if set["lastUpdated"] != now {
		t.Fatalf("expected lastUpdated forced to now, got %v", set["lastUpdated"])
	}
}

func TestBuildTaskUpdateAlwaysForcesLastUpdated(t *testing.T) {
	now := time.Now()
	set, err := buildTaskUpdate(TaskUpdate{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(set) != 1 || set["lastUpdated"] != now {
		t.Fatalf("empty update must still set lastUpdated, got %v", set)
	}
}

func TestBuildTaskUpdateConvertsGroupID(t *testing.T) {
	groupID := primitive.NewObjectID()
	set, err := buildTaskUpdate(TaskUpdate{Group: strptr(groupID.Hex())}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, ok := set["group"].(*primitive.ObjectID)
	if !ok || *got != groupID {
		t.Fatalf("expected group %v, got %v", groupID, set["group"])
	}
}

func TestBuildTaskUpdateClearsGroupOnEmptyString(t *testing.T) {
	set, err := buildTaskUpdate(TaskUpdate{Group: strptr("")}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, present := set["group"]
	if !present {
		t.Fatal("expected group key to be present")
	}
	if got.(*primitive.ObjectID) != nil {
		t.Fatalf("expected nil group, got %v", got)
	}
}

func TestBuildTaskUpdateRejectsBadAssigneeID(t *testing.T) {
	_, err := buildTaskUpdate(TaskUpdate{AssignedTo: strptr("not-an-id")}, time.Now())
	if !errors.Is(err, ErrInvalidID) {
		t.Fatalf("expected ErrInvalidID, got %v", err)
	}
}
