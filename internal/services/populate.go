package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"taskboard/internal/db"
	"taskboard/internal/models"
)

// Populate resolves stored reference ids to display projections for the
// response only; nothing is written back. References are stored without
// integrity checks, so a dangling id resolves to a projection with the id
// and an empty display name.

func userRefMap(ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserRef, error) {
	refs := map[primitive.ObjectID]models.UserRef{}
	if len(ids) == 0 {
		return refs, nil
	}

	cursor, err := db.GetCollection("users").Find(context.TODO(), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	var users []models.User
	if err := cursor.All(context.TODO(), &users); err != nil {
		return nil, err
	}
	for _, u := range users {
		refs[u.ID] = u.Ref()
	}
	return refs, nil
}

func groupRefMap(ids []primitive.ObjectID) (map[primitive.ObjectID]models.GroupRef, error) {
	refs := map[primitive.ObjectID]models.GroupRef{}
	if len(ids) == 0 {
		return refs, nil
	}

	cursor, err := db.GetCollection("groups").Find(context.TODO(), bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.TODO())

	var groups []models.Group
	if err := cursor.All(context.TODO(), &groups); err != nil {
		return nil, err
	}
	for _, g := range groups {
		refs[g.ID] = g.Ref()
	}
	return refs, nil
}

func resolveUser(refs map[primitive.ObjectID]models.UserRef, id primitive.ObjectID) models.UserRef {
	if ref, ok := refs[id]; ok {
		return ref
	}
	return models.UserRef{ID: id}
}

func buildGroupViews(groups []models.Group, users map[primitive.ObjectID]models.UserRef) []models.GroupView {
	views := make([]models.GroupView, 0, len(groups))
	for _, g := range groups {
		view := models.GroupView{
			ID:      g.ID,
			Name:    g.Name,
			Creator: resolveUser(users, g.Creator),
			Members: make([]models.UserRef, 0, len(g.Members)),
		}
		for _, m := range g.Members {
			view.Members = append(view.Members, resolveUser(users, m))
		}
		views = append(views, view)
	}
	return views
}

func buildTaskViews(tasks []models.Task, users map[primitive.ObjectID]models.UserRef, groups map[primitive.ObjectID]models.GroupRef) []models.TaskView {
	views := make([]models.TaskView, 0, len(tasks))
	for _, t := range tasks {
		view := models.TaskView{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			DueDate:     t.DueDate,
			Category:    t.Category,
			Status:      t.Status,
			Creator:     resolveUser(users, t.Creator),
			LastUpdated: t.LastUpdated,
			Attachments: t.Attachments,
		}
		if t.Group != nil {
			ref, ok := groups[*t.Group]
			if !ok {
				ref = models.GroupRef{ID: *t.Group}
			}
			view.Group = &ref
		}
		if t.AssignedTo != nil {
			ref := resolveUser(users, *t.AssignedTo)
			view.AssignedTo = &ref
		}
		views = append(views, view)
	}
	return views
}

// PopulateGroups resolves creator and member references for display.
func PopulateGroups(groups []models.Group) ([]models.GroupView, error) {
	ids := []primitive.ObjectID{}
	for _, g := range groups {
		ids = append(ids, g.Creator)
		ids = append(ids, g.Members...)
	}
	users, err := userRefMap(ids)
	if err != nil {
		return nil, err
	}
	return buildGroupViews(groups, users), nil
}

// PopulateTasks resolves group, assignee and creator references for display.
func PopulateTasks(tasks []models.Task) ([]models.TaskView, error) {
	userIDs := []primitive.ObjectID{}
	groupIDs := []primitive.ObjectID{}
	for _, t := range tasks {
		userIDs = append(userIDs, t.Creator)
		if t.AssignedTo != nil {
			userIDs = append(userIDs, *t.AssignedTo)
		}
		if t.Group != nil {
			groupIDs = append(groupIDs, *t.Group)
		}
	}

	users, err := userRefMap(userIDs)
	if err != nil {
		return nil, err
	}
	groups, err := groupRefMap(groupIDs)
	if err != nil {
		return nil, err
	}
	return buildTaskViews(tasks, users, groups), nil
}
