package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"taskboard/internal/db"
	"taskboard/internal/models"
	"taskboard/internal/storage"
)

func findTask(taskID string) (models.Task, error) {
	objID, err := primitive.ObjectIDFromHex(taskID)
	if err != nil {
		return models.Task{}, ErrTaskNotFound
	}
	var task models.Task
	err = db.GetCollection("tasks").FindOne(context.TODO(), bson.M{"_id": objID}).Decode(&task)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Task{}, ErrTaskNotFound
	}
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// AddAttachment streams an uploaded file into the attachment bucket and
// appends its metadata to the task document. The task's lastUpdated is
// forced like any other task mutation.
func AddAttachment(taskID string, fileHeader *multipart.FileHeader) (models.Attachment, error) {
	task, err := findTask(taskID)
	if err != nil {
		return models.Attachment{}, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return models.Attachment{}, err
	}
	defer file.Close()

	objectName := fmt.Sprintf("%s_%s", task.ID.Hex(), fileHeader.Filename)
	_, err = storage.MinioClient.PutObject(
		context.Background(),
		storage.BucketName,
		objectName,
		file,
		fileHeader.Size,
		minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")},
	)
	if err != nil {
		return models.Attachment{}, err
	}

	attachment := models.Attachment{
		Filename:   fileHeader.Filename,
		ObjectName: objectName,
		Size:       fileHeader.Size,
		UploadedAt: time.Now(),
	}
	_, err = db.GetCollection("tasks").UpdateOne(
		context.TODO(),
		bson.M{"_id": task.ID},
		bson.M{
			"$push": bson.M{"attachments": attachment},
			"$set":  bson.M{"lastUpdated": time.Now()},
		},
	)
	if err != nil {
		return models.Attachment{}, err
	}
	return attachment, nil
}

// AttachmentURL generates a short-lived presigned download link for a
// task attachment.
func AttachmentURL(taskID, filename string) (string, error) {
	task, err := findTask(taskID)
	if err != nil {
		return "", err
	}

	var attachment *models.Attachment
	for i := range task.Attachments {
		if task.Attachments[i].Filename == filename {
			attachment = &task.Attachments[i]
			break
		}
	}
	if attachment == nil {
		return "", ErrAttachmentNotFound
	}

	expiry := 10 * time.Minute
	url, err := storage.MinioClient.PresignedGetObject(context.Background(), storage.BucketName, attachment.ObjectName, expiry, nil)
	if err != nil {
		return "", err
	}
	return url.String(), nil
}
