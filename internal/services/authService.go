package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"taskboard/internal/db"
	"taskboard/internal/models"
)

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// RegisterUser creates a new user with Member role. Any role supplied by
// the caller is ignored. Username and email are checked sequentially;
// the unique indexes catch the race between check and insert.
func RegisterUser(username, email, password string) error {
	collection := db.GetCollection("users")

	var existing models.User
	err := collection.FindOne(context.TODO(), bson.M{"username": username}).Decode(&existing)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	err = collection.FindOne(context.TODO(), bson.M{"email": email}).Decode(&existing)
	if err == nil {
		return ErrEmailTaken
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleMember,
	}
	_, err = collection.InsertOne(context.TODO(), user)
	if mongo.IsDuplicateKeyError(err) {
		// Lost the race to a concurrent registration.
		return ErrUsernameTaken
	}
	return err
}

// LoginUser authenticates by username and returns the stored record,
// password hash included.
func LoginUser(username, password string) (models.User, error) {
	collection := db.GetCollection("users")

	var user models.User
	err := collection.FindOne(context.TODO(), bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}

	if !VerifyPassword(password, user.Password) {
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}
