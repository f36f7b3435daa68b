package databases

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vowlink/wedding-invites-api/models"
)

// go generate: mockery --name UserDatabase

const userName = "users"

// UserDatabase contains the methods to use with the user database
type UserDatabase interface {
	InsertOne(ctx context.Context, user models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	SetPremium(ctx context.Context, id string, premium bool) error
	CountDocuments(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type userDatabase struct {
	db DatabaseHelper
}

// NewUserDatabase initializes a new instance of user database with the provided db connection
func NewUserDatabase(db DatabaseHelper) UserDatabase {
	return &userDatabase{
		db: db,
	}
}

func (u *userDatabase) InsertOne(ctx context.Context, user models.User) error {
	_, err := u.db.Collection(userName).InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateEmail
	}
	return err
}

func (u *userDatabase) FindByID(ctx context.Context, id string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"_id": id})
}

func (u *userDatabase) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.findOne(ctx, bson.M{"email": email})
}

func (u *userDatabase) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	user := &models.User{}
	err := u.db.Collection(userName).FindOne(ctx, filter).Decode(user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userDatabase) SetPremium(ctx context.Context, id string, premium bool) error {
	return u.db.Collection(userName).UpdateOne(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"isPremium": premium, "updatedAt": time.Now().UTC()}})
}

func (u *userDatabase) CountDocuments(ctx context.Context) (int64, error) {
	return u.db.Collection(userName).CountDocuments(ctx, bson.M{})
}

func (u *userDatabase) EnsureIndexes(ctx context.Context) error {
	return u.db.Collection(userName).CreateUniqueIndex(ctx, "email")
}
