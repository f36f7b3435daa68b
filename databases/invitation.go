package databases

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vowlink/wedding-invites-api/models"
)

// go generate: mockery --name InvitationDatabase

const invitationName = "invitations"

// InvitationDatabase contains the methods to use with the invitation database
type InvitationDatabase interface {
	InsertOne(ctx context.Context, invitation models.Invitation) error
	FindByID(ctx context.Context, id string) (*models.Invitation, error)
	FindBySlug(ctx context.Context, slug string) (*models.Invitation, error)
	FindPublishedBySlug(ctx context.Context, slug string) (*models.Invitation, error)
	FindByUserID(ctx context.Context, userID string) ([]models.Invitation, error)
	CountDocuments(ctx context.Context) (int64, error)
	EnsureIndexes(ctx context.Context) error
}

type invitationDatabase struct {
	db DatabaseHelper
}

// NewInvitationDatabase initializes a new instance of invitation database with the provided db connection
func NewInvitationDatabase(db DatabaseHelper) InvitationDatabase {
	return &invitationDatabase{
		db: db,
	}
}

func (i *invitationDatabase) InsertOne(ctx context.Context, invitation models.Invitation) error {
	_, err := i.db.Collection(invitationName).InsertOne(ctx, invitation)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicateSlug
	}
	return err
}

func (i *invitationDatabase) FindByID(ctx context.Context, id string) (*models.Invitation, error) {
	return i.findOne(ctx, bson.M{"_id": id})
}

func (i *invitationDatabase) FindBySlug(ctx context.Context, slug string) (*models.Invitation, error) {
	return i.findOne(ctx, bson.M{"urlSlug": slug})
}

func (i *invitationDatabase) FindPublishedBySlug(ctx context.Context, slug string) (*models.Invitation, error) {
	return i.findOne(ctx, bson.M{"urlSlug": slug, "isPublished": true})
}

func (i *invitationDatabase) findOne(ctx context.Context, filter bson.M) (*models.Invitation, error) {
	invitation := &models.Invitation{}
	err := i.db.Collection(invitationName).FindOne(ctx, filter).Decode(invitation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return invitation, nil
}

func (i *invitationDatabase) FindByUserID(ctx context.Context, userID string) ([]models.Invitation, error) {
	invitations := []models.Invitation{}
	cur, err := i.db.Collection(invitationName).Find(ctx, bson.M{"userID": userID})
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&invitations)
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

func (i *invitationDatabase) CountDocuments(ctx context.Context) (int64, error) {
	return i.db.Collection(invitationName).CountDocuments(ctx, bson.M{})
}

func (i *invitationDatabase) EnsureIndexes(ctx context.Context) error {
	return i.db.Collection(invitationName).CreateUniqueIndex(ctx, "urlSlug")
}
