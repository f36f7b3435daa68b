package databases

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vowlink/wedding-invites-api/models"
)

// go generate: mockery --name SessionDatabase

const sessionName = "sessions"

// SessionDatabase contains the methods to use with the session database
type SessionDatabase interface {
	InsertOne(ctx context.Context, session models.Session) error
	FindByToken(ctx context.Context, token string) (*models.Session, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionDatabase struct {
	db DatabaseHelper
}

// NewSessionDatabase initializes a new instance of session database with the provided db connection
func NewSessionDatabase(db DatabaseHelper) SessionDatabase {
	return &sessionDatabase{
		db: db,
	}
}

func (s *sessionDatabase) InsertOne(ctx context.Context, session models.Session) error {
	_, err := s.db.Collection(sessionName).InsertOne(ctx, session)
	return err
}

func (s *sessionDatabase) FindByToken(ctx context.Context, token string) (*models.Session, error) {
	session := &models.Session{}
	err := s.db.Collection(sessionName).FindOne(ctx, bson.M{"_id": token}).Decode(session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *sessionDatabase) DeleteByToken(ctx context.Context, token string) error {
	return s.db.Collection(sessionName).DeleteOne(ctx, bson.M{"_id": token})
}

func (s *sessionDatabase) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return s.db.Collection(sessionName).DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lt": now}})
}
