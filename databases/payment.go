package databases

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vowlink/wedding-invites-api/models"
)

// go generate: mockery --name PaymentDatabase

const paymentName = "payment_transactions"

// PaymentDatabase contains the methods to use with the payment transaction database
type PaymentDatabase interface {
	InsertOne(ctx context.Context, tx models.PaymentTransaction) error
	FindBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error)
	UpdateStatus(ctx context.Context, sessionID, status string) error
}

type paymentDatabase struct {
	db DatabaseHelper
}

// NewPaymentDatabase initializes a new instance of payment database with the provided db connection
func NewPaymentDatabase(db DatabaseHelper) PaymentDatabase {
	return &paymentDatabase{
		db: db,
	}
}

func (p *paymentDatabase) InsertOne(ctx context.Context, tx models.PaymentTransaction) error {
	_, err := p.db.Collection(paymentName).InsertOne(ctx, tx)
	return err
}

func (p *paymentDatabase) FindBySessionID(ctx context.Context, sessionID string) (*models.PaymentTransaction, error) {
	tx := &models.PaymentTransaction{}
	err := p.db.Collection(paymentName).FindOne(ctx, bson.M{"sessionID": sessionID}).Decode(tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return tx, nil
}

func (p *paymentDatabase) UpdateStatus(ctx context.Context, sessionID, status string) error {
	return p.db.Collection(paymentName).UpdateOne(ctx, bson.M{"sessionID": sessionID},
		bson.M{"$set": bson.M{"paymentStatus": status, "updatedAt": time.Now().UTC()}})
}
