package databases

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vowlink/wedding-invites-api/models"
)

// go generate: mockery --name TemplateDatabase

const templateName = "templates"

// TemplateDatabase contains the methods to use with the template database
type TemplateDatabase interface {
	InsertOne(ctx context.Context, template models.Template) error
	InsertMany(ctx context.Context, templates []models.Template) error
	FindByID(ctx context.Context, id string) (*models.Template, error)
	FindAll(ctx context.Context) ([]models.Template, error)
	CountDocuments(ctx context.Context) (int64, error)
}

type templateDatabase struct {
	db DatabaseHelper
}

// NewTemplateDatabase initializes a new instance of template database with the provided db connection
func NewTemplateDatabase(db DatabaseHelper) TemplateDatabase {
	return &templateDatabase{
		db: db,
	}
}

func (t *templateDatabase) InsertOne(ctx context.Context, template models.Template) error {
	_, err := t.db.Collection(templateName).InsertOne(ctx, template)
	return err
}

func (t *templateDatabase) InsertMany(ctx context.Context, templates []models.Template) error {
	docs := make([]interface{}, len(templates))
	for i := range templates {
		docs[i] = templates[i]
	}
	return t.db.Collection(templateName).InsertMany(ctx, docs)
}

func (t *templateDatabase) FindByID(ctx context.Context, id string) (*models.Template, error) {
	template := &models.Template{}
	err := t.db.Collection(templateName).FindOne(ctx, bson.M{"_id": id}).Decode(template)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return template, nil
}

func (t *templateDatabase) FindAll(ctx context.Context) ([]models.Template, error) {
	templates := []models.Template{}
	cur, err := t.db.Collection(templateName).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&templates)
	if err != nil {
		return nil, err
	}
	return templates, nil
}

func (t *templateDatabase) CountDocuments(ctx context.Context) (int64, error) {
	return t.db.Collection(templateName).CountDocuments(ctx, bson.M{})
}
