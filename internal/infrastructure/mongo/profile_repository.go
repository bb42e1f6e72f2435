package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// EmployerProfileRepository は雇用主プロフィールを employerId で引く。
type EmployerProfileRepository struct {
	collection *mongo.Collection
}

func NewEmployerProfileRepository(db *mongo.Database, collectionName string) *EmployerProfileRepository {
	return &EmployerProfileRepository{collection: db.Collection(collectionName)}
}

// GetEmployerProfile はプロフィールが無ければ (nil, nil) を返す。
func (r *EmployerProfileRepository) GetEmployerProfile(ctx context.Context, employerID string) (*publicdomain.EmployerProfile, error) {
	var doc EmployerProfileDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": employerID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	profile := mapEmployerProfileDocument(doc)
	return &profile, nil
}

// Upsert は seed 用にプロフィールを保存する。
func (r *EmployerProfileRepository) Upsert(ctx context.Context, doc EmployerProfileDocument) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.EmployerID}, doc, options.Replace().SetUpsert(true))
	return err
}

// LodgingProfileRepository は寮情報を employerId で引く。
type LodgingProfileRepository struct {
	collection *mongo.Collection
}

func NewLodgingProfileRepository(db *mongo.Database, collectionName string) *LodgingProfileRepository {
	return &LodgingProfileRepository{collection: db.Collection(collectionName)}
}

// GetLodgingProfile は寮情報が無ければ (nil, nil) を返す。
func (r *LodgingProfileRepository) GetLodgingProfile(ctx context.Context, employerID string) (*publicdomain.LodgingProfile, error) {
	var doc LodgingProfileDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": employerID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	profile := mapLodgingProfileDocument(doc)
	return &profile, nil
}

// Upsert は seed 用に寮情報を保存する。
func (r *LodgingProfileRepository) Upsert(ctx context.Context, doc LodgingProfileDocument) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": doc.EmployerID}, doc, options.Replace().SetUpsert(true))
	return err
}
