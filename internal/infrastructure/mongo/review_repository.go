package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// ReviewRepository はレビュー (追記のみ) を読み取る。
type ReviewRepository struct {
	collection *mongo.Collection
}

func NewReviewRepository(db *mongo.Database, collectionName string) *ReviewRepository {
	return &ReviewRepository{collection: db.Collection(collectionName)}
}

func (r *ReviewRepository) ListReviews(ctx context.Context) ([]publicdomain.ReviewRecord, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReviewRepository) ListReviewsByEmployer(ctx context.Context, employerID string) ([]publicdomain.ReviewRecord, error) {
	return r.find(ctx, bson.M{"employerId": employerID})
}

// Insert は seed 用にレビューを登録する。
func (r *ReviewRepository) Insert(ctx context.Context, doc ReviewDocument) error {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func (r *ReviewRepository) find(ctx context.Context, filter bson.M) ([]publicdomain.ReviewRecord, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	records := make([]publicdomain.ReviewRecord, 0)
	for cursor.Next(ctx) {
		var doc ReviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		records = append(records, mapReviewDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
