package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

// PostingRepository は求人コレクションへのアクセスを提供する。
// public / recruiting / admin の各コンテキストのポートを満たす。
type PostingRepository struct {
	collection *mongo.Collection
}

// NewPostingRepository creates a new Mongo-backed posting repository.
func NewPostingRepository(db *mongo.Database, collectionName string) *PostingRepository {
	return &PostingRepository{collection: db.Collection(collectionName)}
}

// ListPostings は全求人を返す。絞り込みとページングは呼び出し側で行う。
func (r *PostingRepository) ListPostings(ctx context.Context) ([]publicdomain.JobPosting, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	postings := make([]publicdomain.JobPosting, 0)
	for cursor.Next(ctx) {
		var doc PostingDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		postings = append(postings, mapPostingDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return postings, nil
}

// GetPosting は ID が不正または存在しない場合 (nil, nil) を返す。
func (r *PostingRepository) GetPosting(ctx context.Context, id string) (*publicdomain.JobPosting, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	var doc PostingDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	posting := mapPostingDocument(doc)
	return &posting, nil
}

// SetActive は雇用主による募集の開閉を保存する。
func (r *PostingRepository) SetActive(ctx context.Context, id string, active bool, now time.Time) error {
	return r.update(ctx, id, bson.M{"isActive": active, "updatedAt": now})
}

// UpdateModeration は管理者による審査結果を保存する。
func (r *PostingRepository) UpdateModeration(ctx context.Context, id string, status publicdomain.PostingStatus, hidden bool, now time.Time) error {
	return r.update(ctx, id, bson.M{"status": string(status), "isHidden": hidden, "updatedAt": now})
}

// Insert は seed 用に求人を登録する。
func (r *PostingRepository) Insert(ctx context.Context, doc PostingDocument) (string, error) {
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return "", err
	}
	return doc.ID.Hex(), nil
}

func (r *PostingRepository) update(ctx context.Context, id string, set bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
