package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	recruitingdomain "github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

// ApplicationRepository implements the recruiting ApplicationRepository using MongoDB.
type ApplicationRepository struct {
	collection *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database, collectionName string) *ApplicationRepository {
	return &ApplicationRepository{collection: db.Collection(collectionName)}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *recruitingdomain.Application) error {
	_, err := r.collection.InsertOne(ctx, toApplicationDocument(*app))
	return err
}

// Save は応募ドキュメント全体を置き換える。後勝ち。
func (r *ApplicationRepository) Save(ctx context.Context, app *recruitingdomain.Application) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": app.ID}, toApplicationDocument(*app))
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id string) (*recruitingdomain.Application, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *ApplicationRepository) FindByPostingAndJobseeker(ctx context.Context, postingID, jobseekerID string) (*recruitingdomain.Application, error) {
	return r.findOne(ctx, bson.M{"jobPostId": postingID, "jobseekerId": jobseekerID})
}

func (r *ApplicationRepository) ListByEmployer(ctx context.Context, employerID string) ([]recruitingdomain.Application, error) {
	return r.find(ctx, bson.M{"employerId": employerID})
}

func (r *ApplicationRepository) ListByJobseeker(ctx context.Context, jobseekerID string) ([]recruitingdomain.Application, error) {
	return r.find(ctx, bson.M{"jobseekerId": jobseekerID})
}

func (r *ApplicationRepository) findOne(ctx context.Context, filter bson.M) (*recruitingdomain.Application, error) {
	var doc ApplicationDocument
	if err := r.collection.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	app := mapApplicationDocument(doc)
	return &app, nil
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]recruitingdomain.Application, error) {
	opts := options.Find().SetSort(bson.D{{Key: "appliedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	apps := make([]recruitingdomain.Application, 0)
	for cursor.Next(ctx) {
		var doc ApplicationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		apps = append(apps, mapApplicationDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return apps, nil
}
