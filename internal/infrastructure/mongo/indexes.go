package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collections はコレクション名の一覧。
type Collections struct {
	Postings            string
	EmployerProfiles    string
	LodgingProfiles     string
	Reviews             string
	Applications        string
	Notifications       string
	FailedNotifications string
}

// EnsureIndexes は各コレクションに必要なインデックスを作成する。既存の場合は何もしない。
func EnsureIndexes(ctx context.Context, db *mongo.Database, c Collections) error {
	specs := map[string][]mongo.IndexModel{
		c.Postings: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "employerId", Value: 1}}},
		},
		c.Reviews: {
			{Keys: bson.D{{Key: "employerId", Value: 1}}},
		},
		c.Applications: {
			{
				Keys:    bson.D{{Key: "jobPostId", Value: 1}, {Key: "jobseekerId", Value: 1}},
				Options: options.Index().SetUnique(true),
			},
			{Keys: bson.D{{Key: "employerId", Value: 1}, {Key: "appliedAt", Value: -1}}},
			{Keys: bson.D{{Key: "jobseekerId", Value: 1}, {Key: "appliedAt", Value: -1}}},
		},
		c.Notifications: {
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		c.FailedNotifications: {
			{Keys: bson.D{{Key: "status", Value: 1}, {Key: "createdAt", Value: 1}}},
		},
	}

	for name, models := range specs {
		if name == "" {
			continue
		}
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", name, err)
		}
	}
	return nil
}
