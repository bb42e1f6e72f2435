package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sngm3741/resort-crew/api/internal/notification"
	recruitingdomain "github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

// NotificationRepository はアプリ内通知を保存する。
type NotificationRepository struct {
	collection *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database, collectionName string) *NotificationRepository {
	return &NotificationRepository{collection: db.Collection(collectionName)}
}

func (r *NotificationRepository) Create(ctx context.Context, n *recruitingdomain.Notification) error {
	_, err := r.collection.InsertOne(ctx, toNotificationDocument(*n))
	return err
}

func (r *NotificationRepository) Save(ctx context.Context, n *recruitingdomain.Notification) error {
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": n.ID}, toNotificationDocument(*n))
	return err
}

func (r *NotificationRepository) FindByID(ctx context.Context, id string) (*recruitingdomain.Notification, error) {
	var doc NotificationDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	n := mapNotificationDocument(doc)
	return &n, nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]recruitingdomain.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]recruitingdomain.Notification, 0)
	for cursor.Next(ctx) {
		var doc NotificationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, mapNotificationDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// FailedNotificationRepository は送信失敗した外部通知を failed_notifications に保存する。
type FailedNotificationRepository struct {
	collection *mongo.Collection
}

func NewFailedNotificationRepository(db *mongo.Database, collectionName string) *FailedNotificationRepository {
	return &FailedNotificationRepository{collection: db.Collection(collectionName)}
}

func (r *FailedNotificationRepository) Record(ctx context.Context, f notification.FailedDelivery) error {
	_, err := r.collection.InsertOne(ctx, toFailedNotificationDocument(f))
	return err
}

// ListPending は古い順に pending のものを返す。
func (r *FailedNotificationRepository) ListPending(ctx context.Context, limit int) ([]notification.FailedDelivery, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, bson.M{"status": string(notification.FailurePending)}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]notification.FailedDelivery, 0)
	for cursor.Next(ctx) {
		var doc FailedNotificationDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, mapFailedNotificationDocument(doc))
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *FailedNotificationRepository) Update(ctx context.Context, f notification.FailedDelivery) error {
	set := bson.M{
		"error":       f.Error,
		"attempts":    f.Attempts,
		"status":      string(f.Status),
		"lastTriedAt": f.LastTriedAt,
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": f.ID}, bson.M{"$set": set})
	return err
}

func toFailedNotificationDocument(f notification.FailedDelivery) FailedNotificationDocument {
	lastTried := f.LastTriedAt
	if lastTried.IsZero() {
		lastTried = time.Now().UTC()
	}
	return FailedNotificationDocument{
		ID:             f.ID,
		NotificationID: f.NotificationID,
		UserID:         f.Delivery.UserID,
		Destination:    f.Delivery.Destination,
		Text:           f.Delivery.Text,
		Error:          f.Error,
		Attempts:       f.Attempts,
		Status:         string(f.Status),
		CreatedAt:      f.CreatedAt,
		LastTriedAt:    lastTried,
	}
}

func mapFailedNotificationDocument(doc FailedNotificationDocument) notification.FailedDelivery {
	return notification.FailedDelivery{
		ID:             doc.ID,
		NotificationID: doc.NotificationID,
		Delivery: notification.Delivery{
			UserID:      doc.UserID,
			Destination: doc.Destination,
			Text:        doc.Text,
		},
		Error:       doc.Error,
		Attempts:    doc.Attempts,
		Status:      notification.FailureStatus(doc.Status),
		CreatedAt:   doc.CreatedAt,
		LastTriedAt: doc.LastTriedAt,
	}
}
