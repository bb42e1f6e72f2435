package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SalaryDocument は求人ドキュメント内の給与レンジ埋め込み構造を表す。
type SalaryDocument struct {
	Min  int    `bson:"min"`
	Max  int    `bson:"max"`
	Unit string `bson:"unit,omitempty"`
}

// PostingDocument は MongoDB 上での求人スキーマ。
// isHidden / isActive は古いレコードに存在しないことがあるためポインタで保持する。
type PostingDocument struct {
	ID          primitive.ObjectID `bson:"_id"`
	EmployerID  string             `bson:"employerId"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Location    string             `bson:"location,omitempty"`
	Salary      SalaryDocument     `bson:"salary"`
	Status      string             `bson:"status"`
	IsHidden    *bool              `bson:"isHidden,omitempty"`
	IsActive    *bool              `bson:"isActive,omitempty"`
	CreatedAt   *time.Time         `bson:"createdAt,omitempty"`
	UpdatedAt   *time.Time         `bson:"updatedAt,omitempty"`
}

// EmployerProfileDocument は雇用主プロフィール。_id は employerId。
type EmployerProfileDocument struct {
	EmployerID        string   `bson:"_id"`
	Name              string   `bson:"name"`
	Region            string   `bson:"region,omitempty"`
	ContactName       string   `bson:"contactName,omitempty"`
	ContactPhone      string   `bson:"contactPhone,omitempty"`
	ContactEmail      string   `bson:"contactEmail,omitempty"`
	LodgingOffered    bool     `bson:"lodgingOffered"`
	LodgingFacilities []string `bson:"lodgingFacilities,omitempty"`
}

// RoomTypeDocument は寮の部屋タイプと月額料金。
type RoomTypeDocument struct {
	Name         string `bson:"name"`
	MonthlyPrice int    `bson:"monthlyPrice"`
}

// LodgingProfileDocument は寮情報。_id は employerId。
type LodgingProfileDocument struct {
	EmployerID string             `bson:"_id"`
	Images     []string           `bson:"images,omitempty"`
	Capacity   int                `bson:"capacity"`
	RoomTypes  []RoomTypeDocument `bson:"roomTypes,omitempty"`
}

// ReviewDocument はレビューのスキーマ。評価は任意。
type ReviewDocument struct {
	ID                  primitive.ObjectID `bson:"_id"`
	EmployerID          string             `bson:"employerId"`
	OverallRating       *float64           `bson:"overallRating,omitempty"`
	AccommodationRating *float64           `bson:"accommodationRating,omitempty"`
	Content             string             `bson:"content,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt"`
}

// CandidateDocument は応募者が記入した自由記述欄。
type CandidateDocument struct {
	CoverLetter    string   `bson:"coverLetter,omitempty"`
	Experience     string   `bson:"experience,omitempty"`
	Education      string   `bson:"education,omitempty"`
	Skills         []string `bson:"skills,omitempty"`
	ExpectedSalary string   `bson:"expectedSalary,omitempty"`
	Message        string   `bson:"message,omitempty"`
}

// ApplicationDocument は応募のスキーマ。_id は UUID 文字列。
type ApplicationDocument struct {
	ID                   string            `bson:"_id"`
	PostingID            string            `bson:"jobPostId"`
	PostingTitle         string            `bson:"jobPostTitle,omitempty"`
	EmployerID           string            `bson:"employerId"`
	JobseekerID          string            `bson:"jobseekerId"`
	JobseekerName        string            `bson:"jobseekerName,omitempty"`
	Status               string            `bson:"status"`
	Candidate            CandidateDocument `bson:"candidate"`
	EmployerFeedback     string            `bson:"employerFeedback,omitempty"`
	EmployerFeedbackAt   *time.Time        `bson:"employerFeedbackAt,omitempty"`
	OfferDetails         string            `bson:"offerDetails,omitempty"`
	InterviewContactInfo string            `bson:"interviewContactInfo,omitempty"`
	InterviewDate        *time.Time        `bson:"interviewDate,omitempty"`
	AppliedAt            time.Time         `bson:"appliedAt"`
	UpdatedAt            time.Time         `bson:"updatedAt"`
}

// NotificationDocument はアプリ内通知のスキーマ。
type NotificationDocument struct {
	ID            string    `bson:"_id"`
	UserID        string    `bson:"userId"`
	Title         string    `bson:"title"`
	Message       string    `bson:"message"`
	Type          string    `bson:"type"`
	IsRead        bool      `bson:"isRead"`
	ApplicationID string    `bson:"applicationId,omitempty"`
	Status        string    `bson:"status,omitempty"`
	CreatedAt     time.Time `bson:"createdAt"`
}

// FailedNotificationDocument は送信に失敗した外部通知。リトライワーカーが処理する。
type FailedNotificationDocument struct {
	ID             string    `bson:"_id"`
	NotificationID string    `bson:"notificationId,omitempty"`
	UserID         string    `bson:"userId"`
	Destination    string    `bson:"destination,omitempty"`
	Text           string    `bson:"text"`
	Error          string    `bson:"error"`
	Attempts       int       `bson:"attempts"`
	Status         string    `bson:"status"`
	CreatedAt      time.Time `bson:"createdAt"`
	LastTriedAt    time.Time `bson:"lastTriedAt"`
}
