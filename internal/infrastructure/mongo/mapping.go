package mongo

import (
	"strings"

	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
	recruitingdomain "github.com/sngm3741/resort-crew/api/internal/recruiting/domain"
)

func mapPostingDocument(doc PostingDocument) publicdomain.JobPosting {
	return publicdomain.JobPosting{
		ID:          doc.ID.Hex(),
		EmployerID:  doc.EmployerID,
		Title:       doc.Title,
		Description: doc.Description,
		Location:    doc.Location,
		Salary: publicdomain.SalaryRange{
			Min:  doc.Salary.Min,
			Max:  doc.Salary.Max,
			Unit: doc.Salary.Unit,
		},
		Status:    publicdomain.PostingStatus(strings.TrimSpace(doc.Status)),
		IsHidden:  doc.IsHidden,
		IsActive:  doc.IsActive,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func mapEmployerProfileDocument(doc EmployerProfileDocument) publicdomain.EmployerProfile {
	return publicdomain.EmployerProfile{
		EmployerID:        doc.EmployerID,
		Name:              doc.Name,
		Region:            doc.Region,
		ContactName:       doc.ContactName,
		ContactPhone:      doc.ContactPhone,
		ContactEmail:      doc.ContactEmail,
		LodgingOffered:    doc.LodgingOffered,
		LodgingFacilities: append([]string{}, doc.LodgingFacilities...),
	}
}

func mapLodgingProfileDocument(doc LodgingProfileDocument) publicdomain.LodgingProfile {
	rooms := make([]publicdomain.RoomType, 0, len(doc.RoomTypes))
	for _, room := range doc.RoomTypes {
		rooms = append(rooms, publicdomain.RoomType{Name: room.Name, MonthlyPrice: room.MonthlyPrice})
	}
	return publicdomain.LodgingProfile{
		EmployerID: doc.EmployerID,
		Images:     append([]string{}, doc.Images...),
		Capacity:   doc.Capacity,
		RoomTypes:  rooms,
	}
}

func mapReviewDocument(doc ReviewDocument) publicdomain.ReviewRecord {
	return publicdomain.ReviewRecord{
		ID:                  doc.ID.Hex(),
		EmployerID:          doc.EmployerID,
		OverallRating:       doc.OverallRating,
		AccommodationRating: doc.AccommodationRating,
		Content:             doc.Content,
		CreatedAt:           doc.CreatedAt,
	}
}

func mapApplicationDocument(doc ApplicationDocument) recruitingdomain.Application {
	return recruitingdomain.Application{
		ID:            doc.ID,
		PostingID:     doc.PostingID,
		PostingTitle:  doc.PostingTitle,
		EmployerID:    doc.EmployerID,
		JobseekerID:   doc.JobseekerID,
		JobseekerName: doc.JobseekerName,
		// 未知のステータスもそのまま保持し、遷移判定でのみ弾く
		Status: recruitingdomain.Status(doc.Status),
		Candidate: recruitingdomain.CandidateDetails{
			CoverLetter:    doc.Candidate.CoverLetter,
			Experience:     doc.Candidate.Experience,
			Education:      doc.Candidate.Education,
			Skills:         append([]string{}, doc.Candidate.Skills...),
			ExpectedSalary: doc.Candidate.ExpectedSalary,
			Message:        doc.Candidate.Message,
		},
		EmployerFeedback:     doc.EmployerFeedback,
		EmployerFeedbackAt:   doc.EmployerFeedbackAt,
		OfferDetails:         doc.OfferDetails,
		InterviewContactInfo: doc.InterviewContactInfo,
		InterviewDate:        doc.InterviewDate,
		AppliedAt:            doc.AppliedAt,
		UpdatedAt:            doc.UpdatedAt,
	}
}

func toApplicationDocument(app recruitingdomain.Application) ApplicationDocument {
	return ApplicationDocument{
		ID:            app.ID,
		PostingID:     app.PostingID,
		PostingTitle:  app.PostingTitle,
		EmployerID:    app.EmployerID,
		JobseekerID:   app.JobseekerID,
		JobseekerName: app.JobseekerName,
		Status:        string(app.Status),
		Candidate: CandidateDocument{
			CoverLetter:    app.Candidate.CoverLetter,
			Experience:     app.Candidate.Experience,
			Education:      app.Candidate.Education,
			Skills:         append([]string{}, app.Candidate.Skills...),
			ExpectedSalary: app.Candidate.ExpectedSalary,
			Message:        app.Candidate.Message,
		},
		EmployerFeedback:     app.EmployerFeedback,
		EmployerFeedbackAt:   app.EmployerFeedbackAt,
		OfferDetails:         app.OfferDetails,
		InterviewContactInfo: app.InterviewContactInfo,
		InterviewDate:        app.InterviewDate,
		AppliedAt:            app.AppliedAt,
		UpdatedAt:            app.UpdatedAt,
	}
}

func mapNotificationDocument(doc NotificationDocument) recruitingdomain.Notification {
	return recruitingdomain.Notification{
		ID:            doc.ID,
		UserID:        doc.UserID,
		Title:         doc.Title,
		Message:       doc.Message,
		Type:          recruitingdomain.NotificationType(doc.Type),
		IsRead:        doc.IsRead,
		ApplicationID: doc.ApplicationID,
		Status:        recruitingdomain.Status(doc.Status),
		CreatedAt:     doc.CreatedAt,
	}
}

func toNotificationDocument(n recruitingdomain.Notification) NotificationDocument {
	return NotificationDocument{
		ID:            n.ID,
		UserID:        n.UserID,
		Title:         n.Title,
		Message:       n.Message,
		Type:          string(n.Type),
		IsRead:        n.IsRead,
		ApplicationID: n.ApplicationID,
		Status:        string(n.Status),
		CreatedAt:     n.CreatedAt,
	}
}
