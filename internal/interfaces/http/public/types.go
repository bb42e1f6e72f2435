package public

import (
	"time"

	"github.com/sngm3741/resort-crew/api/internal/interfaces/http/common"
	"github.com/sngm3741/resort-crew/api/internal/pagination"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

type salaryResponse struct {
	Min  int    `json:"min"`
	Max  int    `json:"max"`
	Unit string `json:"unit,omitempty"`
}

type regionResponse struct {
	Province string `json:"province,omitempty"`
	District string `json:"district,omitempty"`
}

type reviewSummaryResponse struct {
	EmployerID    string   `json:"employerId,omitempty"`
	Count         int      `json:"count"`
	AverageRating *float64 `json:"averageRating"`
}

type jobSummaryResponse struct {
	ID              string                `json:"id"`
	EmployerID      string                `json:"employerId"`
	Title           string                `json:"title"`
	EmployerName    string                `json:"employerName,omitempty"`
	Location        string                `json:"location,omitempty"`
	Region          regionResponse        `json:"region"`
	Salary          salaryResponse        `json:"salary"`
	LodgingProvided bool                  `json:"lodgingProvided"`
	Facilities      []string              `json:"facilities,omitempty"`
	Reviews         reviewSummaryResponse `json:"reviews"`
	CreatedAt       *time.Time            `json:"createdAt,omitempty"`
}

type jobListResponse struct {
	Data       []jobSummaryResponse  `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

type employerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Region       string `json:"region,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	ContactPhone string `json:"contactPhone,omitempty"`
	ContactEmail string `json:"contactEmail,omitempty"`
}

type roomTypeResponse struct {
	Name         string `json:"name"`
	MonthlyPrice int    `json:"monthlyPrice"`
}

type lodgingResponse struct {
	Images    []string           `json:"images,omitempty"`
	Capacity  int                `json:"capacity"`
	RoomTypes []roomTypeResponse `json:"roomTypes,omitempty"`
}

type jobDetailResponse struct {
	jobSummaryResponse
	Description string            `json:"description,omitempty"`
	Employer    *employerResponse `json:"employer"`
	Lodging     *lodgingResponse  `json:"lodging"`
	UpdatedAt   *time.Time        `json:"updatedAt,omitempty"`
}

func toReviewSummaryResponse(employerID string, summary publicdomain.ReviewSummary) reviewSummaryResponse {
	return reviewSummaryResponse{
		EmployerID:    employerID,
		Count:         summary.Count,
		AverageRating: common.RoundRating(summary.AverageRating),
	}
}

func toJobSummaryResponse(item publicdomain.ListingItem) jobSummaryResponse {
	posting := item.Posting
	return jobSummaryResponse{
		ID:           posting.ID,
		EmployerID:   posting.EmployerID,
		Title:        posting.Title,
		EmployerName: item.EmployerName,
		Location:     posting.Location,
		Region: regionResponse{
			Province: item.Region.Province,
			District: item.Region.District,
		},
		Salary: salaryResponse{
			Min:  posting.Salary.Min,
			Max:  posting.Salary.Max,
			Unit: posting.Salary.Unit,
		},
		LodgingProvided: item.LodgingProvided,
		Facilities:      item.Facilities,
		Reviews:         toReviewSummaryResponse("", item.Reviews),
		CreatedAt:       posting.CreatedAt,
	}
}

func toJobDetailResponse(item publicdomain.ListingItem) jobDetailResponse {
	resp := jobDetailResponse{
		jobSummaryResponse: toJobSummaryResponse(item),
		Description:        item.Posting.Description,
		UpdatedAt:          item.Posting.UpdatedAt,
	}
	if item.Employer != nil {
		resp.Employer = &employerResponse{
			ID:           item.Employer.EmployerID,
			Name:         item.Employer.Name,
			Region:       item.Employer.Region,
			ContactName:  item.Employer.ContactName,
			ContactPhone: item.Employer.ContactPhone,
			ContactEmail: item.Employer.ContactEmail,
		}
	}
	if item.Lodging != nil {
		rooms := make([]roomTypeResponse, 0, len(item.Lodging.RoomTypes))
		for _, room := range item.Lodging.RoomTypes {
			rooms = append(rooms, roomTypeResponse{Name: room.Name, MonthlyPrice: room.MonthlyPrice})
		}
		resp.Lodging = &lodgingResponse{
			Images:    item.Lodging.Images,
			Capacity:  item.Lodging.Capacity,
			RoomTypes: rooms,
		}
	}
	return resp
}
