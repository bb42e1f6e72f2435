package admin

import (
	"time"

	"github.com/sngm3741/resort-crew/api/internal/pagination"
	publicdomain "github.com/sngm3741/resort-crew/api/internal/public/domain"
)

type moderateRequest struct {
	Status   *string `json:"status"`
	IsHidden *bool   `json:"isHidden"`
}

type adminJobResponse struct {
	ID          string                     `json:"id"`
	EmployerID  string                     `json:"employerId"`
	Title       string                     `json:"title"`
	Description string                     `json:"description,omitempty"`
	Location    string                     `json:"location,omitempty"`
	Status      publicdomain.PostingStatus `json:"status"`
	IsHidden    bool                       `json:"isHidden"`
	IsActive    bool                       `json:"isActive"`
	Visible     bool                       `json:"visible"`
	CreatedAt   *time.Time                 `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time                 `json:"updatedAt,omitempty"`
}

type adminJobListResponse struct {
	Data       []adminJobResponse    `json:"data"`
	Pagination pagination.Pagination `json:"pagination"`
}

// toAdminJobResponse は欠損フラグを既定値で解決して返す。
func toAdminJobResponse(p publicdomain.JobPosting) adminJobResponse {
	return adminJobResponse{
		ID:          p.ID,
		EmployerID:  p.EmployerID,
		Title:       p.Title,
		Description: p.Description,
		Location:    p.Location,
		Status:      p.Status,
		IsHidden:    p.Hidden(),
		IsActive:    p.Active(),
		Visible:     p.Visible(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
