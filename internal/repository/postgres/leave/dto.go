package leave

import (
	"time"

	"github.com/Azure/go-autorest/autorest/date"
	"github.com/uptrace/bun"
)

type Filter struct {
	Status *string
}

type GetListResponse struct {
	ID            int        `json:"id"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Reason        *string    `json:"reason"`
	Status        *string    `json:"status"`
	RequestedBy   *int       `json:"requested_by"`
	RequesterName *string    `json:"requester_name"`
}

type GetDetailByIdResponse struct {
	ID            int        `json:"id"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	Reason        *string    `json:"reason"`
	Status        *string    `json:"status"`
	RequestedBy   *int       `json:"requested_by"`
	RequesterName *string    `json:"requester_name"`
}

// CreateRequest dates arrive as "2006-01-02" strings; date.Date enforces the
// format at decode time.
type CreateRequest struct {
	StartDate *date.Date `json:"start_date" form:"start_date"`
	EndDate   *date.Date `json:"end_date" form:"end_date"`
	Reason    *string    `json:"reason" form:"reason"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:leaves"`

	ID          int       `json:"id" bun:"-"`
	StartDate   time.Time `json:"start_date" bun:"start_date"`
	EndDate     time.Time `json:"end_date" bun:"end_date"`
	Reason      *string   `json:"reason" bun:"reason"`
	Status      string    `json:"status" bun:"status"`
	RequestedBy int       `json:"requested_by" bun:"requested_by"`
	CreatedAt   time.Time `json:"created_at" bun:"created_at"`
}

type UpdateRequest struct {
	ID        int        `json:"id" form:"id"`
	StartDate *date.Date `json:"start_date" form:"start_date"`
	EndDate   *date.Date `json:"end_date" form:"end_date"`
	Reason    *string    `json:"reason" form:"reason"`
	Status    *string    `json:"status" form:"status"`
}
