package task

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Limit  *int
	Offset *int
	Page   *int
	Search *string
	Status *string
}

type GetListResponse struct {
	ID           int     `json:"id"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Priority     *string `json:"priority"`
	Status       *string `json:"status"`
	AssignedTo   *int    `json:"assigned_to"`
	AssigneeName *string `json:"assignee_name"`
}

type GetDetailByIdResponse struct {
	ID           int     `json:"id"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Priority     *string `json:"priority"`
	Status       *string `json:"status"`
	AssignedTo   *int    `json:"assigned_to"`
	AssigneeName *string `json:"assignee_name"`
}

type CreateRequest struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Priority    *string `json:"priority" form:"priority"`
	Status      *string `json:"status" form:"status"`
	AssignedTo  *int    `json:"assigned_to" form:"assigned_to"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:tasks"`

	ID          int       `json:"id" bun:"-"`
	Title       *string   `json:"title" bun:"title"`
	Description *string   `json:"description" bun:"description"`
	Priority    *string   `json:"priority" bun:"priority"`
	Status      *string   `json:"status" bun:"status"`
	AssignedTo  *int      `json:"assigned_to" bun:"assigned_to"`
	CreatedAt   time.Time `json:"created_at" bun:"created_at"`
}

type UpdateRequest struct {
	ID          int     `json:"id" form:"id"`
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Priority    *string `json:"priority" form:"priority"`
	Status      *string `json:"status" form:"status"`
	AssignedTo  *int    `json:"assigned_to" form:"assigned_to"`
}
