package entity

import (
	"github.com/uptrace/bun"
)

type Task struct {
	bun.BaseModel `bun:"table:tasks"`

	BasicEntity
	Title       *string `json:"title"       bun:"title"`
	Description *string `json:"description" bun:"description"`
	Priority    *string `json:"priority"    bun:"priority"`
	Status      *string `json:"status"      bun:"status"`
	AssignedTo  *int    `json:"assigned_to" bun:"assigned_to"`
}
