package entity

import "time"

// BasicEntity carries the columns every table shares.
type BasicEntity struct {
	ID        int        `json:"id" bun:"id,pk,autoincrement"`
	CreatedAt *time.Time `json:"created_at" bun:"created_at"`
	UpdatedAt *time.Time `json:"updated_at" bun:"updated_at"`
}
