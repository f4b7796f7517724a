package entity

import (
	"time"

	"github.com/uptrace/bun"
)

// CustomerMeasurement is soft deleted: DeletedAt is set instead of removing
// the row, and every live-row query filters on deleted_at IS NULL.
type CustomerMeasurement struct {
	bun.BaseModel `bun:"table:customer_measurements"`

	BasicEntity
	Name         *string    `json:"name"         bun:"name"`
	Code         *string    `json:"code"         bun:"code"`
	Phone        *string    `json:"phone"        bun:"phone"`
	Address      *string    `json:"address"      bun:"address"`
	KameezLength *string    `json:"kameezlength" bun:"kameezlength"`
	Teera        *string    `json:"teera"        bun:"teera"`
	Baazo        *string    `json:"baazo"        bun:"baazo"`
	Chest        *string    `json:"chest"        bun:"chest"`
	Neck         *string    `json:"neck"         bun:"neck"`
	Daman        *string    `json:"daman"        bun:"daman"`
	Kera         *string    `json:"kera"         bun:"kera"`
	Shalwar      *string    `json:"shalwar"      bun:"shalwar"`
	Pancha       *string    `json:"pancha"       bun:"pancha"`
	Pocket       *string    `json:"pocket"       bun:"pocket"`
	Note         *string    `json:"note"         bun:"note"`
	CreatedBy    *int       `json:"created_by"   bun:"created_by"`
	UpdatedBy    *int       `json:"updated_by"   bun:"updated_by"`
	DeletedAt    *time.Time `json:"deleted_at"   bun:"deleted_at"`
}
