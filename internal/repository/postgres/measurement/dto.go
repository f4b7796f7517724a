package measurement

import (
	"time"

	"github.com/uptrace/bun"
)

type Filter struct {
	Page    *int
	PerPage *int
	Search  *string
}

type GetListResponse struct {
	ID           int        `json:"id"`
	Name         *string    `json:"name"`
	Code         *string    `json:"code"`
	Phone        *string    `json:"phone"`
	Address      *string    `json:"address"`
	KameezLength *string    `json:"kameezlength"`
	Teera        *string    `json:"teera"`
	Baazo        *string    `json:"baazo"`
	Chest        *string    `json:"chest"`
	Neck         *string    `json:"neck"`
	Daman        *string    `json:"daman"`
	Kera         *string    `json:"kera"`
	Shalwar      *string    `json:"shalwar"`
	Pancha       *string    `json:"pancha"`
	Pocket       *string    `json:"pocket"`
	Note         *string    `json:"note"`
	CreatedBy    *int       `json:"created_by"`
	CreatorName  *string    `json:"creator_name"`
	UpdatedBy    *int       `json:"updated_by"`
	UpdaterName  *string    `json:"updater_name"`
	CreatedAt    *time.Time `json:"created_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

type GetDetailByIdResponse struct {
	ID           int     `json:"id"`
	Name         *string `json:"name"`
	Code         *string `json:"code"`
	Phone        *string `json:"phone"`
	Address      *string `json:"address"`
	KameezLength *string `json:"kameezlength"`
	Teera        *string `json:"teera"`
	Baazo        *string `json:"baazo"`
	Chest        *string `json:"chest"`
	Neck         *string `json:"neck"`
	Daman        *string `json:"daman"`
	Kera         *string `json:"kera"`
	Shalwar      *string `json:"shalwar"`
	Pancha       *string `json:"pancha"`
	Pocket       *string `json:"pocket"`
	Note         *string `json:"note"`
	CreatedBy    *int    `json:"created_by"`
	CreatorName  *string `json:"creator_name"`
	UpdatedBy    *int    `json:"updated_by"`
	UpdaterName  *string `json:"updater_name"`
}

type CreateRequest struct {
	Name         *string `json:"name" form:"name"`
	Code         *string `json:"code" form:"code"`
	Phone        *string `json:"phone" form:"phone"`
	Address      *string `json:"address" form:"address"`
	KameezLength *string `json:"kameezlength" form:"kameezlength"`
	Teera        *string `json:"teera" form:"teera"`
	Baazo        *string `json:"baazo" form:"baazo"`
	Chest        *string `json:"chest" form:"chest"`
	Neck         *string `json:"neck" form:"neck"`
	Daman        *string `json:"daman" form:"daman"`
	Kera         *string `json:"kera" form:"kera"`
	Shalwar      *string `json:"shalwar" form:"shalwar"`
	Pancha       *string `json:"pancha" form:"pancha"`
	Pocket       *string `json:"pocket" form:"pocket"`
	Note         *string `json:"note" form:"note"`
}

type CreateResponse struct {
	bun.BaseModel `bun:"table:customer_measurements"`

	ID           int       `json:"id" bun:"-"`
	Name         *string   `json:"name" bun:"name"`
	Code         *string   `json:"code" bun:"code"`
	Phone        *string   `json:"phone" bun:"phone"`
	Address      *string   `json:"address" bun:"address"`
	KameezLength *string   `json:"kameezlength" bun:"kameezlength"`
	Teera        *string   `json:"teera" bun:"teera"`
	Baazo        *string   `json:"baazo" bun:"baazo"`
	Chest        *string   `json:"chest" bun:"chest"`
	Neck         *string   `json:"neck" bun:"neck"`
	Daman        *string   `json:"daman" bun:"daman"`
	Kera         *string   `json:"kera" bun:"kera"`
	Shalwar      *string   `json:"shalwar" bun:"shalwar"`
	Pancha       *string   `json:"pancha" bun:"pancha"`
	Pocket       *string   `json:"pocket" bun:"pocket"`
	Note         *string   `json:"note" bun:"note"`
	CreatedBy    int       `json:"created_by" bun:"created_by"`
	CreatedAt    time.Time `json:"created_at" bun:"created_at"`
}

type UpdateRequest struct {
	ID           int     `json:"id" form:"id"`
	Name         *string `json:"name" form:"name"`
	Code         *string `json:"code" form:"code"`
	Phone        *string `json:"phone" form:"phone"`
	Address      *string `json:"address" form:"address"`
	KameezLength *string `json:"kameezlength" form:"kameezlength"`
	Teera        *string `json:"teera" form:"teera"`
	Baazo        *string `json:"baazo" form:"baazo"`
	Chest        *string `json:"chest" form:"chest"`
	Neck         *string `json:"neck" form:"neck"`
	Daman        *string `json:"daman" form:"daman"`
	Kera         *string `json:"kera" form:"kera"`
	Shalwar      *string `json:"shalwar" form:"shalwar"`
	Pancha       *string `json:"pancha" form:"pancha"`
	Pocket       *string `json:"pocket" form:"pocket"`
	Note         *string `json:"note" form:"note"`
}
