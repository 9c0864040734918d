package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AdDB represents an ad record in the database
type AdDB struct {
	AdID        uuid.UUID       `json:"id" db:"ad_id"`                 // Primary key
	Title       string          `json:"title" db:"title"`              //
	Description string          `json:"description" db:"description"`  //
	Price       decimal.Decimal `json:"price" db:"price"`              // NUMERIC(12,2), never negative
	CategoryID  int64           `json:"category_id" db:"category_id"`  // FK to categories, delete restricted
	ContactInfo string          `json:"contact_info" db:"contact_info"`//
	AuthorID    uuid.UUID       `json:"author_id" db:"author_id"`      // FK to members, delete cascades
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`    // Immutable
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`    // Refreshed on every mutation
	IsActive    bool            `json:"is_active" db:"is_active"`      //
}

// AdView is an ad joined with its category and the public view of its author.
type AdView struct {
	AdID        uuid.UUID       `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ContactInfo string          `json:"contact_info"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	IsActive    bool            `json:"is_active"`
	Category    CategoryDB      `json:"category"`
	Author      MemberPublic    `json:"author"`
}

// DateBound is a bound on created_at, either a calendar date or an instant.
type DateBound struct {
	Time     time.Time
	DateOnly bool
}

// AdFilter is the parsed, validated filter set for listing ads.
// Nil fields mean the filter is absent.
type AdFilter struct {
	CategoryID   *int64
	CategorySlug *string
	MinPrice     *decimal.Decimal
	MaxPrice     *decimal.Decimal
	DateFrom     *DateBound
	DateTo       *DateBound
	Search       string
	Ordering     string
	OnlyActive   bool
	AuthorID     *uuid.UUID
}

// AdCreate is the input for creating an ad. The author is never part of it;
// it is always taken from the authenticated principal.
type AdCreate struct {
	Title       string
	Description string
	Price       decimal.Decimal
	ContactInfo string
	Category    CategoryRef
}

// AdUpdate is a partial update of an ad. Nil fields are left unchanged;
// a CategoryRefNone category keeps the current category.
type AdUpdate struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	ContactInfo *string
	IsActive    *bool
	Category    CategoryRef
}

// AdEvent is published to Kafka on every ad mutation.
type AdEvent struct {
	EventID   string    `json:"event_id"`
	Type      string    `json:"type"` // ad.created, ad.updated, ad.deleted
	AdID      uuid.UUID `json:"ad_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Timestamp int64     `json:"timestamp"`
}
