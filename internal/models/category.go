package models

// Category slugs form a closed set, seeded at startup.
const (
	SlugCars       = "cars"
	SlugRealEstate = "real_estate"
)

// CategoryDB represents a category record in the database
type CategoryDB struct {
	CategoryID int64  `json:"id" db:"category_id"` // Primary key, small serial
	Slug       string `json:"slug" db:"slug"`      // Unique stable identifier
	Name       string `json:"name" db:"name"`      // Display name
}

// CategoryRefKind discriminates how a category reference was given.
type CategoryRefKind int

const (
	CategoryRefNone CategoryRefKind = iota
	CategoryRefByID
	CategoryRefBySlug
)

// CategoryRef identifies a category by exactly one of id or slug,
// or nothing at all.
type CategoryRef struct {
	Kind CategoryRefKind
	ID   int64
	Slug string
}

// CategoryByID builds a reference by numeric id.
func CategoryByID(id int64) CategoryRef {
	return CategoryRef{Kind: CategoryRefByID, ID: id}
}

// CategoryBySlug builds a reference by slug.
func CategoryBySlug(slug string) CategoryRef {
	return CategoryRef{Kind: CategoryRefBySlug, Slug: slug}
}
