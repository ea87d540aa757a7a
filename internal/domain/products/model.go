package products

import (
	"time"

	"product-studio/internal/domain/users"
)

// Origin says which input mode produced a product. Exactly one of the two
// input columns is populated, matching the origin.
type Origin string

const (
	OriginNiche Origin = "niche"
	OriginIdea  Origin = "idea"
)

type Product struct {
	ID     uint       `gorm:"primaryKey"`
	UserID uint       `gorm:"not null;index"`
	User   users.User `gorm:"constraint:OnDelete:CASCADE"`

	Niche           *string
	IdeaDescription *string

	ProductName              string `gorm:"not null"`
	PersuasiveDescription    string
	MainPromise              string
	OfferCopy                string
	AdCopyFacebook           string
	AdCopyInstagram          string
	AdCopyGoogle             string
	VSLScript                string `gorm:"column:vsl_script"`
	LandingPageStructure     string
	TitlesSuggestions        string
	CTASuggestions           string `gorm:"column:cta_suggestions"`
	TargetAudienceSuggestion string

	CoverImagePlaceholder string
	AdCreativePlaceholder string

	CreatedAt time.Time
}
