package products

import (
	"time"

	"product-studio/internal/domain/products"
)

type CreateProductRequest struct {
	CreationType    string  `json:"creation_type" binding:"required"`
	Niche           *string `json:"niche"`
	IdeaDescription *string `json:"idea_description"`
}

type ProductDTO struct {
	ID              uint    `json:"id"`
	Niche           *string `json:"niche"`
	IdeaDescription *string `json:"idea_description"`

	ProductName              string `json:"product_name"`
	PersuasiveDescription    string `json:"persuasive_description"`
	MainPromise              string `json:"main_promise"`
	OfferCopy                string `json:"offer_copy"`
	AdCopyFacebook           string `json:"ad_copy_facebook"`
	AdCopyInstagram          string `json:"ad_copy_instagram"`
	AdCopyGoogle             string `json:"ad_copy_google"`
	VSLScript                string `json:"vsl_script"`
	LandingPageStructure     string `json:"landing_page_structure"`
	TitlesSuggestions        string `json:"titles_suggestions"`
	CTASuggestions           string `json:"cta_suggestions"`
	TargetAudienceSuggestion string `json:"target_audience_suggestion"`

	CoverImagePlaceholder string    `json:"cover_image_placeholder"`
	AdCreativePlaceholder string    `json:"ad_creative_placeholder"`
	CreatedAt             time.Time `json:"created_at"`
}

func toProductDTO(p *products.Product) ProductDTO {
	return ProductDTO{
		ID:              p.ID,
		Niche:           p.Niche,
		IdeaDescription: p.IdeaDescription,

		ProductName:              p.ProductName,
		PersuasiveDescription:    p.PersuasiveDescription,
		MainPromise:              p.MainPromise,
		OfferCopy:                p.OfferCopy,
		AdCopyFacebook:           p.AdCopyFacebook,
		AdCopyInstagram:          p.AdCopyInstagram,
		AdCopyGoogle:             p.AdCopyGoogle,
		VSLScript:                p.VSLScript,
		LandingPageStructure:     p.LandingPageStructure,
		TitlesSuggestions:        p.TitlesSuggestions,
		CTASuggestions:           p.CTASuggestions,
		TargetAudienceSuggestion: p.TargetAudienceSuggestion,

		CoverImagePlaceholder: p.CoverImagePlaceholder,
		AdCreativePlaceholder: p.AdCreativePlaceholder,
		CreatedAt:             p.CreatedAt,
	}
}
