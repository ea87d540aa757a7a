package generation

// GeneratedContent is the structured marketing copy decoded from a generation
// reply. It only lives between the generation call and the product insert.
// The model is told to fill every key but only ProductName is guaranteed by
// the parser; the rest may come back empty.
type GeneratedContent struct {
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
}
