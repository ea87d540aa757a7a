package generation

import (
	"errors"
	"fmt"
	"strings"

	"product-studio/internal/domain/products"
)

// ErrEmptyInput rejects a creation request whose text is blank.
var ErrEmptyInput = errors.New("input text is empty")

// The parser has no fallback beyond stripping a fenced code block, so the
// "reply ONLY with a valid JSON object" instruction is correctness-critical.
const promptInstructions = `Generate the following marketing content for a digital product. Reply ONLY with a valid JSON object containing these keys (no text before or after the JSON):
- product_name: Creative, appealing name for the product.
- persuasive_description: Short, persuasive description (2-3 sentences).
- main_promise: The main promise or transformation the product delivers.
- offer_copy: Copy for the offer section of the sales page.
- ad_copy_facebook: Short ad copy for Facebook Ads.
- ad_copy_instagram: Short ad copy for Instagram Ads (may include hashtag suggestions).
- ad_copy_google: Short ad copy for Google Ads (keyword focused).
- vsl_script: Basic structure/summarized script for a Video Sales Letter (VSL).
- landing_page_structure: Suggested structure/sections for the landing page.
- titles_suggestions: 3 suggestions of catchy titles for the product or ads.
- cta_suggestions: 3 suggestions of Call-to-Action (CTA) texts for buttons.
- target_audience_suggestion: Brief description of the ideal target audience.`

// BuildPrompt assembles the generation prompt for the given creation origin,
// embedding the caller's text verbatim.
func BuildPrompt(origin products.Origin, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	if origin == products.OriginNiche {
		return fmt.Sprintf("%s\n\nThe product niche is: %s", promptInstructions, text), nil
	}
	return fmt.Sprintf("%s\n\nBase it on the following product idea/description: %s", promptInstructions, text), nil
}
