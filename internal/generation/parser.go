package generation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MalformedResponseError reports a generation reply that could not be decoded
// into GeneratedContent. Raw keeps the unmodified reply for diagnostics; it is
// logged internally and never shown to the end user.
type MalformedResponseError struct {
	Raw    string
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed generation response: %s", e.Reason)
}

// ParseResponse decodes a generation reply. A single fenced "```json" block
// wrapped around the payload is tolerated (anchored at the ends, applied once,
// not a general markdown scan); anything else must be a bare JSON object with
// a non-empty product_name. All other keys are optional on purpose: the
// model's adherence to the schema is not guaranteed.
func ParseResponse(raw string) (*GeneratedContent, error) {
	cleaned := strings.TrimPrefix(raw, "```json\n")
	cleaned = strings.TrimSuffix(cleaned, "\n```")

	var content GeneratedContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Reason: err.Error()}
	}
	if content.ProductName == "" {
		return nil, &MalformedResponseError{Raw: raw, Reason: "missing product_name"}
	}
	return &content, nil
}
