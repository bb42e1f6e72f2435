package domain

import "strings"

// AllowedLodgingFacilities are the canonical lodging facility tags.
var AllowedLodgingFacilities = []string{"개인실", "다인실", "와이파이", "식사 제공", "세탁기", "주차", "에어컨", "취사 가능"}

var facilityAliases = map[string]string{
	"private_room": "개인실",
	"private":      "개인실",
	"shared_room":  "다인실",
	"dormitory":    "다인실",
	"wifi":         "와이파이",
	"wi-fi":        "와이파이",
	"meals":        "식사 제공",
	"meal":         "식사 제공",
	"laundry":      "세탁기",
	"parking":      "주차",
	"aircon":       "에어컨",
	"air_con":      "에어컨",
	"kitchen":      "취사 가능",
}

// CanonicalFacility maps English aliases onto the Korean facility labels.
// Unknown values come back trimmed so free-form tags still match exactly.
func CanonicalFacility(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}
	if canonical, ok := facilityAliases[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// CanonicalFacilities canonicalises tags and drops blanks and duplicates.
func CanonicalFacilities(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, value := range values {
		canonical := CanonicalFacility(value)
		if canonical == "" {
			continue
		}
		if _, ok := seen[canonical]; ok {
			continue
		}
		seen[canonical] = struct{}{}
		result = append(result, canonical)
	}
	return result
}
