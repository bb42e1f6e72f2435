package domain

import "strings"

var (
	provinceSuffixes = []string{"특별자치도", "특별시", "광역시", "도"}
	districtSuffixes = []string{"시", "군", "구"}
)

// Region is the administrative split of a free-text address.
type Region struct {
	Province string
	District string
}

// ParseRegion extracts province and district tokens from an address.
//
// This is a heuristic, not a gazetteer lookup: when no token carries a province
// suffix the first token is returned as the province, even if it is something else.
func ParseRegion(address string) Region {
	tokens := strings.Fields(address)
	if len(tokens) == 0 {
		return Region{}
	}

	for i, token := range tokens {
		if !hasAnySuffix(token, provinceSuffixes) {
			continue
		}
		region := Region{Province: token}
		if i+1 < len(tokens) && hasAnySuffix(tokens[i+1], districtSuffixes) {
			region.District = tokens[i+1]
		}
		return region
	}

	return Region{Province: tokens[0]}
}

func hasAnySuffix(token string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(token, suffix) {
			return true
		}
	}
	return false
}
