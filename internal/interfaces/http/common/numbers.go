package common

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/sngm3741/resort-crew/api/internal/pagination"
)

// ParsePositiveInt parses positive integers with fallback.
func ParsePositiveInt(value string, fallback int) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, false
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return fallback, false
	}
	return parsed, true
}

// PageParams は page / limit クエリを既定値と上限で丸める。
func PageParams(query url.Values) (int, int) {
	page, _ := ParsePositiveInt(query.Get("page"), 1)
	limit, _ := ParsePositiveInt(query.Get("limit"), DefaultPageLimit)
	return pagination.Normalize(page, limit, DefaultPageLimit, MaxPageLimit)
}

// RoundRating rounds an average rating to one decimal place. nil stays nil.
func RoundRating(value *float64) *float64 {
	if value == nil {
		return nil
	}
	rounded := math.Round(*value*10) / 10
	return &rounded
}
