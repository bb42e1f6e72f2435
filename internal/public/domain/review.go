package domain

import "time"

// ReviewRecord is an append-only review left about an employer. Both ratings are optional.
type ReviewRecord struct {
	ID                  string
	EmployerID          string
	OverallRating       *float64
	AccommodationRating *float64
	Content             string
	CreatedAt           time.Time
}

// ReviewSummary aggregates review records for one employer.
// AverageRating is nil when no record carries a usable rating.
type ReviewSummary struct {
	Count         int
	AverageRating *float64
}

// effectiveRating prefers the accommodation rating and falls back to the overall one.
// An accommodation rating that is present but not positive is not replaced.
func (r ReviewRecord) effectiveRating() (float64, bool) {
	value := r.AccommodationRating
	if value == nil {
		value = r.OverallRating
	}
	if value == nil || *value <= 0 {
		return 0, false
	}
	return *value, true
}

// SummarizeEmployer reduces records to the summary of a single employer.
func SummarizeEmployer(records []ReviewRecord, employerID string) ReviewSummary {
	acc := reviewAccumulator{}
	for _, record := range records {
		if record.EmployerID != employerID {
			continue
		}
		acc.add(record)
	}
	return acc.summary()
}

// SummarizeReviews reduces records to one summary per employer id.
func SummarizeReviews(records []ReviewRecord) map[string]ReviewSummary {
	accs := make(map[string]*reviewAccumulator)
	for _, record := range records {
		acc, ok := accs[record.EmployerID]
		if !ok {
			acc = &reviewAccumulator{}
			accs[record.EmployerID] = acc
		}
		acc.add(record)
	}

	result := make(map[string]ReviewSummary, len(accs))
	for id, acc := range accs {
		result[id] = acc.summary()
	}
	return result
}

type reviewAccumulator struct {
	count int
	rated int
	sum   float64
}

func (a *reviewAccumulator) add(record ReviewRecord) {
	a.count++
	if rating, ok := record.effectiveRating(); ok {
		a.rated++
		a.sum += rating
	}
}

func (a *reviewAccumulator) summary() ReviewSummary {
	summary := ReviewSummary{Count: a.count}
	if a.rated > 0 {
		avg := a.sum / float64(a.rated)
		summary.AverageRating = &avg
	}
	return summary
}
