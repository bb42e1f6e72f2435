package pagination_test

import (
	"math"
	"testing"

	"github.com/sngm3741/resort-crew/api/internal/pagination"
)

func TestCalculate_MiddlePage(t *testing.T) {
	got := pagination.Calculate(2, 10, 25)
	want := pagination.Pagination{CurrentPage: 2, TotalPages: 3, TotalItems: 25, HasNext: true, HasPrev: true}
	if got != want {
		t.Fatalf("Calculate(2, 10, 25) = %+v, want %+v", got, want)
	}
}

func TestCalculate_Edges(t *testing.T) {
	cases := []struct {
		name               string
		page, limit, total int
		want               pagination.Pagination
	}{
		{"first page", 1, 10, 25, pagination.Pagination{CurrentPage: 1, TotalPages: 3, TotalItems: 25, HasNext: true}},
		{"last page", 3, 10, 25, pagination.Pagination{CurrentPage: 3, TotalPages: 3, TotalItems: 25, HasPrev: true}},
		{"exact multiple", 2, 5, 10, pagination.Pagination{CurrentPage: 2, TotalPages: 2, TotalItems: 10, HasPrev: true}},
		{"empty", 1, 10, 0, pagination.Pagination{CurrentPage: 1}},
		{"beyond range", 9, 10, 25, pagination.Pagination{CurrentPage: 9, TotalPages: 3, TotalItems: 25, HasPrev: true}},
		{"zero limit", 1, 0, 25, pagination.Pagination{CurrentPage: 1, TotalItems: 25}},
	}
	for _, c := range cases {
		if got := pagination.Calculate(c.page, c.limit, c.total); got != c.want {
			t.Errorf("%s: Calculate(%d, %d, %d) = %+v, want %+v", c.name, c.page, c.limit, c.total, got, c.want)
		}
	}
}

func TestApply_OutOfRangeIsEmpty(t *testing.T) {
	data := []int{1, 2, 3}
	for _, page := range []int{0, -1, 2, 10, 1<<62 + 1, math.MaxInt} {
		got := pagination.Apply(data, page, 3)
		if got.Data == nil {
			t.Errorf("Apply(page=%d) returned nil slice, want empty", page)
		}
		if len(got.Data) != 0 {
			t.Errorf("Apply(page=%d) = %v, want empty", page, got.Data)
		}
	}
}

func TestApply_HugePageDoesNotWrap(t *testing.T) {
	cases := []struct {
		data  []int
		limit int
	}{
		{[]int{1, 2, 3, 4, 5}, 4},
		{[]int{1, 2, 3}, 2},
		{[]int{1}, math.MaxInt},
	}
	for _, c := range cases {
		got := pagination.Apply(c.data, 1<<62+1, c.limit)
		if len(got.Data) != 0 {
			t.Errorf("Apply(%v, 1<<62+1, %d) = %v, want empty", c.data, c.limit, got.Data)
		}
		if got.Pagination.HasNext {
			t.Errorf("Apply(%v, 1<<62+1, %d) HasNext = true", c.data, c.limit)
		}
	}
}

// Concatenating every page must rebuild the input exactly once, and no page may exceed limit.
func TestApply_PagesReconstructInput(t *testing.T) {
	for total := 0; total <= 23; total++ {
		data := make([]int, total)
		for i := range data {
			data[i] = i
		}
		for limit := 1; limit <= 7; limit++ {
			first := pagination.Apply(data, 1, limit)
			var rebuilt []int
			for page := 1; page <= first.Pagination.TotalPages; page++ {
				chunk := pagination.Apply(data, page, limit)
				if len(chunk.Data) > limit {
					t.Fatalf("total=%d limit=%d page=%d: len=%d exceeds limit", total, limit, page, len(chunk.Data))
				}
				rebuilt = append(rebuilt, chunk.Data...)
			}
			if len(rebuilt) != total {
				t.Fatalf("total=%d limit=%d: rebuilt %d items", total, limit, len(rebuilt))
			}
			for i, v := range rebuilt {
				if v != i {
					t.Fatalf("total=%d limit=%d: rebuilt[%d] = %d", total, limit, i, v)
				}
			}
		}
	}
}

func TestApply_DoesNotAliasInput(t *testing.T) {
	data := []string{"a", "b", "c"}
	got := pagination.Apply(data, 1, 2)
	got.Data[0] = "z"
	if data[0] != "a" {
		t.Fatal("Apply must copy the page, input was modified")
	}
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 20},
		{-3, 500, 1, 100},
		{4, 15, 4, 15},
		{1<<62 + 1, 100, 1<<62 + 1, 100},
	}
	for _, c := range cases {
		page, limit := pagination.Normalize(c.page, c.limit, 20, 100)
		if page != c.wantPage || limit != c.wantLimit {
			t.Errorf("Normalize(%d, %d) = (%d, %d), want (%d, %d)", c.page, c.limit, page, limit, c.wantPage, c.wantLimit)
		}
	}
}
