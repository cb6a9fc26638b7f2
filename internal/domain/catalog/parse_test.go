package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/honeycarbs/jobportal/internal/domain/catalog"
)

func TestParseExperience(t *testing.T) {
	cases := map[string]int{
		"5 years":   5,
		"3-5 Years": 3,
		"Fresher":   0,
		"":          0,
		"10+ yrs":   10,
		"about two": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, catalog.ParseExperience(in), "ParseExperience(%q)", in)
	}
}

func TestParseSalary(t *testing.T) {
	cases := map[string]float64{
		"₹20":           20,
		"₹4.5 LPA":      4.5,
		"8-12 LPA":      8,
		"Not disclosed": 0,
		"":              0,
		"12.":           12,
	}
	for in, want := range cases {
		assert.InDelta(t, want, catalog.ParseSalary(in), 1e-9, "ParseSalary(%q)", in)
	}
}

func TestFreshnessBucket(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	daysAgo := func(d int) time.Time { return now.Add(-time.Duration(d) * 24 * time.Hour) }

	cases := []struct {
		posted time.Time
		want   string
	}{
		{now.Add(time.Hour), catalog.BucketToday},
		{now.Add(-3 * time.Hour), catalog.BucketToday},
		{daysAgo(1), catalog.BucketYesterday},
		{daysAgo(2), "2 days ago"},
		{daysAgo(7), "7 days ago"},
		{daysAgo(8), catalog.Bucket1Week},
		{daysAgo(14), catalog.Bucket1Week},
		{daysAgo(15), catalog.Bucket2Weeks},
		{daysAgo(21), catalog.Bucket2Weeks},
		{daysAgo(22), catalog.Bucket3Weeks},
		{daysAgo(29), catalog.Bucket3Weeks},
		{daysAgo(30), catalog.Bucket1Month},
		{daysAgo(60), catalog.Bucket1Month},
		{daysAgo(61), catalog.BucketLongAgo},
		{time.Time{}, catalog.BucketLongAgo},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, catalog.FreshnessBucket(tc.posted, now), "posted %s", tc.posted)
	}
}

func TestParseExperienceBracket(t *testing.T) {
	b, err := catalog.ParseExperienceBracket(" 5+ ")
	assert.NoError(t, err)
	assert.Equal(t, catalog.Experience5Plus, b)

	b, err = catalog.ParseExperienceBracket("")
	assert.NoError(t, err)
	assert.Equal(t, catalog.ExperienceAny, b)

	_, err = catalog.ParseExperienceBracket("senior")
	assert.Error(t, err)
}

func TestParseSortKey(t *testing.T) {
	for in, want := range map[string]catalog.SortKey{
		"":        catalog.SortNone,
		"none":    catalog.SortNone,
		"date":    catalog.SortRecency,
		"Ratings": catalog.SortRating,
	} {
		got, err := catalog.ParseSortKey(in)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := catalog.ParseSortKey("salary")
	assert.Error(t, err)
}
