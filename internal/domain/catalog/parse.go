package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	firstInt    = regexp.MustCompile(`\d+`)
	firstNumber = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseExperience returns the first integer in an experience string such
// as "3-5 years", or 0 when there is none
func ParseExperience(s string) int {
	m := firstInt.FindString(s)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// ParseSalary returns the first numeric token in a salary string such as
// "₹4.5 LPA", or 0 when there is none
func ParseSalary(s string) float64 {
	m := firstNumber.FindString(s)
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// Freshness buckets of the posted-date facet
const (
	BucketToday     = "today"
	BucketYesterday = "yesterday"
	Bucket1Week     = "1 week ago"
	Bucket2Weeks    = "2 weeks ago"
	Bucket3Weeks    = "3 weeks ago"
	Bucket1Month    = "1 month ago"
	BucketLongAgo   = "long ago"
)

// FreshnessBucket labels how long ago a job was posted relative to now.
// Days are counted in whole 24h periods; future timestamps count as today.
func FreshnessBucket(postedAt, now time.Time) string {
	days := int(now.Sub(postedAt) / (24 * time.Hour))

	switch {
	case days <= 0:
		return BucketToday
	case days == 1:
		return BucketYesterday
	case days <= 7:
		return fmt.Sprintf("%d days ago", days)
	case days <= 14:
		return Bucket1Week
	case days <= 21:
		return Bucket2Weeks
	case days <= 29:
		return Bucket3Weeks
	case days <= 60:
		return Bucket1Month
	default:
		return BucketLongAgo
	}
}
