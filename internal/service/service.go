package service

import "time"

const (
	defaultUserPageSize    = 10
	defaultProjectPageSize = 12
	maxPageSize            = 100
)

func nowUTC() time.Time {
	return time.Now().UTC()
}

// normalizePage clamps page/limit to sane values.
func normalizePage(page, limit, defaultLimit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}
	return page, limit
}

// Pages computes the number of pages for a total at the given page size.
func Pages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
