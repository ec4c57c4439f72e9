package repository

import (
	"strconv"
	"strings"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter is the closed set of predicates a listing supports. Absent
// filters impose no constraint; present ones are AND-combined.
type Filter interface{ filter() }

// NameContains matches the entry name case-insensitively.
type NameContains string

// CheckedEquals matches the moderation flag exactly.
type CheckedEquals bool

// DistrictContains matches the owned address district case-insensitively.
type DistrictContains string

// NameOrEmailContains matches users by name or email case-insensitively.
type NameOrEmailContains string

func (NameContains) filter()        {}
func (CheckedEquals) filter()       {}
func (DistrictContains) filter()    {}
func (NameOrEmailContains) filter() {}

// ListQuery carries the normalized filter, sort and page window of one
// listing request.
type ListQuery struct {
	Filters   []Filter
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

func (q ListQuery) Direction() string {
	if strings.EqualFold(q.SortOrder, "asc") {
		return "ASC"
	}
	return "DESC"
}

// NormalizePage clamps page to 1 when missing, non-numeric or below 1,
// so the computed offset can never go negative.
func NormalizePage(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 1
	}
	return v
}

// NormalizeLimit clamps limit into [1, MaxLimit], defaulting to
// DefaultLimit when missing or non-numeric.
func NormalizeLimit(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return DefaultLimit
	}
	if v > MaxLimit {
		return MaxLimit
	}
	return v
}

// TotalPages is ceil(total/limit); 0 for an empty result set.
func TotalPages(total int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func contains(v string) string {
	return "%" + strings.ToLower(v) + "%"
}
