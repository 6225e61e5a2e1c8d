package models

import "github.com/cockroachdb/errors"

const (
	DefaultPageSize = 9
	MaxPageSize     = 100
)

// PageRequest is a 1-based page number and a page size.
type PageRequest struct {
	Page  int
	Limit int
}

func NewPageRequest(page, limit int) (PageRequest, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		return PageRequest{}, errors.Wrapf(BadParameterError, "page must be positive, got %d", page)
	}
	if limit < 1 || limit > MaxPageSize {
		return PageRequest{}, errors.Wrapf(BadParameterError,
			"limit must be between 1 and %d, got %d", MaxPageSize, limit)
	}
	return PageRequest{Page: page, Limit: limit}, nil
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}
