// Package pagination implements the collection envelope shared by every
// list endpoint.
package pagination

import "github.com/gofiber/fiber/v2"

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type Page struct {
	Page  int
	Limit int
}

// FromCtx reads page/limit query parameters and clamps them: limit to
// [1,100] (default 20), page to >= 1.
func FromCtx(c *fiber.Ctx) Page {
	return Clamp(c.QueryInt("page", 1), c.QueryInt("limit", DefaultLimit))
}

func Clamp(page, limit int) Page {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Page: page, Limit: limit}
}

func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

type Meta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

type Envelope[T any] struct {
	Data       []T  `json:"data"`
	Pagination Meta `json:"pagination"`
}

func Wrap[T any](data []T, p Page, total int) Envelope[T] {
	totalPages := total / p.Limit
	if total%p.Limit != 0 {
		totalPages++
	}
	return Envelope[T]{
		Data: data,
		Pagination: Meta{
			Page:            p.Page,
			Limit:           p.Limit,
			Total:           total,
			TotalPages:      totalPages,
			HasNextPage:     p.Page < totalPages,
			HasPreviousPage: p.Page > 1,
		},
	}
}
