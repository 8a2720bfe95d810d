package helper

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const DefaultPage = 1

type PaginationOptions struct {
	DefaultPerPage int
	MaxPerPage     int
}

// ===== Presets =====
var (
	DefaultOpts = PaginationOptions{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = PaginationOptions{DefaultPerPage: 50, MaxPerPage: 500}
)

type PaginationParams struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // asc|desc
}

func (p PaginationParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// ParsePagination lee page/per_page/sort_by/sort_order del query string.
func ParsePagination(c *fiber.Ctx, defaultSortBy, defaultSortOrder string) PaginationParams {
	return ParsePaginationWith(c, defaultSortBy, defaultSortOrder, DefaultOpts)
}

func ParsePaginationWith(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt PaginationOptions) PaginationParams {
	page := atoiDefault(c.Query("page"), DefaultPage)
	if page < 1 {
		page = DefaultPage
	}

	per := opt.DefaultPerPage
	perRaw := strings.TrimSpace(firstNonEmpty(c.Query("per_page"), c.Query("limit")))
	if n, err := strconv.Atoi(perRaw); err == nil && n > 0 {
		per = n
	}
	if per > opt.MaxPerPage {
		per = opt.MaxPerPage
	}

	sortBy := strings.TrimSpace(c.Query("sort_by"))
	if sortBy == "" {
		sortBy = defaultSortBy
	}
	sortOrder := strings.ToLower(strings.TrimSpace(c.Query("sort_order")))
	if sortOrder != "asc" && sortOrder != "desc" {
		sortOrder = defaultSortOrder
	}

	return PaginationParams{Page: page, PerPage: per, SortBy: sortBy, SortOrder: sortOrder}
}

// Meta para el envelope de respuestas paginadas
func PaginationMeta(p PaginationParams, total int64) fiber.Map {
	totalPages := int(math.Ceil(float64(total) / float64(p.PerPage)))
	if totalPages < 1 {
		totalPages = 1
	}
	return fiber.Map{
		"page":        p.Page,
		"per_page":    p.PerPage,
		"total":       total,
		"total_pages": totalPages,
	}
}

func atoiDefault(s string, def int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return def
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
