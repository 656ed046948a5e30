package entity

import "catalogapi/pkg/utils"

// PaginationMeta describes where a page sits inside the full filtered set.
type PaginationMeta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := utils.TotalPages(total, limit)
	return PaginationMeta{
		Total:       total,
		Page:        page,
		Limit:       limit,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
}
