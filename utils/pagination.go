package utils

import "gorm.io/gorm"

// PageQuery is embedded by listing request schemas
type PageQuery struct {
	Page  int `json:"page" query:"page" default:"1" validate:"min=1"`
	Limit int `json:"limit" query:"limit" default:"10" validate:"min=1,max=100"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

func (q PageQuery) Scope(tx *gorm.DB) *gorm.DB {
	return tx.Offset((q.Page - 1) * q.Limit).Limit(q.Limit)
}

func (q PageQuery) Build(total int64) Pagination {
	pages := total / int64(q.Limit)
	if total%int64(q.Limit) != 0 {
		pages++
	}
	return Pagination{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Pages: pages,
	}
}
