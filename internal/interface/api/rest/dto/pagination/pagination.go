package pagination

type Meta struct {
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
	TotalPages   uint64 `json:"total_pages"`
	TotalRecords uint64 `json:"total_records"`
}

// NewMeta computes total pages as a ceiling division.
func NewMeta(page, pageSize int, totalRecords uint64) Meta {
	var totalPages uint64
	if pageSize > 0 {
		totalPages = (totalRecords + uint64(pageSize) - 1) / uint64(pageSize)
	}

	return Meta{
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
	}
}
