package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    uint64
		want     Meta
	}{
		{"empty", 1, 20, 0, Meta{Page: 1, PageSize: 20, TotalPages: 0, TotalRecords: 0}},
		{"exact fit", 1, 20, 40, Meta{Page: 1, PageSize: 20, TotalPages: 2, TotalRecords: 40}},
		{"partial last page", 2, 20, 41, Meta{Page: 2, PageSize: 20, TotalPages: 3, TotalRecords: 41}},
		{"single record", 1, 20, 1, Meta{Page: 1, PageSize: 20, TotalPages: 1, TotalRecords: 1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMeta(tt.page, tt.pageSize, tt.total))
		})
	}
}
