package utils

import (
	"net/http/httptest"
	"sehatnama-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildListQuery(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/lab-reports", nil)

		query, err := BuildListQuery(r)

		require.NoError(t, err)
		assert.Equal(t, constvars.DefaultPage, query.Page)
		assert.Equal(t, constvars.DefaultLimit, query.Limit)
		assert.Equal(t, int64(0), query.Skip())
		assert.Nil(t, query.From)
		assert.Nil(t, query.To)
	})

	t.Run("Filters And Clamp", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/lab-reports?page=3&limit=500&status=Pending&search=%20cbc%20&patientId=P-1001", nil)

		query, err := BuildListQuery(r)

		require.NoError(t, err)
		assert.Equal(t, 3, query.Page)
		assert.Equal(t, constvars.MaxLimit, query.Limit)
		assert.Equal(t, "Pending", query.Status)
		assert.Equal(t, "cbc", query.Search)
		assert.Equal(t, "P-1001", query.PatientID)
		assert.Equal(t, int64(200), query.Skip())
	})

	t.Run("Huge Page Is Clamped", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/patients?page=9223372036854775807&limit=100", nil)

		query, err := BuildListQuery(r)

		require.NoError(t, err)
		assert.Equal(t, constvars.MaxPage, query.Page)
		assert.Equal(t, int64(constvars.MaxPage-1)*int64(constvars.MaxLimit), query.Skip())
		assert.Positive(t, query.Skip())
	})

	t.Run("Invalid Page Falls Back", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/appointments?page=-2&limit=abc", nil)

		query, err := BuildListQuery(r)

		require.NoError(t, err)
		assert.Equal(t, constvars.DefaultPage, query.Page)
		assert.Equal(t, constvars.DefaultLimit, query.Limit)
	})

	t.Run("Date Range", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/appointments?from=2024-06-01&to=2024-06-30", nil)

		query, err := BuildListQuery(r)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), *query.From)
		assert.Equal(t, time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC), *query.To)
	})

	t.Run("Reversed Date Range", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/appointments?from=2024-06-30&to=2024-06-01", nil)

		_, err := BuildListQuery(r)

		assert.Error(t, err)
	})

	t.Run("Malformed Date", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/api/v1/appointments?from=06/01/2024", nil)

		_, err := BuildListQuery(r)

		assert.Error(t, err)
	})
}

func TestBuildPagination(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		limit int
		pages int
	}{
		{"Empty", 0, 10, 0},
		{"Exact", 20, 10, 2},
		{"Partial Last Page", 21, 10, 3},
		{"Single", 1, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pagination := BuildPagination(tt.total, 1, tt.limit)
			assert.Equal(t, tt.pages, pagination.Pages)
			assert.Equal(t, int(tt.total), pagination.Total)
		})
	}
}
