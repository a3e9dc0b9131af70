package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstitutionName(t *testing.T) {
	tests := []struct {
		folder string
		want   string
	}{
		{"BANCO GUAYAQUIL DICIEMBRE 2025", "BANCO GUAYAQUIL"},
		{"BANCO DEL AUSTRO enero 2024", "BANCO DEL AUSTRO"},
		{"CITIBANK", "CITIBANK"},
		{"BANCO AGOSTO", "BANCO AGOSTO"}, // month with no year is kept
		{"  BANCO SOLIDARIO MARZO 2023  ", "BANCO SOLIDARIO"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InstitutionName(tt.folder), tt.folder)
	}
}
