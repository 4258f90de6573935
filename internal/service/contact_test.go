package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "campmed/internal/errors"
)

func TestNormalizeContact(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		region  string
		want    string
		wantErr bool
	}{
		{"empty stays empty", "  ", "BD", "", false},
		{"national number uses region", "(650) 253-0000", "US", "+16502530000", false},
		{"international ignores region", "+1 650 253 0000", "BD", "+16502530000", false},
		{"letters", "call me", "US", "", true},
		{"too short", "123", "US", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeContact(tt.input, tt.region)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidContact)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
