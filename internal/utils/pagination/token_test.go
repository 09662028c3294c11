package pagination_test

import (
	"testing"
	"time"

	"github.com/fiscalia/fiscal_tracker_app/internal/utils/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateBasedToken_RoundTrip(t *testing.T) {
	original := time.Date(2025, 6, 15, 10, 30, 0, 123456789, time.UTC)

	token := pagination.EncodeDateBasedToken(original)
	require.NotEmpty(t, token)

	decoded, err := pagination.DecodeDateBasedToken(token)
	require.NoError(t, err)
	assert.True(t, original.Equal(decoded))
}

func TestDecodeDateBasedToken_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "not base64", token: "!!!not-base64!!!"},
		{name: "base64 but not a date", token: "bm90LWEtZGF0ZQ=="},
		{name: "empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pagination.DecodeDateBasedToken(tt.token)
			assert.Error(t, err)
		})
	}
}
