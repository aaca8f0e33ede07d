package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingPrepare(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		wantEmail string
		wantErr   string
	}{
		{"valid", "user@example.com", "user@example.com", ""},
		{"normalized to lowercase and trimmed", "User@Example.com ", "user@example.com", ""},
		{"subdomain", "a@mail.example.co.uk", "a@mail.example.co.uk", ""},
		{"empty", "", "", "Email is required and cannot be empty."},
		{"whitespace only", "   ", "", "Email is required and cannot be empty."},
		{"no at sign", "not-an-email", "", "Email format is invalid."},
		{"no tld", "user@example", "", "Email format is invalid."},
		{"internal whitespace", "us er@example.com", "", "Email format is invalid."},
		{"double at", "a@b@example.com", "", "Email format is invalid."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{EventID: "ev-1", Email: tt.email}
			err := b.Prepare()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.True(t, IsValidation(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantEmail, b.Email)
		})
	}
}
