package partner

import (
	"strings"
	"testing"

	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("normalizes email", func(t *testing.T) {
		s, err := NewSupplier(SupplierDetails{Name: "Acme Wholesale", Email: " Sales@Acme.Test "})
		require.NoError(t, err)
		require.NotNil(t, s.Email)
		assert.Equal(t, "sales@acme.test", s.EmailAddress())
	})

	t.Run("blank email is stored as null", func(t *testing.T) {
		s, err := NewSupplier(SupplierDetails{Name: "Acme Wholesale"})
		require.NoError(t, err)
		assert.Nil(t, s.Email)
		assert.Equal(t, "", s.EmailAddress())
	})

	tests := []struct {
		name    string
		details SupplierDetails
	}{
		{"empty name", SupplierDetails{Name: ""}},
		{"invalid email", SupplierDetails{Name: "A", Email: "not-an-email"}},
		{"long note", SupplierDetails{Name: "A", Note: strings.Repeat("x", 1001)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSupplier(tt.details)
			assert.Error(t, err)
		})
	}
}

func TestSupplier_Update(t *testing.T) {
	s, err := NewSupplier(SupplierDetails{Name: "Acme", Email: "a@acme.test"})
	require.NoError(t, err)

	require.NoError(t, s.Update(SupplierDetails{Name: "Acme Ltd", Phone: "555-0100"}))
	assert.Equal(t, "Acme Ltd", s.Name)
	assert.Nil(t, s.Email)
	assert.Equal(t, "555-0100", s.Phone)
}

func TestErrEmailTaken(t *testing.T) {
	assert.ErrorIs(t, ErrEmailTaken, shared.ErrAlreadyExists)
	assert.Equal(t, "The email address is already registered.", ErrEmailTaken.Error())
}
