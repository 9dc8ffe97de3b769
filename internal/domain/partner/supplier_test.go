package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	s, err := NewSupplier("Acciai Piemonte SPA")

	require.NoError(t, err)
	assert.Equal(t, "Acciai Piemonte SPA", s.Name)
	assert.Equal(t, SupplierStatusActive, s.Status)
	assert.Equal(t, PaymentTermsImmediate, s.PaymentTerms)
}

func TestNewSupplier_EmptyName(t *testing.T) {
	_, err := NewSupplier("")
	assert.Error(t, err)
}

func TestSupplier_SetPaymentTerms(t *testing.T) {
	s, err := NewSupplier("Acciai Piemonte SPA")
	require.NoError(t, err)

	require.NoError(t, s.SetPaymentTerms(PaymentTerms60Days))
	assert.Equal(t, PaymentTerms60Days, s.PaymentTerms)

	assert.Error(t, s.SetPaymentTerms(PaymentTerms("120_days")))
}

func TestSupplier_SetVATNumber(t *testing.T) {
	s, err := NewSupplier("Acciai Piemonte SPA")
	require.NoError(t, err)

	require.NoError(t, s.SetVATNumber("09876543210"))
	assert.Equal(t, "09876543210", s.VATNumber)

	assert.Error(t, s.SetVATNumber("IT0987654321"))
}

func TestSupplier_ActivateDeactivate(t *testing.T) {
	s, err := NewSupplier("Acciai Piemonte SPA")
	require.NoError(t, err)

	s.Deactivate()
	assert.False(t, s.IsActive())

	s.Activate()
	assert.True(t, s.IsActive())
}
