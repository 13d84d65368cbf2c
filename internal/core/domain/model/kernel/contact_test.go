package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("should accept bare address", func(t *testing.T) {
		email, err := kernel.NewEmail(" john.doe@example.com ")

		require.NoError(t, err)
		assert.Equal(t, "john.doe@example.com", email.String())
		require.NoError(t, email.Validate())
	})

	t.Run("should reject blank address", func(t *testing.T) {
		_, err := kernel.NewEmail("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed addresses", func(t *testing.T) {
		for _, value := range []string{"john", "john@", "@example.com", "John <john@example.com>"} {
			_, err := kernel.NewEmail(value)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid, value)
		}
	})

	t.Run("should compare case-insensitively", func(t *testing.T) {
		a, _ := kernel.NewEmail("John.Doe@Example.com")
		b, _ := kernel.NewEmail("john.doe@example.com")

		assert.True(t, a.IsEqual(b))
	})
}

func TestNewPhone(t *testing.T) {
	phone, err := kernel.NewPhone("478-256-2604")
	require.NoError(t, err)
	assert.Equal(t, "478-256-2604", phone.String())

	_, err = kernel.NewPhone("   ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero kernel.Phone
	assert.Equal(t, kernel.ErrPhoneIsNotConstructed, zero.Validate())
}

func TestNewDocument(t *testing.T) {
	document, err := kernel.NewDocument("255-08-0578")
	require.NoError(t, err)
	assert.Equal(t, "255-08-0578", document.String())

	other, _ := kernel.NewDocument("255-08-0578")
	assert.True(t, document.IsEqual(other))

	_, err = kernel.NewDocument("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewProductName(t *testing.T) {
	name, err := kernel.NewProductName("Notebook")
	require.NoError(t, err)
	assert.Equal(t, "Notebook", name.String())

	_, err = kernel.NewProductName("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
