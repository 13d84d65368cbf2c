package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validZipCode(t *testing.T) kernel.ZipCode {
	t.Helper()
	zip, err := kernel.NewZipCode("79911")
	require.NoError(t, err)
	return zip
}

func TestNewZipCode(t *testing.T) {
	for _, value := range []string{"79911", "01310-100", "SW1A 1AA"} {
		_, err := kernel.NewZipCode(value)
		require.NoError(t, err, value)
	}

	_, err := kernel.NewZipCode("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.NewZipCode("799#11")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewAddress(t *testing.T) {
	t.Run("should create address with optional complement", func(t *testing.T) {
		addr, err := kernel.NewAddress("Bourbon Street", "", "North Ville", "1134", "Yostfort", "South Carolina", validZipCode(t))

		require.NoError(t, err)
		assert.Equal(t, "Bourbon Street", addr.Street())
		assert.Empty(t, addr.Complement())
		assert.Equal(t, "1134", addr.Number())
		assert.Equal(t, "79911", addr.ZipCode().String())
		assert.Equal(t, "Bourbon Street, 1134, North Ville, Yostfort/South Carolina, 79911", addr.String())
	})

	t.Run("should report every missing field", func(t *testing.T) {
		_, err := kernel.NewAddress("", "apt. 114", "", "", "Yostfort", "South Carolina", kernel.ZipCode{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		for _, param := range []string{"street", "neighborhood", "number"} {
			assert.Contains(t, err.Error(), param)
		}
		assert.Contains(t, err.Error(), "zip code must be created via NewZipCode")
	})

	t.Run("should compare every field", func(t *testing.T) {
		a, _ := kernel.NewAddress("Bourbon Street", "apt. 114", "North Ville", "1134", "Yostfort", "South Carolina", validZipCode(t))
		b, _ := kernel.NewAddress("Bourbon Street", "apt. 114", "North Ville", "1134", "Yostfort", "South Carolina", validZipCode(t))
		c, _ := kernel.NewAddress("Bourbon Street", "apt. 115", "North Ville", "1134", "Yostfort", "South Carolina", validZipCode(t))

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestAddress_Anonymized(t *testing.T) {
	addr, err := kernel.NewAddress("Bourbon Street", "apt. 114", "North Ville", "1134", "Yostfort", "South Carolina", validZipCode(t))
	require.NoError(t, err)

	anonymized := addr.Anonymized()

	assert.Equal(t, kernel.AnonymizedAddressNumber, anonymized.Number())
	assert.Empty(t, anonymized.Complement())
	assert.Equal(t, addr.Street(), anonymized.Street())
	assert.Equal(t, addr.City(), anonymized.City())
	assert.Equal(t, addr.ZipCode(), anonymized.ZipCode())
	assert.Equal(t, "1134", addr.Number())
	require.NoError(t, anonymized.Validate())
}
