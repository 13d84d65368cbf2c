package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFullName(t *testing.T) {
	t.Run("should trim both parts", func(t *testing.T) {
		name, err := kernel.NewFullName(" John ", " Doe ")

		require.NoError(t, err)
		assert.Equal(t, "John", name.FirstName())
		assert.Equal(t, "Doe", name.LastName())
		assert.Equal(t, "John Doe", name.String())
	})

	t.Run("should report every blank part", func(t *testing.T) {
		_, err := kernel.NewFullName("", " ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "firstName")
		assert.Contains(t, err.Error(), "lastName")
	})

	t.Run("should compare both parts", func(t *testing.T) {
		a, _ := kernel.NewFullName("John", "Doe")
		b, _ := kernel.NewFullName("John", "Doe")
		c, _ := kernel.NewFullName("Jane", "Doe")

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
