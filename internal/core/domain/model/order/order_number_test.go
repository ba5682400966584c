package order_test

import (
	"regexp"
	"testing"

	"gofer/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^GO-[A-Z0-9]{6}$`)

	t.Run("generated numbers match the format", func(t *testing.T) {
		for range 100 {
			n := order.GenerateNumber()
			assert.Regexp(t, pattern, n.String())
			assert.NoError(t, n.Validate())
		}
	})
}

func TestNumberFromString(t *testing.T) {
	t.Run("accepts well-formed numbers", func(t *testing.T) {
		n, err := order.NumberFromString("GO-A1B2C3")

		require.NoError(t, err)
		assert.Equal(t, "GO-A1B2C3", n.String())
	})

	t.Run("rejects malformed numbers", func(t *testing.T) {
		for _, s := range []string{
			"",
			"GO-",
			"GO-abc123",
			"GO-A1B2C",
			"GO-A1B2C3D",
			"XX-A1B2C3",
			"A1B2C3",
		} {
			_, err := order.NumberFromString(s)
			require.Error(t, err, s)
			assert.ErrorIs(t, err, order.ErrOrderNumberIsInvalid)
		}
	})
}

func TestNumber_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var n order.Number

		assert.ErrorIs(t, n.Validate(), order.ErrOrderNumberIsInvalid)
	})
}
