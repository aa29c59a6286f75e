package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewBook(t *testing.T) {
	t.Run("create book successfully", func(t *testing.T) {
		book, err := NewBook("Kronikë në gur", "Ismail Kadare", "Roman", "9789992745540", decimal.NewFromFloat(12.5), 10)

		assert.NoError(t, err)
		assert.Equal(t, "Kronikë në gur", book.Title)
		assert.Equal(t, 10, book.Stock)
	})

	t.Run("isbn is optional", func(t *testing.T) {
		_, err := NewBook("Lulet e verës", "Naim Frashëri", "Poezi", "", decimal.NewFromFloat(8), 5)
		assert.NoError(t, err)
	})

	t.Run("reject empty title", func(t *testing.T) {
		_, err := NewBook("", "Ismail Kadare", "Roman", "", decimal.NewFromInt(10), 1)
		assert.Error(t, err)
	})

	t.Run("reject negative price", func(t *testing.T) {
		_, err := NewBook("Kronikë në gur", "Ismail Kadare", "Roman", "", decimal.NewFromInt(-1), 1)
		assert.Error(t, err)
	})

	t.Run("reject negative stock", func(t *testing.T) {
		_, err := NewBook("Kronikë në gur", "Ismail Kadare", "Roman", "", decimal.NewFromInt(10), -1)
		assert.Error(t, err)
	})
}
