package catalog

import (
	"github.com/pegi/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// defaultCatalog builds the initial title list used when the store
// starts with an empty books table.
func defaultCatalog() ([]catalog.Book, error) {
	seed := []struct {
		title    string
		author   string
		category string
		isbn     string
		price    float64
		stock    int
	}{
		{"Kronikë në gur", "Ismail Kadare", "Roman", "9789992745540", 12.50, 25},
		{"Lulet e verës", "Naim Frashëri", "Poezi", "9789994338122", 8.00, 30},
		{"Vargjet e lira", "Migjeni", "Poezi", "9789995640123", 6.50, 20},
		{"Tregime të moçme shqiptare", "Mitrush Kuteli", "Tregime", "9789992716457", 10.00, 18},
		{"Sikur t'isha djalë", "Haki Stërmilli", "Roman", "9789994387300", 9.00, 15},
	}

	books := make([]catalog.Book, 0, len(seed))
	for _, s := range seed {
		book, err := catalog.NewBook(s.title, s.author, s.category, s.isbn, decimal.NewFromFloat(s.price), s.stock)
		if err != nil {
			return nil, err
		}
		books = append(books, *book)
	}
	return books, nil
}
