// Package catalog holds the normalized product collection and its one-shot
// load lifecycle. The remote wire format never leaves the decode boundary:
// everything downstream of Normalize works with fully-typed Products.
package catalog

import "pixelfront/internal/dummyjson"

// Products with more than this many units on hand count as in stock. The
// derivation is deterministic so repeated loads of the same catalog agree.
const inStockThreshold = 5

// Rating is an aggregate 0-5 score with the number of votes behind it.
type Rating struct {
	Rate  float64
	Count int
}

// Product is one catalog entry after normalization.
type Product struct {
	ID          int64
	Title       string
	Price       float64
	Description string
	Category    string
	Thumbnail   string
	Brand       string
	Rating      Rating
	Stock       int
	InStock     bool
}

// Normalize converts a wire record into a Product, deriving InStock from the
// stock count.
func Normalize(rec dummyjson.Record) Product {
	return Product{
		ID:          rec.ID,
		Title:       rec.Title,
		Price:       rec.Price,
		Description: rec.Description,
		Category:    rec.Category,
		Thumbnail:   rec.Thumbnail,
		Brand:       rec.Brand,
		Rating:      Rating(rec.Rating),
		Stock:       rec.Stock,
		InStock:     rec.Stock > inStockThreshold,
	}
}

// NormalizeAll converts a full wire payload.
func NormalizeAll(recs []dummyjson.Record) []Product {
	if len(recs) == 0 {
		return nil
	}
	products := make([]Product, len(recs))
	for i, rec := range recs {
		products[i] = Normalize(rec)
	}
	return products
}
