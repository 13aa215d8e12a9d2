package dummyjson

import "encoding/json"

// Record is one product as the API delivers it. It is a wire type only;
// catalog.Normalize turns it into the typed Product the rest of the app uses.
type Record struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Thumbnail   string  `json:"thumbnail"`
	Brand       string  `json:"brand"`
	Rating      Rating  `json:"rating"`
	Stock       int     `json:"stock"`
}

// ListResponse mirrors GET /products.
type ListResponse struct {
	Products []Record `json:"products"`
	Total    int      `json:"total"`
	Skip     int      `json:"skip"`
	Limit    int      `json:"limit"`
}

// Rating accepts both wire shapes seen in the wild: a bare 0-5 number
// (DummyJSON) or a {"rate": n, "count": n} object (Fake Store).
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

func (r *Rating) UnmarshalJSON(data []byte) error {
	var scalar float64
	if err := json.Unmarshal(data, &scalar); err == nil {
		r.Rate = scalar
		r.Count = 0
		return nil
	}

	type pair Rating
	var p pair
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Rating(p)
	return nil
}
