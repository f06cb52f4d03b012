package entities

import (
	"bytes"
	"encoding/gob"
	"errors"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog entry. Weight feeds the shipping strategies when a
// customer does not provide one explicitly.
type Product struct {
	ID       int64
	Name     string
	Price    float64
	WeightKg float64
}

// ProductList exists so a whole catalog page can be cached as one value.
type ProductList []Product

func (l ProductList) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(l); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (l *ProductList) Unmarshal(data []byte) error {
	return gob.NewDecoder(bytes.NewBuffer(data)).Decode(l)
}
