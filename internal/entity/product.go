package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Product is a single report record. Nil fields are treated as absent
// and render as an empty string in every report format.
type Product struct {
	Name     *string          `json:"name"`
	Price    *decimal.Decimal `json:"price"`
	Quantity *int64           `json:"quantity"`
}

// NewProduct builds a Product with every field set.
func NewProduct(name string, price decimal.Decimal, quantity int64) Product {
	return Product{
		Name:     &name,
		Price:    &price,
		Quantity: &quantity,
	}
}

// ProductSchema lists the report columns of a Product in output order.
var ProductSchema = Schema[Product]{
	{Name: "name", Value: func(p Product) string {
		if p.Name == nil {
			return ""
		}
		return *p.Name
	}},
	{Name: "price", Value: func(p Product) string {
		if p.Price == nil {
			return ""
		}
		return FormatDecimal(*p.Price)
	}},
	{Name: "quantity", Value: func(p Product) string {
		if p.Quantity == nil {
			return ""
		}
		return strconv.FormatInt(*p.Quantity, 10)
	}},
}

// FormatDecimal renders d with the scale it was constructed with,
// so 10.00 stays "10.00" instead of collapsing to "10".
func FormatDecimal(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
