package entity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10.00", "10.00"},
		{"5.00", "5.00"},
		{"7.50", "7.50"},
		{"7.5", "7.5"},
		{"10", "10"},
		{"0", "0"},
		{"0.000", "0.000"},
		{"-1.20", "-1.20"},
		{"1e3", "1000"},
	}

	for _, tt := range tests {
		if got := FormatDecimal(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatDecimal(%s) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestProductSchema_Header(t *testing.T) {
	got := strings.Join(ProductSchema.Header(), ",")
	if got != "name,price,quantity" {
		t.Fatalf("Header() = %q; want %q", got, "name,price,quantity")
	}
}

func TestProductSchema_Row(t *testing.T) {
	p := NewProduct("Laptop", decimal.RequireFromString("10.00"), 10)

	got := ProductSchema.Row(p)
	want := []string{"Laptop", "10.00", "10"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("Row() = %q; want %q", got, want)
	}
}

func TestProductSchema_RowMissingFields(t *testing.T) {
	got := ProductSchema.Row(Product{})
	if len(got) != len(ProductSchema) {
		t.Fatalf("Row() has %d values; want %d", len(got), len(ProductSchema))
	}
	for i, v := range got {
		if v != "" {
			t.Fatalf("Row()[%d] = %q; want empty", i, v)
		}
	}
}

func TestProduct_UnmarshalJSON(t *testing.T) {
	body := `[
		{"name": "Laptop", "price": 10.00, "quantity": 10},
		{"name": "Phone", "price": "5.00"},
		{"price": null, "quantity": 3}
	]`

	var products []Product
	if err := json.Unmarshal([]byte(body), &products); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("got %d products; want 3", len(products))
	}

	rows := [][]string{
		{"Laptop", "10.00", "10"},
		{"Phone", "5.00", ""},
		{"", "", "3"},
	}
	for i, want := range rows {
		got := ProductSchema.Row(products[i])
		if strings.Join(got, "|") != strings.Join(want, "|") {
			t.Errorf("product %d row = %q; want %q", i, got, want)
		}
	}
}
