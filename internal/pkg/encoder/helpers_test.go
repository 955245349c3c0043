package encoder

import (
	"errors"
	"testing"

	"github.com/futig/report-backend/internal/entity"
	"github.com/shopspring/decimal"
)

const sampleReport = "name;price;quantity\nLaptop;10.00;10\nPhone;5.00;20\nTablet;7.50;15\n"

func sampleProducts(t *testing.T) []entity.Product {
	t.Helper()

	return []entity.Product{
		entity.NewProduct("Laptop", decimal.RequireFromString("10.00"), 10),
		entity.NewProduct("Phone", decimal.RequireFromString("5.00"), 20),
		entity.NewProduct("Tablet", decimal.RequireFromString("7.50"), 15),
	}
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

var errDiskFull = errors.New("disk full")
