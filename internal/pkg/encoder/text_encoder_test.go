package encoder

import (
	"errors"
	"strings"
	"testing"

	"github.com/futig/report-backend/internal/entity"
	"github.com/shopspring/decimal"
)

func TestTextEncoders_SampleReport(t *testing.T) {
	products := sampleProducts(t)

	encoders := []Encoder[entity.Product]{
		NewCSVEncoder(entity.ProductSchema),
		NewTXTEncoder(entity.ProductSchema),
	}
	for _, enc := range encoders {
		got, err := enc.Generate(products)
		if err != nil {
			t.Fatalf("%s Generate() error: %v", enc.Format(), err)
		}
		if string(got) != sampleReport {
			t.Fatalf("%s Generate() = %q; want %q", enc.Format(), got, sampleReport)
		}
	}
}

func TestTextEncoders_EmptyInput(t *testing.T) {
	for _, enc := range []Encoder[entity.Product]{
		NewCSVEncoder(entity.ProductSchema),
		NewTXTEncoder(entity.ProductSchema),
	} {
		for _, records := range [][]entity.Product{nil, {}} {
			got, err := enc.Generate(records)
			if err != nil {
				t.Fatalf("%s Generate() error: %v", enc.Format(), err)
			}
			if string(got) != "name;price;quantity\n" {
				t.Fatalf("%s Generate() = %q; want header only", enc.Format(), got)
			}
		}
	}
}

func TestTextEncoders_MissingFields(t *testing.T) {
	name := "Mouse"
	qty := int64(3)
	price := decimal.RequireFromString("1.5")
	products := []entity.Product{
		{Name: &name},
		{Price: &price},
		{Quantity: &qty},
		{},
	}
	want := "name;price;quantity\nMouse;;\n;1.5;\n;;3\n;;\n"

	for _, enc := range []Encoder[entity.Product]{
		NewCSVEncoder(entity.ProductSchema),
		NewTXTEncoder(entity.ProductSchema),
	} {
		got, err := enc.Generate(products)
		if err != nil {
			t.Fatalf("%s Generate() error: %v", enc.Format(), err)
		}
		if string(got) != want {
			t.Fatalf("%s Generate() = %q; want %q", enc.Format(), got, want)
		}
		if strings.Contains(string(got), "null") || strings.Contains(string(got), "nil") {
			t.Fatalf("%s output contains a null marker: %q", enc.Format(), got)
		}
	}
}

func TestTextEncoders_Equivalent(t *testing.T) {
	products := append(sampleProducts(t),
		entity.NewProduct("Café crème", decimal.RequireFromString("0.001"), 0),
		entity.NewProduct("", decimal.RequireFromString("-3"), -1),
		entity.NewProduct("Big", decimal.RequireFromString("123456789.123456789"), 9223372036854775807),
	)

	csvOut, err := NewCSVEncoder(entity.ProductSchema).Generate(products)
	if err != nil {
		t.Fatalf("csv Generate() error: %v", err)
	}
	txtOut, err := NewTXTEncoder(entity.ProductSchema).Generate(products)
	if err != nil {
		t.Fatalf("txt Generate() error: %v", err)
	}
	if string(csvOut) != string(txtOut) {
		t.Fatalf("csv and txt differ:\ncsv: %q\ntxt: %q", csvOut, txtOut)
	}

	lines := strings.Split(strings.TrimSuffix(string(txtOut), "\n"), "\n")
	if len(lines)-1 != len(products) {
		t.Fatalf("got %d data lines; want %d", len(lines)-1, len(products))
	}
	for i, line := range lines {
		if n := len(strings.Split(line, ";")); n != 3 {
			t.Fatalf("line %d has %d fields: %q", i, n, line)
		}
	}
}

func TestTextEncoders_ValuesWrittenVerbatim(t *testing.T) {
	products := []entity.Product{
		entity.NewProduct("a;b", decimal.RequireFromString("1"), 1),
	}

	for _, enc := range []Encoder[entity.Product]{
		NewCSVEncoder(entity.ProductSchema),
		NewTXTEncoder(entity.ProductSchema),
	} {
		got, err := enc.Generate(products)
		if err != nil {
			t.Fatalf("%s Generate() error: %v", enc.Format(), err)
		}
		if want := "name;price;quantity\na;b;1;1\n"; string(got) != want {
			t.Fatalf("%s Generate() = %q; want %q", enc.Format(), got, want)
		}
	}
}

func TestTextEncoders_QuoteWrittenVerbatim(t *testing.T) {
	products := []entity.Product{
		entity.NewProduct(`15" monitor`, decimal.RequireFromString("99.90"), 2),
		{Name: stringPtr(`say "hi"`)},
	}
	want := "name;price;quantity\n15\" monitor;99.90;2\nsay \"hi\";;\n"

	csvOut, err := NewCSVEncoder(entity.ProductSchema).Generate(products)
	if err != nil {
		t.Fatalf("csv Generate() error: %v", err)
	}
	txtOut, err := NewTXTEncoder(entity.ProductSchema).Generate(products)
	if err != nil {
		t.Fatalf("txt Generate() error: %v", err)
	}

	if string(csvOut) != string(txtOut) {
		t.Fatalf("csv and txt differ:\ncsv: %q\ntxt: %q", csvOut, txtOut)
	}
	if string(csvOut) != want {
		t.Fatalf("Generate() = %q; want %q", csvOut, want)
	}
}

func stringPtr(s string) *string {
	return &s
}

func TestCSVEncoder_WriterFailure(t *testing.T) {
	enc := NewCSVEncoder(entity.ProductSchema)

	err := enc.encode(failingWriter{err: errDiskFull}, sampleProducts(t))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, entity.ErrReportGenerationFailed) {
		t.Fatalf("error %v is not ErrReportGenerationFailed", err)
	}
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("error %v does not wrap the writer error", err)
	}

	var genErr *entity.GenerationError
	if !errors.As(err, &genErr) || genErr.Stage != entity.StageFinalize {
		t.Fatalf("error %v not attributed to %q", err, entity.StageFinalize)
	}
}

func TestRowWriter_FailsOnWrite(t *testing.T) {
	rw := newRowWriter(failingWriter{err: errDiskFull})

	// Larger than the bufio buffer, so the failure surfaces on write.
	big := strings.Repeat("x", 8192)
	if err := rw.WriteRow([]string{big}); !errors.Is(err, errDiskFull) {
		t.Fatalf("WriteRow() error = %v; want %v", err, errDiskFull)
	}
}
