// test/benchmarks/cellar_bench_test.go
package benchmarks

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/lilithmonodia/winestock-be/internal/core/domain"
	"github.com/lilithmonodia/winestock-be/internal/core/ports"
)

func BenchmarkWineValidation(b *testing.B) {
	price := decimal.NewFromInt(450)

	b.Run("ValidWine", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_, _ = domain.NewWine("Chateau Margaux", 2015, 75, "ROUGE", price)
		}
	})

	b.Run("InvalidYear", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = domain.NewWine("Chateau Margaux", 3000, 75, "ROUGE", price)
		}
	})

	b.Run("UnknownVolume", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_, _ = domain.NewWine("Chateau Margaux", 2015, 80, "ROUGE", price)
		}
	})
}

func BenchmarkAssortmentAggregation(b *testing.B) {
	sizes := []int{10, 100, 1000}

	for _, size := range sizes {
		wines := make([]*domain.Wine, size)
		for i := range wines {
			wines[i] = newBenchWine(i)
		}

		b.Run("Add_"+strconv.Itoa(size), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				a := domain.NewAssortment()
				for _, w := range wines {
					w.RestoreMembership(false)
					if err := a.Add(w); err != nil {
						b.Fatal(err)
					}
				}
				_ = a.TotalPrice()
			}
		})
	}
}

func BenchmarkCSVParsing(b *testing.B) {
	content := createCellarCSV(100)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		reader := csv.NewReader(bytes.NewReader(content))
		reader.Comma = ';'
		reader.FieldsPerRecord = -1

		records, err := reader.ReadAll()
		if err != nil {
			b.Fatal(err)
		}

		for j, record := range records {
			if j == 0 {
				continue
			}

			year, _ := strconv.Atoi(record[1])
			volume, _ := strconv.ParseFloat(strings.Replace(record[2], ",", ".", 1), 64)
			price, _ := decimal.NewFromString(strings.Replace(record[4], ",", ".", 1))

			if _, err := domain.NewWine(record[0], year, volume, record[3], price); err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkWineSerialization(b *testing.B) {
	wine := newBenchWine(0)

	b.Run("Marshal", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			if _, err := json.Marshal(wine); err != nil {
				b.Fatal(err)
			}
		}
	})

	data, err := json.Marshal(wine)
	if err != nil {
		b.Fatal(err)
	}

	b.Run("Unmarshal", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			var w domain.Wine
			if err := json.Unmarshal(data, &w); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkMemoryAllocation(b *testing.B) {
	b.Run("ListResult", func(b *testing.B) {
		wines := make([]*domain.Wine, 100)
		for i := range wines {
			wines[i] = newBenchWine(i)
		}

		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = &ports.ListResult{
				Wines:      wines,
				Page:       1,
				PageSize:   50,
				TotalCount: 100,
				TotalPages: 2,
			}
		}
	})
}
