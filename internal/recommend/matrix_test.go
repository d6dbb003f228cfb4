package recommend

import (
	"testing"

	apperrors "risk-assessor/internal/errors"
	"risk-assessor/internal/models"
)

func TestMatrixCoversAllCombinations(t *testing.T) {
	matrix := NewMatrix()

	if matrix.Len() != 18 {
		t.Fatalf("matrix has %d entries, want 18", matrix.Len())
	}

	categories := []models.RiskCategoryLabel{
		models.CategoryConservative,
		models.CategoryModerate,
		models.CategoryAggressive,
	}
	horizons := []models.TimeHorizon{
		models.HorizonShort,
		models.HorizonMedium,
		models.HorizonLong,
	}

	for _, category := range categories {
		for _, horizon := range horizons {
			for _, lumpsum := range []bool{true, false} {
				template, err := matrix.Lookup(category, horizon, lumpsum)
				if err != nil {
					t.Errorf("Lookup(%s, %s, %t) failed: %v", category, horizon, lumpsum, err)
					continue
				}
				if template.PrimaryStrategy == "" {
					t.Errorf("Lookup(%s, %s, %t) has empty strategy", category, horizon, lumpsum)
				}
				if len(template.Products) == 0 {
					t.Errorf("Lookup(%s, %s, %t) has no products", category, horizon, lumpsum)
				}
			}
		}
	}
}

func TestMatrixProductAllocationsSumTo100(t *testing.T) {
	matrix := NewMatrix()

	for _, key := range matrix.Keys() {
		template, err := matrix.Lookup(key.Category, key.Horizon, key.Lumpsum)
		if err != nil {
			t.Fatalf("Lookup(%v) failed: %v", key, err)
		}

		sum := 0
		for _, product := range template.Products {
			sum += product.Allocation
		}
		if sum != 100 {
			t.Errorf("allocations for (%s, %s, %t) sum to %d, want 100", key.Category, key.Horizon, key.Lumpsum, sum)
		}
	}
}

func TestMatrixLookupMissReturnsTypedError(t *testing.T) {
	matrix := NewMatrix()

	_, err := matrix.Lookup("Unknown", models.HorizonShort, true)
	if err == nil {
		t.Fatal("expected error for unknown category")
	}
	if !apperrors.Is(err, apperrors.ErrMatrixKeyMissing) {
		t.Errorf("error %v does not wrap ErrMatrixKeyMissing", err)
	}

	var matrixErr *apperrors.MatrixError
	if !apperrors.As(err, &matrixErr) {
		t.Fatalf("error %v is not a MatrixError", err)
	}
	if matrixErr.Category != "Unknown" {
		t.Errorf("MatrixError.Category = %q, want Unknown", matrixErr.Category)
	}
}

func TestMatrixSelectedEntry(t *testing.T) {
	matrix := NewMatrix()

	template, err := matrix.Lookup(models.CategoryModerate, models.HorizonLong, true)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if template.PrimaryStrategy != "Index / Large Cap MF + ELSS (Lumpsum + SIP)" {
		t.Errorf("strategy = %q", template.PrimaryStrategy)
	}
	if len(template.Products) != 5 {
		t.Errorf("product count = %d, want 5", len(template.Products))
	}
	if template.Products[0].Name != "Index Funds" {
		t.Errorf("first product = %q, want Index Funds", template.Products[0].Name)
	}
}

func TestFundsCatalogLookup(t *testing.T) {
	funds := Funds(models.CategoryAggressive, "Multi-cap / Flexi-cap MF")
	if len(funds) != 3 {
		t.Fatalf("fund count = %d, want 3", len(funds))
	}
	if funds[0].Name != "Parag Parikh Flexi Cap Fund" {
		t.Errorf("first fund = %q", funds[0].Name)
	}

	if Funds(models.CategoryConservative, "nonexistent") != nil {
		t.Error("unknown fund type should return nil")
	}
}
