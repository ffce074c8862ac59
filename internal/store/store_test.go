package store_test

import (
	"testing"

	"assetfolio/internal/models"
	"assetfolio/internal/store"
	"assetfolio/internal/testutil"
)

func TestSaveAndFindAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	s := store.New[models.Stock, *models.Stock](db)

	testutil.CreateTestStock(t, db, "AAPL", "10", "150.00")
	testutil.CreateTestStock(t, db, "MSFT", "5", "300.00")

	records, err := s.FindAll()
	testutil.AssertNoError(t, err)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Common().Symbol != "AAPL" || records[1].Common().Symbol != "MSFT" {
		t.Errorf("expected insertion order AAPL, MSFT; got %s, %s",
			records[0].Common().Symbol, records[1].Common().Symbol)
	}
}

func TestFindByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	s := store.New[models.Stock, *models.Stock](db)
	created := testutil.CreateTestStock(t, db, "AAPL", "10", "150.00")

	rec, found, err := s.FindByID(created.ID)
	testutil.AssertNoError(t, err)
	if !found {
		t.Fatal("expected record to be found")
	}
	if rec.Common().ID != created.ID {
		t.Errorf("expected id %s, got %s", created.ID, rec.Common().ID)
	}
	if rec.Type() != models.AssetTypeStock {
		t.Errorf("expected type STOCK, got %s", rec.Type())
	}
}

func TestFindByIDMiss(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	s := store.New[models.Stock, *models.Stock](db)

	rec, found, err := s.FindByID("0198c5f0-0000-7000-8000-000000000000")
	testutil.AssertNoError(t, err)
	if found {
		t.Errorf("expected no record, got %v", rec)
	}
	if rec != nil {
		t.Errorf("expected nil record on miss, got %v", rec)
	}
}

func TestSaveUpdatesExisting(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	s := store.New[models.Stock, *models.Stock](db)
	created := testutil.CreateTestStock(t, db, "AAPL", "10", "150.00")

	created.Quantity = testutil.Dec(t, "20")
	testutil.AssertNoError(t, s.Save(created))

	rec, found, err := s.FindByID(created.ID)
	testutil.AssertNoError(t, err)
	if !found {
		t.Fatal("expected record to be found after update")
	}
	testutil.AssertDecimalEqual(t, rec.Common().Quantity, "20")

	records, err := s.FindAll()
	testutil.AssertNoError(t, err)
	if len(records) != 1 {
		t.Errorf("expected update not to insert a new row, got %d rows", len(records))
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	s := store.New[models.Stock, *models.Stock](db)
	created := testutil.CreateTestStock(t, db, "AAPL", "10", "150.00")

	testutil.AssertNoError(t, s.Delete(created))

	_, found, err := s.FindByID(created.ID)
	testutil.AssertNoError(t, err)
	if found {
		t.Error("expected record to be gone after delete")
	}
}

func TestFindBySymbolContaining(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	s := store.New[models.Stock, *models.Stock](db)
	testutil.CreateTestStock(t, db, "AAPL", "10", "150.00")
	testutil.CreateTestStock(t, db, "GOOGL", "2", "2800.00")
	testutil.CreateTestStock(t, db, "MSFT", "5", "300.00")

	tests := []struct {
		query string
		want  int
	}{
		{"aap", 1},  // lowercase matches uppercase symbol
		{"AAP", 1},  // exact case
		{"oO", 1},   // mixed case substring of GOOGL
		{"L", 2},    // AAPL and GOOGL
		{"XYZ", 0},  // no match
		{"AAPL", 1}, // full symbol
	}

	for _, tt := range tests {
		records, err := s.FindBySymbolContaining(tt.query)
		testutil.AssertNoError(t, err)
		if len(records) != tt.want {
			t.Errorf("FindBySymbolContaining(%q): expected %d records, got %d", tt.query, tt.want, len(records))
		}
	}
}

func TestFindByNameContaining(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	s := store.New[models.Stock, *models.Stock](db)
	// fixture names are "<symbol> Inc"
	testutil.CreateTestStock(t, db, "AAPL", "10", "150.00")
	testutil.CreateTestStock(t, db, "MSFT", "5", "300.00")

	records, err := s.FindByNameContaining("inc")
	testutil.AssertNoError(t, err)
	if len(records) != 2 {
		t.Errorf("expected 2 records matching name substring, got %d", len(records))
	}

	records, err = s.FindByNameContaining("msft")
	testutil.AssertNoError(t, err)
	if len(records) != 1 {
		t.Errorf("expected 1 record matching name substring, got %d", len(records))
	}
}

func TestStoresAreKindIsolated(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	stocks := store.New[models.Stock, *models.Stock](db)
	bonds := store.New[models.Bond, *models.Bond](db)

	testutil.CreateTestStock(t, db, "AAPL", "10", "150.00")
	testutil.CreateTestBond(t, db, "T-2030", "10", "1000.00")

	stockRecs, err := stocks.FindAll()
	testutil.AssertNoError(t, err)
	bondRecs, err := bonds.FindAll()
	testutil.AssertNoError(t, err)

	if len(stockRecs) != 1 || len(bondRecs) != 1 {
		t.Fatalf("expected 1 record per store, got %d stocks and %d bonds", len(stockRecs), len(bondRecs))
	}
	if stockRecs[0].Type() != models.AssetTypeStock {
		t.Errorf("expected STOCK, got %s", stockRecs[0].Type())
	}
	if bondRecs[0].Type() != models.AssetTypeBond {
		t.Errorf("expected BOND, got %s", bondRecs[0].Type())
	}
}

func TestBeforeCreateAssignsID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)

	created := testutil.CreateTestStock(t, db, "AAPL", "10", "150.00")
	if created.ID == "" {
		t.Error("expected a generated id on create")
	}
}
