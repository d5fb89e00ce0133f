package store

import (
	"testing"

	"github.com/google/uuid"

	"framelight/internal/models"
)

func TestCategoryCRUD(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	t.Cleanup(func() { cleanCategories(t, db, "Test Weddings", "Test Weddings Renamed") })

	cat, err := s.Create("Test Weddings")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !cat.IsActive {
		t.Error("new category should default to active")
	}
	if cat.IsPasswordProtected {
		t.Error("new category should not be protected")
	}
	if cat.DisplayOrder < 1 {
		t.Errorf("DisplayOrder = %d, want >= 1", cat.DisplayOrder)
	}

	found, err := s.FindByName("Test Weddings")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if found == nil || found.ID != cat.ID {
		t.Fatal("FindByName did not return the created category")
	}

	if err := s.SetActive(cat.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	active, err := s.ListActive()
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	for _, c := range active {
		if c.ID == cat.ID {
			t.Error("inactive category returned by ListActive")
		}
	}

	if err := s.Delete(cat.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := s.FindByID(cat.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Error("category still found after delete")
	}
}

func TestCategoryRenameCascadesToItems(t *testing.T) {
	db := testDB(t)
	cats := NewCategoryStore(db)
	items := NewPortfolioStore(db)

	t.Cleanup(func() {
		cleanItems(t, db, "Cascade Test Item")
		cleanCategories(t, db, "Cascade Before", "Cascade After")
	})

	cat, err := cats.Create("Cascade Before")
	if err != nil {
		t.Fatalf("Create category: %v", err)
	}
	item, err := items.Create(&models.PortfolioItem{
		Title:       "Cascade Test Item",
		Category:    "Cascade Before",
		ImageURL:    "https://example.com/a.jpg",
		AspectRatio: models.AspectSquare,
	})
	if err != nil {
		t.Fatalf("Create item: %v", err)
	}

	if err := cats.Rename(cat.ID, "Cascade After"); err != nil {
		t.Fatalf("Rename: %v", err)
	}

	got, err := items.FindByID(item.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Category != "Cascade After" {
		t.Errorf("item category = %q after rename, want %q", got.Category, "Cascade After")
	}
}

func TestCategorySetProtection(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	t.Cleanup(func() { cleanCategories(t, db, "Protection Test") })

	cat, err := s.Create("Protection Test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	verifier := "YWJjMTIz" // base64("abc123")
	if err := s.SetProtection(cat.ID, true, &verifier); err != nil {
		t.Fatalf("SetProtection on: %v", err)
	}
	got, _ := s.FindByID(cat.ID)
	if !got.IsPasswordProtected || got.PasswordHash == nil || *got.PasswordHash != verifier {
		t.Error("protection not stored")
	}

	// Removing protection must clear the verifier even if one is passed.
	if err := s.SetProtection(cat.ID, false, &verifier); err != nil {
		t.Fatalf("SetProtection off: %v", err)
	}
	got, _ = s.FindByID(cat.ID)
	if got.IsPasswordProtected || got.PasswordHash != nil {
		t.Error("verifier not cleared when protection removed")
	}
}

func TestCategoryReorder(t *testing.T) {
	db := testDB(t)
	s := NewCategoryStore(db)

	names := []string{"Reorder A", "Reorder B", "Reorder C"}
	t.Cleanup(func() { cleanCategories(t, db, names...) })

	var created []*models.PortfolioCategory
	for _, n := range names {
		c, err := s.Create(n)
		if err != nil {
			t.Fatalf("Create %s: %v", n, err)
		}
		created = append(created, c)
	}

	// Reverse the order.
	reversed := []uuid.UUID{created[2].ID, created[1].ID, created[0].ID}
	if err := s.Reorder(reversed); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	a, _ := s.FindByID(created[0].ID)
	c, _ := s.FindByID(created[2].ID)
	if c.DisplayOrder >= a.DisplayOrder {
		t.Errorf("reorder did not apply: C=%d A=%d", c.DisplayOrder, a.DisplayOrder)
	}
}
