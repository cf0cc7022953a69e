package stockroom

import (
	"errors"
	"reflect"
	"testing"
)

func TestCategoryRegistry_SeedsDefaults(t *testing.T) {
	book := newTestBook(t)

	got := book.Categories.Categories()
	if !reflect.DeepEqual(got, defaultCategories) {
		t.Errorf("Categories() = %v, want the default set %v", got, defaultCategories)
	}
}

func TestCategoryRegistry_Add(t *testing.T) {
	book := newTestBook(t)

	ok, err := book.Categories.Add("Hardware")
	if err != nil || !ok {
		t.Fatalf("Add() = %v, %v, want true, nil", ok, err)
	}

	// Uniqueness ignores case.
	for _, dup := range []string{"Hardware", "hardware", "HARDWARE"} {
		ok, err := book.Categories.Add(dup)
		if err != nil {
			t.Fatalf("Add(%q) error = %v, want nil", dup, err)
		}
		if ok {
			t.Errorf("Add(%q) = true, want false for a duplicate", dup)
		}
	}

	var verr *ValidationError
	if _, err := book.Categories.Add("   "); !errors.As(err, &verr) {
		t.Errorf("Add(blank) error = %v, want a ValidationError", err)
	}
}

func TestCategoryRegistry_Delete(t *testing.T) {
	book := newTestBook(t)

	ok, err := book.Categories.Delete("Tools")
	if err != nil || !ok {
		t.Fatalf("Delete() = %v, %v, want true, nil", ok, err)
	}

	ok, err = book.Categories.Delete("Tools")
	if err != nil {
		t.Fatalf("second Delete() error = %v, want nil", err)
	}
	if ok {
		t.Errorf("second Delete() = true, want false")
	}
}

func TestCategoryRegistry_Delete_InUse(t *testing.T) {
	book := newTestBook(t)
	mustCreate(t, book, "Hammer", "Tools", "3", "12.00")
	mustCreate(t, book, "Wrench", "Tools", "2", "9.00")

	_, err := book.Categories.Delete("Tools")
	var inUse *CategoryInUseError
	if !errors.As(err, &inUse) {
		t.Fatalf("Delete() error = %v, want a CategoryInUseError", err)
	}
	if inUse.Name != "Tools" || inUse.Items != 2 {
		t.Errorf("CategoryInUseError = %+v, want {Tools 2}", inUse)
	}

	// The category survives the refused deletion.
	found := false
	for _, c := range book.Categories.Categories() {
		if c == "Tools" {
			found = true
		}
	}
	if !found {
		t.Errorf("a refused deletion must keep the category")
	}
}
