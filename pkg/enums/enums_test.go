package enums

import "testing"

func TestParseProductCategory(t *testing.T) {
	for _, c := range ProductCategories() {
		got, err := ParseProductCategory(c.String())
		if err != nil || got != c {
			t.Fatalf("expected %q to parse, got %q err=%v", c, got, err)
		}
	}
	if _, err := ParseProductCategory(CategoryAll); err == nil {
		t.Fatal("All is a filter wildcard, not a product category")
	}
	if _, err := ParseProductCategory("chairs"); err == nil {
		t.Fatal("categories are case sensitive")
	}
}

func TestParseSortMode(t *testing.T) {
	if got, err := ParseSortMode(""); err != nil || got != SortRelevance {
		t.Fatalf("empty sort should mean relevance, got %q err=%v", got, err)
	}
	if got, err := ParseSortMode("price-desc"); err != nil || got != SortPriceDesc {
		t.Fatalf("unexpected parse result %q err=%v", got, err)
	}
	if _, err := ParseSortMode("name"); err == nil {
		t.Fatal("expected error for unknown sort")
	}
}

func TestScreens(t *testing.T) {
	if len(Screens()) != 15 {
		t.Fatalf("expected 15 screens, got %d", len(Screens()))
	}
	if _, err := ParseScreen("emailVerification"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Screen("nowhere").IsValid() {
		t.Fatal("unknown screen reported valid")
	}
}

func TestThemeAndLang(t *testing.T) {
	if _, err := ParseTheme("sepia"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if LangEN.Other() != LangRU || LangRU.Other() != LangEN {
		t.Fatal("language toggle should flip between en and ru")
	}
	if Lang("de").IsValid() {
		t.Fatal("only en and ru are supported")
	}
}
