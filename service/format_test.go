package service

import (
	"strings"
	"testing"
)

func TestFormatResultEmpty(t *testing.T) {
	for _, result := range []string{"", "   ", "\n\t"} {
		got := FormatResult(result, "SELECT Name FROM artists;")
		if got != NoResultsMessage {
			t.Fatalf("FormatResult(%q) = %q, want %q", result, got, NoResultsMessage)
		}
	}
}

func TestFormatResultCount(t *testing.T) {
	queries := []string{
		"SELECT COUNT(*) FROM customers;",
		"select count(*) from customers;",
		"SELECT Count(TrackId) FROM tracks;",
	}
	for _, q := range queries {
		got := FormatResult("59", q)
		if got != "The result is: 59" {
			t.Fatalf("FormatResult for %q = %q", q, got)
		}
	}
}

func TestFormatResultGeneric(t *testing.T) {
	got := FormatResult("Luis, Gonçalves", "SELECT FirstName, LastName FROM customers;")
	if !strings.HasPrefix(got, "Here are the results:\n\n") {
		t.Fatalf("missing generic header: %q", got)
	}
	if !strings.Contains(got, "Luis, Gonçalves") {
		t.Fatalf("rendered rows missing: %q", got)
	}
}
