package model

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAuthorName(t *testing.T) {
	cases := []struct {
		first, family, want string
	}{
		{"Isaac", "Asimov", "Asimov, Isaac"},
		{"", "Asimov", ""},
		{"Isaac", "", ""},
		{"", "", ""},
	}

	for _, tc := range cases {
		got := AuthorName(Author{FirstName: tc.first, FamilyName: tc.family})
		if got != tc.want {
			t.Errorf("AuthorName(%q, %q) = %q, want %q", tc.first, tc.family, got, tc.want)
		}
	}
}

func TestAuthorLifespan(t *testing.T) {
	born := time.Date(1920, time.January, 2, 0, 0, 0, 0, time.UTC)
	died := time.Date(1992, time.April, 6, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		a    Author
		want string
	}{
		{"both", Author{DateOfBirth: &born, DateOfDeath: &died}, "1920 - 1992"},
		{"birth only", Author{DateOfBirth: &born}, "1920 - "},
		{"death only", Author{DateOfDeath: &died}, " - 1992"},
		{"neither", Author{}, " - "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AuthorLifespan(tc.a); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCatalogURLs(t *testing.T) {
	id := uuid.MustParse("8c5a4c1e-3f0c-4f4e-9a57-61b3c2f1d7a0")

	if got := AuthorURL(Author{ID: id}); got != "/catalog/author/"+id.String() {
		t.Errorf("unexpected author url %q", got)
	}
	if got := BookURL(Book{ID: id}); got != "/catalog/book/"+id.String() {
		t.Errorf("unexpected book url %q", got)
	}
	if got := GenreURL(Genre{ID: id}); got != "/catalog/genre/"+id.String() {
		t.Errorf("unexpected genre url %q", got)
	}
	if got := BookInstanceURL(BookInstance{ID: id}); got != "/catalog/bookinstance/"+id.String() {
		t.Errorf("unexpected bookinstance url %q", got)
	}
}

func TestListURL(t *testing.T) {
	want := map[string]string{
		SegmentAuthor:       "/catalog/authors",
		SegmentBook:         "/catalog/books",
		SegmentGenre:        "/catalog/genres",
		SegmentBookInstance: "/catalog/bookinstances",
	}

	for seg, url := range want {
		if got := ListURL(seg); got != url {
			t.Errorf("ListURL(%q) = %q, want %q", seg, got, url)
		}
	}
}

func TestGenreCheck_NameBounds(t *testing.T) {
	cases := []struct {
		n  int
		ok bool
	}{
		{0, false},
		{2, false},
		{3, true},
		{100, true},
		{101, false},
	}

	for _, tc := range cases {
		err := Genre{Name: strings.Repeat("a", tc.n)}.Check()
		if tc.ok && err != nil {
			t.Errorf("len %d: expected valid, got %v", tc.n, err)
		}
		if !tc.ok {
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Field != "name" {
				t.Errorf("len %d: expected name validation error, got %v", tc.n, err)
			}
		}
	}
}

func TestBookInstanceCheck_Status(t *testing.T) {
	bi := BookInstance{BookID: uuid.New(), Imprint: "Gollancz, 2011", Status: "Lost"}
	if err := bi.Check(); err == nil {
		t.Fatalf("expected error for unknown status")
	}

	bi.Status = StatusLoaned
	if err := bi.Check(); err != nil {
		t.Fatalf("expected valid copy, got %v", err)
	}
}

func TestParseDate(t *testing.T) {
	for _, s := range []string{"1920-01-02", "1920/01/02", "January 2, 1920", "1920-01-02T00:00:00Z"} {
		got, err := ParseDate(s)
		if err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", s, err)
			continue
		}
		if got.Year() != 1920 || got.Month() != time.January || got.Day() != 2 {
			t.Errorf("ParseDate(%q) = %v", s, got)
		}
	}

	if _, err := ParseDate("1920-13-40"); err == nil {
		t.Errorf("expected error for impossible date")
	}
}

func TestFormatMedium(t *testing.T) {
	d := time.Date(1983, time.October, 14, 0, 0, 0, 0, time.UTC)
	if got := FormatMedium(&d); got != "Oct 14, 1983" {
		t.Errorf("unexpected format %q", got)
	}
	if got := FormatMedium(nil); got != "" {
		t.Errorf("expected blank for nil, got %q", got)
	}
}
