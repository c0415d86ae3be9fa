package main

import (
	"context"
	"fmt"
	"time"

	"github.com/snnyvrz/locallibrary/internal/model"
	"github.com/snnyvrz/locallibrary/internal/repository"
)

type sampleAuthor struct {
	first, family string
	born, died    string
}

type sampleBook struct {
	title, summary, isbn string
	author               int
	genres               []int
}

type sampleCopy struct {
	book    int
	imprint string
	status  string
	dueBack string
}

var sampleAuthors = []sampleAuthor{
	{"Patrick", "Rothfuss", "1973-06-06", ""},
	{"Ben", "Bova", "1932-11-08", ""},
	{"Isaac", "Asimov", "1920-01-02", "1992-04-06"},
	{"Bob", "Billings", "", ""},
	{"Jim", "Jones", "1971-12-16", ""},
}

var sampleGenres = []string{"Fantasy", "Science Fiction", "French Poetry"}

var sampleBooks = []sampleBook{
	{"The Name of the Wind (The Kingkiller Chronicle, #1)", "I have stolen princesses back from sleeping barrow kings. I burned down the town of Trebon.", "9781473211896", 0, []int{0}},
	{"The Wise Man's Fear (The Kingkiller Chronicle, #2)", "Picking up the tale of Kvothe Kingkiller once again, we follow him into exile.", "9788401352836", 0, []int{0}},
	{"The Slow Regard of Silent Things (Kingkiller Chronicle)", "Deep below the University, there is a dark place.", "9780756411336", 0, []int{0}},
	{"Apes and Angels", "Humankind headed out to the stars not for conquest, nor exploration, nor even for curiosity.", "9780765379528", 1, []int{1}},
	{"Death Wave", "In Ben Bova's previous novel New Earth, Jordan Kell led the first human mission beyond the solar system.", "9780765379504", 1, []int{1}},
	{"Test Book 1", "Summary of test book 1", "ISBN111111", 4, []int{0, 1}},
	{"Test Book 2", "Summary of test book 2", "ISBN222222", 4, nil},
}

var sampleCopies = []sampleCopy{
	{0, "London Gollancz, 2014.", model.StatusAvailable, ""},
	{1, " Gollancz, 2011.", model.StatusLoaned, "2026-11-01"},
	{2, " Gollancz, 2015.", model.StatusAvailable, ""},
	{3, "New York Tom Doherty Associates, 2016.", model.StatusAvailable, ""},
	{3, "New York Tom Doherty Associates, 2016.", model.StatusAvailable, ""},
	{3, "New York Tom Doherty Associates, 2016.", model.StatusAvailable, ""},
	{4, "New York, NY Tom Doherty Associates, LLC, 2015.", model.StatusAvailable, ""},
	{4, "New York, NY Tom Doherty Associates, LLC, 2015.", model.StatusMaintenance, ""},
	{4, "New York, NY Tom Doherty Associates, LLC, 2015.", model.StatusLoaned, "2026-11-15"},
	{0, "Imprint XXX2", model.StatusAvailable, ""},
	{1, "Imprint XXX3", model.StatusAvailable, ""},
}

func sampleSize() int {
	return len(sampleAuthors) + len(sampleGenres) + len(sampleBooks) + len(sampleCopies)
}

// seeder writes the sample records in dependency order, authors and
// genres first.
type seeder struct {
	stores *repository.Stores
	step   func()

	authors []model.Author
	genres  []model.Genre
	books   []model.Book
}

func (s *seeder) run(ctx context.Context) error {
	for _, a := range sampleAuthors {
		rec := model.Author{
			FirstName:   a.first,
			FamilyName:  a.family,
			DateOfBirth: date(a.born),
			DateOfDeath: date(a.died),
		}
		if err := s.stores.Authors.Save(ctx, &rec); err != nil {
			return fmt.Errorf("author %s %s: %w", a.first, a.family, err)
		}
		s.authors = append(s.authors, rec)
		s.step()
	}

	for _, name := range sampleGenres {
		rec := model.Genre{Name: name}
		if err := s.stores.Genres.Save(ctx, &rec); err != nil {
			return fmt.Errorf("genre %s: %w", name, err)
		}
		s.genres = append(s.genres, rec)
		s.step()
	}

	for _, b := range sampleBooks {
		rec := model.Book{
			Title:    b.title,
			AuthorID: s.authors[b.author].ID,
			Summary:  b.summary,
			ISBN:     b.isbn,
		}
		for _, g := range b.genres {
			rec.Genres = append(rec.Genres, model.Genre{ID: s.genres[g].ID})
		}
		if err := s.stores.Books.Save(ctx, &rec); err != nil {
			return fmt.Errorf("book %s: %w", b.title, err)
		}
		s.books = append(s.books, rec)
		s.step()
	}

	for _, c := range sampleCopies {
		rec := model.BookInstance{
			BookID:  s.books[c.book].ID,
			Imprint: c.imprint,
			Status:  c.status,
			DueBack: date(c.dueBack),
		}
		if err := s.stores.Instances.Save(ctx, &rec); err != nil {
			return fmt.Errorf("copy of %s: %w", s.books[c.book].Title, err)
		}
		s.step()
	}

	return nil
}

func date(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}
