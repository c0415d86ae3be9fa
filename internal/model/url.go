package model

import (
	"github.com/gedex/inflector"
	"github.com/google/uuid"
)

const catalogPrefix = "/catalog/"

const (
	SegmentAuthor       = "author"
	SegmentBook         = "book"
	SegmentGenre        = "genre"
	SegmentBookInstance = "bookinstance"
)

// CatalogURL is the canonical address of one record.
func CatalogURL(segment string, id uuid.UUID) string {
	return catalogPrefix + segment + "/" + id.String()
}

// ListURL is the address of the list view for segment.
func ListURL(segment string) string {
	return catalogPrefix + inflector.Pluralize(segment)
}
