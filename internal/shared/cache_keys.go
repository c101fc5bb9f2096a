package shared

import "github.com/google/uuid"

// Detail cache keys shared by the catalog domains.
// A book write must also drop its author's detail (nested book list).
const (
	BookDetailKeyPrefix   = "book:detail:"
	AuthorDetailKeyPrefix = "author:detail:"
)

func BookDetailKey(id uuid.UUID) string {
	return BookDetailKeyPrefix + id.String()
}

func AuthorDetailKey(id uuid.UUID) string {
	return AuthorDetailKeyPrefix + id.String()
}
