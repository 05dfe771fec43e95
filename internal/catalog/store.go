package catalog

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the catalog document failed to load at
// startup. The storefront keeps serving with a visible failure notice.
var ErrUnavailable = errors.New("catalog: unavailable")

// Store holds the catalog document for the lifetime of the process. The
// document is loaded exactly once; there is no reload and no retry, so the
// store is read-only after construction.
type Store struct {
	doc        *Document
	err        error
	categories []string
}

// NewStore loads the document from src. A failed load still yields a usable
// store: Ready reports false and the load error is kept for diagnostics.
func NewStore(ctx context.Context, src string) *Store {
	doc, err := Load(ctx, src)
	if err != nil {
		return &Store{err: err}
	}
	return &Store{doc: doc, categories: Categories(doc.Items)}
}

// Ready reports whether the catalog loaded and parsed successfully.
func (s *Store) Ready() bool { return s.err == nil }

// Err returns the load error, or nil when the store is ready.
func (s *Store) Err() error { return s.err }

// Document returns the loaded catalog document.
func (s *Store) Document() (*Document, error) {
	if s.err != nil {
		return nil, ErrUnavailable
	}
	return s.doc, nil
}

// Seller returns the seller block, or the zero value when not ready.
func (s *Store) Seller() Seller {
	if s.doc == nil {
		return Seller{}
	}
	return s.doc.Seller
}

// Items returns the catalog items in document order. Callers must treat the
// slice as read-only; the query engine copies before sorting.
func (s *Store) Items() []Item {
	if s.doc == nil {
		return nil
	}
	return s.doc.Items
}

// Picks returns the community picks, empty when the field was absent.
func (s *Store) Picks() []Pick {
	if s.doc == nil {
		return nil
	}
	return s.doc.CommunityPicks
}

// Categories returns the derived category option set.
func (s *Store) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}
