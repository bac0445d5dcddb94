package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mferenc/distill"
)

// Compile-time interface verification.
var _ distill.DocumentService = (*DocumentService)(nil)

// DocumentService implements distill.DocumentService using SQLite.
type DocumentService struct {
	db *DB
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(db *DB) *DocumentService {
	return &DocumentService{db: db}
}

// hashText computes the xxHash of text and returns it as a hex string.
// Identical distillations of a page hash identically, which lets callers
// spot unchanged content across fetches.
func hashText(text string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(text))
	return hex.EncodeToString(b[:])
}

// CreateDocument creates a new document, assigning its ID, fetch time,
// and content hash.
func (s *DocumentService) CreateDocument(ctx context.Context, doc *distill.Document) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	doc.ID = uuid.New().String()
	doc.FetchedAt = time.Now().UTC()
	doc.ContentHash = hashText(doc.Text)
	if doc.Format == "" {
		doc.Format = distill.FormatText
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (id, source_url, title, body, format, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.SourceURL, doc.Title, doc.Text, doc.Format, doc.ContentHash,
		doc.FetchedAt.Format(time.RFC3339))

	return err
}

// FindDocumentByID retrieves a document by ID.
func (s *DocumentService) FindDocumentByID(ctx context.Context, id string) (*distill.Document, error) {
	var doc distill.Document
	var fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source_url, title, body, format, content_hash, fetched_at
		FROM documents
		WHERE id = ?
	`, id).Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Text, &doc.Format,
		&doc.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, distill.Errorf(distill.ENOTFOUND, "document %q not found", id)
	}
	if err != nil {
		return nil, err
	}

	doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// FindDocuments retrieves documents matching the filter, most recent first.
func (s *DocumentService) FindDocuments(ctx context.Context, filter distill.DocumentFilter) ([]*distill.Document, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source_url, title, body, format, content_hash, fetched_at FROM documents WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourceURL != nil {
		query.WriteString(" AND source_url = ?")
		args = append(args, *filter.SourceURL)
	}

	// rowid breaks ties for documents fetched within the same second.
	query.WriteString(" ORDER BY fetched_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*distill.Document
	for rows.Next() {
		var doc distill.Document
		var fetchedAt string

		if err := rows.Scan(&doc.ID, &doc.SourceURL, &doc.Title, &doc.Text, &doc.Format,
			&doc.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		doc.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		docs = append(docs, &doc)
	}

	return docs, rows.Err()
}

// DeleteDocument permanently removes a document.
func (s *DocumentService) DeleteDocument(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return distill.Errorf(distill.ENOTFOUND, "document %q not found", id)
	}

	return nil
}
