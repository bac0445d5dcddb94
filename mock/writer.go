package mock

import (
	"context"

	"github.com/mferenc/distill"
)

var _ distill.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of distill.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *distill.Document) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *distill.Document) error {
	return w.WriteDocumentFn(ctx, doc)
}
