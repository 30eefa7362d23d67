package sheets

import (
	"context"

	"fincopilot/internal/core"
)

// RowAppender writes one transaction per spreadsheet row.
type RowAppender interface {
	AppendTransaction(ctx context.Context, t core.Transaction) (rowRef string, err error)
}
