package repository

import "context"

// TxManager runs fn inside a database transaction. Repository calls made
// with the context passed to fn join that transaction; the transaction is
// committed when fn returns nil and rolled back otherwise.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
