// Package accounts provides the device-local account ledger used by the
// local authentication backend.
//
// # Data Model
//
// One row per email address (normalized, primary key) holding the account
// id, display name, key-derivation salt and password verifier.
//
// # Concurrency
//
// The repository is bound to a dbx.DBTX, so it can run directly on *sql.DB
// or inside a dbx.WithTx transaction.
//
// Typical Usage
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//		return accounts.NewSQLiteRepository(tx).Create(ctx, acc)
//	})
//	acc, err := accounts.NewSQLiteRepository(db).GetByEmail(ctx, email)
package accounts
