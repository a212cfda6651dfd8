// Package aggregate provides the find-or-create-then-merge operation shared
// by every "first contact creates, later contacts merge" collection.
package aggregate

import (
	"context"
	"errors"

	"gorm.io/gorm"

	platformdb "donation_backend/internal/platform/db"
)

// Outcome reports whether an Upsert created a new aggregate or merged into
// an existing one. Callers use it for response messaging only.
type Outcome string

const (
	// Created means no aggregate existed for the key and a new row was
	// inserted, seeded from the first contribution.
	Created Outcome = "created"

	// Updated means an aggregate already existed and the merge step was
	// applied to it.
	Updated Outcome = "updated"
)

// maxAttempts bounds the insert-race retry loop. One retry is enough in
// practice (the losing insert lands on the merge path), the extra attempt
// covers a delete racing in between.
const maxAttempts = 3

// MergeFunc applies a type-specific merge to an existing aggregate inside
// the surrounding transaction. Accumulating fields must be written as SQL
// expressions (e.g. gorm.Expr("amount + ?", n)) so concurrent merges never
// lose an update to a stale read.
type MergeFunc[T any] func(tx *gorm.DB, existing *T) error

// Upsert looks up one row of T by column = key inside a transaction.
// If the row is absent, fresh is inserted and Created is returned. If it
// is present, merge runs against it and Updated is returned.
//
// The key column must carry a unique index: two concurrent calls for the
// same new key both read "absent", but only one insert can succeed. The
// loser's duplicate-key error rolls its transaction back and the call
// retries straight into the merge path, so exactly one aggregate exists
// afterwards and no contribution is dropped.
func Upsert[T any](ctx context.Context, db *gorm.DB, column string, key any, fresh *T, merge MergeFunc[T]) (Outcome, error) {
	var (
		outcome Outcome
		lastErr error
	)

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var existing T
			err := tx.Where(column+" = ?", key).First(&existing).Error
			switch {
			case err == nil:
				outcome = Updated
				return merge(tx, &existing)
			case errors.Is(err, gorm.ErrRecordNotFound):
				if cerr := tx.Create(fresh).Error; cerr != nil {
					return cerr
				}
				outcome = Created
				return nil
			default:
				return err
			}
		})
		if err == nil {
			return outcome, nil
		}
		if !platformdb.IsDuplicateKey(err) {
			return "", err
		}
		// Lost the insert race; the row exists now. Retry takes the
		// merge path.
		lastErr = err
	}

	return "", lastErr
}
