package usecase

import (
	"context"
	"errors"

	repo "marketplace/internal/repository"
)

// runTx は競合で落ちたクロージャ全体を1回だけやり直す。
// それでも競合ならErrTransientConflictで呼び出し元へ返す。
func runTx(ctx context.Context, tx repo.TransactionManager, fn func(r repo.TxRepos) error) error {
	err := tx.WithinTx(ctx, fn)
	if errors.Is(err, repo.ErrConflict) {
		err = tx.WithinTx(ctx, fn)
	}
	if errors.Is(err, repo.ErrConflict) {
		return ErrTransientConflict
	}
	return err
}
