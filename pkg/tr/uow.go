package tr

import (
	"context"

	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
)

// UnitOfWork открывает ровно одну транзакцию на обработку команды.
// Состояния транзакции: idle → in-transaction → idle.
type UnitOfWork struct {
	db transaction.Transactional
}

func NewUnitOfWork(db transaction.Transactional) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Txn — открытая транзакция. Commit и Rollback переводят её в idle;
// повторный Rollback безопасен (no-op).
type Txn struct {
	tx *transaction.Transaction
}

// Begin открывает транзакцию и кладёт её в контекст.
// Вложенные транзакции не поддерживаются: если контекст уже несёт
// транзакцию, возвращается ErrTransactionActive.
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, *Txn, error) {
	const op = "UnitOfWork.Begin"

	if _, err := TxFromCtx(ctx); err == nil {
		return ctx, nil, e.Wrap(op, e.ErrTransactionActive)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, u.db)
	if err != nil {
		return ctx, nil, e.Wrap(op, err)
	}

	ctx = context.WithValue(ctx, "tx", tx.Transaction())
	return ctx, &Txn{tx: tx}, nil
}

// Commit фиксирует изменения. При ошибке фиксации транзакция
// откатывается перед возвратом ошибки.
func (t *Txn) Commit(ctx context.Context) error {
	const op = "Txn.Commit"

	if !t.tx.IsActive() {
		return e.Wrap(op, e.ErrTransactionNotFound)
	}

	if err := t.tx.Commit(ctx); err != nil {
		if t.tx.IsActive() {
			_ = t.tx.Rollback(ctx)
		}
		return e.Wrap(op, err)
	}

	return nil
}

// Rollback откатывает транзакцию. Безопасен при уже завершённой.
func (t *Txn) Rollback(ctx context.Context) error {
	if !t.tx.IsActive() {
		return nil
	}
	return t.tx.Rollback(ctx)
}

// Do выполняет fn внутри транзакции и гарантирует откат на любом
// неуспешном выходе: ошибка, panic или отмена контекста до коммита.
func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	ctx, txn, err := u.Begin(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = txn.Rollback(ctx)
			panic(p)
		}
		if err != nil {
			_ = txn.Rollback(ctx)
		}
	}()

	if err = fn(ctx); err != nil {
		return err
	}

	// Отмена во время транзакции приводит к откату, а не к коммиту
	if err = ctx.Err(); err != nil {
		return err
	}

	err = txn.Commit(ctx)
	return err
}
