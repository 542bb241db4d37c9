package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/care-sa/booking/internal/entity"
)

func (r *Repository) WalletByUserID(ctx context.Context, userID uuid.UUID) (entity.Wallet, error) {
	const q = `SELECT id, user_id, balance, updated_at FROM wallets WHERE user_id = $1`

	var w entity.Wallet

	err := r.db.QueryRow(ctx, q, userID).Scan(&w.ID, &w.UserID, &w.Balance, &w.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Wallet{}, entity.ErrNotFound
		}

		return entity.Wallet{}, err
	}

	return w, nil
}

// EnsureWallet returns the user's wallet, creating an empty one on
// first use.
func (r *Repository) EnsureWallet(ctx context.Context, userID uuid.UUID) (entity.Wallet, error) {
	const q = `
	INSERT INTO wallets (id, user_id, balance, updated_at)
	VALUES ($1, $2, 0, $3)
	ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
	RETURNING id, user_id, balance, updated_at
	`

	var w entity.Wallet

	err := r.db.QueryRow(ctx, q, uuid.Must(uuid.NewV4()), userID, time.Now().UTC()).
		Scan(&w.ID, &w.UserID, &w.Balance, &w.UpdatedAt)
	if err != nil {
		return entity.Wallet{}, err
	}

	return w, nil
}

// Deposit credits the wallet and appends the audit record atomically.
func (r *Repository) Deposit(ctx context.Context, tx entity.WalletTransaction) error {
	return r.inTx(ctx, func(dbTx pgx.Tx) error {
		return deposit(ctx, dbTx, tx)
	})
}

// Withdraw debits the wallet only when the balance covers the amount,
// and appends the audit record. ErrInsufficientFunds otherwise; the
// balance is never touched on failure.
func (r *Repository) Withdraw(ctx context.Context, tx entity.WalletTransaction) error {
	return r.inTx(ctx, func(dbTx pgx.Tx) error {
		return withdraw(ctx, dbTx, tx)
	})
}

func (r *Repository) WalletTransactions(ctx context.Context, walletID uuid.UUID) ([]entity.WalletTransaction, error) {
	const q = `SELECT id, wallet_id, type, amount, order_id, created_at
	FROM wallet_transactions WHERE wallet_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, walletID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var txs []entity.WalletTransaction

	for rows.Next() {
		var t entity.WalletTransaction

		var orderID *uuid.UUID

		err = rows.Scan(&t.ID, &t.WalletID, &t.Type, &t.Amount, &orderID, &t.CreatedAt)
		if err != nil {
			return nil, err
		}

		if orderID != nil {
			t.OrderID = *orderID
		}

		txs = append(txs, t)
	}

	return txs, rows.Err()
}

func deposit(ctx context.Context, tx pgx.Tx, wtx entity.WalletTransaction) error {
	const updateBalance = `UPDATE wallets SET balance = balance + $1, updated_at = $2 WHERE id = $3`

	result, err := tx.Exec(ctx, updateBalance, wtx.Amount, wtx.CreatedAt, wtx.WalletID)
	if err != nil {
		return fmt.Errorf("credit wallet: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return insertWalletTx(ctx, tx, wtx)
}

func withdraw(ctx context.Context, tx pgx.Tx, wtx entity.WalletTransaction) error {
	const updateBalance = `
	UPDATE wallets SET balance = balance - $1, updated_at = $2
	WHERE id = $3 AND balance >= $1
	`

	result, err := tx.Exec(ctx, updateBalance, wtx.Amount, wtx.CreatedAt, wtx.WalletID)
	if err != nil {
		return fmt.Errorf("debit wallet: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrInsufficientFunds
	}

	return insertWalletTx(ctx, tx, wtx)
}

func insertWalletTx(ctx context.Context, tx pgx.Tx, wtx entity.WalletTransaction) error {
	const q = `
	INSERT INTO wallet_transactions (id, wallet_id, type, amount, order_id, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	var orderID *uuid.UUID
	if wtx.OrderID != uuid.Nil {
		orderID = &wtx.OrderID
	}

	_, err := tx.Exec(ctx, q, wtx.ID, wtx.WalletID, wtx.Type, wtx.Amount, orderID, wtx.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert wallet transaction: %w", err)
	}

	return nil
}
