package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/internal/entity"
)

// Wallet returns the calling user's wallet, creating an empty one on
// first access.
func (s *Service) Wallet(ctx context.Context) (entity.Wallet, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Wallet{}, err
	}

	wallet, err := s.repo.EnsureWallet(ctx, user.ID)
	if err != nil {
		return entity.Wallet{}, fmt.Errorf("ensure wallet: %w", err)
	}

	return wallet, nil
}

func (s *Service) WalletTransactions(ctx context.Context) ([]entity.WalletTransaction, error) {
	wallet, err := s.Wallet(ctx)
	if err != nil {
		return nil, err
	}

	txs, err := s.repo.WalletTransactions(ctx, wallet.ID)
	if err != nil {
		return nil, fmt.Errorf("list wallet transactions: %w", err)
	}

	return txs, nil
}

// DepositWallet credits the calling user's wallet.
func (s *Service) DepositWallet(ctx context.Context, amount decimal.Decimal) (entity.Wallet, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return entity.Wallet{}, fmt.Errorf("%w: deposit amount must be positive", entity.ErrInvalidArgument)
	}

	wallet, err := s.Wallet(ctx)
	if err != nil {
		return entity.Wallet{}, err
	}

	err = s.repo.Deposit(ctx, entity.WalletTransaction{
		ID:        uuid.Must(uuid.NewV4()),
		WalletID:  wallet.ID,
		Type:      entity.WalletTxDeposit,
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return entity.Wallet{}, fmt.Errorf("deposit: %w", err)
	}

	slog.InfoContext(ctx, "wallet deposit", "wallet_id", wallet.ID, "amount", amount)

	return s.repo.WalletByUserID(ctx, wallet.UserID)
}
