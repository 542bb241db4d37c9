package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/care-sa/booking/internal/entity"
)

// execRecorderTx records executed SQL so detail-row inserts can be
// asserted without a database. Everything beyond Exec panics via the
// embedded nil Tx.
type execRecorderTx struct {
	pgx.Tx
	queries []string
}

func (t *execRecorderTx) Exec(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
	t.queries = append(t.queries, sql)
	return pgconn.CommandTag{}, nil
}

func (t *execRecorderTx) executed(table string) bool {
	for _, q := range t.queries {
		if strings.Contains(q, "INSERT INTO "+table) {
			return true
		}
	}

	return false
}

func TestInsertPaymentDetail_SplitWritesBothRows(t *testing.T) {
	t.Parallel()

	paymentID := uuid.Must(uuid.NewV4())
	s := Settlement{
		WalletDetail: &entity.WalletPaymentDetail{
			PaymentID:     paymentID,
			WalletID:      uuid.Must(uuid.NewV4()),
			WalletAmount:  decimal.New(80, 0),
			GatewayAmount: decimal.New(150, 0),
		},
		AlrajhiDetail: &entity.AlrajhiPaymentDetail{
			PaymentID:        paymentID,
			GatewayPaymentID: "100509310000",
			TranID:           "201090030",
			TrackID:          "trk-1",
			Reference:        "509300000662",
			Amount:           decimal.New(150, 0),
		},
	}

	tx := &execRecorderTx{}
	err := insertPaymentDetail(context.Background(), tx, s)
	require.NoError(t, err)

	require.True(t, tx.executed("wallet_payments"), "wallet_payments row written")
	require.True(t, tx.executed("alrajhi_payments"), "alrajhi_payments row written")
	require.False(t, tx.executed("tamara_payments"))
}

func TestInsertPaymentDetail_SingleProvider(t *testing.T) {
	t.Parallel()

	s := Settlement{
		TamaraDetail: &entity.TamaraPaymentDetail{
			PaymentID:     uuid.Must(uuid.NewV4()),
			TamaraOrderID: "tmr-1",
			CheckoutID:    "chk-1",
			CaptureID:     "cap-1",
			Amount:        decimal.New(230, 0),
		},
	}

	tx := &execRecorderTx{}
	err := insertPaymentDetail(context.Background(), tx, s)
	require.NoError(t, err)

	require.True(t, tx.executed("tamara_payments"))
	require.False(t, tx.executed("wallet_payments"))
	require.False(t, tx.executed("alrajhi_payments"))
}
