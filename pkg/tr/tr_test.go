package tr

import (
	"context"
	"testing"

	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/stretchr/testify/require"
)

func TestTxFromCtxMissing(t *testing.T) {
	_, err := TxFromCtx(context.Background())
	require.ErrorIs(t, err, e.ErrTransactionNotFound)
}

func TestTxFromCtxWrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), "tx", "not a tx")

	_, err := TxFromCtx(ctx)
	require.ErrorIs(t, err, e.ErrTransactionNotFound)
}
