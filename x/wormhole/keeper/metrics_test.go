package keeper

import (
	"context"
	"errors"
	"testing"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	prom "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

type nopSlashingKeeper struct{}

func (nopSlashingKeeper) SetParams(context.Context, slashingtypes.Params) error { return nil }

type nopClientKeeper struct{}

func (nopClientKeeper) RecoverClient(sdk.Context, string, string) error { return nil }

func TestRejectionCause(t *testing.T) {
	assert.Equal(t, "wormhole:1113", rejectionCause(types.ErrVAAAlreadyExecuted))
	assert.Equal(t, "wormhole:1128", rejectionCause(errorsmod.Wrap(types.ErrMalformedVAA, "too short")))
	assert.Equal(t, "undefined:1", rejectionCause(errors.New("collaborator failure")))
}

func TestRejectedCounter(t *testing.T) {
	key := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := testutil.DefaultContext(key, storetypes.NewTransientStoreKey(types.MemStoreKey))
	k := NewKeeper(runtime.NewKVStoreService(key), nopSlashingKeeper{}, nopClientKeeper{})

	counter := governanceVAAsRejected.WithLabelValues("wormhole:1128")
	before := prom.ToFloat64(counter)

	assert.ErrorIs(t, k.ExecuteGovernanceVAA(ctx, []byte{0x01}), types.ErrMalformedVAA)
	assert.Equal(t, before+1, prom.ToFloat64(counter))
}
