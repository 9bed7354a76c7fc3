package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/wormhole-foundation/wormchain-gov/testutil/keeper"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/keeper"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

func createTestConfig(t *testing.T, keeper *keeper.Keeper, ctx sdk.Context) types.Config {
	item := types.DefaultConfig()
	item.GuardianSetExpiration = 3600
	require.NoError(t, keeper.SetConfig(ctx, item))
	return item
}

func TestConfigGet(t *testing.T) {
	keeper, ctx := keepertest.WormholeKeeper(t)
	item := createTestConfig(t, keeper, ctx)
	rst, found := keeper.GetConfig(ctx)
	require.True(t, found)
	require.Equal(t, item, rst)
}

func TestConfigInvalidEmitter(t *testing.T) {
	keeper, ctx := keepertest.WormholeKeeper(t)
	err := keeper.SetConfig(ctx, types.Config{GovernanceEmitter: []byte{1, 2, 3}})
	require.Error(t, err)
	_, found := keeper.GetConfig(ctx)
	require.False(t, found)
}
