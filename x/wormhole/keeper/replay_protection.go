package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

// SetReplayProtection set a specific replayProtection in the store from its index
func (k Keeper) SetReplayProtection(ctx sdk.Context, replayProtection types.ReplayProtection) {
	store := k.prefixStore(ctx, types.KeyPrefix(types.ReplayProtectionKeyPrefix))
	store.Set(types.ReplayProtectionKey(
		replayProtection.Index,
	), []byte(replayProtection.Index))
}

// GetReplayProtection returns a replayProtection from its index
func (k Keeper) GetReplayProtection(
	ctx sdk.Context,
	index string,

) (val types.ReplayProtection, found bool) {
	store := k.prefixStore(ctx, types.KeyPrefix(types.ReplayProtectionKeyPrefix))

	b := store.Get(types.ReplayProtectionKey(
		index,
	))
	if b == nil {
		return val, false
	}

	val.Index = string(b)
	return val, true
}

// HasReplayProtection reports whether the VAA with the given hex digest was executed.
func (k Keeper) HasReplayProtection(ctx sdk.Context, index string) bool {
	store := k.prefixStore(ctx, types.KeyPrefix(types.ReplayProtectionKeyPrefix))
	return store.Has(types.ReplayProtectionKey(index))
}

// GetAllReplayProtection returns all replayProtection
func (k Keeper) GetAllReplayProtection(ctx sdk.Context) (list []types.ReplayProtection) {
	store := k.prefixStore(ctx, types.KeyPrefix(types.ReplayProtectionKeyPrefix))
	iterator := storetypes.KVStorePrefixIterator(store, []byte{})

	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		list = append(list, types.ReplayProtection{Index: string(iterator.Value())})
	}

	return
}
