package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

// SetConfig set config in the store
func (k Keeper) SetConfig(ctx sdk.Context, config types.Config) error {
	b, err := config.MarshalBinary()
	if err != nil {
		return err
	}
	store := k.prefixStore(ctx, types.KeyPrefix(types.ConfigKey))
	store.Set([]byte{0}, b)
	return nil
}

// GetConfig returns config
func (k Keeper) GetConfig(ctx sdk.Context) (val types.Config, found bool) {
	store := k.prefixStore(ctx, types.KeyPrefix(types.ConfigKey))

	b := store.Get([]byte{0})
	if b == nil {
		return val, false
	}

	mustUnmarshal(b, &val)
	return val, true
}
