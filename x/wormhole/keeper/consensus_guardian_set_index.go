package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

// SetConsensusGuardianSetIndex set consensusGuardianSetIndex in the store
func (k Keeper) SetConsensusGuardianSetIndex(ctx sdk.Context, consensusGuardianSetIndex types.ConsensusGuardianSetIndex) {
	store := k.prefixStore(ctx, types.KeyPrefix(types.ConsensusGuardianSetIndexKey))
	store.Set([]byte{0}, GetGuardianSetIDBytes(consensusGuardianSetIndex.Index))
}

// GetConsensusGuardianSetIndex returns consensusGuardianSetIndex
func (k Keeper) GetConsensusGuardianSetIndex(ctx sdk.Context) (val types.ConsensusGuardianSetIndex, found bool) {
	store := k.prefixStore(ctx, types.KeyPrefix(types.ConsensusGuardianSetIndexKey))

	b := store.Get([]byte{0})
	if b == nil {
		return val, false
	}
	if len(b) != 4 {
		panic("x/wormhole: corrupt consensus guardian set index")
	}

	val.Index = GetGuardianSetIDFromBytes(b)
	return val, true
}
