package keeper

import (
	"encoding/binary"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

// GetLatestGuardianSetIndex returns the index of the most recently appended
// set. It wraps to MaxUint32 when no set exists.
func (k Keeper) GetLatestGuardianSetIndex(ctx sdk.Context) uint32 {
	return k.GetGuardianSetCount(ctx) - 1
}

// UpdateGuardianSet appends newGuardianSet as the successor of the consensus
// set and makes it the consensus set.
func (k Keeper) UpdateGuardianSet(ctx sdk.Context, newGuardianSet types.GuardianSet) error {
	consensusIndex, found := k.GetConsensusGuardianSetIndex(ctx)
	if !found {
		return types.ErrConsensusSetUndefined
	}

	oldSet, exists := k.GetGuardianSet(ctx, consensusIndex.Index)
	if !exists {
		return errorsmod.Wrapf(types.ErrGuardianSetNotFound, "consensus guardian set %d", consensusIndex.Index)
	}

	if oldSet.Index+1 != newGuardianSet.Index {
		return errorsmod.Wrapf(types.ErrGuardianSetNotSequential, "current set is %d, got %d", oldSet.Index, newGuardianSet.Index)
	}

	if newGuardianSet.ExpirationTime != 0 {
		return types.ErrNewGuardianSetHasExpiry
	}

	if err := newGuardianSet.ValidateBasic(); err != nil {
		return err
	}

	// Create new set
	if _, err := k.AppendGuardianSet(ctx, newGuardianSet); err != nil {
		return err
	}

	// Expire old set
	config, ok := k.GetConfig(ctx)
	if ok && config.GuardianSetExpiration != 0 && oldSet.ExpirationTime == 0 {
		oldSet.ExpirationTime = blockTime(ctx) + config.GuardianSetExpiration
		k.setGuardianSet(ctx, oldSet)
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeGuardianSetUpdate,
		sdk.NewAttribute(types.AttributeKeyOldIndex, strconv.FormatUint(uint64(oldSet.Index), 10)),
		sdk.NewAttribute(types.AttributeKeyNewIndex, strconv.FormatUint(uint64(newGuardianSet.Index), 10)),
	))

	k.SetConsensusGuardianSetIndex(ctx, types.ConsensusGuardianSetIndex{
		Index: newGuardianSet.Index,
	})

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeConsensusSetUpdate,
		sdk.NewAttribute(types.AttributeKeyOldIndex, strconv.FormatUint(uint64(consensusIndex.Index), 10)),
		sdk.NewAttribute(types.AttributeKeyNewIndex, strconv.FormatUint(uint64(newGuardianSet.Index), 10)),
	))

	k.Logger(ctx).Info("guardian set updated",
		"old_index", oldSet.Index,
		"new_index", newGuardianSet.Index,
		"guardians", len(newGuardianSet.Keys),
	)

	return nil
}

// GetGuardianSetCount get the total number of guardianSet
func (k Keeper) GetGuardianSetCount(ctx sdk.Context) uint32 {
	store := k.prefixStore(ctx, []byte{})
	byteKey := types.KeyPrefix(types.GuardianSetCountKey)
	bz := store.Get(byteKey)

	// Count doesn't exist: no element
	if bz == nil {
		return 0
	}

	// Parse bytes
	return GetGuardianSetIDFromBytes(bz)
}

// setGuardianSetCount set the total number of guardianSet
func (k Keeper) setGuardianSetCount(ctx sdk.Context, count uint32) {
	store := k.prefixStore(ctx, []byte{})
	byteKey := types.KeyPrefix(types.GuardianSetCountKey)
	store.Set(byteKey, GetGuardianSetIDBytes(count))
}

// AppendGuardianSet appends a guardianSet in the store with a new id and update the count
func (k Keeper) AppendGuardianSet(
	ctx sdk.Context,
	guardianSet types.GuardianSet,
) (uint32, error) {
	count := k.GetGuardianSetCount(ctx)

	if guardianSet.Index != count {
		return 0, errorsmod.Wrapf(types.ErrGuardianSetNotSequential, "expected index %d, got %d", count, guardianSet.Index)
	}

	if err := guardianSet.ValidateBasic(); err != nil {
		return 0, err
	}

	k.setGuardianSet(ctx, guardianSet)
	k.setGuardianSetCount(ctx, count+1)

	return count, nil
}

// setGuardianSet set a specific guardianSet in the store
func (k Keeper) setGuardianSet(ctx sdk.Context, guardianSet types.GuardianSet) {
	b, err := guardianSet.MarshalBinary()
	if err != nil {
		panic(err)
	}
	store := k.prefixStore(ctx, types.KeyPrefix(types.GuardianSetKey))
	store.Set(GetGuardianSetIDBytes(guardianSet.Index), b)
}

// GetGuardianSet returns a guardianSet from its id
func (k Keeper) GetGuardianSet(ctx sdk.Context, id uint32) (val types.GuardianSet, found bool) {
	store := k.prefixStore(ctx, types.KeyPrefix(types.GuardianSetKey))
	b := store.Get(GetGuardianSetIDBytes(id))
	if b == nil {
		return val, false
	}
	mustUnmarshal(b, &val)
	return val, true
}

// GetAllGuardianSet returns all guardianSet
func (k Keeper) GetAllGuardianSet(ctx sdk.Context) (list []types.GuardianSet) {
	store := k.prefixStore(ctx, types.KeyPrefix(types.GuardianSetKey))
	iterator := storetypes.KVStorePrefixIterator(store, []byte{})

	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var val types.GuardianSet
		mustUnmarshal(iterator.Value(), &val)
		list = append(list, val)
	}

	return
}

// GetGuardianSetIDBytes returns the byte representation of the ID
func GetGuardianSetIDBytes(id uint32) []byte {
	bz := make([]byte, 4)
	binary.BigEndian.PutUint32(bz, id)
	return bz
}

// GetGuardianSetIDFromBytes returns ID in uint32 format from a byte array
func GetGuardianSetIDFromBytes(bz []byte) uint32 {
	return binary.BigEndian.Uint32(bz)
}
