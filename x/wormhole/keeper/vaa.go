package keeper

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

func ParseVAA(data []byte) (*vaa.VAA, error) {
	return types.ParseVAA(data)
}

// CalculateQuorum retrieves the guardian set for the given index, verifies that it is a valid set, and then calculates the needed quorum.
func (k Keeper) CalculateQuorum(ctx sdk.Context, guardianSetIndex uint32) (int, *types.GuardianSet, error) {
	guardianSet, exists := k.GetGuardianSet(ctx, guardianSetIndex)
	if !exists {
		return 0, nil, errorsmod.Wrapf(types.ErrGuardianSetNotFound, "guardian set %d", guardianSetIndex)
	}

	if guardianSet.IsExpired(blockTime(ctx)) {
		return 0, nil, errorsmod.Wrapf(types.ErrGuardianSetExpired, "guardian set %d expired at %d", guardianSet.Index, guardianSet.ExpirationTime)
	}

	return vaa.CalculateQuorum(len(guardianSet.Keys)), &guardianSet, nil
}

// VerifyVAA checks that v carries a quorum of valid signatures from the
// guardian set it names, as of the current block time.
func (k Keeper) VerifyVAA(ctx sdk.Context, v *vaa.VAA) error {
	// Calculate quorum and retrieve guardian set
	quorum, guardianSet, err := k.CalculateQuorum(ctx, v.GuardianSetIndex)
	if err != nil {
		return err
	}
	if len(v.Signatures) < quorum {
		return errorsmod.Wrapf(types.ErrNoQuorum, "have %d signatures, need %d", len(v.Signatures), quorum)
	}

	// Verify signatures
	return types.VerifySignatures(v, guardianSet.KeysAsAddresses())
}

// Verify a governance VAA:
// - Check signatures
// - Check the source chain and address is governance
// - Check the governance payload is for this chain and the specified module
// - Replay protection
// - return the parsed action and governance payload
func (k Keeper) VerifyGovernanceVAA(ctx sdk.Context, v *vaa.VAA, module [32]byte) (action byte, payload []byte, err error) {
	if err = k.VerifyVAA(ctx, v); err != nil {
		return
	}

	config, ok := k.GetConfig(ctx)
	if !ok {
		err = types.ErrNoConfig
		return
	}

	if v.EmitterChain != vaa.ChainID(config.GovernanceChain) { // #nosec G115 -- validated to fit a chain id
		err = errorsmod.Wrapf(types.ErrInvalidGovernanceEmitter, "emitter chain %d", v.EmitterChain)
		return
	}
	if !bytes.Equal(v.EmitterAddress[:], config.GovernanceEmitter) {
		err = errorsmod.Wrapf(types.ErrInvalidGovernanceEmitter, "emitter address %s", v.EmitterAddress)
		return
	}

	msg, err := types.ParseGovernanceMessage(v.Payload)
	if err != nil {
		return
	}

	// Check governance header
	if msg.Module != module {
		err = errorsmod.Wrapf(types.ErrUnknownGovernanceModule, "module %x", msg.Module)
		return
	}

	if msg.Chain != 0 && msg.Chain != uint16(config.ChainId) { // #nosec G115 -- validated to fit a chain id
		err = errorsmod.Wrapf(types.ErrInvalidGovernanceTargetChain, "target chain %d", msg.Chain)
		return
	}

	digest := v.HexDigest()
	if k.HasReplayProtection(ctx, digest) {
		err = errorsmod.Wrapf(types.ErrVAAAlreadyExecuted, "digest %s", digest)
		return
	}
	// Prevent replay
	k.SetReplayProtection(ctx, types.ReplayProtection{Index: digest})

	return msg.Action, msg.Payload, nil
}

func blockTime(ctx sdk.Context) uint64 {
	t := ctx.BlockTime().Unix()
	if t < 0 {
		return 0
	}
	return uint64(t)
}
