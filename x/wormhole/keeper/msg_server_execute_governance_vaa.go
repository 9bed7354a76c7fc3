package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

// ExecuteGovernanceVAA decodes, authorizes and applies a core governance VAA.
// State is only committed when every step succeeds.
func (k Keeper) ExecuteGovernanceVAA(goCtx context.Context, vaaBytes []byte) error {
	ctx := sdk.UnwrapSDKContext(goCtx)

	action, err := k.executeGovernanceVAA(ctx, vaaBytes)
	if err != nil {
		governanceVAAsRejected.WithLabelValues(rejectionCause(err)).Inc()
		k.Logger(ctx).Debug("rejected governance VAA", "error", err)
		return err
	}

	governanceVAAsExecuted.WithLabelValues(action.String()).Inc()
	return nil
}

func (k Keeper) executeGovernanceVAA(ctx sdk.Context, vaaBytes []byte) (types.GovernanceAction, error) {
	// Parse VAA
	v, err := ParseVAA(vaaBytes)
	if err != nil {
		return 0, err
	}

	cacheCtx, writeCache := ctx.CacheContext()

	coreModule := [32]byte{}
	copy(coreModule[:], vaa.CoreModule)
	// Verify VAA
	action, payload, err := k.VerifyGovernanceVAA(cacheCtx, v, coreModule)
	if err != nil {
		return 0, err
	}

	governanceAction := types.GovernanceAction(action)
	if err := k.applyGovernanceAction(cacheCtx, governanceAction, payload); err != nil {
		return governanceAction, err
	}

	cacheCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeGovernanceVAAExecuted,
		sdk.NewAttribute(types.AttributeKeyAction, governanceAction.String()),
		sdk.NewAttribute(types.AttributeKeyDigest, v.HexDigest()),
		sdk.NewAttribute(types.AttributeKeyEmitter, v.EmitterAddress.String()),
		sdk.NewAttribute(types.AttributeKeySequence, strconv.FormatUint(v.Sequence, 10)),
	))

	writeCache()

	k.Logger(ctx).Info("executed governance VAA",
		"action", governanceAction.String(),
		"digest", v.HexDigest(),
		"message_id", v.MessageID(),
	)

	return governanceAction, nil
}

func (k Keeper) applyGovernanceAction(ctx sdk.Context, action types.GovernanceAction, payload []byte) error {
	switch action {
	case types.ActionGuardianSetUpdate:
		update, err := types.ParseGuardianSetUpdate(payload)
		if err != nil {
			return err
		}

		return k.UpdateGuardianSet(ctx, types.GuardianSet{
			Keys:  update.Keys,
			Index: update.NewIndex,
		})
	case types.ActionSlashingParamsUpdate:
		update, err := types.ParseSlashingParamsUpdate(payload)
		if err != nil {
			return err
		}

		// Set the new params
		return k.slashingKeeper.SetParams(ctx, update.Params())
	case types.ActionIBCClientUpdate:
		update, err := types.ParseIBCClientUpdate(payload)
		if err != nil {
			return err
		}

		return k.clientKeeper.RecoverClient(ctx, update.SubjectClientID, update.SubstituteClientID)
	default:
		return types.ErrUnknownGovernanceAction
	}
}
