package wormhole

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/keeper"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	// Set all the guardianSet
	for _, elem := range genState.GuardianSetList {
		if _, err := k.AppendGuardianSet(ctx, elem); err != nil {
			return err
		}
	}

	// Set if defined
	if genState.Config != nil {
		if err := k.SetConfig(ctx, *genState.Config); err != nil {
			return err
		}
	}
	// Set all the replayProtection
	for _, elem := range genState.ReplayProtectionList {
		k.SetReplayProtection(ctx, elem)
	}
	// Set if defined
	if genState.ConsensusGuardianSetIndex != nil {
		k.SetConsensusGuardianSetIndex(ctx, *genState.ConsensusGuardianSetIndex)
	}

	return nil
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()

	if list := k.GetAllGuardianSet(ctx); list != nil {
		genesis.GuardianSetList = list
	}

	// Get all config
	config, found := k.GetConfig(ctx)
	if found {
		genesis.Config = &config
	} else {
		genesis.Config = nil
	}
	if list := k.GetAllReplayProtection(ctx); list != nil {
		genesis.ReplayProtectionList = list
	}
	// Get all consensusGuardianSetIndex
	consensusGuardianSetIndex, found := k.GetConsensusGuardianSetIndex(ctx)
	if found {
		genesis.ConsensusGuardianSetIndex = &consensusGuardianSetIndex
	}

	return genesis
}
