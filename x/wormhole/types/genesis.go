package types

import (
	errorsmod "cosmossdk.io/errors"
)

// GenesisState is the x/wormhole state exported and imported at genesis.
type GenesisState struct {
	GuardianSetList           []GuardianSet              `json:"guardian_set_list"`
	Config                    *Config                    `json:"config,omitempty"`
	ConsensusGuardianSetIndex *ConsensusGuardianSetIndex `json:"consensus_guardian_set_index,omitempty"`
	ReplayProtectionList      []ReplayProtection         `json:"replay_protection_list"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	config := DefaultConfig()
	return &GenesisState{
		GuardianSetList:      []GuardianSet{},
		Config:               &config,
		ReplayProtectionList: []ReplayProtection{},
	}
}

// Validate performs basic genesis state validation returning an error upon any
// failure.
func (gs GenesisState) Validate() error {
	// guardian sets form the append-only log 0, 1, 2, ...
	for i, elem := range gs.GuardianSetList {
		if elem.Index != uint32(i) { // #nosec G115 -- at most 2^32 sets are addressable
			return errorsmod.Wrapf(ErrInvalidGenesis, "guardian set at position %d has index %d", i, elem.Index)
		}
		if err := elem.ValidateBasic(); err != nil {
			return errorsmod.Wrapf(ErrInvalidGenesis, "guardian set %d: %v", elem.Index, err)
		}
	}

	if gs.Config != nil {
		if err := gs.Config.Validate(); err != nil {
			return err
		}
	}

	if gs.ConsensusGuardianSetIndex != nil && int(gs.ConsensusGuardianSetIndex.Index) >= len(gs.GuardianSetList) {
		return errorsmod.Wrapf(ErrInvalidGenesis, "consensus guardian set index %d references no guardian set", gs.ConsensusGuardianSetIndex.Index)
	}

	replayProtectionIndexMap := make(map[string]struct{})
	for _, elem := range gs.ReplayProtectionList {
		index := string(ReplayProtectionKey(elem.Index))
		if _, ok := replayProtectionIndexMap[index]; ok {
			return errorsmod.Wrapf(ErrInvalidGenesis, "duplicated index for replayProtection: %s", elem.Index)
		}
		replayProtectionIndexMap[index] = struct{}{}
	}

	return nil
}
