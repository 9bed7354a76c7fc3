package types

// DONTCOVER

import (
	errorsmod "cosmossdk.io/errors"
)

// x/wormhole module sentinel errors
var (
	ErrGuardianSetNotFound            = errorsmod.Register(ModuleName, 1101, "guardian set not found")
	ErrSignaturesInvalid              = errorsmod.Register(ModuleName, 1102, "invalid signatures on VAA")
	ErrNoQuorum                       = errorsmod.Register(ModuleName, 1103, "no quorum on VAA")
	ErrUnknownGovernanceModule        = errorsmod.Register(ModuleName, 1105, "invalid governance module")
	ErrNoConfig                       = errorsmod.Register(ModuleName, 1106, "config not set")
	ErrInvalidGovernanceEmitter       = errorsmod.Register(ModuleName, 1107, "invalid governance emitter")
	ErrUnknownGovernanceAction        = errorsmod.Register(ModuleName, 1108, "unknown governance action")
	ErrInvalidGovernanceTargetChain   = errorsmod.Register(ModuleName, 1110, "governance target chain does not match")
	ErrInvalidGovernancePayloadLength = errorsmod.Register(ModuleName, 1111, "governance payload has incorrect length")
	ErrGuardianSetNotSequential       = errorsmod.Register(ModuleName, 1112, "guardian set updates must be submitted sequentially")
	ErrVAAAlreadyExecuted             = errorsmod.Register(ModuleName, 1113, "VAA was already executed")
	ErrConsensusSetUndefined          = errorsmod.Register(ModuleName, 1117, "no consensus set defined")
	ErrGuardianSetExpired             = errorsmod.Register(ModuleName, 1118, "guardian set expired")
	ErrNewGuardianSetHasExpiry        = errorsmod.Register(ModuleName, 1119, "new guardian set should not have expiry time")
	ErrDuplicateGuardianAddress       = errorsmod.Register(ModuleName, 1120, "guardian set has duplicate addresses")
	ErrGuardianIndexOutOfBounds       = errorsmod.Register(ModuleName, 1124, "guardian index out of bounds for the guardian set")
	ErrMalformedVAA                   = errorsmod.Register(ModuleName, 1128, "malformed VAA")
	ErrSignatureIndicesNotAscending   = errorsmod.Register(ModuleName, 1129, "signature guardian indices must be strictly ascending")
	ErrInvalidGuardianSet             = errorsmod.Register(ModuleName, 1130, "invalid guardian set")
	ErrInvalidGenesis                 = errorsmod.Register(ModuleName, 1131, "invalid genesis state")
)
