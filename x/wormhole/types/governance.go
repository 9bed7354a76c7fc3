package types

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
)

// GovernanceAction identifies the administrative action carried by a governance VAA.
type GovernanceAction uint8

// Actions of the core governance module handled by ExecuteGovernanceVAA.
const (
	ActionGuardianSetUpdate    GovernanceAction = 2
	ActionSlashingParamsUpdate GovernanceAction = 4
	ActionIBCClientUpdate      GovernanceAction = 6
)

func (a GovernanceAction) String() string {
	switch a {
	case ActionGuardianSetUpdate:
		return "guardian_set_update"
	case ActionSlashingParamsUpdate:
		return "slashing_params_update"
	case ActionIBCClientUpdate:
		return "ibc_client_update"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(a))
	}
}

// GovernanceHeaderLength is module (32) + action (1) + target chain (2).
const GovernanceHeaderLength = 35

const (
	guardianSetUpdateHeaderLength = 5
	slashingParamsUpdateLength    = 40
	ibcClientIDLength             = 64
	ibcClientUpdateLength         = 2 * ibcClientIDLength

	// fixed point values in slashing updates carry 18 decimals
	slashingDecimalPrecision = 18
)

// GovernanceMessage is the payload of a governance VAA.
type GovernanceMessage struct {
	Module  [32]byte
	Action  byte
	Chain   uint16
	Payload []byte
}

func NewGovernanceMessage(module [32]byte, action byte, chain uint16, payload []byte) GovernanceMessage {
	return GovernanceMessage{
		Module:  module,
		Action:  action,
		Chain:   chain,
		Payload: payload,
	}
}

func (gm *GovernanceMessage) MarshalBinary() []byte {
	bz := make([]byte, 0, GovernanceHeaderLength+len(gm.Payload))
	bz = append(bz, gm.Module[:]...)
	bz = append(bz, gm.Action)
	bz = binary.BigEndian.AppendUint16(bz, gm.Chain)
	bz = append(bz, gm.Payload...)
	return bz
}

// ParseGovernanceMessage splits a governance payload into header fields and body.
func ParseGovernanceMessage(payload []byte) (GovernanceMessage, error) {
	var gm GovernanceMessage
	if len(payload) < GovernanceHeaderLength {
		return gm, errorsmod.Wrapf(ErrInvalidGovernancePayloadLength, "governance header needs %d bytes, have %d", GovernanceHeaderLength, len(payload))
	}

	copy(gm.Module[:], payload[:32])
	gm.Action = payload[32]
	gm.Chain = binary.BigEndian.Uint16(payload[33:35])
	gm.Payload = payload[GovernanceHeaderLength:]
	return gm, nil
}

// GuardianSetUpdate is the body of ActionGuardianSetUpdate.
type GuardianSetUpdate struct {
	NewIndex uint32
	Keys     [][]byte
}

// ParseGuardianSetUpdate decodes newIndex ‖ count ‖ count×20 byte addresses.
func ParseGuardianSetUpdate(body []byte) (GuardianSetUpdate, error) {
	var update GuardianSetUpdate
	if len(body) < guardianSetUpdateHeaderLength {
		return update, errorsmod.Wrapf(ErrInvalidGovernancePayloadLength, "guardian set update needs at least %d bytes, have %d", guardianSetUpdateHeaderLength, len(body))
	}

	update.NewIndex = binary.BigEndian.Uint32(body[:4])
	numGuardians := int(body[4])

	if len(body) != guardianSetUpdateHeaderLength+GuardianKeyLength*numGuardians {
		return update, errorsmod.Wrapf(ErrInvalidGovernancePayloadLength, "guardian set update for %d guardians has %d bytes", numGuardians, len(body))
	}

	added := make(map[string]bool, numGuardians)
	update.Keys = make([][]byte, 0, numGuardians)
	for i := 0; i < numGuardians; i++ {
		start := guardianSetUpdateHeaderLength + i*GuardianKeyLength
		key := bytes.Clone(body[start : start+GuardianKeyLength])
		if added[string(key)] {
			return update, errorsmod.Wrapf(ErrDuplicateGuardianAddress, "guardian [%d] %x", i, key)
		}
		added[string(key)] = true
		update.Keys = append(update.Keys, key)
	}

	return update, nil
}

// SlashingParamsUpdate is the body of ActionSlashingParamsUpdate.
type SlashingParamsUpdate struct {
	SignedBlocksWindow      int64
	MinSignedPerWindow      int64
	DowntimeJailDuration    int64
	SlashFractionDoubleSign int64
	SlashFractionDowntime   int64
}

// ParseSlashingParamsUpdate decodes five big-endian 64 bit integers.
func ParseSlashingParamsUpdate(body []byte) (SlashingParamsUpdate, error) {
	var update SlashingParamsUpdate
	if len(body) != slashingParamsUpdateLength {
		return update, errorsmod.Wrapf(ErrInvalidGovernancePayloadLength, "slashing params update must be %d bytes, have %d", slashingParamsUpdateLength, len(body))
	}

	update.SignedBlocksWindow = int64(binary.BigEndian.Uint64(body[0:8]))       // #nosec G115
	update.MinSignedPerWindow = int64(binary.BigEndian.Uint64(body[8:16]))      // #nosec G115
	update.DowntimeJailDuration = int64(binary.BigEndian.Uint64(body[16:24]))   // #nosec G115
	update.SlashFractionDoubleSign = int64(binary.BigEndian.Uint64(body[24:32])) // #nosec G115
	update.SlashFractionDowntime = int64(binary.BigEndian.Uint64(body[32:40]))   // #nosec G115
	return update, nil
}

// Params converts the update into x/slashing parameters. Fractions are fixed
// point with 18 decimals and the jail duration is in nanoseconds.
func (u SlashingParamsUpdate) Params() slashingtypes.Params {
	return slashingtypes.NewParams(
		u.SignedBlocksWindow,
		sdkmath.LegacyNewDecWithPrec(u.MinSignedPerWindow, slashingDecimalPrecision),
		time.Duration(u.DowntimeJailDuration),
		sdkmath.LegacyNewDecWithPrec(u.SlashFractionDoubleSign, slashingDecimalPrecision),
		sdkmath.LegacyNewDecWithPrec(u.SlashFractionDowntime, slashingDecimalPrecision),
	)
}

// IBCClientUpdate is the body of ActionIBCClientUpdate.
type IBCClientUpdate struct {
	SubjectClientID    string
	SubstituteClientID string
}

// ParseIBCClientUpdate decodes two NUL padded 64 byte client identifiers.
func ParseIBCClientUpdate(body []byte) (IBCClientUpdate, error) {
	var update IBCClientUpdate
	if len(body) != ibcClientUpdateLength {
		return update, errorsmod.Wrapf(ErrInvalidGovernancePayloadLength, "ibc client update must be %d bytes, have %d", ibcClientUpdateLength, len(body))
	}

	update.SubjectClientID = string(bytes.TrimRight(body[:ibcClientIDLength], "\x00"))
	update.SubstituteClientID = string(bytes.TrimRight(body[ibcClientIDLength:], "\x00"))
	return update, nil
}
