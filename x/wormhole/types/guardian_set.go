package types

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
)

// GuardianKeyLength is the length of a guardian address (an Ethereum style address).
const GuardianKeyLength = 20

// MaxGuardianCount is bounded by the single byte used for signature indices.
const MaxGuardianCount = 255

// GuardianSet is a versioned, ordered list of guardian addresses. The position
// of a key in Keys is the guardian index used by VAA signatures.
type GuardianSet struct {
	Index uint32
	Keys  [][]byte
	// ExpirationTime is a unix timestamp in seconds. Zero means the set does not expire.
	ExpirationTime uint64
}

func (gs GuardianSet) KeysAsAddresses() (addresses []common.Address) {
	for _, key := range gs.Keys {
		addresses = append(addresses, common.BytesToAddress(key))
	}
	return
}

// IsExpired reports whether the set has been retired at the given unix time.
func (gs GuardianSet) IsExpired(now uint64) bool {
	return gs.ExpirationTime != 0 && now > gs.ExpirationTime
}

// ValidateBasic performs basic validation of the guardian set
func (gs GuardianSet) ValidateBasic() error {
	if len(gs.Keys) == 0 {
		return errorsmod.Wrap(ErrInvalidGuardianSet, "guardian set must not be empty")
	}

	if len(gs.Keys) > MaxGuardianCount {
		return errorsmod.Wrapf(ErrInvalidGuardianSet, "guardian set length must be <= %d, is %d", MaxGuardianCount, len(gs.Keys))
	}

	seen := make(map[string]bool, len(gs.Keys))
	for i, key := range gs.Keys {
		if len(key) != GuardianKeyLength {
			return errorsmod.Wrapf(ErrInvalidGuardianSet, "key [%d]: len %d != %d", i, len(key), GuardianKeyLength)
		}
		if seen[string(key)] {
			return errorsmod.Wrapf(ErrDuplicateGuardianAddress, "key [%d]: %x", i, key)
		}
		seen[string(key)] = true
	}

	return nil
}

// MarshalBinary encodes the set as index ‖ expiration ‖ count ‖ keys.
func (gs GuardianSet) MarshalBinary() ([]byte, error) {
	if len(gs.Keys) > MaxGuardianCount {
		return nil, errorsmod.Wrapf(ErrInvalidGuardianSet, "too many keys: %d", len(gs.Keys))
	}

	bz := make([]byte, 13, 13+GuardianKeyLength*len(gs.Keys))
	binary.BigEndian.PutUint32(bz[0:4], gs.Index)
	binary.BigEndian.PutUint64(bz[4:12], gs.ExpirationTime)
	bz[12] = uint8(len(gs.Keys)) // #nosec G115 -- bounded above
	for i, key := range gs.Keys {
		if len(key) != GuardianKeyLength {
			return nil, errorsmod.Wrapf(ErrInvalidGuardianSet, "key [%d]: len %d != %d", i, len(key), GuardianKeyLength)
		}
		bz = append(bz, key...)
	}

	return bz, nil
}

// UnmarshalBinary is the inverse of MarshalBinary.
func (gs *GuardianSet) UnmarshalBinary(bz []byte) error {
	if len(bz) < 13 {
		return errorsmod.Wrapf(ErrInvalidGuardianSet, "encoding too short: %d bytes", len(bz))
	}

	count := int(bz[12])
	if len(bz) != 13+GuardianKeyLength*count {
		return errorsmod.Wrapf(ErrInvalidGuardianSet, "encoding has %d bytes for %d keys", len(bz), count)
	}

	gs.Index = binary.BigEndian.Uint32(bz[0:4])
	gs.ExpirationTime = binary.BigEndian.Uint64(bz[4:12])
	gs.Keys = make([][]byte, count)
	for i := 0; i < count; i++ {
		key := make([]byte, GuardianKeyLength)
		copy(key, bz[13+i*GuardianKeyLength:])
		gs.Keys[i] = key
	}

	return nil
}

type guardianSetJSON struct {
	Index          uint32   `json:"index"`
	Keys           []string `json:"keys"`
	ExpirationTime uint64   `json:"expiration_time"`
}

// MarshalJSON renders keys as 0x-prefixed hex addresses.
func (gs GuardianSet) MarshalJSON() ([]byte, error) {
	out := guardianSetJSON{
		Index:          gs.Index,
		Keys:           make([]string, 0, len(gs.Keys)),
		ExpirationTime: gs.ExpirationTime,
	}
	for _, key := range gs.Keys {
		out.Keys = append(out.Keys, "0x"+hex.EncodeToString(key))
	}
	return json.Marshal(out)
}

func (gs *GuardianSet) UnmarshalJSON(data []byte) error {
	var in guardianSetJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	keys, err := ParseGuardianKeys(in.Keys)
	if err != nil {
		return err
	}

	gs.Index = in.Index
	gs.Keys = keys
	gs.ExpirationTime = in.ExpirationTime
	return nil
}

// ParseGuardianKeys decodes hex guardian addresses, with or without a 0x prefix.
func ParseGuardianKeys(in []string) ([][]byte, error) {
	keys := make([][]byte, 0, len(in))
	for i, s := range in {
		key, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
		if err != nil {
			return nil, fmt.Errorf("key [%d]: %w", i, err)
		}
		if len(key) != GuardianKeyLength {
			return nil, fmt.Errorf("key [%d]: len %d != %d", i, len(key), GuardianKeyLength)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ConsensusGuardianSetIndex is the index of the guardian set currently treated as canonical.
type ConsensusGuardianSetIndex struct {
	Index uint32 `json:"index"`
}
