package types

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

const configEncodingLength = 32 + 4 + 4 + 8

// DefaultGuardianSetExpiration is the grace window, in seconds, during which a
// superseded guardian set still verifies VAAs.
const DefaultGuardianSetExpiration = 86400

// Config holds the host supplied constants of the governance kernel.
type Config struct {
	// GovernanceEmitter is the 32 byte emitter address governance VAAs must come from.
	GovernanceEmitter []byte
	// GovernanceChain is the emitter chain governance VAAs must come from.
	GovernanceChain uint32
	// ChainId is the wormhole chain id of this chain.
	ChainId uint32
	// GuardianSetExpiration is the grace window in seconds granted to a superseded
	// guardian set. Zero leaves superseded sets without an expiry.
	GuardianSetExpiration uint64
}

// DefaultConfig returns the mainnet governance constants for wormchain.
func DefaultConfig() Config {
	return Config{
		GovernanceEmitter:     bytes.Clone(vaa.GovernanceEmitter[:]),
		GovernanceChain:       uint32(vaa.GovernanceChain),
		ChainId:               uint32(vaa.ChainIDWormchain),
		GuardianSetExpiration: DefaultGuardianSetExpiration,
	}
}

func (c Config) Validate() error {
	if len(c.GovernanceEmitter) != 32 {
		return errorsmod.Wrapf(ErrInvalidGenesis, "governance emitter must be 32 bytes, is %d", len(c.GovernanceEmitter))
	}
	if c.GovernanceChain > 0xffff {
		return errorsmod.Wrapf(ErrInvalidGenesis, "governance chain %d does not fit a chain id", c.GovernanceChain)
	}
	if c.ChainId > 0xffff {
		return errorsmod.Wrapf(ErrInvalidGenesis, "chain id %d does not fit a chain id", c.ChainId)
	}
	return nil
}

func (c Config) MarshalBinary() ([]byte, error) {
	if len(c.GovernanceEmitter) != 32 {
		return nil, errorsmod.Wrapf(ErrInvalidGenesis, "governance emitter must be 32 bytes, is %d", len(c.GovernanceEmitter))
	}
	bz := make([]byte, configEncodingLength)
	copy(bz[0:32], c.GovernanceEmitter)
	binary.BigEndian.PutUint32(bz[32:36], c.GovernanceChain)
	binary.BigEndian.PutUint32(bz[36:40], c.ChainId)
	binary.BigEndian.PutUint64(bz[40:48], c.GuardianSetExpiration)
	return bz, nil
}

func (c *Config) UnmarshalBinary(bz []byte) error {
	if len(bz) != configEncodingLength {
		return errorsmod.Wrapf(ErrInvalidGenesis, "config encoding must be %d bytes, is %d", configEncodingLength, len(bz))
	}
	c.GovernanceEmitter = make([]byte, 32)
	copy(c.GovernanceEmitter, bz[0:32])
	c.GovernanceChain = binary.BigEndian.Uint32(bz[32:36])
	c.ChainId = binary.BigEndian.Uint32(bz[36:40])
	c.GuardianSetExpiration = binary.BigEndian.Uint64(bz[40:48])
	return nil
}

type configJSON struct {
	GovernanceEmitter     string `json:"governance_emitter"`
	GovernanceChain       uint32 `json:"governance_chain"`
	ChainId               uint32 `json:"chain_id"`
	GuardianSetExpiration uint64 `json:"guardian_set_expiration"`
}

func (c Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(configJSON{
		GovernanceEmitter:     hex.EncodeToString(c.GovernanceEmitter),
		GovernanceChain:       c.GovernanceChain,
		ChainId:               c.ChainId,
		GuardianSetExpiration: c.GuardianSetExpiration,
	})
}

func (c *Config) UnmarshalJSON(data []byte) error {
	var in configJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	emitter, err := hex.DecodeString(strings.TrimPrefix(in.GovernanceEmitter, "0x"))
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidGenesis, "governance emitter: %v", err)
	}
	c.GovernanceEmitter = emitter
	c.GovernanceChain = in.GovernanceChain
	c.ChainId = in.ChainId
	c.GuardianSetExpiration = in.GuardianSetExpiration
	return nil
}
