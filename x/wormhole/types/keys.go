package types

const (
	// ModuleName defines the module name
	ModuleName = "wormhole"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// MemStoreKey defines the in-memory store key
	MemStoreKey = "mem_wormhole"
)

func KeyPrefix(p string) []byte {
	return []byte(p)
}

const (
	GuardianSetKey      = "GuardianSet-value-"
	GuardianSetCountKey = "GuardianSet-count-"
)

const (
	ConfigKey = "Config-value-"
)

const (
	ConsensusGuardianSetIndexKey = "ConsensusGuardianSetIndex-value-"
)
