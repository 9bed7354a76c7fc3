package types

const (
	// ReplayProtectionKeyPrefix is the prefix to retrieve all ReplayProtection
	ReplayProtectionKeyPrefix = "ReplayProtection/value/"
)

// ReplayProtection marks a VAA, identified by its hex signing digest, as executed.
type ReplayProtection struct {
	Index string `json:"index"`
}

// ReplayProtectionKey returns the store key to retrieve a ReplayProtection from the index fields
func ReplayProtectionKey(
	index string,
) []byte {
	var key []byte

	indexBytes := []byte(index)
	key = append(key, indexBytes...)
	key = append(key, []byte("/")...)

	return key
}
