package keeper

import (
	"encoding"
	"fmt"
)

// mustUnmarshal decodes a value read back from the module store. Values are
// only ever written by this keeper, so a decode failure is store corruption.
func mustUnmarshal(bz []byte, v encoding.BinaryUnmarshaler) {
	if err := v.UnmarshalBinary(bz); err != nil {
		panic(fmt.Errorf("x/wormhole: corrupt store value: %w", err))
	}
}
