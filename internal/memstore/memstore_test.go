package memstore_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/stretchr/testify/require"

	"github.com/wormhole-foundation/wormchain-gov/internal/memstore"
)

func TestNewContext(t *testing.T) {
	key := storetypes.NewKVStoreKey("test")
	tkey := storetypes.NewTransientStoreKey("transient_test")
	blockTime := time.Unix(1700000000, 0).UTC()

	ctx, err := memstore.NewContext(log.NewNopLogger(), 5, blockTime, key, tkey)
	require.NoError(t, err)
	require.Equal(t, int64(5), ctx.BlockHeight())
	require.True(t, blockTime.Equal(ctx.BlockTime()))

	ctx.KVStore(key).Set([]byte("a"), []byte("b"))
	require.Equal(t, []byte("b"), ctx.KVStore(key).Get([]byte("a")))

	// cache contexts only reach the store when written
	cacheCtx, write := ctx.CacheContext()
	cacheCtx.KVStore(key).Set([]byte("c"), []byte("d"))
	require.Nil(t, ctx.KVStore(key).Get([]byte("c")))
	write()
	require.Equal(t, []byte("d"), ctx.KVStore(key).Get([]byte("c")))
}

type unknownKey struct{}

func (unknownKey) Name() string   { return "unknown" }
func (unknownKey) String() string { return "unknown" }

func TestNewContextUnsupportedKey(t *testing.T) {
	_, err := memstore.NewContext(log.NewNopLogger(), 1, time.Now(), unknownKey{})
	require.Error(t, err)
}
