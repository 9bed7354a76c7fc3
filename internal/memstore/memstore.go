// Package memstore builds an sdk.Context over a throwaway in-memory multistore.
package memstore

import (
	"fmt"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// NewContext mounts keys on a fresh memdb backed multistore and returns a
// context at the given block height and time.
func NewContext(logger log.Logger, height int64, blockTime time.Time, keys ...storetypes.StoreKey) (sdk.Context, error) {
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())

	for _, key := range keys {
		switch key.(type) {
		case *storetypes.KVStoreKey:
			cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
		case *storetypes.TransientStoreKey:
			cms.MountStoreWithDB(key, storetypes.StoreTypeTransient, nil)
		case *storetypes.MemoryStoreKey:
			cms.MountStoreWithDB(key, storetypes.StoreTypeMemory, nil)
		default:
			return sdk.Context{}, fmt.Errorf("unsupported store key type %T", key)
		}
	}

	if err := cms.LoadLatestVersion(); err != nil {
		return sdk.Context{}, err
	}

	header := cmtproto.Header{Height: height, Time: blockTime}
	return sdk.NewContext(cms, header, false, logger), nil
}
