package keeper

import (
	"fmt"

	corestore "cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/store/prefix"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

type (
	Keeper struct {
		storeService corestore.KVStoreService

		slashingKeeper types.SlashingKeeper
		clientKeeper   types.ClientKeeper
	}
)

func NewKeeper(
	storeService corestore.KVStoreService,
	slashingKeeper types.SlashingKeeper,
	clientKeeper types.ClientKeeper,
) *Keeper {
	if slashingKeeper == nil {
		panic("x/wormhole: slashing keeper must be set")
	}
	if clientKeeper == nil {
		panic("x/wormhole: client keeper must be set")
	}

	return &Keeper{
		storeService:   storeService,
		slashingKeeper: slashingKeeper,
		clientKeeper:   clientKeeper,
	}
}

func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) prefixStore(ctx sdk.Context, p []byte) prefix.Store {
	return prefix.NewStore(runtime.KVStoreAdapter(k.storeService.OpenKVStore(ctx)), p)
}
