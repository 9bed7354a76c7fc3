package keeper

import (
	"context"
	"testing"
	"time"

	errorsmod "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	wormholekeeper "github.com/wormhole-foundation/wormchain-gov/x/wormhole/keeper"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

// GenesisTime is the block time of contexts returned by this package.
var GenesisTime = time.Unix(1700000000, 0).UTC()

// SlashingKeeper records every parameter update it receives.
type SlashingKeeper struct {
	Params []slashingtypes.Params
	Err    error
}

func (s *SlashingKeeper) SetParams(_ context.Context, params slashingtypes.Params) error {
	if s.Err != nil {
		return s.Err
	}
	s.Params = append(s.Params, params)
	return nil
}

// ClientRecovery is a single RecoverClient call.
type ClientRecovery struct {
	Subject    string
	Substitute string
}

// ClientKeeper knows a fixed set of client ids and records successful recoveries.
type ClientKeeper struct {
	Clients    map[string]bool
	Recoveries []ClientRecovery
	Calls      int
}

func (c *ClientKeeper) RecoverClient(_ sdk.Context, subjectClientID, substituteClientID string) error {
	c.Calls++
	if !c.Clients[subjectClientID] {
		return errorsmod.Wrapf(clienttypes.ErrClientNotFound, "subject client (%s)", subjectClientID)
	}
	if !c.Clients[substituteClientID] {
		return errorsmod.Wrapf(clienttypes.ErrClientNotFound, "substitute client (%s)", substituteClientID)
	}
	c.Recoveries = append(c.Recoveries, ClientRecovery{Subject: subjectClientID, Substitute: substituteClientID})
	return nil
}

func WormholeKeeper(t testing.TB) (*wormholekeeper.Keeper, sdk.Context) {
	k, _, _, ctx := WormholeKeeperAndCollaborators(t)
	return k, ctx
}

// WormholeKeeperAndCollaborators returns a keeper over an in-memory store
// together with the fakes standing in for x/slashing and 02-client.
func WormholeKeeperAndCollaborators(t testing.TB) (*wormholekeeper.Keeper, *SlashingKeeper, *ClientKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewTransientStoreKey(types.MemStoreKey)

	testCtx := testutil.DefaultContextWithDB(t, storeKey, memStoreKey)
	ctx := testCtx.Ctx.WithBlockTime(GenesisTime).WithEventManager(sdk.NewEventManager())

	slashingKeeper := &SlashingKeeper{}
	clientKeeper := &ClientKeeper{Clients: map[string]bool{}}
	k := wormholekeeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		slashingKeeper,
		clientKeeper,
	)

	return k, slashingKeeper, clientKeeper, ctx
}
