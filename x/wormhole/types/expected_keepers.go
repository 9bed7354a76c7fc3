package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
)

// SlashingKeeper is the subset of x/slashing used by SlashingParamsUpdate.
type SlashingKeeper interface {
	SetParams(ctx context.Context, params slashingtypes.Params) error
}

// ClientKeeper is the subset of the ibc-go 02-client keeper used by IBCClientUpdate.
type ClientKeeper interface {
	RecoverClient(ctx sdk.Context, subjectClientID, substituteClientID string) error
}
