package main

import (
	"context"
	"fmt"
	"slices"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	slashingtypes "github.com/cosmos/cosmos-sdk/x/slashing/types"
	clienttypes "github.com/cosmos/ibc-go/v10/modules/core/02-client/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wormhole-foundation/wormchain-gov/internal/memstore"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/keeper"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

// dryRunSlashingKeeper logs the parameters x/slashing would receive.
type dryRunSlashingKeeper struct {
	logger *zap.Logger
}

func (s dryRunSlashingKeeper) SetParams(_ context.Context, params slashingtypes.Params) error {
	s.logger.Info("slashing params update",
		zap.Int64("signed_blocks_window", params.SignedBlocksWindow),
		zap.String("min_signed_per_window", params.MinSignedPerWindow.String()),
		zap.Duration("downtime_jail_duration", params.DowntimeJailDuration),
		zap.String("slash_fraction_double_sign", params.SlashFractionDoubleSign.String()),
		zap.String("slash_fraction_downtime", params.SlashFractionDowntime.String()),
	)
	return params.Validate()
}

// dryRunClientKeeper logs client recoveries. When clients is non-empty,
// recoveries naming other clients fail the way 02-client does.
type dryRunClientKeeper struct {
	logger  *zap.Logger
	clients []string
}

func (c dryRunClientKeeper) RecoverClient(_ sdk.Context, subjectClientID, substituteClientID string) error {
	if len(c.clients) != 0 {
		for _, id := range []string{subjectClientID, substituteClientID} {
			if !slices.Contains(c.clients, id) {
				return errorsmod.Wrapf(clienttypes.ErrClientNotFound, "client (%s)", id)
			}
		}
	}
	c.logger.Info("ibc client recovery",
		zap.String("subject_client_id", subjectClientID),
		zap.String("substitute_client_id", substituteClientID),
	)
	return nil
}

func executeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "execute [VAA]",
		Short: "Dry-run a governance VAA against a genesis document",
		Long: `Dry-run a governance VAA against a genesis document.

The --genesis state is loaded into an in-memory store, the VAA is executed
exactly as the chain would and the resulting state is printed as a genesis
document. Slashing and IBC client updates are logged instead of applied.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := configureLogging(v)
			defer func() { _ = logger.Sync() }()

			b, err := readVAA(args[0])
			if err != nil {
				return err
			}

			path := v.GetString("genesis")
			if path == "" {
				return fmt.Errorf("--genesis is required")
			}
			genState, err := loadGenesis(path)
			if err != nil {
				return err
			}

			blockTime := time.Now().UTC()
			if ts := v.GetInt64("block_time"); ts != 0 {
				blockTime = time.Unix(ts, 0).UTC()
			}

			storeKey := storetypes.NewKVStoreKey(types.StoreKey)
			ctxLogger := log.NewNopLogger()
			if v.GetBool("debug") {
				ctxLogger = log.NewLogger(cmd.ErrOrStderr())
			}
			ctx, err := memstore.NewContext(ctxLogger, v.GetInt64("block_height"), blockTime, storeKey)
			if err != nil {
				return err
			}

			k := keeper.NewKeeper(
				runtime.NewKVStoreService(storeKey),
				dryRunSlashingKeeper{logger: logger},
				dryRunClientKeeper{logger: logger, clients: v.GetStringSlice("ibc_clients")},
			)
			if err := wormhole.InitGenesis(ctx, *k, *genState); err != nil {
				return err
			}

			if err := k.ExecuteGovernanceVAA(ctx, b); err != nil {
				logger.Error("governance VAA rejected", zap.Error(err))
				return err
			}

			for _, event := range ctx.EventManager().Events() {
				fields := []zap.Field{zap.String("type", event.Type)}
				for _, attr := range event.Attributes {
					fields = append(fields, zap.String(attr.Key, attr.Value))
				}
				logger.Info("event", fields...)
			}

			return printJSON(cmd, wormhole.ExportGenesis(ctx, *k))
		},
	}

	cmd.Flags().Int64(
		"block-time",
		0,
		"Unix time of the simulated block (default now)")

	cmd.Flags().Int64(
		"block-height",
		1,
		"Height of the simulated block")

	cmd.Flags().StringSlice(
		"ibc-clients",
		nil,
		"Client ids known to the simulated IBC client registry (default accept any)")

	_ = v.BindPFlag("block_time", cmd.Flags().Lookup("block-time"))
	_ = v.BindPFlag("block_height", cmd.Flags().Lookup("block-height"))
	_ = v.BindPFlag("ibc_clients", cmd.Flags().Lookup("ibc-clients"))

	return cmd
}
