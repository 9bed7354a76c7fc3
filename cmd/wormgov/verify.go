package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
	"go.uber.org/zap"

	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

func verifyCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [VAA]",
		Short: "Check that a VAA carries a quorum of valid guardian signatures",
		Long: `Check that a VAA carries a quorum of valid guardian signatures.

The guardian set is taken from --guardian-keys when given, otherwise the set
named by the VAA is looked up in the --genesis document.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := configureLogging(v)
			defer func() { _ = logger.Sync() }()

			b, err := readVAA(args[0])
			if err != nil {
				return err
			}
			parsed, err := types.ParseVAA(b)
			if err != nil {
				return err
			}

			guardianSet, err := resolveGuardianSet(v, parsed.GuardianSetIndex)
			if err != nil {
				return err
			}

			now := time.Now()
			if ts := v.GetInt64("time"); ts != 0 {
				now = time.Unix(ts, 0)
			}

			logger.Debug("verifying VAA",
				zap.String("digest", parsed.HexDigest()),
				zap.Uint32("guardian_set_index", guardianSet.Index),
				zap.Int("guardians", len(guardianSet.Keys)),
				zap.Int("signatures", len(parsed.Signatures)),
			)

			if err := types.VerifyQuorum(parsed, *guardianSet, uint64(now.Unix())); err != nil { // #nosec G115 -- unix time is positive
				logger.Error("VAA verification failed", zap.String("digest", parsed.HexDigest()), zap.Error(err))
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "VAA %s verified by guardian set %d (%d/%d signatures, quorum %d)\n",
				parsed.HexDigest(),
				guardianSet.Index,
				len(parsed.Signatures),
				len(guardianSet.Keys),
				vaa.CalculateQuorum(len(guardianSet.Keys)),
			)
			return nil
		},
	}

	cmd.Flags().StringSlice(
		"guardian-keys",
		nil,
		"Comma separated hex guardian addresses, in guardian index order")

	cmd.Flags().Int64(
		"time",
		0,
		"Unix time at which to evaluate guardian set expiry (default now)")

	_ = v.BindPFlag("guardian_keys", cmd.Flags().Lookup("guardian-keys"))
	_ = v.BindPFlag("time", cmd.Flags().Lookup("time"))

	return cmd
}

func resolveGuardianSet(v *viper.Viper, index uint32) (*types.GuardianSet, error) {
	if keys := v.GetStringSlice("guardian_keys"); len(keys) != 0 {
		parsed, err := types.ParseGuardianKeys(keys)
		if err != nil {
			return nil, fmt.Errorf("invalid --guardian-keys: %w", err)
		}
		gs := &types.GuardianSet{Index: index, Keys: parsed}
		if err := gs.ValidateBasic(); err != nil {
			return nil, err
		}
		return gs, nil
	}

	path := v.GetString("genesis")
	if path == "" {
		return nil, fmt.Errorf("either --guardian-keys or --genesis is required")
	}
	genState, err := loadGenesis(path)
	if err != nil {
		return nil, err
	}
	for i := range genState.GuardianSetList {
		if genState.GuardianSetList[i].Index == index {
			return &genState.GuardianSetList[i], nil
		}
	}
	return nil, fmt.Errorf("%w: guardian set %d is not in %s", types.ErrGuardianSetNotFound, index, path)
}
