package main

import (
	"bytes"
	"encoding/hex"

	"github.com/spf13/cobra"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"

	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
)

type decodedSignature struct {
	Index     uint8  `json:"index"`
	Signature string `json:"signature"`
}

type decodedGovernance struct {
	Module string `json:"module"`
	Action string `json:"action"`
	Chain  uint16 `json:"chain"`
	Body   string `json:"body"`
}

type decodedVAA struct {
	Version          uint8              `json:"version"`
	GuardianSetIndex uint32             `json:"guardian_set_index"`
	Signatures       []decodedSignature `json:"signatures"`
	Timestamp        int64              `json:"timestamp"`
	Nonce            uint32             `json:"nonce"`
	EmitterChain     string             `json:"emitter_chain"`
	EmitterAddress   string             `json:"emitter_address"`
	Sequence         uint64             `json:"sequence"`
	ConsistencyLevel uint8              `json:"consistency_level"`
	Payload          string             `json:"payload"`
	Digest           string             `json:"digest"`
	Governance       *decodedGovernance `json:"governance,omitempty"`
}

func newDecodedVAA(v *vaa.VAA) decodedVAA {
	out := decodedVAA{
		Version:          v.Version,
		GuardianSetIndex: v.GuardianSetIndex,
		Signatures:       make([]decodedSignature, 0, len(v.Signatures)),
		Timestamp:        v.Timestamp.Unix(),
		Nonce:            v.Nonce,
		EmitterChain:     v.EmitterChain.String(),
		EmitterAddress:   v.EmitterAddress.String(),
		Sequence:         v.Sequence,
		ConsistencyLevel: v.ConsistencyLevel,
		Payload:          hex.EncodeToString(v.Payload),
		Digest:           v.HexDigest(),
	}
	for _, sig := range v.Signatures {
		out.Signatures = append(out.Signatures, decodedSignature{
			Index:     sig.Index,
			Signature: hex.EncodeToString(sig.Signature[:]),
		})
	}

	// only core governance payloads are annotated
	if msg, err := types.ParseGovernanceMessage(v.Payload); err == nil && bytes.Equal(msg.Module[:], vaa.CoreModule) {
		out.Governance = &decodedGovernance{
			Module: hex.EncodeToString(msg.Module[:]),
			Action: types.GovernanceAction(msg.Action).String(),
			Chain:  msg.Chain,
			Body:   hex.EncodeToString(msg.Payload),
		}
	}
	return out
}

func decodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode [VAA]",
		Short: "Decode a hex or base64 encoded VAA",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := readVAA(args[0])
			if err != nil {
				return err
			}

			v, err := types.ParseVAA(b)
			if err != nil {
				return err
			}

			return printJSON(cmd, newDecodedVAA(v))
		},
	}
}
