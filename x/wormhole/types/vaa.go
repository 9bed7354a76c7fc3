package types

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

// ParseVAA decodes the binary representation of a v1 VAA. Signature entries
// must appear in strictly ascending guardian index order.
func ParseVAA(data []byte) (*vaa.VAA, error) {
	v, err := vaa.Unmarshal(data)
	if err != nil {
		return nil, errorsmod.Wrap(ErrMalformedVAA, err.Error())
	}

	if err := checkSignatureOrder(v.Signatures); err != nil {
		return nil, err
	}

	return v, nil
}

// a guardian must never count twice towards quorum
func checkSignatureOrder(signatures []*vaa.Signature) error {
	lastIndex := -1
	for i, sig := range signatures {
		if int(sig.Index) <= lastIndex {
			return errorsmod.Wrapf(ErrSignatureIndicesNotAscending, "signature [%d] has guardian index %d after %d", i, sig.Index, lastIndex)
		}
		lastIndex = int(sig.Index)
	}
	return nil
}

// VerifySignatures checks every signature against the guardian at its index.
// It does not check quorum.
func VerifySignatures(v *vaa.VAA, addresses []common.Address) error {
	for i, sig := range v.Signatures {
		if int(sig.Index) >= len(addresses) {
			return errorsmod.Wrapf(ErrGuardianIndexOutOfBounds, "signature [%d] index %d, guardian set has %d keys", i, sig.Index, len(addresses))
		}
	}

	if err := checkSignatureOrder(v.Signatures); err != nil {
		return err
	}

	if !v.VerifySignatures(addresses) {
		return ErrSignaturesInvalid
	}

	return nil
}

// VerifyQuorum checks that v carries a quorum of valid signatures from the
// given guardian set at unix time now.
func VerifyQuorum(v *vaa.VAA, guardianSet GuardianSet, now uint64) error {
	if guardianSet.IsExpired(now) {
		return errorsmod.Wrapf(ErrGuardianSetExpired, "guardian set %d expired at %d", guardianSet.Index, guardianSet.ExpirationTime)
	}

	quorum := vaa.CalculateQuorum(len(guardianSet.Keys))
	if len(v.Signatures) < quorum {
		return errorsmod.Wrapf(ErrNoQuorum, "have %d signatures, need %d", len(v.Signatures), quorum)
	}

	return VerifySignatures(v, guardianSet.KeysAsAddresses())
}
