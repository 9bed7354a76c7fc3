package types_test

import (
	"crypto/ecdsa"
	"crypto/rand"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

func generateGuardians(t *testing.T, n int) ([]*ecdsa.PrivateKey, types.GuardianSet) {
	keys := make([]*ecdsa.PrivateKey, n)
	gs := types.GuardianSet{Index: 0}
	for i := range keys {
		key, err := ecdsa.GenerateKey(crypto.S256(), rand.Reader)
		require.NoError(t, err)
		keys[i] = key
		gs.Keys = append(gs.Keys, crypto.PubkeyToAddress(key.PublicKey).Bytes())
	}
	return keys, gs
}

func signedVAA(signers []*ecdsa.PrivateKey, payload []byte) *vaa.VAA {
	v := &vaa.VAA{
		Version:          vaa.SupportedVAAVersion,
		GuardianSetIndex: 0,
		Timestamp:        time.Unix(1700000000, 0),
		Nonce:            42,
		Sequence:         7,
		ConsistencyLevel: 1,
		EmitterChain:     vaa.ChainIDSolana,
		EmitterAddress:   vaa.GovernanceEmitter,
		Payload:          payload,
	}
	for i, key := range signers {
		v.AddSignature(key, uint8(i))
	}
	return v
}

func marshal(t *testing.T, v *vaa.VAA) []byte {
	bz, err := v.Marshal()
	require.NoError(t, err)
	return bz
}

func TestParseVAA(t *testing.T) {
	signers, gs := generateGuardians(t, 3)
	sv := signedVAA(signers, []byte("hello"))
	bz := marshal(t, sv)

	v, err := types.ParseVAA(bz)
	require.NoError(t, err)

	assert.Equal(t, uint8(1), v.Version)
	assert.Equal(t, sv.GuardianSetIndex, v.GuardianSetIndex)
	require.Len(t, v.Signatures, 3)
	for i, sig := range v.Signatures {
		assert.Equal(t, sv.Signatures[i].Index, sig.Index)
		assert.Equal(t, sv.Signatures[i].Signature, sig.Signature)
	}
	assert.Equal(t, sv.Timestamp.Unix(), v.Timestamp.Unix())
	assert.Equal(t, sv.Nonce, v.Nonce)
	assert.Equal(t, sv.EmitterChain, v.EmitterChain)
	assert.Equal(t, sv.EmitterAddress, v.EmitterAddress)
	assert.Equal(t, sv.Sequence, v.Sequence)
	assert.Equal(t, sv.ConsistencyLevel, v.ConsistencyLevel)
	assert.Equal(t, sv.Payload, v.Payload)

	// digests must agree with the rest of the network
	assert.Equal(t, sv.SigningDigest(), v.SigningDigest())
	assert.Equal(t, sv.HexDigest(), v.HexDigest())
	assert.Equal(t, "1/0000000000000000000000000000000000000000000000000000000000000004/7", v.MessageID())

	reencoded, err := v.Marshal()
	require.NoError(t, err)
	assert.Equal(t, bz, reencoded)

	// a well ordered VAA decodes exactly as the SDK decodes it
	expected, err := vaa.Unmarshal(bz)
	require.NoError(t, err)
	assert.Equal(t, expected, v)
	assert.True(t, v.VerifySignatures(gs.KeysAsAddresses()))
}

func TestParseVAAEmpty(t *testing.T) {
	bz := marshal(t, signedVAA(nil, nil))
	require.Len(t, bz, 57)

	v, err := types.ParseVAA(bz)
	require.NoError(t, err)
	assert.Empty(t, v.Signatures)
	assert.Empty(t, v.Payload)
}

func TestParseVAAErrors(t *testing.T) {
	signers, _ := generateGuardians(t, 3)
	valid := marshal(t, signedVAA(signers, []byte{1, 2, 3}))

	badVersion := append([]byte{}, valid...)
	badVersion[0] = 2

	tooManySignatures := append([]byte{}, valid...)
	tooManySignatures[5] = 4

	duplicate := signedVAA(signers, []byte{1, 2, 3})
	duplicate.Signatures = append(duplicate.Signatures, duplicate.Signatures[2])

	descending := signedVAA(signers, []byte{1, 2, 3})
	descending.Signatures[0], descending.Signatures[1] = descending.Signatures[1], descending.Signatures[0]

	tests := []struct {
		label string
		data  []byte
		err   error
	}{
		{label: "Nil", data: nil, err: types.ErrMalformedVAA},
		{label: "TooShort", data: valid[:56], err: types.ErrMalformedVAA},
		{label: "TruncatedBody", data: valid[:6+3*66+50], err: types.ErrMalformedVAA},
		{label: "UnsupportedVersion", data: badVersion, err: types.ErrMalformedVAA},
		{label: "SignaturesOverrunBody", data: tooManySignatures, err: types.ErrMalformedVAA},
		{label: "DuplicateIndex", data: marshal(t, duplicate), err: types.ErrSignatureIndicesNotAscending},
		{label: "DescendingIndex", data: marshal(t, descending), err: types.ErrSignatureIndicesNotAscending},
	}

	for _, tc := range tests {
		t.Run(tc.label, func(t *testing.T) {
			v, err := types.ParseVAA(tc.data)
			assert.Nil(t, v)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestVerifyQuorum(t *testing.T) {
	signers, gs := generateGuardians(t, 10)
	quorum := vaa.CalculateQuorum(len(gs.Keys))
	now := uint64(1700000000)

	parse := func(sv *vaa.VAA) *vaa.VAA {
		v, err := types.ParseVAA(marshal(t, sv))
		require.NoError(t, err)
		return v
	}

	t.Run("Quorum", func(t *testing.T) {
		assert.NoError(t, types.VerifyQuorum(parse(signedVAA(signers[:quorum], nil)), gs, now))
		assert.NoError(t, types.VerifyQuorum(parse(signedVAA(signers, nil)), gs, now))
	})

	t.Run("BelowQuorum", func(t *testing.T) {
		err := types.VerifyQuorum(parse(signedVAA(signers[:quorum-1], nil)), gs, now)
		assert.ErrorIs(t, err, types.ErrNoQuorum)
	})

	t.Run("DuplicateSignatureDoesNotCount", func(t *testing.T) {
		v := parse(signedVAA(signers[:quorum], nil))
		v.Signatures[1] = v.Signatures[0]
		err := types.VerifyQuorum(v, gs, now)
		assert.ErrorIs(t, err, types.ErrSignatureIndicesNotAscending)
	})

	t.Run("WrongSigner", func(t *testing.T) {
		sv := signedVAA(nil, nil)
		for i := 0; i < quorum; i++ {
			// every guardian signs in the slot of its neighbour
			sv.AddSignature(signers[(i+1)%len(signers)], uint8(i))
		}
		err := types.VerifyQuorum(parse(sv), gs, now)
		assert.ErrorIs(t, err, types.ErrSignaturesInvalid)
	})

	t.Run("TamperedBody", func(t *testing.T) {
		v := parse(signedVAA(signers, []byte{1}))
		v.Payload = []byte{2}
		err := types.VerifyQuorum(v, gs, now)
		assert.ErrorIs(t, err, types.ErrSignaturesInvalid)
	})

	t.Run("IndexOutOfBounds", func(t *testing.T) {
		small := types.GuardianSet{Index: 0, Keys: gs.Keys[:1]}
		err := types.VerifyQuorum(parse(signedVAA(signers[:2], nil)), small, now)
		assert.ErrorIs(t, err, types.ErrGuardianIndexOutOfBounds)
	})

	t.Run("Expiry", func(t *testing.T) {
		expiring := gs
		expiring.ExpirationTime = now
		v := parse(signedVAA(signers, nil))
		assert.NoError(t, types.VerifyQuorum(v, expiring, now))
		assert.ErrorIs(t, types.VerifyQuorum(v, expiring, now+1), types.ErrGuardianSetExpired)
	})
}
