package types_test

import (
	"bytes"
	"encoding/binary"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wormhole-foundation/wormchain-gov/x/wormhole/types"
	"github.com/wormhole-foundation/wormhole/sdk/vaa"
)

func TestGovernanceMessage(t *testing.T) {
	module := [32]byte{}
	copy(module[:], vaa.CoreModule)
	gm := types.NewGovernanceMessage(module, byte(types.ActionGuardianSetUpdate), uint16(vaa.ChainIDWormchain), []byte{9, 9})

	bz := gm.MarshalBinary()
	require.Len(t, bz, types.GovernanceHeaderLength+2)
	assert.Equal(t, vaa.CoreModule, bz[:32])
	assert.Equal(t, byte(2), bz[32])
	assert.Equal(t, uint16(3104), binary.BigEndian.Uint16(bz[33:35]))

	parsed, err := types.ParseGovernanceMessage(bz)
	require.NoError(t, err)
	assert.Equal(t, gm, parsed)

	_, err = types.ParseGovernanceMessage(bz[:34])
	assert.ErrorIs(t, err, types.ErrInvalidGovernancePayloadLength)

	// a bare header carries an empty body
	parsed, err = types.ParseGovernanceMessage(bz[:35])
	require.NoError(t, err)
	assert.Empty(t, parsed.Payload)
}

func TestGovernanceActionString(t *testing.T) {
	assert.Equal(t, "guardian_set_update", types.ActionGuardianSetUpdate.String())
	assert.Equal(t, "slashing_params_update", types.ActionSlashingParamsUpdate.String())
	assert.Equal(t, "ibc_client_update", types.ActionIBCClientUpdate.String())
	assert.Equal(t, "unknown(9)", types.GovernanceAction(9).String())
}

func guardianSetUpdateBody(index uint32, keys ...[]byte) []byte {
	body := binary.BigEndian.AppendUint32(nil, index)
	body = append(body, byte(len(keys)))
	for _, key := range keys {
		body = append(body, key...)
	}
	return body
}

func TestParseGuardianSetUpdate(t *testing.T) {
	key1 := bytes.Repeat([]byte{1}, 20)
	key2 := bytes.Repeat([]byte{2}, 20)

	update, err := types.ParseGuardianSetUpdate(guardianSetUpdateBody(5, key1, key2))
	require.NoError(t, err)
	assert.Equal(t, uint32(5), update.NewIndex)
	assert.Equal(t, [][]byte{key1, key2}, update.Keys)

	body := guardianSetUpdateBody(5, key1, key2)
	for _, bad := range [][]byte{body[:4], body[:len(body)-1], append(body, 0)} {
		_, err = types.ParseGuardianSetUpdate(bad)
		assert.ErrorIs(t, err, types.ErrInvalidGovernancePayloadLength)
	}

	_, err = types.ParseGuardianSetUpdate(guardianSetUpdateBody(5, key1, key2, key1))
	assert.ErrorIs(t, err, types.ErrDuplicateGuardianAddress)

	// decoded keys do not alias the payload
	body = guardianSetUpdateBody(5, key1)
	update, err = types.ParseGuardianSetUpdate(body)
	require.NoError(t, err)
	body[5] = 0xff
	assert.Equal(t, key1, update.Keys[0])
}

func TestParseSlashingParamsUpdate(t *testing.T) {
	body := make([]byte, 40)
	binary.BigEndian.PutUint64(body[0:8], 1000)
	binary.BigEndian.PutUint64(body[8:16], 250000000000000000)
	binary.BigEndian.PutUint64(body[16:24], uint64(time.Hour))
	binary.BigEndian.PutUint64(body[24:32], 1000000000000000000)
	binary.BigEndian.PutUint64(body[32:40], 1)

	update, err := types.ParseSlashingParamsUpdate(body)
	require.NoError(t, err)
	assert.Equal(t, types.SlashingParamsUpdate{
		SignedBlocksWindow:      1000,
		MinSignedPerWindow:      250000000000000000,
		DowntimeJailDuration:    int64(time.Hour),
		SlashFractionDoubleSign: 1000000000000000000,
		SlashFractionDowntime:   1,
	}, update)

	params := update.Params()
	assert.Equal(t, int64(1000), params.SignedBlocksWindow)
	assert.True(t, sdkmath.LegacyMustNewDecFromStr("0.25").Equal(params.MinSignedPerWindow))
	assert.Equal(t, time.Hour, params.DowntimeJailDuration)
	assert.True(t, sdkmath.LegacyOneDec().Equal(params.SlashFractionDoubleSign))
	assert.True(t, sdkmath.LegacySmallestDec().Equal(params.SlashFractionDowntime))

	for _, bad := range [][]byte{nil, body[:39], append(body, 0)} {
		_, err = types.ParseSlashingParamsUpdate(bad)
		assert.ErrorIs(t, err, types.ErrInvalidGovernancePayloadLength)
	}
}

func TestParseIBCClientUpdate(t *testing.T) {
	body := make([]byte, 128)
	copy(body, "07-tendermint-12")
	copy(body[64:], "07-tendermint-13")

	update, err := types.ParseIBCClientUpdate(body)
	require.NoError(t, err)
	assert.Equal(t, "07-tendermint-12", update.SubjectClientID)
	assert.Equal(t, "07-tendermint-13", update.SubstituteClientID)

	for _, bad := range [][]byte{nil, body[:127], append(body, 0)} {
		_, err = types.ParseIBCClientUpdate(bad)
		assert.ErrorIs(t, err, types.ErrInvalidGovernancePayloadLength)
	}
}
