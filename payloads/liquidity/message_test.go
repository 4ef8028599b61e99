package liquidity

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"
	"github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/wireio"
)

const (
	allYourBase    = "All your base are belong to us."
	allYourBaseHex = "001f416c6c20796f75722062617365206172652062656c6f6e6720746f2075732e"
)

var (
	deadbeef = mustAddress("deadbeef")
	beefdead = mustAddress("beefdead")
	aa       = mustAddress("aa")
)

func mustAddress(pattern string) vaa.Address {
	b, err := hex.DecodeString(strings.Repeat(pattern, 64/len(pattern)))
	if err != nil {
		panic(err)
	}
	var a vaa.Address
	copy(a[:], b)
	return a
}

func fill() Fill {
	return Fill{
		SourceChain:     69,
		OrderSender:     deadbeef,
		Redeemer:        aa,
		RedeemerMessage: []byte(allYourBase),
	}
}

func TestFillEncoding(t *testing.T) {
	f := fill()
	expected := "010045" + deadbeef.String() + aa.String() + allYourBaseHex

	buf, err := wireio.ToPayloadBytes(f)
	require.NoError(t, err)
	assert.Equal(t, expected, hex.EncodeToString(buf))
	assert.Equal(t, len(buf), wireio.PayloadWrittenSize(f))

	decoded, err := DecodeDeposit(buf)
	require.NoError(t, err)
	assert.Equal(t, &f, decoded)
}

func TestFastFillEncoding(t *testing.T) {
	ff := FastFill{FillAmount: 420, Fill: fill()}
	expected := "0c00000000000001a40045deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa001f416c6c20796f75722062617365206172652062656c6f6e6720746f2075732e"

	buf, err := wireio.ToPayloadBytes(ff)
	require.NoError(t, err)
	assert.Equal(t, expected, hex.EncodeToString(buf))
	assert.Equal(t, len(buf), wireio.PayloadWrittenSize(ff))

	strict, err := wireio.ReadPayloadSlice[FastFill](buf)
	require.NoError(t, err)
	assert.Equal(t, ff, *strict)

	decoded, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, &ff, decoded)

	_, isDeposit := decoded.(DepositMessage)
	assert.False(t, isDeposit)
}

func TestFastMarketOrderEncoding(t *testing.T) {
	order := FastMarketOrder{
		AmountIn:        1234567890,
		MinAmountOut:    69420,
		TargetChain:     69,
		Redeemer:        deadbeef,
		Sender:          beefdead,
		RefundAddress:   aa,
		MaxFee:          1234567890,
		InitAuctionFee:  69420,
		Deadline:        420,
		RedeemerMessage: []byte(allYourBase),
	}
	expected := "0b00000000499602d20000000000010f2c0045deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa00000000499602d20000000000010f2c000001a4001f416c6c20796f75722062617365206172652062656c6f6e6720746f2075732e"

	buf, err := wireio.ToPayloadBytes(order)
	require.NoError(t, err)
	assert.Equal(t, expected, hex.EncodeToString(buf))
	assert.Equal(t, len(buf), wireio.PayloadWrittenSize(order))
	assert.Equal(t, 1+FastMarketOrderFixedSize+len(allYourBase), len(buf))

	decoded, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, &order, decoded)
}

func TestSlowOrderResponseEncoding(t *testing.T) {
	resp := SlowOrderResponse{BaseFee: 1234567890}
	buf, err := wireio.ToPayloadBytes(resp)
	require.NoError(t, err)
	assert.Equal(t, "0200000000499602d2", hex.EncodeToString(buf))

	decoded, err := DecodeDeposit(buf)
	require.NoError(t, err)
	assert.Equal(t, &resp, decoded)
}

func TestCctpDepositCarriesFill(t *testing.T) {
	f := fill()
	inner, err := wireio.ToPayloadBytes(f)
	require.NoError(t, err)

	deposit := CctpDeposit{
		TokenAddress:          mustAddress("11"),
		Amount:                uint256.NewInt(1_000_000),
		SourceCctpDomain:      0,
		DestinationCctpDomain: 3,
		CctpNonce:             7,
		BurnSource:            mustAddress("22"),
		MintRecipient:         mustAddress("33"),
		Payload:               inner,
	}
	buf, err := wireio.ToPayloadBytes(deposit)
	require.NoError(t, err)
	assert.Equal(t, 1+32+32+4+4+8+32+32+2+len(inner), len(buf))
	assert.Equal(t, len(buf), wireio.PayloadWrittenSize(deposit))

	decoded, err := Decode(buf)
	require.NoError(t, err)
	got, ok := decoded.(*CctpDeposit)
	require.True(t, ok)
	assert.Equal(t, deposit, *got)

	msg, err := got.Message()
	require.NoError(t, err)
	assert.Equal(t, &f, msg)

	body := &vaa.Body{Payload: buf}
	fromBody, err := FromBody(body)
	require.NoError(t, err)
	assert.IsType(t, &CctpDeposit{}, fromBody)
}

func TestDecodeNamespaces(t *testing.T) {
	slow, err := wireio.ToPayloadBytes(SlowOrderResponse{BaseFee: 1})
	require.NoError(t, err)

	// Tag 2 is only meaningful inside a deposit.
	_, err = Decode(slow)
	assert.ErrorIs(t, err, ErrUnknownMessage)
	assert.ErrorIs(t, err, wireio.ErrInvalidPayloadType)

	_, err = DecodeDeposit([]byte{TypeFastFill})
	assert.ErrorIs(t, err, ErrUnknownDepositMessage)

	_, err = Decode(nil)
	assert.ErrorIs(t, err, wireio.ErrShortRead)
}

func TestDecodeStrictness(t *testing.T) {
	buf, err := wireio.ToPayloadBytes(fill())
	require.NoError(t, err)

	_, err = DecodeDeposit(append(buf, 0x00))
	assert.ErrorIs(t, err, wireio.ErrInvalidPayloadLength)

	_, err = DecodeDeposit(buf[:len(buf)-1])
	assert.ErrorIs(t, err, wireio.ErrShortRead)
}
