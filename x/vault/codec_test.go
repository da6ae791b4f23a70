package vault

import (
	"bytes"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest/assert"
)

// Records written by the first revision must decode unchanged by the code
// of every later revision.

func TestDecodeRevision1Account(t *testing.T) {
	raw := []byte{
		0x0a, 0x02, 0x08, 0x01, // metadata, schema 1
		0x12, 0x07, 0x08, 0x05, 0x1a, 0x03, 'I', 'O', 'V', // principal, 5 IOV
	}

	var acc Account
	if err := acc.Unmarshal(raw); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	assert.Equal(t, uint32(1), acc.Metadata.Schema)
	if want := coin.NewCoin(5, 0, "IOV"); !acc.Principal.Equals(want) {
		t.Fatalf("want %v principal, got %v", want, acc.Principal)
	}
	assert.Equal(t, weave.UnixTime(0), acc.LastYieldClaim)
	if !acc.PendingYield.IsZero() {
		t.Fatalf("want no pending yield, got %v", acc.PendingYield)
	}
	if acc.WithdrawalRequest != nil {
		t.Fatalf("want no withdrawal request, got %+v", acc.WithdrawalRequest)
	}

	// Fields introduced later are appended after the existing ones.
	out, err := acc.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}
	if !bytes.HasPrefix(out, raw) {
		t.Fatalf("revision 1 encoding not preserved\nwant prefix %x\n got %x", raw, out)
	}
}

func TestDecodeRevision1State(t *testing.T) {
	raw := []byte{
		0x0a, 0x02, 0x08, 0x01, // metadata, schema 1
		0x12, 0x03, 'I', 'O', 'V', // ticker
		0x18, 0xf4, 0x03, // deposit fee, 500 bps
		0x22, 0x07, 0x08, 0x07, 0x1a, 0x03, 'I', 'O', 'V', // total principal, 7 IOV
		0x28, 0x01, // paused
	}

	var s State
	if err := s.Unmarshal(raw); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("invalid state: %s", err)
	}
	assert.Equal(t, "IOV", s.Ticker)
	assert.Equal(t, uint32(500), s.DepositFeeBps)
	assert.Equal(t, true, s.Paused)
	if want := coin.NewCoin(7, 0, "IOV"); !s.TotalPrincipal.Equals(want) {
		t.Fatalf("want %v total, got %v", want, s.TotalPrincipal)
	}
	assert.Equal(t, uint32(0), s.YieldRateBps)
	assert.Equal(t, weave.UnixTime(0), s.YieldRegimeStart)
	assert.Equal(t, uint32(0), s.WithdrawalDelaySeconds)
	assert.Equal(t, uint32(1), s.seeded())

	s.YieldRateBps = 1000
	s.WithdrawalDelaySeconds = 60
	out, err := s.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}
	if !bytes.HasPrefix(out, raw) {
		t.Fatalf("revision 1 encoding not preserved\nwant prefix %x\n got %x", raw, out)
	}
}

func TestWithdrawalRequestRoundTrip(t *testing.T) {
	acc := Account{
		Metadata:       &weave.Metadata{Schema: 3},
		Principal:      coin.NewCoin(10, 0, "IOV"),
		LastYieldClaim: 1572247483,
		PendingYield:   coin.NewCoin(0, 5, "IOV"),
		WithdrawalRequest: &WithdrawalRequest{
			Amount:      coin.NewCoin(4, 0, "IOV"),
			RequestedAt: 1572247490,
		},
	}
	raw, err := acc.Marshal()
	if err != nil {
		t.Fatalf("cannot marshal: %s", err)
	}
	var got Account
	if err := got.Unmarshal(raw); err != nil {
		t.Fatalf("cannot unmarshal: %s", err)
	}
	assert.Equal(t, acc, got)
}
