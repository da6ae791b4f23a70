package app

import (
	"encoding/hex"
	"encoding/json"
	"testing"
	"time"

	"github.com/iov-one/vault/x/vault"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

const chainID = "vault-test-net"

type testApp struct {
	t      *testing.T
	abci   app.BaseApp
	height int64
	now    time.Time
}

func newTestApp(t *testing.T, genesis json.RawMessage, metrics *Metrics) *testApp {
	t.Helper()
	base, err := Application("vaultd", Stack(metrics), TxDecoder, "", false)
	require.NoError(t, err)
	base = DecorateApp(base, log.NewNopLogger())

	base.InitChain(abci.RequestInitChain{
		ChainId:       chainID,
		AppStateBytes: genesis,
	})
	return &testApp{
		t:    t,
		abci: base,
		now:  time.Date(2019, time.October, 28, 7, 24, 43, 0, time.UTC),
	}
}

// deliver signs given message and runs it in its own block.
func (a *testApp) deliver(signer *crypto.PrivateKey, seq int64, msg weave.Msg) abci.ResponseDeliverTx {
	a.t.Helper()
	tx := &Tx{Fees: &cash.FeeInfo{Payer: signer.PublicKey().Condition().Address()}}
	switch m := msg.(type) {
	case *vault.DepositMsg:
		tx.Sum = &Tx_VaultDepositMsg{VaultDepositMsg: m}
	case *vault.WithdrawMsg:
		tx.Sum = &Tx_VaultWithdrawMsg{VaultWithdrawMsg: m}
	case *vault.InitializeV2Msg:
		tx.Sum = &Tx_VaultInitializeV2Msg{VaultInitializeV2Msg: m}
	case *vault.ClaimYieldMsg:
		tx.Sum = &Tx_VaultClaimYieldMsg{VaultClaimYieldMsg: m}
	case *migration.UpgradeSchemaMsg:
		tx.Sum = &Tx_MigrationUpgradeSchemaMsg{MigrationUpgradeSchemaMsg: m}
	default:
		a.t.Fatalf("unsupported message %T", msg)
	}
	sig, err := sigs.SignTx(signer, tx, chainID, seq)
	require.NoError(a.t, err)
	tx.Signatures = []*sigs.StdSignature{sig}
	raw, err := tx.Marshal()
	require.NoError(a.t, err)

	a.height++
	a.abci.BeginBlock(abci.RequestBeginBlock{
		Header: abci.Header{
			ChainID: chainID,
			Height:  a.height,
			Time:    a.now,
		},
	})
	res := a.abci.DeliverTx(raw)
	a.abci.EndBlock(abci.RequestEndBlock{Height: a.height})
	a.abci.Commit()
	return res
}

func (a *testApp) query(path string, key []byte, dest weave.Persistent) {
	a.t.Helper()
	res := a.abci.Query(abci.RequestQuery{Path: path, Data: key})
	require.EqualValues(a.t, 0, res.Code, res.Log)
	require.NoError(a.t, app.UnmarshalOneResult(res.Value, dest))
}

func TestGenInitOptions(t *testing.T) {
	owner := crypto.GenPrivKeyEd25519().PublicKey().Condition().Address()
	raw, err := GenInitOptions([]string{"ETH", hex.EncodeToString(owner)})
	require.NoError(t, err)

	var opts struct {
		Schemas []struct {
			Pkg string `json:"pkg"`
			Ver uint32 `json:"ver"`
		} `json:"initialize_schema"`
		Conf struct {
			Migration struct {
				Admin weave.Address `json:"admin"`
			} `json:"migration"`
		} `json:"conf"`
		Vault struct {
			Ticker        string        `json:"ticker"`
			Admin         weave.Address `json:"admin"`
			DepositFeeBps uint32        `json:"deposit_fee_bps"`
		} `json:"vault"`
	}
	require.NoError(t, json.Unmarshal(raw, &opts))
	assert.Len(t, opts.Schemas, 2)
	assert.Equal(t, owner, opts.Conf.Migration.Admin)
	assert.Equal(t, "ETH", opts.Vault.Ticker)
	assert.Equal(t, owner, opts.Vault.Admin)

	_, err = GenInitOptions([]string{"not a ticker"})
	assert.Error(t, err)
}

func TestGenerateCoinKey(t *testing.T) {
	addr, keys, err := GenerateCoinKey()
	require.NoError(t, err)
	require.NoError(t, addr.Validate())

	var out struct {
		Pubkey json.RawMessage `json:"pub_key"`
		Secret json.RawMessage `json:"secret"`
	}
	require.NoError(t, json.Unmarshal([]byte(keys), &out))
	assert.NotEmpty(t, out.Pubkey)
	assert.NotEmpty(t, out.Secret)
}

func TestVaultThroughABCI(t *testing.T) {
	ownerKey := crypto.GenPrivKeyEd25519()
	owner := ownerKey.PublicKey().Condition().Address()
	genesis, err := GenInitOptions([]string{"IOV", hex.EncodeToString(owner)})
	require.NoError(t, err)

	metrics, err := NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)
	a := newTestApp(t, genesis, metrics)

	res := a.deliver(ownerKey, 0, &vault.DepositMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Depositor: owner,
		Amount:    coin.NewCoin(100, 0, "IOV"),
	})
	require.EqualValues(t, 0, res.Code, res.Log)

	var acc vault.Account
	a.query("/vaultaccounts", owner, &acc)
	assert.True(t, acc.Principal.Equals(coin.NewCoin(100, 0, "IOV")), "principal %v", acc.Principal)

	var custody cash.Set
	a.query("/wallets", vault.CustodyAddress(), &custody)
	require.Len(t, custody.Coins, 1)
	assert.True(t, custody.Coins[0].Equals(coin.NewCoin(100, 0, "IOV")))

	// Yield claims are not available before the second revision.
	res = a.deliver(ownerKey, 1, &vault.ClaimYieldMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Depositor: owner,
	})
	require.NotEqual(t, uint32(0), res.Code)

	// The migration admin cannot move the vault to the next revision
	// without running its initialization.
	res = a.deliver(ownerKey, 2, &migration.UpgradeSchemaMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Pkg:       "vault",
		ToVersion: 2,
	})
	require.Equal(t, vault.ErrRevision.ABCICode(), res.Code, res.Log)

	res = a.deliver(ownerKey, 3, &vault.InitializeV2Msg{
		Metadata:     &weave.Metadata{Schema: 1},
		YieldRateBps: 1000,
	})
	require.EqualValues(t, 0, res.Code, res.Log)

	res = a.deliver(ownerKey, 4, &vault.WithdrawMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Depositor: owner,
		Amount:    coin.NewCoin(40, 0, "IOV"),
	})
	require.EqualValues(t, 0, res.Code, res.Log)
	a.query("/vaultaccounts", owner, &acc)
	assert.True(t, acc.Principal.Equals(coin.NewCoin(60, 0, "IOV")), "principal %v", acc.Principal)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.txs.WithLabelValues("deliver", "vault/deposit", "ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.txs.WithLabelValues("deliver", "vault/claim_yield", "failure")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.txs.WithLabelValues("deliver", "vault/initialize_v2", "ok")))
}

func TestTxDecoder(t *testing.T) {
	depositor := crypto.GenPrivKeyEd25519().PublicKey().Condition().Address()
	msg := &vault.EmergencyWithdrawMsg{
		Metadata:  &weave.Metadata{Schema: 1},
		Depositor: depositor,
	}
	tx := &Tx{Sum: &Tx_VaultEmergencyWithdrawMsg{VaultEmergencyWithdrawMsg: msg}}
	raw, err := tx.Marshal()
	require.NoError(t, err)

	decoded, err := TxDecoder(raw)
	require.NoError(t, err)
	got, err := decoded.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, msg, got)

	_, err = (&Tx{}).GetMsg()
	assert.Error(t, err)

	_, err = TxDecoder([]byte{0xff, 0xff})
	assert.Error(t, err)
}

func TestSignBytesExcludeSignatures(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	tx := &Tx{Sum: &Tx_VaultPauseDepositsMsg{
		VaultPauseDepositsMsg: &vault.PauseDepositsMsg{Metadata: &weave.Metadata{Schema: 1}},
	}}
	before, err := tx.GetSignBytes()
	require.NoError(t, err)

	sig, err := sigs.SignTx(key, tx, chainID, 0)
	require.NoError(t, err)
	tx.Signatures = []*sigs.StdSignature{sig}

	after, err := tx.GetSignBytes()
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Len(t, tx.Signatures, 1)
}
