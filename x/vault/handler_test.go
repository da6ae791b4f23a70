package vault

import (
	"context"
	"testing"
	"time"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
	"github.com/iov-one/weave/weavetest/assert"
	"github.com/iov-one/weave/x/cash"
)

func TestUseCases(t *testing.T) {
	type Request struct {
		Now          weave.UnixTime
		Conditions   []weave.Condition
		Tx           weave.Tx
		WantCheckErr *errors.Error
		WantErr      *errors.Error
	}

	type AccountBalance struct {
		Wallet weave.Address
		Amount coin.Coin
	}

	var (
		adminCond   = weavetest.NewCondition()
		aliceCond   = weavetest.NewCondition()
		bobCond     = weavetest.NewCondition()
		charlieCond = weavetest.NewCondition()

		now = weave.UnixTime(1572247483)
	)

	initialize := func(feeBps uint32) Request {
		return Request{
			Now:        now,
			Conditions: []weave.Condition{adminCond},
			Tx: &weavetest.Tx{
				Msg: &InitializeMsg{
					Metadata:      &weave.Metadata{Schema: 1},
					Ticker:        "IOV",
					Admin:         adminCond.Address(),
					DepositFeeBps: feeBps,
				},
			},
		}
	}
	upgrade := func(msg weave.Msg) Request {
		return Request{
			Now:        now,
			Conditions: []weave.Condition{adminCond},
			Tx:         &weavetest.Tx{Msg: msg},
		}
	}
	v2 := &InitializeV2Msg{Metadata: &weave.Metadata{Schema: 1}, YieldRateBps: 1000}
	v3 := &InitializeV3Msg{Metadata: &weave.Metadata{Schema: 1}, WithdrawalDelaySeconds: 3600}

	cases := map[string]struct {
		Requests  []Request
		Funds     []AccountBalance
		AfterTest func(t *testing.T, db weave.KVStore)
	}{
		"only the migration admin can initialize the vault": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &InitializeMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Ticker:   "IOV",
							Admin:    aliceCond.Address(),
						},
					},
					WantCheckErr: errors.ErrUnauthorized,
					WantErr:      errors.ErrUnauthorized,
				},
				initialize(0),
				{
					Now:        now,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &InitializeMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Ticker:   "ETH",
							Admin:    adminCond.Address(),
						},
					},
					WantErr: ErrAlreadyInitialized,
				},
			},
		},
		"deposit and withdraw through the cash custody": {
			Funds: []AccountBalance{
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(100, 0, "IOV")},
			},
			Requests: []Request{
				initialize(500),
				{
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(100, 0, "IOV"),
						},
					},
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(96, 0, "IOV"),
						},
					},
					WantErr: ErrInsufficientBalance,
				},
				{
					Now:        now + 3,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &WithdrawMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(45, 0, "IOV"),
						},
					},
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(45, 0, "IOV"))
				// The fee remains in the custody.
				assertFunds(t, db, CustodyAddress(), coin.NewCoin(55, 0, "IOV"))
				assertBalance(t, NewVault(nil), db, bobCond.Address(), coin.NewCoin(50, 0, "IOV"))
			},
		},
		"deposit requires the depositor signature and funds": {
			Funds: []AccountBalance{
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(4, 0, "IOV")},
			},
			Requests: []Request{
				initialize(0),
				{
					Now:        now + 1,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(1, 0, "IOV"),
						},
					},
					WantCheckErr: errors.ErrUnauthorized,
					WantErr:      errors.ErrUnauthorized,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(5, 0, "IOV"),
						},
					},
					WantErr: ErrTransferFailed,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(4, 0, "IOV"))
				assertBalance(t, NewVault(nil), db, bobCond.Address(), coin.NewCoin(0, 0, "IOV"))
			},
		},
		"messages are served only by the revision that introduced them": {
			Requests: []Request{
				{
					Now:        now,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(1, 0, "IOV"),
						},
					},
					WantCheckErr: ErrRevision,
					WantErr:      ErrRevision,
				},
				initialize(0),
				{
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimYieldMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
						},
					},
					WantCheckErr: ErrRevision,
					WantErr:      ErrRevision,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: v3},
					WantErr:    ErrAlreadyInitialized,
				},
				{
					Now:          now + 3,
					Conditions:   []weave.Condition{aliceCond},
					Tx:           &weavetest.Tx{Msg: v2},
					WantCheckErr: errors.ErrUnauthorized,
					WantErr:      errors.ErrUnauthorized,
				},
				upgrade(v2),
				{
					Now:        now + 4,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimYieldMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
						},
					},
					WantErr: ErrNoYield,
				},
				{
					Now:        now + 5,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &EmergencyWithdrawMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
						},
					},
					WantCheckErr: ErrRevision,
					WantErr:      ErrRevision,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertRevision(t, NewVault(nil), db, 2)
			},
		},
		"generic schema upgrade cannot activate a vault revision": {
			Requests: []Request{
				initialize(0),
				{
					Now:        now + 1,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &migration.UpgradeSchemaMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Pkg:       "vault",
							ToVersion: 2,
						},
					},
					WantCheckErr: ErrRevision,
					WantErr:      ErrRevision,
				},
				upgrade(v2),
				{
					Now:        now + 2,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &migration.UpgradeSchemaMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Pkg:       "vault",
							ToVersion: 3,
						},
					},
					WantCheckErr: ErrRevision,
					WantErr:      ErrRevision,
				},
				// Other packages are still upgraded by the migration admin.
				{
					Now:        now + 3,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &migration.UpgradeSchemaMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Pkg:       "cash",
							ToVersion: 2,
						},
					},
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				v := NewVault(nil)
				assertRevision(t, v, db, 2)
				state, err := v.loadState(db)
				if err != nil {
					t.Fatalf("cannot load state: %s", err)
				}
				assert.Equal(t, uint32(2), state.SeededRevision)
				assert.Equal(t, now, state.YieldRegimeStart)
				assert.Equal(t, uint32(1000), state.YieldRateBps)

				ver, err := migration.NewSchemaBucket().CurrentSchema(db, "cash")
				if err != nil {
					t.Fatalf("cannot load cash schema: %s", err)
				}
				assert.Equal(t, uint32(2), ver)
			},
		},
		"pause gate is controlled by the pauser role": {
			Funds: []AccountBalance{
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(10, 0, "IOV")},
			},
			Requests: []Request{
				initialize(0),
				{
					Now:          now + 1,
					Conditions:   []weave.Condition{charlieCond},
					Tx:           &weavetest.Tx{Msg: &PauseDepositsMsg{Metadata: &weave.Metadata{Schema: 1}}},
					WantCheckErr: errors.ErrUnauthorized,
					WantErr:      errors.ErrUnauthorized,
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &GrantRoleMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Address:  charlieCond.Address(),
							Role:     RolePauser,
						},
					},
				},
				{
					Now:        now + 3,
					Conditions: []weave.Condition{charlieCond},
					Tx:         &weavetest.Tx{Msg: &PauseDepositsMsg{Metadata: &weave.Metadata{Schema: 1}}},
				},
				{
					Now:        now + 4,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(10, 0, "IOV"),
						},
					},
					WantErr: ErrPaused,
				},
				{
					Now:        now + 5,
					Conditions: []weave.Condition{adminCond},
					Tx: &weavetest.Tx{
						Msg: &RevokeRoleMsg{
							Metadata: &weave.Metadata{Schema: 1},
							Address:  charlieCond.Address(),
							Role:     RolePauser,
						},
					},
				},
				{
					Now:          now + 6,
					Conditions:   []weave.Condition{charlieCond},
					Tx:           &weavetest.Tx{Msg: &UnpauseDepositsMsg{Metadata: &weave.Metadata{Schema: 1}}},
					WantCheckErr: errors.ErrUnauthorized,
					WantErr:      errors.ErrUnauthorized,
				},
				{
					Now:        now + 7,
					Conditions: []weave.Condition{adminCond},
					Tx:         &weavetest.Tx{Msg: &UnpauseDepositsMsg{Metadata: &weave.Metadata{Schema: 1}}},
				},
				{
					Now:        now + 8,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(10, 0, "IOV"),
						},
					},
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertBalance(t, NewVault(nil), db, bobCond.Address(), coin.NewCoin(10, 0, "IOV"))
			},
		},
		"yield is paid out of the custody": {
			Funds: []AccountBalance{
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(100, 0, "IOV")},
				// Yield reserve.
				{Wallet: CustodyAddress(), Amount: coin.NewCoin(50, 0, "IOV")},
			},
			Requests: []Request{
				initialize(0),
				upgrade(v2),
				{
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(100, 0, "IOV"),
						},
					},
				},
				{
					Now:        now + 1 + SecondsPerYear,
					Conditions: []weave.Condition{aliceCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimYieldMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
						},
					},
					WantCheckErr: errors.ErrUnauthorized,
					WantErr:      errors.ErrUnauthorized,
				},
				{
					Now:        now + 1 + SecondsPerYear,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &ClaimYieldMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
						},
					},
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(10, 0, "IOV"))
				assertFunds(t, db, CustodyAddress(), coin.NewCoin(140, 0, "IOV"))
				assertBalance(t, NewVault(nil), db, bobCond.Address(), coin.NewCoin(100, 0, "IOV"))
			},
		},
		"delayed and emergency withdrawal": {
			Funds: []AccountBalance{
				{Wallet: bobCond.Address(), Amount: coin.NewCoin(100, 0, "IOV")},
				{Wallet: charlieCond.Address(), Amount: coin.NewCoin(100, 0, "IOV")},
			},
			Requests: []Request{
				initialize(0),
				upgrade(v2),
				upgrade(v3),
				{
					Now:        now + 1,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(100, 0, "IOV"),
						},
					},
				},
				{
					Now:        now + 1,
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &DepositMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: charlieCond.Address(),
							Amount:    coin.NewCoin(100, 0, "IOV"),
						},
					},
				},
				{
					Now:        now + 2,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &RequestWithdrawalMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
							Amount:    coin.NewCoin(30, 0, "IOV"),
						},
					},
				},
				{
					Now:        now + 3,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &ExecuteWithdrawalMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
						},
					},
					WantErr: ErrDelayNotElapsed,
				},
				{
					Now:        now + 2 + 3600,
					Conditions: []weave.Condition{bobCond},
					Tx: &weavetest.Tx{
						Msg: &ExecuteWithdrawalMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: bobCond.Address(),
						},
					},
				},
				{
					Now:        now + 3 + 3600,
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &EmergencyWithdrawMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: charlieCond.Address(),
						},
					},
				},
				{
					Now:        now + 4 + 3600,
					Conditions: []weave.Condition{charlieCond},
					Tx: &weavetest.Tx{
						Msg: &EmergencyWithdrawMsg{
							Metadata:  &weave.Metadata{Schema: 1},
							Depositor: charlieCond.Address(),
						},
					},
					WantErr: ErrInsufficientBalance,
				},
			},
			AfterTest: func(t *testing.T, db weave.KVStore) {
				assertFunds(t, db, bobCond.Address(), coin.NewCoin(30, 0, "IOV"))
				assertFunds(t, db, charlieCond.Address(), coin.NewCoin(100, 0, "IOV"))
				assertFunds(t, db, CustodyAddress(), coin.NewCoin(70, 0, "IOV"))
				assertBalance(t, NewVault(nil), db, bobCond.Address(), coin.NewCoin(70, 0, "IOV"))
				assertBalance(t, NewVault(nil), db, charlieCond.Address(), coin.NewCoin(0, 0, "IOV"))
			},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			migration.MustInitPkg(db, "cash")
			conf := migration.Configuration{Admin: adminCond.Address()}
			if err := gconf.Save(db, "migration", &conf); err != nil {
				t.Fatalf("cannot save migration configuration: %s", err)
			}

			rt := app.NewRouter()
			auth := &weavetest.CtxAuth{Key: "auth"}
			ctrl := cash.NewController(cash.NewBucket())
			RegisterRoutes(rt, auth, NewVault(NewCashCustodian(ctrl)))
			RegisterSchemaRoutes(rt, auth)

			for _, b := range tc.Funds {
				if err := ctrl.CoinMint(db, b.Wallet, b.Amount); err != nil {
					t.Fatalf("cannot mint coins for %q: %s", b.Wallet, err)
				}
			}

			for i, req := range tc.Requests {
				ctx := weave.WithHeight(context.Background(), int64(100+i))
				ctx = weave.WithChainID(ctx, "testchain-123")
				ctx = auth.SetConditions(ctx, req.Conditions...)
				ctx = weave.WithBlockTime(ctx, req.Now.Time())

				cache := db.CacheWrap()
				if _, err := rt.Check(ctx, cache, req.Tx); !req.WantCheckErr.Is(err) {
					t.Fatalf("unexpected %d check error: want %q, got %+v", i, req.WantCheckErr, err)
				}
				cache.Discard()

				cache = db.CacheWrap()
				if _, err := rt.Deliver(ctx, cache, req.Tx); !req.WantErr.Is(err) {
					t.Fatalf("unexpected %d deliver error: want %q, got %+v", i, req.WantErr, err)
				} else if err == nil {
					if err := cache.Write(); err != nil {
						t.Fatalf("cannot write cache: %s", err)
					}
				} else {
					cache.Discard()
				}
			}

			if tc.AfterTest != nil {
				tc.AfterTest(t, db)
			}
		})
	}
}

func assertFunds(t testing.TB, db weave.KVStore, wallet weave.Address, funds coin.Coin) {
	t.Helper()

	ctrl := cash.NewController(cash.NewBucket())
	coins, err := ctrl.Balance(db, wallet)
	if err != nil {
		t.Fatalf("balance: %s", err)
	}
	if len(coins) != 1 {
		t.Fatalf("want %q funds, found %d coins: %q", funds, len(coins), coins)
	}
	if !coins[0].Equals(funds) {
		t.Fatalf("unexpected funds found: %q", coins[0])
	}
}

func TestEmergencyWithdrawResult(t *testing.T) {
	db := store.MemStore()
	migration.MustInitPkg(db, "cash")

	bob := weavetest.NewCondition()
	ctrl := cash.NewController(cash.NewBucket())
	if err := ctrl.CoinMint(db, bob.Address(), coin.NewCoin(8, 0, "IOV")); err != nil {
		t.Fatalf("cannot mint: %s", err)
	}

	v := NewVault(NewCashCustodian(ctrl))
	admin := weavetest.NewCondition().Address()
	if err := v.Initialize(db, "IOV", admin, 0); err != nil {
		t.Fatalf("cannot initialize: %s", err)
	}
	if err := v.InitializeV2(db, now, 0); err != nil {
		t.Fatalf("cannot initialize revision 2: %s", err)
	}
	if err := v.InitializeV3(db, 60); err != nil {
		t.Fatalf("cannot initialize revision 3: %s", err)
	}
	deposit(t, v, db, now, bob.Address(), coin.NewCoin(8, 0, "IOV"))

	rt := app.NewRouter()
	RegisterRoutes(rt, &weavetest.Auth{Signer: bob}, v)

	ctx := weave.WithBlockTime(context.Background(), now.Add(time.Minute))
	tx := &weavetest.Tx{
		Msg: &EmergencyWithdrawMsg{
			Metadata:  &weave.Metadata{Schema: 1},
			Depositor: bob.Address(),
		},
	}
	res, err := rt.Deliver(ctx, db, tx)
	if err != nil {
		t.Fatalf("cannot deliver: %s", err)
	}

	var paid coin.Coin
	if err := paid.Unmarshal(res.Data); err != nil {
		t.Fatalf("cannot unmarshal result: %s", err)
	}
	if want := coin.NewCoin(8, 0, "IOV"); !paid.Equals(want) {
		t.Fatalf("want %v paid, got %v", want, paid)
	}

	got := make(map[string]string)
	for _, tag := range res.Tags {
		got[string(tag.Key)] = string(tag.Value)
	}
	assert.Equal(t, "vault/emergency_withdraw", got[tagAction])
	assert.Equal(t, bob.Address().String(), got[tagEmergencyAccount])
	assert.Equal(t, paid.String(), got[tagEmergencyAmount])

	assertFunds(t, db, bob.Address(), coin.NewCoin(8, 0, "IOV"))
}
