package vault

import (
	"context"
	"testing"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/store"
	"github.com/iov-one/weave/weavetest"
)

func assertRevision(t testing.TB, v *Vault, db weave.ReadOnlyKVStore, want uint32) {
	t.Helper()
	rev, err := v.Revision(db)
	if err != nil {
		t.Fatalf("revision: %s", err)
	}
	if rev != want {
		t.Fatalf("want revision %d, got %d", want, rev)
	}
}

func TestRevisionsActivateInOrder(t *testing.T) {
	v := NewVault(&custodyMock{})
	db := store.MemStore()
	admin := weavetest.NewCondition().Address()

	assertRevision(t, v, db, 0)
	if _, err := v.ImplementationVersion(db); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}

	if err := v.InitializeV2(db, now, 100); !ErrAlreadyInitialized.Is(err) {
		t.Fatalf("want already initialized error, got %+v", err)
	}
	if err := v.InitializeV3(db, 60); !ErrAlreadyInitialized.Is(err) {
		t.Fatalf("want already initialized error, got %+v", err)
	}
	assertRevision(t, v, db, 0)

	if err := v.Initialize(db, "IOV", admin, 0); err != nil {
		t.Fatalf("cannot initialize: %s", err)
	}
	assertRevision(t, v, db, 1)
	if err := v.Initialize(db, "IOV", admin, 0); !ErrAlreadyInitialized.Is(err) {
		t.Fatalf("want already initialized error, got %+v", err)
	}
	if err := v.InitializeV3(db, 60); !ErrAlreadyInitialized.Is(err) {
		t.Fatalf("want already initialized error, got %+v", err)
	}

	if err := v.InitializeV2(db, now, 100); err != nil {
		t.Fatalf("cannot initialize revision 2: %s", err)
	}
	assertRevision(t, v, db, 2)
	if err := v.InitializeV2(db, now, 100); !ErrAlreadyInitialized.Is(err) {
		t.Fatalf("want already initialized error, got %+v", err)
	}

	if err := v.InitializeV3(db, 60); err != nil {
		t.Fatalf("cannot initialize revision 3: %s", err)
	}
	assertRevision(t, v, db, 3)
	for _, err := range []error{
		v.Initialize(db, "IOV", admin, 0),
		v.InitializeV2(db, now, 100),
		v.InitializeV3(db, 60),
	} {
		if !ErrAlreadyInitialized.Is(err) {
			t.Fatalf("want already initialized error, got %+v", err)
		}
	}

	ver, err := v.ImplementationVersion(db)
	if err != nil {
		t.Fatalf("version: %s", err)
	}
	if ver != "V3" {
		t.Fatalf("want V3, got %q", ver)
	}
}

func TestInitializeValidation(t *testing.T) {
	admin := weavetest.NewCondition().Address()

	cases := map[string]struct {
		Ticker  string
		Admin   weave.Address
		FeeBps  uint32
		WantErr *errors.Error
	}{
		"valid": {
			Ticker: "IOV",
			Admin:  admin,
			FeeBps: MaxBps,
		},
		"invalid ticker": {
			Ticker:  "iov",
			Admin:   admin,
			WantErr: errors.ErrCurrency,
		},
		"missing admin": {
			Ticker:  "IOV",
			WantErr: errors.ErrEmpty,
		},
		"fee too high": {
			Ticker:  "IOV",
			Admin:   admin,
			FeeBps:  MaxBps + 1,
			WantErr: errors.ErrInput,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			v := NewVault(&custodyMock{})
			db := store.MemStore()
			if err := v.Initialize(db, tc.Ticker, tc.Admin, tc.FeeBps); !tc.WantErr.Is(err) {
				t.Fatalf("want %q error, got %+v", tc.WantErr, err)
			}
			want := uint32(1)
			if tc.WantErr != nil {
				want = 0
			}
			assertRevision(t, v, db, want)
		})
	}
}

func TestInitializeDeclaredSchema(t *testing.T) {
	v := NewVault(&custodyMock{})
	db := store.MemStore()
	admin := weavetest.NewCondition().Address()

	// Genesis can declare the first schema version before the vault
	// state is written.
	migration.MustInitPkg(db, packageName)
	assertRevision(t, v, db, 1)

	if err := v.Initialize(db, "IOV", admin, 0); err != nil {
		t.Fatalf("cannot initialize: %s", err)
	}
	if err := v.Initialize(db, "IOV", admin, 0); !ErrAlreadyInitialized.Is(err) {
		t.Fatalf("want already initialized error, got %+v", err)
	}
}

func TestUpgradeKeepsLedger(t *testing.T) {
	v, _, db, admin := newTestVault(t, 1, 500)
	alice := weavetest.NewCondition().Address()
	bob := weavetest.NewCondition().Address()

	deposit(t, v, db, now, alice, coin.NewCoin(100, 0, "IOV"))
	deposit(t, v, db, now, bob, coin.NewCoin(20, 0, "IOV"))
	if err := v.PauseDeposits(db); err != nil {
		t.Fatalf("cannot pause: %s", err)
	}

	var before State
	if err := gconf.Load(db, packageName, &before); err != nil {
		t.Fatalf("cannot load state: %s", err)
	}

	if err := v.InitializeV2(db, afterDays(1), 1000); err != nil {
		t.Fatalf("cannot initialize revision 2: %s", err)
	}
	if err := v.InitializeV3(db, 600); err != nil {
		t.Fatalf("cannot initialize revision 3: %s", err)
	}

	assertBalance(t, v, db, alice, coin.NewCoin(95, 0, "IOV"))
	assertBalance(t, v, db, bob, coin.NewCoin(19, 0, "IOV"))

	after, err := v.loadState(db)
	if err != nil {
		t.Fatalf("cannot load state: %s", err)
	}
	// Fields of the first revision are never rewritten by an upgrade.
	if after.Ticker != before.Ticker ||
		after.DepositFeeBps != before.DepositFeeBps ||
		!after.TotalPrincipal.Equals(before.TotalPrincipal) ||
		after.Paused != before.Paused {
		t.Fatalf("revision 1 fields changed: %+v != %+v", before, after)
	}
	if after.YieldRateBps != 1000 || after.YieldRegimeStart != weave.AsUnixTime(afterDays(1)) {
		t.Fatalf("unexpected revision 2 fields: %+v", after)
	}
	if after.WithdrawalDelaySeconds != 600 {
		t.Fatalf("unexpected revision 3 fields: %+v", after)
	}
	if after.Metadata.Schema != 3 {
		t.Fatalf("want state schema 3, got %d", after.Metadata.Schema)
	}

	// Roles granted in the first revision are still in place.
	for _, role := range []Role{RoleAdmin, RoleUpgrader, RolePauser} {
		ok, err := v.HasRole(db, admin, role)
		if err != nil || !ok {
			t.Fatalf("want %s granted, got %v, %v", role, ok, err)
		}
	}
}

func TestRevisionBumpedWithoutSeeding(t *testing.T) {
	v, _, db, _ := newTestVault(t, 1, 0)
	alice := weavetest.NewCondition().Address()
	deposit(t, v, db, now, alice, coin.NewCoin(100, 0, "IOV"))

	// Bump the schema the way a generic upgrade would, bypassing the
	// initialize message that seeds the revision 2 fields.
	schema := migration.Schema{
		Metadata: &weave.Metadata{Schema: 1},
		Pkg:      packageName,
		Version:  2,
	}
	if _, err := migration.NewSchemaBucket().Create(db, &schema); err != nil {
		t.Fatalf("cannot bump schema: %s", err)
	}
	assertRevision(t, v, db, 2)

	if _, err := v.UserYield(db, afterDays(1), alice); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}
	if err := v.SetYieldRate(db, 1000); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}
	if _, err := v.Deposit(db, afterDays(1), alice, coin.NewCoin(1, 0, "IOV")); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}
	if err := v.InitializeV2(db, afterDays(1), 1000); !ErrAlreadyInitialized.Is(err) {
		t.Fatalf("want already initialized error, got %+v", err)
	}
}

func TestRevisionRoutingHandler(t *testing.T) {
	v, _, db, admin := newTestVault(t, 0, 0)
	ctx := context.Background()

	handler := &weavetest.Handler{}
	rt := sinceRevision(v, 2, handler)

	if _, err := rt.Deliver(ctx, db, &weavetest.Tx{}); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}
	if err := v.Initialize(db, "IOV", admin, 0); err != nil {
		t.Fatalf("cannot initialize: %s", err)
	}
	if _, err := rt.Check(ctx, db, &weavetest.Tx{}); !ErrRevision.Is(err) {
		t.Fatalf("want revision error, got %+v", err)
	}
	if handler.CallCount() != 0 {
		t.Fatalf("handler called %d times", handler.CallCount())
	}

	if err := v.InitializeV2(db, now, 0); err != nil {
		t.Fatalf("cannot initialize revision 2: %s", err)
	}
	if _, err := rt.Check(ctx, db, &weavetest.Tx{}); err != nil {
		t.Fatalf("check: %s", err)
	}
	if err := v.InitializeV3(db, 0); err != nil {
		t.Fatalf("cannot initialize revision 3: %s", err)
	}
	if _, err := rt.Deliver(ctx, db, &weavetest.Tx{}); err != nil {
		t.Fatalf("deliver: %s", err)
	}
	if handler.CallCount() != 2 {
		t.Fatalf("want 2 handler calls, got %d", handler.CallCount())
	}
}
