/*
Package app links together all the various components
to construct the vaultd app.
*/
package app

//go:generate protoc -I=. -I=$VAULT_ROOT -I=$WEAVE_ROOT -I=$GOGO_PROTO_ROOT --gogofaster_out=Mmigration/codec.proto=github.com/iov-one/weave/migration,Mx/cash/codec.proto=github.com/iov-one/weave/x/cash,Mx/sigs/codec.proto=github.com/iov-one/weave/x/sigs,Mx/vault/codec.proto=github.com/iov-one/vault/x/vault:. codec.proto

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/iov-one/vault/x/vault"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/store/iavl"
	"github.com/iov-one/weave/x"
	"github.com/iov-one/weave/x/cash"
	"github.com/iov-one/weave/x/sigs"
	"github.com/iov-one/weave/x/utils"
)

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return x.ChainAuth(sigs.Authenticate{})
}

// Chain returns a chain of decorators, to handle authentication,
// fees, logging, metrics and recovery. Metrics can be nil.
func Chain(authFn x.Authenticator, metrics *Metrics) app.Decorators {
	ctrl := cash.NewController(cash.NewBucket())
	return app.ChainDecorators(
		utils.NewLogging(),
		metrics,
		utils.NewRecovery(),
		utils.NewKeyTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		cash.NewFeeDecorator(authFn, ctrl),
		// on DeliverTx, bad tx will increment nonce and take fee
		// even if the message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router returns a router dispatching to the cash, schema and vault
// handlers. All vault handlers share the ledger controller. Deposited
// funds are held in a cash wallet.
func Router(authFn x.Authenticator) weave.Handler {
	r := app.NewRouter()
	ctrl := cash.NewController(cash.NewBucket())
	cash.RegisterRoutes(r, authFn, ctrl)
	// The vault schema is excluded, its revisions are activated by the
	// vault initialize messages only.
	vault.RegisterSchemaRoutes(r, authFn)
	vault.RegisterRoutes(r, authFn, vault.NewVault(vault.NewCashCustodian(ctrl)))
	return r
}

// QueryRouter returns a default query router,
// allowing access to "/wallets", "/auth", "/schemas", "/vaultaccounts",
// "/vaultroles" and "/"
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		cash.RegisterQuery,
		sigs.RegisterQuery,
		migration.RegisterQuery,
		vault.RegisterQuery,
		orm.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack(metrics *Metrics) weave.Handler {
	authFn := Authenticator()
	return Chain(authFn, metrics).WithHandler(Router(authFn))
}

// Application constructs a basic ABCI application with
// the given arguments. If you are not sure what to use
// for the Handler, just use Stack().
func Application(name string, h weave.Handler,
	tx weave.TxDecoder, dbPath string, debug bool) (app.BaseApp, error) {

	ctx := context.Background()
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return app.BaseApp{}, errors.Wrap(err, "cannot create database instance")
	}
	store := app.NewStoreApp(name, kv, QueryRouter(), ctx)
	base := app.NewBaseApp(store, tx, h, nil, debug)
	return base, nil
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path. An empty path returns a memory
// backed store.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.MockCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "invalid database name %q", dbPath)
	}

	// Some external calls accidentally add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name), nil
}
