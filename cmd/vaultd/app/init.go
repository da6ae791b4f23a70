package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/iov-one/vault/x/vault"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/app"
	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/commands/server"
	"github.com/iov-one/weave/crypto"
	"github.com/iov-one/weave/crypto/bech32"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/x/cash"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// GenInitOptions will produce some basic options for one rich
// account, to use for dev mode. The same account administrates the
// migrations and the vault, and collects the fees.
//
// Optional arguments are the ticker and the hex encoded address.
func GenInitOptions(args []string) (json.RawMessage, error) {
	ticker := "IOV"
	if len(args) > 0 {
		ticker = args[0]
		if !coin.IsCC(ticker) {
			return nil, errors.Wrapf(errors.ErrCurrency, "invalid ticker %q", ticker)
		}
	}

	var addr string
	if len(args) > 1 {
		addr = args[1]
	} else {
		// if no address provided, auto-generate one
		// and print out the keys
		bz, keys, err := GenerateCoinKey()
		if err != nil {
			return nil, err
		}
		human, err := bech32.Encode("iov", bz)
		if err != nil {
			return nil, errors.Wrap(err, "bech32 address")
		}
		addr = hex.EncodeToString(bz)
		fmt.Println(keys)
		fmt.Printf("address: %s\n", human)
	}

	opts := fmt.Sprintf(`
          {
            "initialize_schema": [
              {"pkg": "cash", "ver": 1},
              {"pkg": "sigs", "ver": 1}
            ],
            "conf": {
              "migration": {
                "admin": "%[1]s"
              },
              "cash": {
                "collector_address": "%[1]s",
                "minimal_fee": {"whole": 0, "ticker": "%[2]s"}
              }
            },
            "cash": [
              {
                "address": "%[1]s",
                "coins": [
                  {"whole": 123456789, "ticker": "%[2]s"}
                ]
              }
            ],
            "vault": {
              "ticker": "%[2]s",
              "admin": "%[1]s",
              "deposit_fee_bps": 0
            }
          }
	`, addr, ticker)
	return []byte(opts), nil
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	return generateApp(options, nil)
}

// GenerateAppWithMetrics returns a GenerateApp compatible function
// instrumenting the application with given metrics.
func GenerateAppWithMetrics(metrics *Metrics) func(*server.Options) (abci.Application, error) {
	return func(options *server.Options) (abci.Application, error) {
		return generateApp(options, metrics)
	}
}

func generateApp(options *server.Options, metrics *Metrics) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "vault.db")
	}

	stack := Stack(metrics)
	application, err := Application("vaultd", stack, TxDecoder, dbPath, options.Debug)
	if err != nil {
		return nil, err
	}
	return DecorateApp(application, options.Logger), nil
}

// DecorateApp adds initializers and logger to an Application
func DecorateApp(application app.BaseApp, logger log.Logger) app.BaseApp {
	application.WithInit(app.ChainInitializers(
		&migration.Initializer{},
		&cash.Initializer{},
		&vault.Initializer{},
	))
	application.WithLogger(logger)
	return application
}

type output struct {
	Pubkey *crypto.PublicKey  `json:"pub_key"`
	Secret *crypto.PrivateKey `json:"secret"`
}

// GenerateCoinKey returns the address of a fresh ed25519 key together with
// the json encoded key pair, so that the keys can be imported by a client.
func GenerateCoinKey() (weave.Address, string, error) {
	privKey := crypto.GenPrivKeyEd25519()
	pubKey := privKey.PublicKey()

	keys, err := json.MarshalIndent(output{Pubkey: pubKey, Secret: privKey}, "", "  ")
	if err != nil {
		return nil, "", errors.Wrap(err, "marshal keys")
	}
	return pubKey.Address(), string(keys), nil
}
