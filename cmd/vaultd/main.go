package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	vaultd "github.com/iov-one/vault/cmd/vaultd/app"
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/commands/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tendermint/tendermint/libs/log"
)

var (
	flagHome    = "home"
	flagMetrics = "metrics"
	varHome     *string
	varMetrics  *string
)

func init() {
	defaultHome := filepath.Join(os.ExpandEnv("$HOME"), ".vault")
	varHome = flag.String(flagHome, defaultHome, "directory to store files under")
	varMetrics = flag.String(flagMetrics, "", "address to serve prometheus metrics on, disabled if empty")

	flag.CommandLine.Usage = helpMessage
}

func helpMessage() {
	fmt.Println("vaultd")
	fmt.Println("          Custodial vault node")
	fmt.Println("")
	fmt.Println("help      Print this message")
	fmt.Println("init      Initialize app options in genesis file")
	fmt.Println("start     Run the abci server")
	fmt.Println("version   Print the app version")
	fmt.Println(`
  -home string
        directory to store files under (default "$HOME/.vault")
  -metrics string
        address to serve prometheus metrics on, disabled if empty`)
}

func main() {
	logger := log.NewTMLogger(log.NewSyncWriter(os.Stdout)).
		With("module", "vault")

	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Println("Missing command:")
		helpMessage()
		os.Exit(1)
	}

	cmd := flag.Arg(0)
	rest := flag.Args()[1:]

	var err error
	switch cmd {
	case "help":
		helpMessage()
	case "init":
		err = server.InitCmd(vaultd.GenInitOptions, logger, *varHome, rest)
	case "start":
		err = start(logger, rest)
	case "version":
		fmt.Println(weave.Version)
	default:
		err = fmt.Errorf("unknown command: %s", cmd)
	}

	if err != nil {
		fmt.Printf("Error: %+v\n\n", err)
		helpMessage()
		os.Exit(1)
	}
}

func start(logger log.Logger, args []string) error {
	if *varMetrics == "" {
		return server.StartCmd(vaultd.GenerateApp, logger, *varHome, args)
	}

	reg := prometheus.NewRegistry()
	metrics, err := vaultd.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("cannot register metrics: %s", err)
	}
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		logger.Info("Serving metrics", "bind", *varMetrics)
		if err := http.ListenAndServe(*varMetrics, mux); err != nil {
			logger.Error("Metrics server stopped", "err", err)
		}
	}()
	return server.StartCmd(vaultd.GenerateAppWithMetrics(metrics), logger, *varHome, args)
}
