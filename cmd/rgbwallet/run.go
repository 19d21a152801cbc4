package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code.vegaprotocol.io/rgbwallet/config"
	vclose "code.vegaprotocol.io/rgbwallet/libs/close"
	"code.vegaprotocol.io/rgbwallet/logging"
	"code.vegaprotocol.io/rgbwallet/metrics"
	"code.vegaprotocol.io/rgbwallet/service"

	"github.com/jessevdk/go-flags"
)

type RunCmd struct {
	ctx context.Context

	HomeFlag
	config.Config

	Help bool `short:"h" long:"help" description:"Show this help message"`
}

func (cmd *RunCmd) Execute(_ []string) error {
	if cmd.Help {
		return &flags.Error{
			Type:    flags.ErrHelp,
			Message: "rgbwallet run subcommand help",
		}
	}

	log := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer log.AtExit()

	cfgPath := cmd.configPath()
	cfg, err := config.Read(cfgPath)
	if err != nil {
		return err
	}

	// the command line takes precedence over the file
	if _, err := flags.NewParser(cfg, flags.Default|flags.IgnoreUnknown).Parse(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log = logging.NewLoggerFromConfig(cfg.Logging)
	log.SetLevel(cfg.LogLevel.Get())

	ctx, cancel := context.WithCancel(cmd.ctx)
	defer cancel()

	watcher, err := config.NewWatcher(ctx, log, cfgPath)
	if err != nil {
		return fmt.Errorf("couldn't watch the configuration: %w", err)
	}
	watcher.OnConfigUpdate(func(c config.Config) {
		log.SetLevel(c.LogLevel.Get())
	})

	closer := vclose.NewCloser()

	if cfg.Metrics.Enabled {
		metricsSrv, err := metrics.NewServer(log, cfg.Metrics)
		if err != nil {
			return err
		}
		go func() {
			if err := metricsSrv.Start(); err != nil {
				log.Error("error starting metrics server", logging.Error(err))
			}
		}()
		closer.Add("metrics server", metricsSrv.Stop)
	}

	svc, err := service.NewService(log, cfg.Server, cfg.Node)
	if err != nil {
		_ = closer.CloseAll()
		return err
	}

	log.Info("starting wallet server",
		logging.String("address", cfg.Server.String()),
		logging.String("node", cfg.Node.URL),
	)

	if err := svc.Listen(); err != nil {
		log.Error("couldn't bind the wallet server", logging.Error(err))
		_ = closer.CloseAll()
		return err
	}
	closer.Add("wallet server", svc.Stop)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- svc.Serve()
	}()

	return shutdown(ctx, log, serveErr, closer)
}

// shutdown waits for a signal, the end of ctx, or the serve loop to return,
// then closes everything. A serve loop returning an error is fatal.
func shutdown(ctx context.Context, log *logging.Logger, serveErr <-chan error, closer *vclose.Closer) error {
	err := waitSig(ctx, log, serveErr)
	if err != nil {
		log.Error("error serving the wallet server", logging.Error(err))
	}

	if closeErr := closer.CloseAll(); closeErr != nil {
		log.Error("error stopping wallet server", logging.Error(closeErr))
		if err == nil {
			err = closeErr
		}
	}
	if err != nil {
		return err
	}

	log.Info("wallet server stopped with success")
	return nil
}

// waitSig will wait for a sigterm or sigint interrupt, or for the serve loop
// to end. The error of the serve loop, if any, is returned.
func waitSig(ctx context.Context, log *logging.Logger, serveErr <-chan error) error {
	gracefulStop := make(chan os.Signal, 1)
	signal.Notify(gracefulStop, syscall.SIGTERM, syscall.SIGINT)
	defer signal.Stop(gracefulStop)

	select {
	case sig := <-gracefulStop:
		log.Info("Caught signal", logging.String("name", fmt.Sprintf("%+v", sig)))
	case err := <-serveErr:
		if err != nil {
			return err
		}
		log.Info("wallet server stopped serving")
	case <-ctx.Done():
	}
	return nil
}

var runCmd RunCmd

func Run(ctx context.Context, parser *flags.Parser) error {
	runCmd = RunCmd{
		ctx:    ctx,
		Config: config.NewDefaultConfig(),
	}

	_, err := parser.AddCommand("run", "Start the wallet server", "Start the HTTP server in front of the RGB node", &runCmd)
	return err
}
