package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/samber/do"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/whiteelite/solana-gateway/internal/api/handler"
	"github.com/whiteelite/solana-gateway/internal/config"
	"github.com/whiteelite/solana-gateway/internal/domain/entities"
	"github.com/whiteelite/solana-gateway/internal/domain/repositories"
	sdk "github.com/whiteelite/solana-gateway/internal/infrastructure/blockchain/solana"
	kafkarepo "github.com/whiteelite/solana-gateway/internal/infrastructure/messaging/kafka/repositories/repository"
	"github.com/whiteelite/solana-gateway/internal/pkg/logging"
	"github.com/whiteelite/solana-gateway/internal/services"
)

func init() {
	// for development
	//nolint:errcheck
	godotenv.Load("../../.env")

	// for production
	//nolint:errcheck
	godotenv.Load("./.env")
}

func main() {
	cfg := config.FromEnv()
	if cfg.Mode == "debug" {
		logging.Init("debug", false)
	} else {
		// machine-parseable lines outside of debug
		logging.Init("info", true)
	}

	container := NewContainer(cfg)

	app := &cli.App{
		Name: "api",
		Commands: []*cli.Command{
			commandServer(container),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logging.Logger.Fatal().Err(err).Msg("api exited")
	}
}

func commandServer(container *do.Injector) *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "start the web server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "addr",
				Usage: "serve address (overrides configuration)",
			},
		},
		Action: func(c *cli.Context) error {
			cfg := do.MustInvoke[config.Config](container)
			logger := logging.WithComponent("api")

			var origins []string
			if v := os.Getenv("API_ORIGINS"); v != "" {
				origins = strings.Split(v, ",")
			}

			router, err := handler.New(&handler.Config{
				Container: container,
				Mode:      cfg.Mode,
				Origins:   origins,
			})
			if err != nil {
				return err
			}

			addr := cfg.Addr
			if c.String("addr") != "" {
				addr = c.String("addr")
			}

			srv := &http.Server{
				Addr:    addr,
				Handler: router,
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errWg, errCtx := errgroup.WithContext(ctx)

			errWg.Go(func() error {
				logger.Info().Str("addr", addr).Str("rpc", cfg.RPCURL).Msg("listening")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return err
				}
				return nil
			})

			errWg.Go(func() error {
				<-errCtx.Done()
				if audit, err := do.Invoke[repositories.MessageQueueProducer[entities.AuditEvent]](container); err == nil && audit != nil {
					audit.Close()
				}
				return srv.Shutdown(context.TODO())
			})

			return errWg.Wait()
		},
	}
}

func NewContainer(cfg config.Config) *do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)

	do.Provide(injector, func(i *do.Injector) (*sdk.Client, error) {
		cfg := do.MustInvoke[config.Config](i)
		return sdk.NewClient(cfg.RPCURL), nil
	})

	do.Provide(injector, func(i *do.Injector) (services.BalanceFetcher, error) {
		client, err := do.Invoke[*sdk.Client](i)
		if err != nil {
			return nil, err
		}
		return client, nil
	})

	do.Provide(injector, func(i *do.Injector) (repositories.MessageQueueProducer[entities.AuditEvent], error) {
		cfg := do.MustInvoke[config.Config](i)
		params := kafkarepo.KafkaAuditTrailParams{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		}
		if err := kafkarepo.ValidateKafkaParams(params); err != nil {
			// audit trail disabled without brokers
			return nil, err
		}

		trail := kafkarepo.InitializeKafkaAuditTrail(params)

		logger := logging.WithComponent("audit")
		go func() {
			for err := range trail.Errors() {
				logger.Warn().Err(err).Msg("audit publish failed")
			}
		}()

		return trail, nil
	})

	do.Provide(injector, func(i *do.Injector) (*services.ServiceGateway, error) {
		return services.NewServiceGateway(i)
	})

	return injector
}
