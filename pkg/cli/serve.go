package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gotobot/pkg/cli/config"
	discordCtrl "github.com/secmon-lab/gotobot/pkg/controller/discord"
	httpCtrl "github.com/secmon-lab/gotobot/pkg/controller/http"
	"github.com/secmon-lab/gotobot/pkg/repository"
	discordSvc "github.com/secmon-lab/gotobot/pkg/service/discord"
	"github.com/secmon-lab/gotobot/pkg/usecase"
	"github.com/secmon-lab/gotobot/pkg/utils/async"
	"github.com/urfave/cli/v3"
)

const shutdownTimeout = 10 * time.Second

func cmdServe() *cli.Command {
	var (
		discordCfg config.Discord
		moveCfg    config.Move
		localeCfg  config.Locale
		serverCfg  config.Server
		slackCfg   config.Slack
	)

	flags := collectFlags(&discordCfg, &moveCfg, &localeCfg, &serverCfg, &slackCfg)

	return &cli.Command{
		Name:  "serve",
		Usage: "Connect to Discord and serve /goto",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting gotobot",
				slog.Any("discord", discordCfg),
				slog.Any("move", moveCfg),
				slog.Any("locale", localeCfg),
				slog.Any("server", serverCfg),
				slog.Any("slack", slackCfg),
			)

			// Discord and Locale validate inside Configure
			if err := validateAll(&moveCfg, &serverCfg, &slackCfg); err != nil {
				return err
			}

			catalog, err := localeCfg.Configure()
			if err != nil {
				return err
			}

			session, err := discordCfg.Configure()
			if err != nil {
				return err
			}

			repo := repository.NewMemory()
			defer repo.Close()

			platform := discordSvc.NewFromSession(session, catalog)
			picker := usecase.NewChannelPicker(platform, usecase.WithSelectionTimeout(moveCfg.SelectionTimeout))
			orchestrator := usecase.NewMoveOrchestrator(platform, usecase.WithPacingDelay(moveCfg.PacingDelay))

			gotoOpts := []usecase.GotoOption{usecase.WithOccupantPolicy(moveCfg.Policy())}
			if notifier := slackCfg.ConfigureOptional(logger); notifier != nil {
				gotoOpts = append(gotoOpts, usecase.WithMoveNotifier(notifier))
			}
			gotoUC := usecase.NewGoto(platform, repo, catalog, picker, orchestrator, gotoOpts...)

			dispatcher := async.NewDispatcher()
			handler := discordCtrl.NewHandler(ctx, gotoUC, session, discordCtrl.WithDispatcher(dispatcher))

			var ready atomic.Bool
			session.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
				ready.Store(true)
				logger.Info("Connected to Discord",
					slog.String("user", r.User.Username),
					slog.Int("guilds", len(r.Guilds)),
				)
			})
			session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Disconnect) {
				ready.Store(false)
				logger.Warn("Disconnected from Discord")
			})
			session.AddHandler(func(_ *discordgo.Session, _ *discordgo.Resumed) {
				ready.Store(true)
			})
			session.AddHandler(handler.OnInteractionCreate)

			if err := session.Open(); err != nil {
				return goerr.Wrap(err, "failed to open Discord session")
			}
			defer func() {
				if err := session.Close(); err != nil {
					logger.Warn("failed to close Discord session", slog.Any("error", err))
				}
			}()

			if err := discordSvc.RegisterCommands(ctx, session, session.State.User.ID, discordCfg.GuildID); err != nil {
				return err
			}

			var server *httpCtrl.Server
			if serverCfg.Enabled() {
				server = httpCtrl.NewServer(ctx, serverCfg.Addr, repo, httpCtrl.WithReadyFunc(ready.Load))
				go func() {
					logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
					if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						logger.Error("HTTP server error", slog.Any("error", err))
					}
				}()
			}

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			if server != nil {
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}
			}

			// Running moves are not interrupted; pickers still open expire on their own.
			if err := dispatcher.Wait(shutdownCtx); err != nil {
				logger.Warn("Exiting with /goto invocations in flight", slog.Any("error", err))
			}

			logger.Info("Shutdown complete")
			return nil
		},
	}
}
