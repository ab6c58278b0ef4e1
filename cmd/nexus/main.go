package main

import (
	"Nexus/config"
	"Nexus/pkg/authctx"
	"Nexus/pkg/log"
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	provider := InitApp(cfg)

	cliApp := &cli.App{
		Name: "nexus",
		Commands: []*cli.Command{
			{
				Name:  "reindex",
				Usage: "backfill embeddings for published entries",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "batch", Value: 100, Usage: "批大小"},
				},
				Action: func(ctx *cli.Context) error {
					done, err := provider.Entry.ReindexEmbeddings(ctx.Context, ctx.Int("batch"))
					if err != nil {
						return err
					}
					log.L.Info("reindex finished", zap.Int("updated", done))
					return nil
				},
			},
			{
				Name:  "extract",
				Usage: "prepare a GDPR extraction manifest for a user",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					userCtx := authctx.WithUserID(ctx.Context, ctx.Uint64("user"))
					manifest, err := provider.Gdpr.PrepareExtractionManifest(userCtx)
					if err != nil {
						return err
					}
					log.L.Info("extraction manifest ready",
						zap.String("public_code", manifest.PublicCode),
						zap.Time("expires_at", manifest.ExpiresAt))
					return nil
				},
			},
			{
				Name:  "erase",
				Usage: "delete a user's data across all registered apps",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "user", Required: true},
				},
				Action: func(ctx *cli.Context) error {
					summary, err := provider.Gdpr.DeleteUserData(context.Background(), ctx.Uint64("user"))
					if err != nil {
						return err
					}
					log.L.Info("user data deleted",
						zap.Int64("total", summary.TotalRecordsDeleted),
						zap.String("confirmation", summary.ConfirmationToken))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("command failed", zap.Error(err))
	}
}
