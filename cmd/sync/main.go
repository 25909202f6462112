package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/rokonmd111/pri-job-test/internal/blogstate"
	"github.com/rokonmd111/pri-job-test/internal/collector"
	"github.com/rokonmd111/pri-job-test/internal/config"
	"github.com/rokonmd111/pri-job-test/internal/eligibility"
	"github.com/rokonmd111/pri-job-test/internal/enricher"
	"github.com/rokonmd111/pri-job-test/internal/render"
	syncer "github.com/rokonmd111/pri-job-test/internal/sync"
	"github.com/rokonmd111/pri-job-test/pkg/bdjobs"
	"github.com/rokonmd111/pri-job-test/pkg/blogger"
	"github.com/rokonmd111/pri-job-test/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("run_id", uuid.NewString())
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	bloggerClient, err := blogger.NewClient(ctx, blogger.Config{
		TokenJSON:        []byte(cfg.Blogger.TokenJSON),
		ClientSecretJSON: []byte(cfg.Blogger.ClientSecretJSON),
	})
	if err != nil {
		logger.Error("blogger authentication failed, aborting", "err", err)
		os.Exit(1)
	}

	jobsClient, err := bdjobs.NewClient(bdjobs.Config{
		ListURLTemplate:   cfg.Bdjobs.ListURLTemplate,
		DetailURLTemplate: cfg.Bdjobs.DetailURLTemplate,
	})
	if err != nil {
		logger.Error("failed to build bdjobs client", "err", err)
		os.Exit(1)
	}

	store, err := blogstate.New(bloggerClient.Service(), cfg.Blogger.BlogID, logger)
	if err != nil {
		logger.Error("failed to build blog state store", "err", err)
		os.Exit(1)
	}

	coll, err := collector.New(jobsClient, cfg.Bdjobs.MaxPages, logger)
	if err != nil {
		logger.Error("failed to build collector", "err", err)
		os.Exit(1)
	}

	enr, err := enricher.New(jobsClient, eligibility.New(cfg.TrustedEmailDomain), cfg.Bdjobs.ApplyURLTemplate, logger)
	if err != nil {
		logger.Error("failed to build enricher", "err", err)
		os.Exit(1)
	}

	reconciler, err := syncer.New(store, coll, enr, render.Body, cfg.OperationDelay, logger)
	if err != nil {
		logger.Error("failed to build reconciler", "err", err)
		os.Exit(1)
	}

	logger.Info("bdjobs sync starting", "blog_id", cfg.Blogger.BlogID, "max_pages", cfg.Bdjobs.MaxPages)

	if err := reconciler.Run(ctx); err != nil {
		if errors.Is(err, syncer.ErrEmptyCollection) {
			logger.Error("no valid listings collected, run aborted")
		} else {
			logger.Error("synchronization failed", "err", err)
		}
		os.Exit(1)
	}

	logger.Info("synchronization complete")
}
