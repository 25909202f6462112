// Package collector builds the target set: every upstream listing whose
// deadline has not passed, keyed by listing id.
package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rokonmd111/pri-job-test/internal/dates"
	"github.com/rokonmd111/pri-job-test/internal/domain"
	"github.com/rokonmd111/pri-job-test/pkg/bdjobs"
	"github.com/rokonmd111/pri-job-test/pkg/logging"
)

const (
	defaultTitle   = "পদবিহীন"
	defaultCompany = "অজানা সংস্থা"

	// Orders within a page never reach the stride, so page then index
	// ordering survives in a single integer.
	pageOrderStride = 1000
)

// listClient is the subset of the bdjobs client used by the collector.
type listClient interface {
	ListPage(ctx context.Context, page int) ([]bdjobs.ListItem, error)
}

type Collector struct {
	client   listClient
	maxPages int
	log      *logging.Logger
}

func New(client listClient, maxPages int, log *logging.Logger) (*Collector, error) {
	if client == nil {
		return nil, fmt.Errorf("collector: client is required")
	}
	if maxPages < 1 {
		return nil, fmt.Errorf("collector: page cap must be positive")
	}
	return &Collector{client: client, maxPages: maxPages, log: log}, nil
}

// Collect paginates the listing feed up to the page cap and returns the
// listings still valid as of today. Individual bad rows are skipped with a
// logged reason; page-level fetch failures end pagination but are not fatal.
func (c *Collector) Collect(ctx context.Context, today time.Time) map[domain.ListingKey]domain.TargetListing {
	targets := make(map[domain.ListingKey]domain.TargetListing)

	for page := 1; page <= c.maxPages; page++ {
		items, err := c.client.ListPage(ctx, page)
		if err != nil {
			if errors.Is(err, bdjobs.ErrNoMorePages) {
				c.log.Info("reached end of listings", "page", page)
			} else {
				c.log.Error("listing page fetch failed", "page", page, "err", err)
			}
			break
		}
		if len(items) == 0 {
			c.log.Info("empty listing page, stopping", "page", page)
			break
		}

		for idx, item := range items {
			listing, reason := c.buildTarget(item, page, idx, today)
			if reason != "" {
				c.log.Info("listing skipped", "key", item.Key(), "reason", reason)
				continue
			}
			targets[listing.Key] = listing
		}
	}

	c.log.Info("listing collection finished", "targets", len(targets))
	return targets
}

func (c *Collector) buildTarget(item bdjobs.ListItem, page, idx int, today time.Time) (domain.TargetListing, string) {
	key := item.Key()
	if key == "" {
		return domain.TargetListing{}, "missing listing id"
	}

	title := strings.TrimSpace(item.Title)
	if title == "" {
		title = strings.TrimSpace(item.TitleBangla)
	}
	if title == "" {
		title = defaultTitle
	}

	company := strings.TrimSpace(item.CompanyName)
	if company == "" {
		company = defaultCompany
	}

	label := dates.Normalize(item.DeadlineDB, dates.APILayouts)
	deadline, ok := dates.ParseLabel(label)
	if !ok {
		return domain.TargetListing{}, "missing or invalid deadline"
	}
	if dates.Before(deadline, today) {
		return domain.TargetListing{}, "expired " + label
	}

	if utf8.RuneCountInString(title) <= 2 {
		return domain.TargetListing{}, "malformed title"
	}

	return domain.TargetListing{
		Key:           key,
		Title:         title + " - " + company,
		Company:       company,
		DeadlineLabel: label,
		Deadline:      deadline,
		SourceOrder:   page*pageOrderStride + idx,
	}, ""
}
