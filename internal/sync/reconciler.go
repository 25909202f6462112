// Package sync drives one reconciliation run: delete expired posts, collect
// the current target set, and publish what the blog is missing.
package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/rokonmd111/pri-job-test/internal/blogstate"
	"github.com/rokonmd111/pri-job-test/internal/dates"
	"github.com/rokonmd111/pri-job-test/internal/domain"
	"github.com/rokonmd111/pri-job-test/pkg/logging"
)

// ErrEmptyCollection aborts a run whose upstream collection came back empty.
// Zero valid listings means the feed or the filters are broken, not that
// there is nothing to add.
var ErrEmptyCollection = errors.New("sync: upstream collection returned no valid listings")

// StateStore is the destination platform surface the reconciler needs.
type StateStore interface {
	ReadPublished(ctx context.Context) (map[domain.ListingKey]domain.PublishedListing, error)
	Delete(ctx context.Context, postID string) error
	Publish(ctx context.Context, post blogstate.NewPost) error
}

// Collector produces the target set as of today.
type Collector interface {
	Collect(ctx context.Context, today time.Time) map[domain.ListingKey]domain.TargetListing
}

// Enricher yields the full detail of a candidate, or nil when it is rejected.
type Enricher interface {
	Enrich(ctx context.Context, key domain.ListingKey) (*domain.EnrichedDetail, error)
}

// Renderer builds the post body for a publish candidate.
type Renderer func(domain.TargetListing, *domain.EnrichedDetail) (string, error)

type Reconciler struct {
	store     StateStore
	collector Collector
	enricher  Enricher
	render    Renderer
	limiter   *rate.Limiter
	clock     func() time.Time
	log       *logging.Logger
}

// Option configures a Reconciler
type Option func(*Reconciler)

// WithClock sets a custom clock
func WithClock(clock func() time.Time) Option {
	return func(r *Reconciler) {
		r.clock = clock
	}
}

// New builds a Reconciler. delay is the minimum spacing between requests to
// the destination platform; the limiter keeps at most one in flight.
func New(store StateStore, collector Collector, enricher Enricher, render Renderer, delay time.Duration, log *logging.Logger, opts ...Option) (*Reconciler, error) {
	if store == nil {
		return nil, fmt.Errorf("sync: state store is required")
	}
	if collector == nil {
		return nil, fmt.Errorf("sync: collector is required")
	}
	if enricher == nil {
		return nil, fmt.Errorf("sync: enricher is required")
	}
	if render == nil {
		return nil, fmt.Errorf("sync: renderer is required")
	}

	limit := rate.Inf
	if delay > 0 {
		limit = rate.Every(delay)
	}

	r := &Reconciler{
		store:     store,
		collector: collector,
		enricher:  enricher,
		render:    render,
		limiter:   rate.NewLimiter(limit, 1),
		clock:     time.Now,
		log:       log,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes one full synchronization pass. The only fatal outcomes are a
// failed published-set read and an empty upstream collection; everything else
// degrades to per-item skips.
func (r *Reconciler) Run(ctx context.Context) error {
	today := dates.DateOnly(r.clock())

	published, err := r.store.ReadPublished(ctx)
	if err != nil {
		// Treating this as an empty set would republish every listing,
		// so the run stops before any side effect.
		return fmt.Errorf("sync: read published set: %w", err)
	}
	r.log.Info("published set loaded", "count", len(published))

	deleted := r.deleteExpired(ctx, today, published)

	targets := r.collector.Collect(ctx, today)
	if len(targets) == 0 {
		return ErrEmptyCollection
	}

	added, skipped := r.publishNew(ctx, targets, published)

	r.log.Info("synchronization finished",
		"deleted", deleted, "published", added, "skipped", skipped)
	return nil
}

// deleteExpired removes every published post whose stored deadline is on or
// before yesterday. Deletion is deadline-only; listings are not re-validated.
func (r *Reconciler) deleteExpired(ctx context.Context, today time.Time, published map[domain.ListingKey]domain.PublishedListing) int {
	cutoff := today.AddDate(0, 0, -1)
	r.log.Info("deleting expired posts", "cutoff", cutoff.Format(dates.LabelLayout))

	deleted := 0
	for key, post := range published {
		if post.Deadline.IsZero() || !dates.OnOrBefore(post.Deadline, cutoff) {
			continue
		}
		if err := r.limiter.Wait(ctx); err != nil {
			r.log.Error("deletion phase interrupted", "err", err)
			return deleted
		}
		if err := r.store.Delete(ctx, post.PostID); err != nil {
			r.log.Error("delete failed", "key", key, "post_id", post.PostID, "err", err)
			continue
		}
		r.log.Info("deleted expired post", "key", key, "deadline", post.DeadlineLabel)
		deleted++
	}
	return deleted
}

// publishNew publishes every target listing the blog does not already carry,
// in source order. Per-item failures skip the item, never the batch.
func (r *Reconciler) publishNew(ctx context.Context, targets map[domain.ListingKey]domain.TargetListing, published map[domain.ListingKey]domain.PublishedListing) (added, skipped int) {
	candidates := make([]domain.TargetListing, 0, len(targets))
	for key, listing := range targets {
		if _, exists := published[key]; exists {
			continue
		}
		candidates = append(candidates, listing)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].SourceOrder < candidates[j].SourceOrder
	})

	r.log.Info("publishing new posts", "candidates", len(candidates))

	for _, listing := range candidates {
		detail, err := r.enricher.Enrich(ctx, listing.Key)
		if err != nil {
			r.log.Error("addition phase interrupted", "key", listing.Key, "err", err)
			return added, skipped
		}
		if detail == nil {
			skipped++
			continue
		}

		body, err := r.render(listing, detail)
		if err != nil {
			r.log.Error("render failed", "key", listing.Key, "err", err)
			skipped++
			continue
		}

		// Rejected candidates never reach the limiter, so skips add no
		// delay before the next attempt.
		if err := r.limiter.Wait(ctx); err != nil {
			r.log.Error("addition phase interrupted", "key", listing.Key, "err", err)
			return added, skipped
		}
		if err := r.store.Publish(ctx, blogstate.NewPost{
			Title:   listing.Title,
			Content: body,
			Labels:  blogstate.BuildLabels(listing),
		}); err != nil {
			r.log.Error("publish failed", "key", listing.Key, "title", listing.Title, "err", err)
			continue
		}
		r.log.Info("published", "key", listing.Key, "title", listing.Title, "deadline", listing.DeadlineLabel)
		added++
	}
	return added, skipped
}
