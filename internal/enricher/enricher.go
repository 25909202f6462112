// Package enricher fetches the full detail of a publish candidate and gates
// it on the contact-eligibility filter.
package enricher

import (
	"context"
	"fmt"
	"strings"

	"github.com/rokonmd111/pri-job-test/internal/domain"
	"github.com/rokonmd111/pri-job-test/internal/eligibility"
	"github.com/rokonmd111/pri-job-test/internal/sanitize"
	"github.com/rokonmd111/pri-job-test/pkg/bdjobs"
	"github.com/rokonmd111/pri-job-test/pkg/logging"
)

const keyPlaceholder = "{job_id}"

// detailClient is the subset of the bdjobs client used by the enricher.
type detailClient interface {
	Detail(ctx context.Context, key string) (*bdjobs.Detail, error)
}

type Enricher struct {
	client           detailClient
	filter           *eligibility.Filter
	applyURLTemplate string
	log              *logging.Logger
}

func New(client detailClient, filter *eligibility.Filter, applyURLTemplate string, log *logging.Logger) (*Enricher, error) {
	if client == nil {
		return nil, fmt.Errorf("enricher: client is required")
	}
	if filter == nil {
		return nil, fmt.Errorf("enricher: eligibility filter is required")
	}
	if !strings.Contains(applyURLTemplate, keyPlaceholder) {
		return nil, fmt.Errorf("enricher: apply URL template must contain %s", keyPlaceholder)
	}
	return &Enricher{client: client, filter: filter, applyURLTemplate: applyURLTemplate, log: log}, nil
}

// Enrich returns the full detail for key, or nil when the listing must be
// skipped: absent detail payload, fetch failure, or no verifiable contact
// channel in its text. A nil result is a permanent rejection for this run.
// The error return carries only context cancellation.
func (e *Enricher) Enrich(ctx context.Context, key domain.ListingKey) (*domain.EnrichedDetail, error) {
	detail, err := e.client.Detail(ctx, key)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		e.log.Error("detail fetch failed", "key", key, "err", err)
		return nil, nil
	}
	if detail == nil {
		e.log.Warn("no detail payload", "key", key)
		return nil, nil
	}

	blob := strings.Join([]string{
		detail.JobDescription,
		detail.EducationRequirements,
		detail.Experience,
		detail.AdditionalRequirements,
		detail.ReadBeforeApply,
		detail.ApplyInstruction,
		detail.ApplyEmail,
	}, " ")

	if !e.filter.Eligible(sanitize.Text(blob)) {
		e.log.Info("listing rejected, no verifiable contact", "key", key)
		return nil, nil
	}

	return &domain.EnrichedDetail{
		DescriptionHTML:        detail.JobDescription,
		ApplyInstructionHTML:   detail.ApplyInstruction,
		ReadBeforeApplyHTML:    detail.ReadBeforeApply,
		EducationHTML:          detail.EducationRequirements,
		ExperienceHTML:         detail.Experience,
		AdditionalRequirements: detail.AdditionalRequirements,
		JobNature:              defaulted(detail.JobNature, "N/A"),
		Workplace:              defaulted(detail.Workplace, "N/A"),
		Location:               defaulted(detail.Location, "N/A"),
		SalaryRange:            defaulted(detail.SalaryRange, "Negotiable"),
		ApplyEmail:             detail.ApplyEmail,
		ApplyURL:               strings.Replace(e.applyURLTemplate, keyPlaceholder, key, 1),
	}, nil
}

func defaulted(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
