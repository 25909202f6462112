package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rokonmd111/pri-job-test/internal/domain"
)

func TestBody(t *testing.T) {
	listing := domain.TargetListing{
		Key:           "42",
		Title:         "Accounts Officer - Acme Ltd",
		DeadlineLabel: "05-09-2026",
	}
	detail := &domain.EnrichedDetail{
		DescriptionHTML: "<ul><li>Maintain ledgers</li></ul>",
		EducationHTML:   "<p>B.Com</p>",
		JobNature:       "Full-time",
		Workplace:       "Office",
		Location:        "Dhaka",
		SalaryRange:     "Negotiable",
		ApplyEmail:      "hr@gmail.com",
		ApplyURL:        "https://jobs.example.com/apply/42",
	}

	body, err := Body(listing, detail)
	require.NoError(t, err)

	assert.Contains(t, body, "05-09-2026 (সকাল ০৬:০০ টা পর্যন্ত)")
	assert.Contains(t, body, "Full-time")
	assert.Contains(t, body, "Dhaka")
	// Upstream HTML must survive unescaped.
	assert.Contains(t, body, "<ul><li>Maintain ledgers</li></ul>")
	assert.Contains(t, body, "<p>B.Com</p>")
	assert.Contains(t, body, `href="https://jobs.example.com/apply/42"`)
	assert.Contains(t, body, "hr@gmail.com")
}

func TestBodyEscapesPlainTextFields(t *testing.T) {
	listing := domain.TargetListing{DeadlineLabel: "05-09-2026"}
	detail := &domain.EnrichedDetail{
		Workplace:   "<script>alert(1)</script>",
		JobNature:   "N/A",
		SalaryRange: "Negotiable",
		Location:    "N/A",
	}

	body, err := Body(listing, detail)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestBodyRequiresDetail(t *testing.T) {
	_, err := Body(domain.TargetListing{}, nil)
	assert.Error(t, err)
}
