package domain

import "time"

// ListingKey is the upstream-assigned identifier of a job circular. It is the
// join key between the target set and the published set.
type ListingKey = string

// TargetListing is a non-expired listing collected from the upstream API.
type TargetListing struct {
	Key           ListingKey
	Title         string // display title, "<job title> - <company>"
	Company       string
	DeadlineLabel string // DD-MM-YYYY, the form stored in post labels
	Deadline      time.Time
	SourceOrder   int // preserves (page, index) ordering for publishing
}

// PublishedListing is a post currently live on the blog, reconstructed from
// its label set.
type PublishedListing struct {
	Key           ListingKey
	PostID        string
	Title         string
	DeadlineLabel string
	Deadline      time.Time // zero when the stored label does not parse
}

// EnrichedDetail carries the full detail payload of a listing that passed the
// contact-eligibility check. Built per publish candidate, consumed immediately.
type EnrichedDetail struct {
	DescriptionHTML        string
	ApplyInstructionHTML   string
	ReadBeforeApplyHTML    string
	EducationHTML          string
	ExperienceHTML         string
	AdditionalRequirements string
	JobNature              string
	Workplace              string
	Location               string
	SalaryRange            string
	ApplyEmail             string
	ApplyURL               string
}
