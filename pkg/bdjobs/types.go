package bdjobs

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Config defines bdjobs gateway client settings
type Config struct {
	// ListURLTemplate is the paginated listing endpoint; must contain
	// the {page} placeholder.
	ListURLTemplate string
	// DetailURLTemplate is the detail endpoint; must contain the
	// {job_id} placeholder.
	DetailURLTemplate string
	HTTPClient        *http.Client
	UserAgent         string
	// Host overrides the Host header sent upstream. The gateway sits
	// behind a frontend that routes on it, so requests must carry the
	// public hostname regardless of what the URL templates point at.
	Host string
}

// Client queries the bdjobs gateway API
type Client struct {
	listURL    string
	detailURL  string
	httpClient *http.Client
	userAgent  string
	host       string
}

type listResponse struct {
	Data []ListItem `json:"data"`
}

// ListItem is one row of a listing page.
type ListItem struct {
	JobID       json.Number `json:"Jobid"`
	Title       string      `json:"jobTitle"`
	TitleBangla string      `json:"JobTitleBng"`
	CompanyName string      `json:"companyName"`
	DeadlineDB  string      `json:"deadlineDB"`
}

// Key returns the listing identifier as a string, empty when absent.
func (it ListItem) Key() string {
	return strings.TrimSpace(it.JobID.String())
}

type detailResponse struct {
	Data []Detail `json:"data"`
}

// Detail is the full record behind a listing. The HTML-bearing fields are
// republished as-is; the rest are plain text.
type Detail struct {
	JobDescription         string `json:"JobDescription"`
	EducationRequirements  string `json:"EducationRequirements"`
	Experience             string `json:"experience"`
	AdditionalRequirements string `json:"AdditionJobRequirements"`
	ReadBeforeApply        string `json:"RecruitmentProcessingInformation"`
	ApplyInstruction       string `json:"ApplyInstruction"`
	ApplyEmail             string `json:"ApplyEmail"`
	JobNature              string `json:"JobNature"`
	Workplace              string `json:"JobWorkPlace"`
	Location               string `json:"JobLocation"`
	SalaryRange            string `json:"JobSalaryRange"`
}
