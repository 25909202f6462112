// Package render produces the HTML body of a blog post from an enriched
// listing. Upstream HTML fragments are republished as-is; everything else is
// escaped by the template engine.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/rokonmd111/pri-job-test/internal/domain"
)

const postHTML = `
<div style="padding: 15px; border: 1px solid #CC0000; background-color: #ffe0e0;">
    <h3 style="color: #CC0000; margin-top: 0;">আবেদনের শেষ তারিখ</h3>
    <p style="font-weight: bold; color: #CC0000;">{{.DeadlineLabel}} (সকাল ০৬:০০ টা পর্যন্ত)</p>
</div>
<hr/>
<h3 style="color: #007456;">চাকরির সংক্ষিপ্ত তথ্য</h3>
<p><strong>কাজের স্থান (Workplace):</strong> {{.Workplace}}</p>
<p><strong>কর্মসংস্থান অবস্থা (Employment Status):</strong> {{.JobNature}}</p>
<p><strong>বেতন সীমা (Salary):</strong> {{.SalaryRange}}</p>
<p><strong>চাকরির অবস্থান (Job Location):</strong> {{.Location}}</p>
<hr/>
<h3 style="color: #007456;">দায়িত্ব ও প্রেক্ষাপট (Job Context and Responsibilities)</h3>
{{.Description}}
<hr/>
<h3 style="color: #007456;">যোগ্যতা ও অভিজ্ঞতা</h3>
<p><strong>শিক্ষাগত যোগ্যতা (Education):</strong></p>
{{.Education}}
<p><strong>অভিজ্ঞতা (Experience):</strong></p>
{{.Experience}}
<p><strong>অতিরিক্ত প্রয়োজন (Additional Requirements):</strong></p>
{{.AdditionalRequirements}}
<hr/>
<h3 style="color: #007456;">আবেদনের প্রক্রিয়া ও যোগাযোগ</h3>
<p style="font-weight: bold; color: #CC0000;">আবেদন করার আগে পড়ুন:</p>
{{.ReadBeforeApply}}

<p style="font-weight: bold;">সম্পূর্ণ প্রক্রিয়া:</p>
{{.ApplyInstruction}}
<hr/>
<p style="font-weight: bold;">সরাসরি আবেদনের লিঙ্ক: <a href="{{.ApplyURL}}" target="_blank">Bdjobs-এ আবেদন/বিস্তারিত দেখতে ক্লিক করুন</a></p>
<p style="font-weight: bold;">যোগাযোগের ইমেইল (যদি থাকে): {{.ApplyEmail}}</p>
`

var postTemplate = template.Must(template.New("post").Parse(postHTML))

type postData struct {
	DeadlineLabel          string
	Workplace              string
	JobNature              string
	SalaryRange            string
	Location               string
	Description            template.HTML
	Education              template.HTML
	Experience             template.HTML
	AdditionalRequirements template.HTML
	ReadBeforeApply        template.HTML
	ApplyInstruction       template.HTML
	ApplyURL               string
	ApplyEmail             string
}

// Body renders the publishable post content for a listing.
func Body(listing domain.TargetListing, detail *domain.EnrichedDetail) (string, error) {
	if detail == nil {
		return "", fmt.Errorf("render: detail is required")
	}

	data := postData{
		DeadlineLabel:          listing.DeadlineLabel,
		Workplace:              detail.Workplace,
		JobNature:              detail.JobNature,
		SalaryRange:            detail.SalaryRange,
		Location:               detail.Location,
		Description:            template.HTML(detail.DescriptionHTML),
		Education:              template.HTML(detail.EducationHTML),
		Experience:             template.HTML(detail.ExperienceHTML),
		AdditionalRequirements: template.HTML(detail.AdditionalRequirements),
		ReadBeforeApply:        template.HTML(detail.ReadBeforeApplyHTML),
		ApplyInstruction:       template.HTML(detail.ApplyInstructionHTML),
		ApplyURL:               detail.ApplyURL,
		ApplyEmail:             detail.ApplyEmail,
	}

	var buf strings.Builder
	if err := postTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render: execute template: %w", err)
	}
	return buf.String(), nil
}
