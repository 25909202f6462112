// Package blogstate reads and mutates the destination blog's published set.
// Post labels are the only metadata channel: every post this system manages
// carries a key label and, normally, a deadline label.
package blogstate

import (
	"context"
	"fmt"

	"google.golang.org/api/blogger/v3"

	"github.com/rokonmd111/pri-job-test/internal/dates"
	"github.com/rokonmd111/pri-job-test/internal/domain"
	"github.com/rokonmd111/pri-job-test/internal/labels"
	"github.com/rokonmd111/pri-job-test/pkg/logging"
)

// categoryLabel selects this system's posts among everything on the blog.
const categoryLabel = "প্রাইভেট চাকরি"

const listPageSize = 500

// categoryLabels are attached to every published post.
var categoryLabels = []string{"জব সার্কুলার", categoryLabel}

// NewPost is the publishable form of a listing.
type NewPost struct {
	Title   string
	Content string
	Labels  []string
}

type Store struct {
	service *blogger.Service
	blogID  string
	log     *logging.Logger
}

func New(service *blogger.Service, blogID string, log *logging.Logger) (*Store, error) {
	if service == nil {
		return nil, fmt.Errorf("blogstate: blogger service is required")
	}
	if blogID == "" {
		return nil, fmt.Errorf("blogstate: blog id is required")
	}
	return &Store{service: service, blogID: blogID, log: log}, nil
}

// ReadPublished returns the currently published listings keyed by listing
// key, following platform-side pagination. Posts without a key label belong
// to someone else and are left out.
func (s *Store) ReadPublished(ctx context.Context) (map[domain.ListingKey]domain.PublishedListing, error) {
	published := make(map[domain.ListingKey]domain.PublishedListing)
	foreign := 0

	pageToken := ""
	for {
		call := s.service.Posts.List(s.blogID).
			FetchBodies(false).
			MaxResults(listPageSize).
			Labels(categoryLabel).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("blogstate: list posts: %w", err)
		}

		for _, post := range resp.Items {
			key, deadlineLabel, ok := labels.Parse(post.Labels)
			if !ok {
				foreign++
				continue
			}
			deadline, _ := dates.ParseLabel(deadlineLabel)
			published[key] = domain.PublishedListing{
				Key:           key,
				PostID:        post.Id,
				Title:         post.Title,
				DeadlineLabel: deadlineLabel,
				Deadline:      deadline,
			}
		}

		if resp.NextPageToken == "" {
			s.log.Info("published set fetched", "count", len(published), "foreign", foreign)
			return published, nil
		}
		pageToken = resp.NextPageToken
	}
}

// Delete removes a post by its platform id.
func (s *Store) Delete(ctx context.Context, postID string) error {
	if err := s.service.Posts.Delete(s.blogID, postID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("blogstate: delete post %s: %w", postID, err)
	}
	return nil
}

// Publish inserts a live (non-draft) post.
func (s *Store) Publish(ctx context.Context, post NewPost) error {
	body := &blogger.Post{
		Kind:    "blogger#post",
		Title:   post.Title,
		Content: post.Content,
		Labels:  post.Labels,
	}
	if _, err := s.service.Posts.Insert(s.blogID, body).IsDraft(false).Context(ctx).Do(); err != nil {
		return fmt.Errorf("blogstate: insert post %q: %w", post.Title, err)
	}
	return nil
}

// BuildLabels assembles the label set for a new post: category labels, the
// company name, and the encoded key and deadline.
func BuildLabels(listing domain.TargetListing) []string {
	out := make([]string, 0, len(categoryLabels)+3)
	out = append(out, categoryLabels...)
	out = append(out, listing.Company)
	out = append(out, labels.EncodeKey(listing.Key))
	out = append(out, labels.EncodeDeadline(listing.DeadlineLabel))
	return out
}
