// Package labels encodes listing metadata into Blogger post labels. Labels
// are the only structured channel the platform offers, so the listing key and
// deadline travel as "PREFIX:value" strings inside the free-text label set.
package labels

import "strings"

const (
	keyPrefix      = "BdJobID:"
	deadlinePrefix = "BdEndDate:"
)

// EncodeKey renders a listing key as a post label.
func EncodeKey(key string) string {
	return keyPrefix + key
}

// EncodeDeadline renders a deadline label (DD-MM-YYYY) as a post label.
func EncodeDeadline(deadline string) string {
	return deadlinePrefix + deadline
}

// DecodeKey extracts the listing key from a label, if it carries one.
func DecodeKey(label string) (string, bool) {
	return decode(label, keyPrefix)
}

// DecodeDeadline extracts the stored deadline from a label, if it carries one.
func DecodeDeadline(label string) (string, bool) {
	return decode(label, deadlinePrefix)
}

func decode(label, prefix string) (string, bool) {
	if !strings.HasPrefix(label, prefix) {
		return "", false
	}
	return strings.TrimSpace(label[len(prefix):]), true
}

// Parse scans a post's label set for the two recognized prefixes. ok is false
// when no key label is present, which marks the post as not managed by this
// system. A post may carry a key without a deadline.
func Parse(postLabels []string) (key, deadline string, ok bool) {
	for _, label := range postLabels {
		if v, found := DecodeKey(label); found {
			key = v
		} else if v, found := DecodeDeadline(label); found {
			deadline = v
		}
	}
	return key, deadline, key != ""
}
