// Package library implements the in-memory learning content library:
// user-entered resources tagged by department and role, with
// multi-criteria filtering. Items live for the session only.
package library

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/skills-copilot/internal/types"
)

// FilterAll is the wildcard value meaning "no filter on this dimension".
const FilterAll = "all"

// Library holds the content items, most recent first. Library is not
// safe for concurrent use; the owning controller serializes access.
type Library struct {
	items []types.ContentItem
	now   func() time.Time
}

// New returns an empty library.
func New() *Library {
	return &Library{now: time.Now}
}

// Add validates the form, assigns a unique id and creation timestamp,
// and prepends the item. Forms with a blank title or URL are rejected.
func (l *Library) Add(form types.NewContentItem) (types.ContentItem, error) {
	form.Title = strings.TrimSpace(form.Title)
	form.URL = strings.TrimSpace(form.URL)
	if err := form.Validate(); err != nil {
		return types.ContentItem{}, err
	}

	item := types.ContentItem{
		ID:          uuid.New(),
		Title:       form.Title,
		Description: strings.TrimSpace(form.Description),
		Type:        form.Type,
		URL:         form.URL,
		Departments: dedupe(form.Departments),
		Roles:       dedupe(form.Roles),
		AddedAt:     l.now().UTC(),
	}

	l.items = append([]types.ContentItem{item}, l.items...)
	return item, nil
}

// Remove deletes the item with the given id. Removing an unknown id is
// a no-op, which makes remove idempotent.
func (l *Library) Remove(id uuid.UUID) {
	for i, item := range l.items {
		if item.ID == id {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return
		}
	}
}

// Items returns a copy of all items, most recent first.
func (l *Library) Items() []types.ContentItem {
	out := make([]types.ContentItem, len(l.items))
	copy(out, l.items)
	return out
}

// Filter returns items matching both criteria, preserving order. An
// empty or "all" department means no department filter; likewise for
// type. A department matches when it is a member of the item's tag set.
func (l *Library) Filter(department string, contentType types.ContentType) []types.ContentItem {
	filterDept := department != "" && department != FilterAll
	filterType := contentType != "" && contentType != types.ContentType(FilterAll)

	out := make([]types.ContentItem, 0, len(l.items))
	for _, item := range l.items {
		if filterDept && !contains(item.Departments, department) {
			continue
		}
		if filterType && item.Type != contentType {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Summary partitions the items by category. Documents and pdfs share one
// bucket; every item is counted exactly once.
func (l *Library) Summary() types.ContentSummary {
	summary := types.ContentSummary{Total: len(l.items)}
	for _, item := range l.items {
		switch item.Type {
		case types.ContentVideo:
			summary.Videos++
		case types.ContentDocument, types.ContentPDF:
			summary.Documents++
		case types.ContentWebsite:
			summary.Websites++
		}
	}
	return summary
}

// ToggleTag XORs tag membership in a tag set: absent tags are added,
// present tags removed. Used by the new-item form for department and
// role toggles.
func ToggleTag(tags []string, tag string) []string {
	for i, t := range tags {
		if t == tag {
			return append(append([]string{}, tags[:i]...), tags[i+1:]...)
		}
	}
	return append(append([]string{}, tags...), tag)
}

func contains(set []string, value string) bool {
	for _, s := range set {
		if s == value {
			return true
		}
	}
	return false
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
