package blog

import (
	"sort"
	"strings"
)

// Relevance weights. Title hits dominate, summary hits help, any surviving
// match scores at least the content baseline.
const (
	titleScore       = 10
	summaryScore     = 5
	contentScore     = 1
	exactTitleBonus  = 20
	titlePrefixBonus = 10
)

// Matches reports whether term occurs in the post's title, summary or
// content, ignoring case. term must already be lowercased.
func Matches(p Post, term string) bool {
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.ContentSummary), term) ||
		strings.Contains(strings.ToLower(p.HTMLContent), term)
}

// Relevance scores a post against a lowercased search term.
func Relevance(p Post, term string) int {
	title := strings.ToLower(p.Title)
	score := contentScore
	if strings.Contains(title, term) {
		score += titleScore
		if title == term {
			score += exactTitleBonus
		} else if strings.HasPrefix(title, term) {
			score += titlePrefixBonus
		}
	}
	if strings.Contains(strings.ToLower(p.ContentSummary), term) {
		score += summaryScore
	}
	return score
}

// Rank orders posts by relevance then publish date, both descending. The
// sort is stable so equally scored, equally dated posts keep their scan
// order.
func Rank(posts []Post, term string) {
	sort.SliceStable(posts, func(i, j int) bool {
		ri, rj := Relevance(posts[i], term), Relevance(posts[j], term)
		if ri != rj {
			return ri > rj
		}
		return publishKey(posts[i]) > publishKey(posts[j])
	})
}

func publishKey(p Post) string {
	if p.PublishedAt != "" {
		return p.PublishedAt
	}
	return p.StartDate
}
