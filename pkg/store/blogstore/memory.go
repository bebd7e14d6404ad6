package blogstore

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	logging "github.com/ipfs/go-log/v2"

	"github.com/solsticeweb/blog-api/pkg/blog"
	"github.com/solsticeweb/blog-api/pkg/store"
)

var log = logging.Logger("blogstore")

// MemoryBlogStore is a map backed BlogStore for testing. Search matching is
// case sensitive, mirroring the production table's contains semantics.
type MemoryBlogStore struct {
	mu    sync.RWMutex
	posts map[string]blog.Post
}

var _ BlogStore = (*MemoryBlogStore)(nil)

func NewMemoryBlogStore() *MemoryBlogStore {
	return &MemoryBlogStore{posts: map[string]blog.Post{}}
}

// Put implements BlogStore.
func (m *MemoryBlogStore) Put(ctx context.Context, post blog.Post) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[post.ID] = post
	return nil
}

// Get implements BlogStore.
func (m *MemoryBlogStore) Get(ctx context.Context, id string) (blog.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	post, ok := m.posts[id]
	if !ok {
		return blog.Post{}, store.ErrNotFound
	}
	return post, nil
}

// List implements BlogStore. The cursor is the offset into the matched set;
// an unparseable cursor is ignored, as with the production table.
func (m *MemoryBlogStore) List(ctx context.Context, q Query) (Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []blog.Post
	for _, p := range m.posts {
		if p.Status != q.Status {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PublishedAt > matched[j].PublishedAt
	})

	offset := 0
	if q.Cursor != "" {
		n, err := strconv.Atoi(q.Cursor)
		if err != nil || n < 0 {
			log.Warnf("invalid continuation token: %s", q.Cursor)
		} else {
			offset = n
		}
	}
	if offset > len(matched) {
		offset = len(matched)
	}

	end := len(matched)
	if q.Limit > 0 && offset+int(q.Limit) < end {
		end = offset + int(q.Limit)
	}

	var cursor string
	if end < len(matched) {
		cursor = strconv.Itoa(end)
	}
	return Page{Posts: matched[offset:end], Cursor: cursor}, nil
}

// Search implements BlogStore.
func (m *MemoryBlogStore) Search(ctx context.Context, term string, limit int32) ([]blog.Post, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var matched []blog.Post
	for _, p := range m.posts {
		if p.Status != blog.StatusPublished {
			continue
		}
		if strings.Contains(p.Title, term) ||
			strings.Contains(p.ContentSummary, term) ||
			strings.Contains(p.HTMLContent, term) {
			matched = append(matched, p)
			if limit > 0 && int32(len(matched)) >= limit {
				break
			}
		}
	}
	return matched, nil
}
