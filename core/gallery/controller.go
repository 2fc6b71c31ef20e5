// Package gallery is the class photo album page.
package gallery

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/access"
	"github.com/trezcool/happyclass/core/session"
	"github.com/trezcool/happyclass/core/task"
)

var errNoMorePhotos = errors.New("没有更多照片了")

type Options struct {
	Clock         clock.Clock
	Notifier      core.Notifier
	LoadMoreDelay time.Duration
	InitialCount  int // photos shown before any "load more"
	PageSize      int // photos appended by each "load more"
}

type Controller struct {
	auth       *session.Auth
	opts       Options
	categories []string
	seed       []Photo

	mu          sync.Mutex
	photos      []Photo
	selected    string
	loadingMore bool
}

func NewController(auth *session.Auth, seed Seed, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Notifier == nil {
		opts.Notifier = core.DiscardNotifier
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 3
	}
	if opts.InitialCount <= 0 || opts.InitialCount > len(seed.Photos) {
		opts.InitialCount = len(seed.Photos)
	}

	photos := make([]Photo, opts.InitialCount)
	copy(photos, seed.Photos)
	return &Controller{
		auth:       auth,
		opts:       opts,
		categories: append([]string(nil), seed.Categories...),
		seed:       append([]Photo(nil), seed.Photos...),
		photos:     photos,
		selected:   AllCategory,
	}
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.auth.View()
	return View{
		Session:             v,
		Categories:          append([]string(nil), c.categories...),
		Selected:            c.selected,
		Photos:              FilterByCategory(c.photos, c.selected),
		CanLoadMore:         len(c.photos) < len(c.seed),
		LoadingMore:         c.loadingMore,
		CanManageCategories: access.Allowed(v, access.ManageCategories),
	}
}

// SelectCategory sets the category filter.
func (c *Controller) SelectCategory(category string) error {
	category = core.CleanString(category)
	if !c.hasCategory(category) {
		return core.NewValidationError(nil, core.FieldError{Field: "category", Error: "未知分类: " + category})
	}
	c.mu.Lock()
	c.selected = category
	c.mu.Unlock()
	return nil
}

func (c *Controller) hasCategory(category string) bool {
	for _, cat := range c.categories {
		if cat == category {
			return true
		}
	}
	return false
}

// Photo returns a loaded photo.
func (c *Controller) Photo(id string) (Photo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.photos {
		if p.ID == id {
			c.opts.Notifier.Notify(core.NotifyInfo, msgDetailSoon)
			return p, nil
		}
	}
	return Photo{}, errors.Wrapf(core.ErrNotFound, "photo %q", id)
}

// Like adds one like to photo id.
func (c *Controller) Like(id string) (Photo, error) {
	if err := access.Check(c.auth.View(), access.LikePhoto); err != nil {
		c.opts.Notifier.Notify(core.NotifyError, err.Error())
		return Photo{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, p := range c.photos {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Photo{}, errors.Wrapf(core.ErrNotFound, "photo %q", id)
	}

	photos := make([]Photo, len(c.photos))
	copy(photos, c.photos)
	photos[idx].Likes++
	c.photos = photos
	return photos[idx], nil
}

// LoadMore starts loading the next page of photos. Only one load may be in flight.
func (c *Controller) LoadMore() (*task.Task[[]Photo], error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loadingMore {
		return nil, errors.Wrap(core.ErrBusy, "loading more photos")
	}
	if len(c.photos) >= len(c.seed) {
		return nil, core.NewValidationError(errNoMorePhotos)
	}

	c.loadingMore = true
	return task.After(c.opts.Clock, c.opts.LoadMoreDelay, c.appendNextPage), nil
}

func (c *Controller) appendNextPage() ([]Photo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	from := len(c.photos)
	to := from + c.opts.PageSize
	if to > len(c.seed) {
		to = len(c.seed)
	}
	next := append([]Photo(nil), c.seed[from:to]...)

	photos := make([]Photo, 0, to)
	photos = append(photos, c.photos...)
	photos = append(photos, next...)
	c.photos = photos
	c.loadingMore = false
	return next, nil
}
