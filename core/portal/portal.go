// Package portal is the navigation shell. A Portal is the state of one
// browser session: a single session Store shared by the four pages.
package portal

import (
	"time"

	"github.com/benbjohnson/clock"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/gallery"
	"github.com/trezcool/happyclass/core/home"
	"github.com/trezcool/happyclass/core/notice"
	"github.com/trezcool/happyclass/core/resource"
	"github.com/trezcool/happyclass/core/session"
	"github.com/trezcool/happyclass/services/toast"
)

// Seed is the initial data of every page.
type Seed struct {
	Home      home.Seed     `yaml:"home" json:"home"`
	Gallery   gallery.Seed  `yaml:"gallery" json:"gallery"`
	Resources resource.Seed `yaml:"resources" json:"resources"`
	Notice    notice.Seed   `yaml:"notice" json:"notice"`
}

type Options struct {
	Clock         clock.Clock
	CodeSender    core.CodeSender
	RolePicker    home.RolePicker
	ToastCapacity int

	LoadMoreDelay       time.Duration
	UploadDelay         time.Duration
	GalleryInitialCount int
	GalleryPageSize     int
}

type Portal struct {
	Store         *session.Store
	Notifications *toast.Feed

	Home      *home.Controller
	Gallery   *gallery.Controller
	Resources *resource.Controller
	Notice    *notice.Controller
}

// New builds a logged-out portal. Each page gets its own copy of the seed.
func New(seed Seed, opts Options) *Portal {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}

	store := session.NewStore()
	feed := toast.NewFeed(opts.Clock, opts.ToastCapacity)
	return &Portal{
		Store:         store,
		Notifications: feed,
		Home: home.NewController(store.Auth(), seed.Home, home.Options{
			Notifier:   feed,
			CodeSender: opts.CodeSender,
			RolePicker: opts.RolePicker,
		}),
		Gallery: gallery.NewController(store.Auth(), seed.Gallery, gallery.Options{
			Clock:         opts.Clock,
			Notifier:      feed,
			LoadMoreDelay: opts.LoadMoreDelay,
			InitialCount:  opts.GalleryInitialCount,
			PageSize:      opts.GalleryPageSize,
		}),
		Resources: resource.NewController(store.Auth(), seed.Resources, resource.Options{
			Clock:       opts.Clock,
			Notifier:    feed,
			UploadDelay: opts.UploadDelay,
		}),
		Notice: notice.NewController(store.Auth(), seed.Notice),
	}
}

// OptionsFromConfig maps the portal settings of conf.
func OptionsFromConfig(conf core.PortalConfig) Options {
	return Options{
		ToastCapacity:       conf.ToastCapacity,
		LoadMoreDelay:       conf.LoadMoreDelay,
		UploadDelay:         conf.UploadDelay,
		GalleryInitialCount: conf.GalleryInitialCount,
		GalleryPageSize:     conf.GalleryPageSize,
	}
}
