package home

import (
	"github.com/trezcool/happyclass/core/notice"
	"github.com/trezcool/happyclass/core/session"
)

const (
	latestCount  = 3
	historyCount = 2
)

// Materials entry points, by role.
const (
	MaterialsUpload   = "upload"
	MaterialsDownload = "download"
)

type Photo struct {
	ID    string `json:"id" yaml:"id"`
	URL   string `json:"url" yaml:"url"`
	Likes int    `json:"likes" yaml:"likes"`
	Date  string `json:"date" yaml:"date"`
}

// Seed is the home page's initial data.
type Seed struct {
	TopNotice notice.Notice `json:"top_notice" yaml:"top_notice"`
	Photos    []Photo       `json:"photos" yaml:"photos"`
}

// Materials is the materials entry of the home page. Placeholder is set
// instead of Entry when the session may not view materials.
type Materials struct {
	Entry       string `json:"entry,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
}

type View struct {
	Session       session.View  `json:"session"`
	TopNotice     notice.Notice `json:"top_notice"`
	CodeRequested bool          `json:"code_requested"`
	Latest        []Photo       `json:"latest"`
	History       []Photo       `json:"history"`
	Materials     Materials     `json:"materials"`
}

// window returns photos[from:to], clamped to the slice.
func window(photos []Photo, from, to int) []Photo {
	if from > len(photos) {
		from = len(photos)
	}
	if to > len(photos) {
		to = len(photos)
	}
	return append([]Photo{}, photos[from:to]...)
}
