// Package resource is the resource center page: class materials by subject.
package resource

import (
	"strconv"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/access"
	"github.com/trezcool/happyclass/core/session"
	"github.com/trezcool/happyclass/core/task"
)

// uploads land in this subject when no subject is selected
const defaultUploadSubject = "数学"

type Options struct {
	Clock       clock.Clock
	Notifier    core.Notifier
	UploadDelay time.Duration
}

type Controller struct {
	auth     *session.Auth
	opts     Options
	subjects []string

	mu        sync.Mutex
	files     []FileItem
	selected  string
	uploading bool
}

func NewController(auth *session.Auth, seed Seed, opts Options) *Controller {
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	if opts.Notifier == nil {
		opts.Notifier = core.DiscardNotifier
	}
	return &Controller{
		auth:     auth,
		opts:     opts,
		subjects: append([]string(nil), seed.Subjects...),
		files:    append([]FileItem(nil), seed.Files...),
		selected: AllSubject,
	}
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	sv := c.auth.View()
	v := View{
		Session:   sv,
		Subjects:  append([]string(nil), c.subjects...),
		Selected:  c.selected,
		Files:     []FileView{},
		Uploading: c.uploading,
		CanUpload: access.Allowed(sv, access.UploadResource),
	}
	if v.CanUpload {
		v.SupportedFormats = SupportedFormats
	}

	if err := access.Check(sv, access.ViewMaterials); err != nil {
		v.Placeholder = err.Error()
		return v
	}
	for _, f := range FilterBySubject(c.files, c.selected) {
		v.Files = append(v.Files, FileView{FileItem: f, Icon: Icon(f.Type)})
	}
	if len(v.Files) == 0 {
		v.EmptyText = EmptyText
	}
	return v
}

// SelectSubject sets the subject filter.
func (c *Controller) SelectSubject(subject string) error {
	subject = core.CleanString(subject)
	if !c.hasSubject(subject) {
		return core.NewValidationError(nil, core.FieldError{Field: "subject", Error: "未知学科: " + subject})
	}
	c.mu.Lock()
	c.selected = subject
	c.mu.Unlock()
	return nil
}

func (c *Controller) hasSubject(subject string) bool {
	for _, s := range c.subjects {
		if s == subject {
			return true
		}
	}
	return false
}

// Download counts one download of file id.
func (c *Controller) Download(id string) (FileItem, error) {
	if err := access.Check(c.auth.View(), access.DownloadResource); err != nil {
		c.opts.Notifier.Notify(core.NotifyError, err.Error())
		return FileItem{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	idx := -1
	for i, f := range c.files {
		if f.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return FileItem{}, errors.Wrapf(core.ErrNotFound, "file %q", id)
	}

	files := make([]FileItem, len(c.files))
	copy(files, c.files)
	files[idx].Downloads++
	c.files = files
	c.opts.Notifier.Notify(core.NotifySuccess, msgDownloadStarted)
	return files[idx], nil
}

// Upload starts uploading a new file. Only teachers may upload, one file at a time.
func (c *Controller) Upload() (*task.Task[FileItem], error) {
	if err := access.Check(c.auth.View(), access.UploadResource); err != nil {
		c.opts.Notifier.Notify(core.NotifyError, err.Error())
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.uploading {
		return nil, errors.Wrap(core.ErrBusy, "uploading a file")
	}

	subject := c.selected
	if subject == AllSubject {
		subject = defaultUploadSubject
	}
	c.uploading = true
	return task.After(c.opts.Clock, c.opts.UploadDelay, func() (FileItem, error) {
		return c.prependUpload(subject), nil
	}), nil
}

func (c *Controller) prependUpload(subject string) FileItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	n := strconv.Itoa(len(c.files) + 1)
	file := FileItem{
		ID:        n,
		Name:      "新文件" + n + ".pdf",
		Type:      "pdf",
		Subject:   subject,
		Size:      "1.0MB",
		Date:      c.opts.Clock.Now().UTC().Format("2006-01-02"),
		Downloads: 0,
	}

	files := make([]FileItem, 0, len(c.files)+1)
	files = append(files, file)
	files = append(files, c.files...)
	c.files = files
	c.uploading = false
	c.opts.Notifier.Notify(core.NotifySuccess, msgUploaded)
	return file
}
