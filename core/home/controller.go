// Package home is the landing page: login by verification code, the top
// notice and the latest class photos.
package home

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/access"
	"github.com/trezcool/happyclass/core/session"
)

const (
	msgPhoneRequired = "请输入手机号"
	msgCodeRequired  = "请输入验证码"
	msgCodeSent      = "验证码已发送"
	msgLoggedIn      = "登录成功"
)

type Options struct {
	Notifier   core.Notifier
	CodeSender core.CodeSender
	RolePicker RolePicker
}

type Controller struct {
	auth *session.Auth
	opts Options
	seed Seed

	mu            sync.Mutex
	codeRequested bool
}

func NewController(auth *session.Auth, seed Seed, opts Options) *Controller {
	if opts.Notifier == nil {
		opts.Notifier = core.DiscardNotifier
	}
	if opts.RolePicker == nil {
		opts.RolePicker = FixedRole(session.RoleStudent)
	}
	seed.Photos = append([]Photo(nil), seed.Photos...)
	return &Controller{auth: auth, opts: opts, seed: seed}
}

func (c *Controller) View() View {
	c.mu.Lock()
	requested := c.codeRequested
	c.mu.Unlock()

	sv := c.auth.View()
	v := View{
		Session:       sv,
		TopNotice:     c.seed.TopNotice,
		CodeRequested: requested,
		Latest:        window(c.seed.Photos, 0, latestCount),
		History:       window(c.seed.Photos, latestCount, latestCount+historyCount),
	}
	switch {
	case access.Allowed(sv, access.UploadResource):
		v.Materials.Entry = MaterialsUpload
	case access.Allowed(sv, access.ViewMaterials):
		v.Materials.Entry = MaterialsDownload
	default:
		v.Materials.Placeholder = access.Rules[access.ViewMaterials].Message
	}
	return v
}

// RequestCode sends a verification code to phone.
func (c *Controller) RequestCode(phone string) error {
	phone = core.CleanString(phone)
	if phone == "" {
		c.opts.Notifier.Notify(core.NotifyError, msgPhoneRequired)
		return core.NewValidationError(errors.New(msgPhoneRequired), core.FieldError{Field: "phone", Error: msgPhoneRequired})
	}

	c.mu.Lock()
	c.codeRequested = true
	c.mu.Unlock()

	if c.opts.CodeSender != nil {
		c.opts.CodeSender.SendCode(phone)
	}
	c.opts.Notifier.Notify(core.NotifySuccess, msgCodeSent)
	return nil
}

// Login logs in with a verification code. Any non-blank code is accepted;
// the role of the new session is chosen by the RolePicker.
func (c *Controller) Login(code string) (session.Profile, error) {
	if core.CleanString(code) == "" {
		c.opts.Notifier.Notify(core.NotifyError, msgCodeRequired)
		return session.Profile{}, core.NewValidationError(errors.New(msgCodeRequired), core.FieldError{Field: "code", Error: msgCodeRequired})
	}

	role := c.opts.RolePicker.PickRole()
	profile := session.Profile{Role: role, Name: role.DisplayName()}
	c.auth.Login(profile)
	c.opts.Notifier.Notify(core.NotifySuccess, msgLoggedIn)
	return profile, nil
}

func (c *Controller) Logout() {
	c.auth.Logout()
}
