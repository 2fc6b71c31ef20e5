// Package access holds the role-gating rules shared by every page.
package access

import (
	"fmt"

	"github.com/trezcool/happyclass/core/session"
)

// Action is a gated UI action.
type Action int

const (
	LikePhoto Action = iota + 1
	ManageCategories
	UploadResource
	DownloadResource
	ViewMaterials
)

var actionNames = map[Action]string{
	LikePhoto:        "like_photo",
	ManageCategories: "manage_categories",
	UploadResource:   "upload_resource",
	DownloadResource: "download_resource",
	ViewMaterials:    "view_materials",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Outcome is what the UI does when an action is denied.
type Outcome int

const (
	Reject      Outcome = iota + 1 // refuse with an error message
	Hide                           // do not show the control at all
	Placeholder                    // show a placeholder in place of the content
)

// Requirement is the role an action needs once authenticated.
type Requirement int

const (
	AnyRole Requirement = iota
	TeacherOnly
)

// Reason tells why an action was denied.
type Reason int

const (
	Unauthenticated Reason = iota + 1
	WrongRole
)

// user-visible messages
const (
	MsgLoginRequired        = "请先登录"
	MsgTeachersOnly         = "只有老师可以上传文件"
	MsgLoginToViewMaterials = "登录后查看资料"
)

type Rule struct {
	Action       Action
	RequiresAuth bool
	Requires     Requirement
	OnFailure    Outcome
	Message      string
}

// Rules is the rule table, keyed by action.
var Rules = map[Action]Rule{
	LikePhoto:        {Action: LikePhoto, RequiresAuth: true, Requires: AnyRole, OnFailure: Reject, Message: MsgLoginRequired},
	ManageCategories: {Action: ManageCategories, RequiresAuth: true, Requires: TeacherOnly, OnFailure: Hide},
	UploadResource:   {Action: UploadResource, RequiresAuth: true, Requires: TeacherOnly, OnFailure: Reject, Message: MsgTeachersOnly},
	DownloadResource: {Action: DownloadResource, RequiresAuth: true, Requires: AnyRole, OnFailure: Reject, Message: MsgLoginRequired},
	ViewMaterials:    {Action: ViewMaterials, RequiresAuth: true, Requires: AnyRole, OnFailure: Placeholder, Message: MsgLoginToViewMaterials},
}

// permits reports whether role satisfies the rule's requirement.
func (r Rule) permits(role session.Role) bool {
	switch r.Requires {
	case AnyRole:
		return role.Valid()
	case TeacherOnly:
		switch role {
		case session.RoleTeacher:
			return true
		case session.RoleParent, session.RoleStudent:
			return false
		}
	}
	return false
}

// DeniedError is returned when a session may not perform an action.
type DeniedError struct {
	Action  Action
	Reason  Reason
	Outcome Outcome
	Message string
}

func (err *DeniedError) Error() string {
	if err.Message != "" {
		return err.Message
	}
	return fmt.Sprintf("%s: permission denied", err.Action)
}

// Check returns nil when v may perform a, a *DeniedError otherwise.
func Check(v session.View, a Action) error {
	rule, ok := Rules[a]
	if !ok {
		panic(fmt.Sprintf("access: no rule for %s", a))
	}
	if !rule.RequiresAuth {
		return nil
	}

	role, hasUser := v.Role()
	if !v.IsAuthenticated {
		return rule.deny(Unauthenticated)
	}
	if rule.Requires == AnyRole {
		return nil
	}
	if !hasUser || !rule.permits(role) {
		return rule.deny(WrongRole)
	}
	return nil
}

// Allowed is the boolean form of Check.
func Allowed(v session.View, a Action) bool {
	return Check(v, a) == nil
}

func (r Rule) deny(reason Reason) *DeniedError {
	return &DeniedError{Action: r.Action, Reason: reason, Outcome: r.OnFailure, Message: r.Message}
}
