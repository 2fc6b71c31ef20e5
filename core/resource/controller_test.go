package resource

import (
	"context"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/happyclass/core"
	"github.com/trezcool/happyclass/core/access"
	"github.com/trezcool/happyclass/core/session"
	"github.com/trezcool/happyclass/services/toast"
)

var testSeed = Seed{
	Subjects: []string{AllSubject, "语文", "数学", "英语", "科学"},
	Files: []FileItem{
		{ID: "1", Name: "数学期中考试卷.pdf", Type: "pdf", Subject: "数学", Size: "2.4MB", Date: "2025-06-08", Downloads: 15},
		{ID: "2", Name: "语文作文范文.docx", Type: "docx", Subject: "语文", Size: "1.2MB", Date: "2025-06-07", Downloads: 23},
		{ID: "3", Name: "英语听力练习.mp3", Type: "audio", Subject: "英语", Size: "5.7MB", Date: "2025-06-06", Downloads: 8},
		{ID: "4", Name: "科学实验指导.pptx", Type: "pptx", Subject: "科学", Size: "8.1MB", Date: "2025-06-01", Downloads: 12},
		{ID: "5", Name: "数学练习题集.pdf", Type: "pdf", Subject: "数学", Size: "3.5MB", Date: "2025-05-30", Downloads: 18},
	},
}

const uploadDelay = time.Second

type fixture struct {
	store *session.Store
	clk   *clock.Mock
	feed  *toast.Feed
	ctrl  *Controller
}

func setup(t *testing.T) fixture {
	t.Helper()
	store := session.NewStore()
	clk := clock.NewMock()
	clk.Set(time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC))
	feed := toast.NewFeed(clk, 10)
	ctrl := NewController(store.Auth(), testSeed, Options{Clock: clk, Notifier: feed, UploadDelay: uploadDelay})
	return fixture{store: store, clk: clk, feed: feed, ctrl: ctrl}
}

func files(v View) []FileItem {
	items := make([]FileItem, 0, len(v.Files))
	for _, f := range v.Files {
		items = append(items, f.FileItem)
	}
	return items
}

func TestIcon(t *testing.T) {
	tests := map[string]string{
		"pdf":   "fa-file-pdf",
		"docx":  "fa-file-word",
		"ppt":   "fa-file-powerpoint",
		"pptx":  "fa-file-powerpoint",
		"audio": "fa-file-audio",
		"zip":   "fa-file",
		"":      "fa-file",
	}
	for typ, want := range tests {
		assert.Equal(t, want, Icon(typ), typ)
	}
}

func TestFilterBySubject(t *testing.T) {
	got := FilterBySubject(testSeed.Files, "数学")
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "5", got[1].ID)
	assert.Equal(t, testSeed.Files, FilterBySubject(testSeed.Files, AllSubject))
}

func TestController_ViewAnonymous(t *testing.T) {
	f := setup(t)
	v := f.ctrl.View()
	assert.Equal(t, access.MsgLoginToViewMaterials, v.Placeholder)
	assert.Empty(t, v.Files)
	assert.False(t, v.CanUpload)
	assert.Empty(t, v.SupportedFormats)
}

func TestController_ViewByRole(t *testing.T) {
	f := setup(t)

	f.store.Login(session.Profile{Role: session.RoleParent, Name: "王家长"})
	v := f.ctrl.View()
	assert.Empty(t, v.Placeholder)
	assert.False(t, v.CanUpload)
	assert.Equal(t, testSeed.Files, files(v))
	assert.Equal(t, "fa-file-audio", v.Files[2].Icon)

	f.store.Login(session.Profile{Role: session.RoleTeacher, Name: "张老师"})
	v = f.ctrl.View()
	assert.True(t, v.CanUpload)
	assert.Equal(t, SupportedFormats, v.SupportedFormats)
}

func TestController_SelectSubject(t *testing.T) {
	f := setup(t)
	f.store.Login(session.Profile{Role: session.RoleStudent, Name: "李同学"})

	require.NoError(t, f.ctrl.SelectSubject("英语"))
	v := f.ctrl.View()
	require.Len(t, v.Files, 1)
	assert.Equal(t, "3", v.Files[0].ID)
	assert.Empty(t, v.EmptyText)

	err := f.ctrl.SelectSubject("历史")
	_, ok := err.(*core.ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "英语", f.ctrl.View().Selected)
}

func TestController_ViewEmpty(t *testing.T) {
	store := session.NewStore()
	store.Login(session.Profile{Role: session.RoleStudent, Name: "李同学"})
	seed := Seed{Subjects: testSeed.Subjects}
	ctrl := NewController(store.Auth(), seed, Options{})

	v := ctrl.View()
	assert.Empty(t, v.Files)
	assert.Equal(t, EmptyText, v.EmptyText)
}

func TestController_Download(t *testing.T) {
	f := setup(t)
	f.store.Login(session.Profile{Role: session.RoleStudent, Name: "李同学"})
	before := files(f.ctrl.View())

	got, err := f.ctrl.Download("2")
	require.NoError(t, err)
	assert.Equal(t, 24, got.Downloads)

	after := files(f.ctrl.View())
	require.Len(t, after, len(before))
	for i := range before {
		want := before[i]
		if want.ID == "2" {
			want.Downloads++
		}
		assert.Equal(t, want, after[i])
	}

	last, ok := f.feed.Last()
	require.True(t, ok)
	assert.Equal(t, core.NotifySuccess, last.Kind)
	assert.Equal(t, "开始下载", last.Message)

	_, err = f.ctrl.Download("99")
	assert.Equal(t, core.ErrNotFound, errors.Cause(err))
}

func TestController_DownloadUnauthenticated(t *testing.T) {
	f := setup(t)

	_, err := f.ctrl.Download("2")
	var denied *access.DeniedError
	require.True(t, errors.As(err, &denied))
	assert.Equal(t, access.Unauthenticated, denied.Reason)

	last, ok := f.feed.Last()
	require.True(t, ok)
	assert.Equal(t, core.NotifyError, last.Kind)
	assert.Equal(t, access.MsgLoginRequired, last.Message)

	f.store.Login(session.Profile{Role: session.RoleStudent, Name: "李同学"})
	assert.Equal(t, testSeed.Files, files(f.ctrl.View()))
}

func TestController_UploadDenied(t *testing.T) {
	tests := []struct {
		name    string
		profile *session.Profile
		reason  access.Reason
	}{
		{name: "anonymous", reason: access.Unauthenticated},
		{name: "parent", profile: &session.Profile{Role: session.RoleParent, Name: "王家长"}, reason: access.WrongRole},
		{name: "student", profile: &session.Profile{Role: session.RoleStudent, Name: "李同学"}, reason: access.WrongRole},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := setup(t)
			if tc.profile != nil {
				f.store.Login(*tc.profile)
			}

			tsk, err := f.ctrl.Upload()
			assert.Nil(t, tsk)
			var denied *access.DeniedError
			require.True(t, errors.As(err, &denied))
			assert.Equal(t, tc.reason, denied.Reason)
			assert.Equal(t, access.MsgTeachersOnly, err.Error())

			f.clk.Add(2 * uploadDelay)
			f.store.Login(session.Profile{Role: session.RoleStudent, Name: "李同学"})
			v := f.ctrl.View()
			assert.False(t, v.Uploading)
			assert.Equal(t, testSeed.Files, files(v))

			last, ok := f.feed.Last()
			require.True(t, ok)
			assert.Equal(t, core.NotifyError, last.Kind)
			assert.Equal(t, access.MsgTeachersOnly, last.Message)
		})
	}
}

func TestController_Upload(t *testing.T) {
	f := setup(t)
	f.store.Login(session.Profile{Role: session.RoleTeacher, Name: "张老师"})

	tsk, err := f.ctrl.Upload()
	require.NoError(t, err)
	assert.True(t, f.ctrl.View().Uploading)

	_, err = f.ctrl.Upload()
	assert.Equal(t, core.ErrBusy, errors.Cause(err))

	f.clk.Add(uploadDelay)
	file, err := tsk.Wait(context.Background())
	require.NoError(t, err)

	want := FileItem{ID: "6", Name: "新文件6.pdf", Type: "pdf", Subject: "数学", Size: "1.0MB", Date: "2025-06-10"}
	assert.Equal(t, want, file)

	v := f.ctrl.View()
	assert.False(t, v.Uploading)
	require.Len(t, v.Files, 6)
	assert.Equal(t, want, v.Files[0].FileItem, "uploads are prepended")
	assert.Equal(t, testSeed.Files, files(v)[1:])

	last, ok := f.feed.Last()
	require.True(t, ok)
	assert.Equal(t, "上传成功", last.Message)
}

func TestController_UploadUsesSelectedSubject(t *testing.T) {
	f := setup(t)
	f.store.Login(session.Profile{Role: session.RoleTeacher, Name: "张老师"})
	require.NoError(t, f.ctrl.SelectSubject("科学"))

	tsk, err := f.ctrl.Upload()
	require.NoError(t, err)
	require.NoError(t, f.ctrl.SelectSubject("语文"))

	f.clk.Add(uploadDelay)
	file, err := tsk.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "科学", file.Subject)
}
