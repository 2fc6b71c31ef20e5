package resource

import "github.com/trezcool/happyclass/core/session"

// AllSubject is the subject sentinel that matches every file.
const AllSubject = "全部"

const (
	// SupportedFormats is shown next to the upload control.
	SupportedFormats = "支持格式: PDF, DOCX, PPT, MP3"
	// EmptyText is shown when no file matches the selected subject.
	EmptyText = "暂无文件"

	msgDownloadStarted = "开始下载"
	msgUploaded        = "上传成功"
)

var fileTypeIcons = map[string]string{
	"pdf":   "fa-file-pdf",
	"docx":  "fa-file-word",
	"ppt":   "fa-file-powerpoint",
	"pptx":  "fa-file-powerpoint",
	"audio": "fa-file-audio",
}

// Icon returns the icon name of a file type.
func Icon(fileType string) string {
	if icon, ok := fileTypeIcons[fileType]; ok {
		return icon
	}
	return "fa-file"
}

type FileItem struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Subject   string `json:"subject" yaml:"subject"`
	Size      string `json:"size" yaml:"size"`
	Date      string `json:"date" yaml:"date"`
	Downloads int    `json:"downloads" yaml:"downloads"`
}

// Seed is the resource center's initial data.
type Seed struct {
	Subjects []string   `json:"subjects" yaml:"subjects"`
	Files    []FileItem `json:"files" yaml:"files"`
}

// FileView is a file as listed on the page.
type FileView struct {
	FileItem
	Icon string `json:"icon"`
}

// View is what the resource center shows.
type View struct {
	Session          session.View `json:"session"`
	Subjects         []string     `json:"subjects"`
	Selected         string       `json:"selected"`
	Files            []FileView   `json:"files"`
	Uploading        bool         `json:"uploading"`
	CanUpload        bool         `json:"can_upload"`
	SupportedFormats string       `json:"supported_formats,omitempty"`
	Placeholder      string       `json:"placeholder,omitempty"` // shown instead of the materials
	EmptyText        string       `json:"empty_text,omitempty"`
}

// FilterBySubject returns the files of subject, in their original order.
// AllSubject returns every file.
func FilterBySubject(files []FileItem, subject string) []FileItem {
	filtered := make([]FileItem, 0, len(files))
	for _, f := range files {
		if subject == AllSubject || f.Subject == subject {
			filtered = append(filtered, f)
		}
	}
	return filtered
}
