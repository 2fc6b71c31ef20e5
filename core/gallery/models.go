package gallery

import "github.com/trezcool/happyclass/core/session"

// AllCategory is the category sentinel that matches every photo.
const AllCategory = "全部"

const msgDetailSoon = "即将展示照片详情"

type Photo struct {
	ID       string `json:"id" yaml:"id"`
	URL      string `json:"url" yaml:"url"`
	Likes    int    `json:"likes" yaml:"likes"`
	Category string `json:"category" yaml:"category"`
	Date     string `json:"date" yaml:"date"`
}

// Seed is the gallery's initial data.
type Seed struct {
	Categories []string `json:"categories" yaml:"categories"`
	Photos     []Photo  `json:"photos" yaml:"photos"`
}

// View is what the gallery page shows.
type View struct {
	Session             session.View `json:"session"`
	Categories          []string     `json:"categories"`
	Selected            string       `json:"selected"`
	Photos              []Photo      `json:"photos"`
	CanLoadMore         bool         `json:"can_load_more"`
	LoadingMore         bool         `json:"loading_more"`
	CanManageCategories bool         `json:"can_manage_categories"`
}

// FilterByCategory returns the photos of category, in their original order.
// AllCategory returns every photo.
func FilterByCategory(photos []Photo, category string) []Photo {
	filtered := make([]Photo, 0, len(photos))
	for _, p := range photos {
		if category == AllCategory || p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
