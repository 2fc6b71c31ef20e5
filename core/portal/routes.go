package portal

// Route is an entry of the navigation bar.
type Route struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

// Routes is the navigation bar, in display order.
var Routes = []Route{
	{Path: "/", Title: "首页"},
	{Path: "/gallery", Title: "相册"},
	{Path: "/resources", Title: "资料中心"},
	{Path: "/notice", Title: "公告栏"},
}

// Shell is the navigation shell rendered around every page.
type Shell struct {
	AppName string  `json:"app_name"`
	Routes  []Route `json:"routes"`
}

func NewShell(appName string) Shell {
	return Shell{AppName: appName, Routes: append([]Route(nil), Routes...)}
}

// Lookup returns the route of path.
func Lookup(path string) (Route, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}
