package settings

import "github.com/jask/tabdeck/internal/resource"

// Link is a known external page. Each Link is itself a settings entry.
type Link int

const (
	ProjectSite Link = iota
	LatestRelease
	Social
	ChangeLogs
	Contributors
	Articles
)

// Links lists every known link in display order.
var Links = []Link{ProjectSite, LatestRelease, Social, ChangeLogs, Contributors, Articles}

type linkInfo struct {
	title resource.StringID
	icon  resource.IconID
	url   string
}

var linkTable = map[Link]linkInfo{
	ProjectSite:   {resource.LinkProjectSite, resource.IconCode, "https://github.com/jask/tabdeck"},
	LatestRelease: {resource.LinkLatestRelease, resource.IconRelease, "https://github.com/jask/tabdeck/releases"},
	Social:        {resource.LinkSocial, resource.IconGlobe, "https://fosstodon.org/@tabdeck"},
	ChangeLogs:    {resource.LinkChangeLogs, resource.IconArticle, "https://github.com/jask/tabdeck/blob/main/CHANGELOG.md"},
	Contributors:  {resource.LinkContributors, resource.IconPeople, "https://github.com/jask/tabdeck/blob/main/CONTRIBUTORS.md"},
	Articles:      {resource.LinkArticles, resource.IconLink, "https://github.com/jask/tabdeck/wiki"},
}

func (l Link) URL() string { return linkTable[l].url }

func (l Link) Describe() Descriptor {
	info := linkTable[l]
	return Descriptor{Title: info.title, Icon: info.icon, Span: 1}
}

func (l Link) Accept(v Visitor) { v.VisitLink(l) }
func (Link) sealed()            {}
