package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	appportfolio "github.com/dicky/portfolio/internal/application/portfolio"
	"github.com/gin-gonic/gin"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type staticPage struct {
	path       string
	changeFreq string
	priority   float64
}

var staticPages = []staticPage{
	{"", "yearly", 1.0},
	{"/about", "monthly", 0.8},
	{"/projects", "weekly", 0.9},
	{"/services", "monthly", 0.8},
	{"/blog", "weekly", 0.8},
	{"/contact", "yearly", 0.5},
}

// SEOHandler serves sitemap.xml and robots.txt for the public site
type SEOHandler struct {
	BaseHandler
	content *appportfolio.ContentService
	baseURL string
	now     func() time.Time
}

// NewSEOHandler creates a new SEOHandler for the site at baseURL
func NewSEOHandler(content *appportfolio.ContentService, baseURL string) *SEOHandler {
	return &SEOHandler{
		content: content,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Sitemap lists the static pages, every project and every published post
func (h *SEOHandler) Sitemap(c *gin.Context) {
	ctx := c.Request.Context()
	projects, err := h.content.ListProjects(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	posts, err := h.content.ListPublishedPosts(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	today := lastMod(h.now())
	set := urlSet{
		XMLNS: sitemapNamespace,
		URLs:  make([]sitemapURL, 0, len(staticPages)+len(projects)+len(posts)),
	}
	for _, p := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        h.baseURL + p.path,
			LastMod:    today,
			ChangeFreq: p.changeFreq,
			Priority:   p.priority,
		})
	}
	for _, p := range projects {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/projects/%s", h.baseURL, p.ID),
			LastMod:    lastMod(p.UpdatedAt),
			ChangeFreq: "monthly",
			Priority:   0.8,
		})
	}
	for _, p := range posts {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/blog/%s", h.baseURL, p.Slug),
			LastMod:    lastMod(p.UpdatedAt),
			ChangeFreq: "monthly",
			Priority:   0.7,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		h.HandleError(c, fmt.Errorf("encode sitemap: %w", err))
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), body...))
}

// Robots allows everything except the admin and private areas
func (h *SEOHandler) Robots(c *gin.Context) {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("Disallow: /private/\n")
	fmt.Fprintf(&b, "\nSitemap: %s/sitemap.xml\n", h.baseURL)
	c.String(http.StatusOK, b.String())
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
