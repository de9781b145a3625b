package server

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pedrofh/portfolio/internal/config"
	"github.com/pedrofh/portfolio/internal/hash"
	"github.com/pedrofh/portfolio/internal/i18n"
)

// SocialLink is one entry on the links page and in the footer.
type SocialLink struct {
	Label string
	URL   string
	Icon  string
}

var socialLinks = []SocialLink{
	{Label: "GitHub", URL: "https://github.com/pedrfelip", Icon: "github"},
	{Label: "LinkedIn", URL: "https://www.linkedin.com/in/pedrfelip/", Icon: "linkedin"},
	{Label: "X", URL: "https://x.com/pedrofelipeek", Icon: "x"},
	{Label: "Email", URL: "mailto:pfsvila190406@gmail.com", Icon: "email"},
}

// Server owns the gin engine and the site configuration.
type Server struct {
	cfg config.Config
}

// New builds the gin engine with all routes registered.
func New(cfg config.Config) *gin.Engine {
	s := &Server{cfg: cfg}

	r := gin.Default()
	r.SetFuncMap(template.FuncMap{
		"t":          i18n.T,
		"formatDate": i18n.FormatDate,
		"shortHash":  hash.ShortHash,
	})
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Each language is its own static route group so /en/... and /pt/...
	// never collide with /static or /images.
	for lang := range i18n.Languages {
		grp := r.Group("/" + string(lang))
		grp.GET("", s.home(lang))
		grp.GET("/about", s.about(lang))
		grp.GET("/projects", s.projects(lang))
		grp.GET("/links", s.links(lang))
		grp.GET("/blog", s.blogIndex(lang))
		grp.GET("/blog/:slug", s.blogPost(lang))
	}

	r.GET("/", s.redirectToLanguage)
	r.POST("/contact", s.contact)
	r.NoRoute(s.notFound)

	return r
}

// page assembles the gin.H every template expects, then merges in the
// page-specific extras.
func (s *Server) page(lang i18n.Language, extra gin.H) gin.H {
	h := gin.H{
		"Lang":      lang,
		"Languages": i18n.Languages,
		"SiteTitle": s.cfg.SiteTitle,
		"BaseURL":   s.cfg.BaseURL,
		"Social":    socialLinks,
	}
	for k, v := range extra {
		h[k] = v
	}
	return h
}

// redirectToLanguage sends the bare root to the visitor's language: pt when
// the Accept-Language header prefers it, the default otherwise.
func (s *Server) redirectToLanguage(c *gin.Context) {
	lang := i18n.DefaultLanguage
	if strings.Contains(strings.ToLower(c.GetHeader("Accept-Language")), "pt") {
		lang = i18n.Portuguese
	}
	c.Redirect(http.StatusFound, "/"+string(lang))
}

// notFound renders the localized 404 page, inferring the language from the
// leading path segment when there is one.
func (s *Server) notFound(c *gin.Context) {
	lang := i18n.DefaultLanguage
	if seg, _, _ := strings.Cut(strings.TrimPrefix(c.Request.URL.Path, "/"), "/"); i18n.Supported(seg) {
		lang = i18n.Language(seg)
	}
	c.HTML(http.StatusNotFound, "notfound.html", s.page(lang, nil))
}

func (s *Server) home(lang i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "home.html", s.page(lang, gin.H{
			"Featured": featuredProjects(),
		}))
	}
}

func (s *Server) links(lang i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "links.html", s.page(lang, nil))
	}
}
