package server

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pedrofh/portfolio/internal/blog"
	"github.com/pedrofh/portfolio/internal/i18n"
)

// blogIndex renders the commit-log style post list with pagination and an
// optional tag filter. A fresh Store per request keeps memoization scoped
// to this one page render.
func (s *Server) blogIndex(lang i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := blog.NewStore(s.cfg.ContentDir)

		posts := store.AllPosts()
		tag := c.Query("tag")
		if tag != "" {
			posts = store.PostsByTag(tag)
		}

		pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		page := blog.Paginate(posts, pageNum, s.cfg.BlogPageSize)

		c.HTML(http.StatusOK, "blog.html", s.page(lang, gin.H{
			"Page":        page,
			"Tags":        store.AllTags(),
			"ActiveTag":   tag,
			"PrevPageNum": page.CurrentPage - 1,
			"NextPageNum": page.CurrentPage + 1,
		}))
	}
}

// blogPost renders a single post: body HTML, table of contents, reading
// time, and share links. An unknown slug is a plain not-found page, never
// an error.
func (s *Server) blogPost(lang i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := blog.NewStore(s.cfg.ContentDir)

		slug := c.Param("slug")
		post := store.PostBySlug(slug)
		if post == nil {
			s.notFound(c)
			return
		}

		body, err := blog.RenderHTML(post.Content)
		if err != nil {
			slog.Error("rendering post body", "slug", slug, "error", err)
		}

		postURL := s.cfg.BaseURL + "/" + string(lang) + "/blog/" + slug
		c.HTML(http.StatusOK, "post.html", s.page(lang, gin.H{
			"Post":        post,
			"Body":        template.HTML(body),
			"TOC":         tocEntries(post.Headings),
			"ReadingTime": blog.ReadingTime(post.Content),
			"PostURL":     postURL,
			"Share":       shareLinks(post.Title, postURL),
		}))
	}
}

// ShareLink is one social share target on the post page.
type ShareLink struct {
	Label string
	URL   string
}

// shareLinks builds the social share URLs for a post.
func shareLinks(title, postURL string) []ShareLink {
	t := url.QueryEscape(title)
	u := url.QueryEscape(postURL)
	return []ShareLink{
		{Label: "Twitter", URL: "https://twitter.com/intent/tweet?text=" + t + "&url=" + u},
		{Label: "LinkedIn", URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + u},
		{Label: "Email", URL: "mailto:?subject=" + t + "&body=" + u},
	}
}
