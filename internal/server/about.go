package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pedrofh/portfolio/internal/i18n"
)

// Experience is a work or education entry on the about page.
type Experience struct {
	Title    string
	Org      string
	Location string
	Start    string
	End      string
	Bullets  []string
}

func workExperience(lang i18n.Language) []Experience {
	if lang == i18n.Portuguese {
		return []Experience{
			{
				Title:    "Estagiário Backend",
				Org:      "MhGestão",
				Location: "Brasília, Brasil",
				Start:    "Nov 2025",
				End:      "Presente",
				Bullets: []string{
					"Desenvolvimento de APIs REST em Node.js e Go para o produto principal",
					"Automação de rotinas de deploy com Docker e pipelines de CI",
				},
			},
		}
	}
	return []Experience{
		{
			Title:    "Backend Intern",
			Org:      "MhGestão",
			Location: "Brasília, Brazil",
			Start:    "Nov 2025",
			End:      "Present",
			Bullets: []string{
				"Building REST APIs in Node.js and Go for the core product",
				"Automating deploy routines with Docker and CI pipelines",
			},
		},
	}
}

func education(lang i18n.Language) []Experience {
	if lang == i18n.Portuguese {
		return []Experience{
			{
				Title: "Bacharelado em Ciência da Computação",
				Org:   "UNICEPLAC",
				Start: "2023",
				End:   "Presente",
			},
		}
	}
	return []Experience{
		{
			Title: "Bachelor of Computer Science",
			Org:   "UNICEPLAC",
			Start: "2023",
			End:   "Present",
		},
	}
}

func (s *Server) about(lang i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "about.html", s.page(lang, gin.H{
			"Work":      workExperience(lang),
			"Education": education(lang),
		}))
	}
}
