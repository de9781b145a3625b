package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pedrofh/portfolio/internal/i18n"
)

// Project is a portfolio project card. Descriptions are localized through
// the DescKey lookup so the card data itself stays language-neutral.
type Project struct {
	Title    string
	DescKey  string
	Repo     string
	Demo     string
	Tags     []string
	Featured bool
}

var allProjects = []Project{
	{
		Title:    "Oportune+",
		DescKey:  "project.oportunne",
		Repo:     "https://github.com/pedrfelip/oportunne",
		Tags:     []string{"Node.js", "Fastify", "React", "Go"},
		Featured: true,
	},
	{
		Title:    "Saúde Pontual",
		DescKey:  "project.saudePontual",
		Repo:     "https://github.com/pedrfelip/saude-pontual",
		Tags:     []string{"Node.js", "PostgreSQL", "Docker", "JWT"},
		Featured: true,
	},
	{
		Title:   "API Financeiro",
		DescKey: "project.apiFinanceiro",
		Repo:    "https://github.com/pedrfelip/api-financeiro",
		Tags:    []string{"TypeScript", "Fastify", "SQLite", "Knex"},
	},
	{
		Title:   "Notes API",
		DescKey: "project.notesApi",
		Repo:    "https://github.com/pedrfelip/notes-api",
		Tags:    []string{"Node.js", "TypeScript", "Prisma", "PostgreSQL"},
	},
	{
		Title:   "Plan It - Calendar",
		DescKey: "project.planIt",
		Repo:    "https://github.com/pedrfelip/plan-it",
		Tags:    []string{"JavaScript", "Scrum"},
	},
}

func featuredProjects() []Project {
	var out []Project
	for _, p := range allProjects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// projectTags returns the distinct technology tags across all projects, in
// first-seen order, for the filter bar.
func projectTags() []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range allProjects {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags
}

// filterProjects keeps projects carrying the requested tag, matched
// case-insensitively. An empty tag means everything.
func filterProjects(tag string) []Project {
	if tag == "" {
		return allProjects
	}
	want := strings.ToLower(tag)
	var out []Project
	for _, p := range allProjects {
		for _, t := range p.Tags {
			if strings.ToLower(t) == want {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func (s *Server) projects(lang i18n.Language) gin.HandlerFunc {
	return func(c *gin.Context) {
		tag := c.Query("tag")
		c.HTML(http.StatusOK, "projects.html", s.page(lang, gin.H{
			"Projects":  filterProjects(tag),
			"Tags":      projectTags(),
			"ActiveTag": tag,
		}))
	}
}
