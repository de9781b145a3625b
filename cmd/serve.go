package cmd

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pedrofh/portfolio/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio website",
	Long: `The serve command starts the web server: server-rendered pages for
home, about, projects, links, and the blog, plus static assets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := server.New(appConfig)

		port := appConfig.Port
		if servePort != 0 {
			port = servePort
		}
		addr := ":" + strconv.Itoa(port)
		// PORT wins so hosting platforms that inject it keep working.
		if env := os.Getenv("PORT"); env != "" {
			addr = ":" + env
		}

		slog.Info("serving portfolio", "addr", addr, "contentDir", appConfig.ContentDir)
		return r.Run(addr)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to serve on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
