package cmd

import (
	"fmt"
	"log"
	"net/http"

	"lumber-inventory/config"
	"lumber-inventory/router"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if servePort != "" {
		cfg.Port = servePort
	}
	gin.SetMode(cfg.GinMode)

	// Initialize database
	db, err := config.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	engine, err := router.New(db)
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	return http.ListenAndServe(":"+cfg.Port, engine)
}
