package config

import (
	"log/slog"

	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr string `validate:"omitempty,hostname_port"`
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Health and status server address (disabled when empty)",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("GOTOBOT_ADDR"),
			Destination: &s.Addr,
		},
	}
}

// Enabled reports whether the HTTP server should run
func (s *Server) Enabled() bool {
	return s.Addr != ""
}

// Validate validates the Server configuration
func (s *Server) Validate() error {
	return validateStruct("server", s)
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
	)
}
