package main

import (
	"animal-training/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

// NewHealthcheckCmd sirve como probe de contenedor: exit 0 solo si la API responde healthy.
func NewHealthcheckCmd() *cobra.Command {
	var (
		baseURL string
		timeout = httpclient.DefaultTimeout
	)

	cmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Probe GET /api/health on a running API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := httpclient.New(baseURL, timeout)
			if err != nil {
				return err
			}
			if err := c.Health(cmd.Context()); err != nil {
				return err
			}
			cmd.Println("healthy")
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "url", "http://localhost:5000", "API base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", timeout, "request timeout")

	return cmd
}
