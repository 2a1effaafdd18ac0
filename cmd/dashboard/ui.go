package main

import (
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofood/dashboard/api"
	"github.com/gofood/dashboard/cmd/dashboard/ui"
	"github.com/spf13/cobra"
)

var uiLogFile string

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Show the food plates dashboard",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := tea.LogToFile(uiLogFile, "debug")
		if err != nil {
			return err
		}
		defer f.Close()

		c := api.NewClient(cfg.APIURL, &http.Client{Timeout: 10 * time.Second})

		p := tea.NewProgram(ui.NewDashboard(c), tea.WithAltScreen())
		_, err = p.Run()

		return err
	},
}

func init() {
	uiCmd.Flags().StringVar(&uiLogFile, "log-file", "debug.log", "File receiving dashboard logs")

	rootCmd.AddCommand(uiCmd)
}
