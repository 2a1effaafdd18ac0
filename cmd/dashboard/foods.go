package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/tabwriter"
	"time"

	"github.com/gofood/dashboard/api"
	"github.com/spf13/cobra"
)

var (
	foodsJSON bool
	foodID    int64
	foodInput api.FoodPlateInput
)

var foodsCmd = &cobra.Command{
	Use:   "foods",
	Short: "Manage food plates from the command line",
}

var foodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food plates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		foods, err := newAPIClient().ListFoods(cmd.Context())
		if err != nil {
			return err
		}

		if foodsJSON {
			return printJSON(cmd.OutOrStdout(), foods)
		}

		return printFoods(cmd.OutOrStdout(), foods)
	},
}

var foodsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a food plate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := foodInput.Validate(); err != nil {
			return err
		}

		food, err := newAPIClient().CreateFood(cmd.Context(), foodInput)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), food)
	},
}

var foodsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Replace a food plate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := foodInput.Validate(); err != nil {
			return err
		}

		food, err := newAPIClient().UpdateFood(cmd.Context(), foodID, foodInput)
		if err != nil {
			return err
		}

		return printJSON(cmd.OutOrStdout(), food)
	},
}

var foodsDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a food plate",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient().DeleteFood(cmd.Context(), foodID); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "deleted food plate %d\n", foodID)
		return nil
	},
}

func newAPIClient() *api.Client {
	return api.NewClient(cfg.APIURL, &http.Client{Timeout: 10 * time.Second})
}

func printFoods(w io.Writer, foods []api.FoodPlate) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tPRICE\tAVAILABLE")
	for _, f := range foods {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%t\n", f.ID, f.Name, f.Price, f.Available)
	}
	return tw.Flush()
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func addFoodInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&foodInput.Name, "name", "", "Plate name")
	cmd.Flags().StringVar(&foodInput.Image, "image", "", "Image URL")
	cmd.Flags().StringVar(&foodInput.Price, "price", "", "Price")
	cmd.Flags().StringVar(&foodInput.Description, "description", "", "Description")
}

func init() {
	foodsListCmd.Flags().BoolVar(&foodsJSON, "json", false, "Print JSON instead of a table")

	addFoodInputFlags(foodsAddCmd)

	foodsEditCmd.Flags().Int64Var(&foodID, "id", 0, "Plate id")
	foodsEditCmd.MarkFlagRequired("id")
	addFoodInputFlags(foodsEditCmd)

	foodsDeleteCmd.Flags().Int64Var(&foodID, "id", 0, "Plate id")
	foodsDeleteCmd.MarkFlagRequired("id")

	foodsCmd.AddCommand(foodsListCmd, foodsAddCmd, foodsEditCmd, foodsDeleteCmd)
	rootCmd.AddCommand(foodsCmd)
}
