package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/census-geocoder/pkg/census"
)

var (
	geocodeStreet string
	geocodeCity   string
	geocodeState  string
	geocodeZip    string
)

var geocodeCmd = &cobra.Command{
	Use:   "geocode [one-line address]",
	Short: "Geocode a single address",
	Long:  "Geocodes an address given as a single line, or as --street/--city/--state/--zip components.",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		req := census.AddressRequest{
			OneLine:        strings.Join(args, " "),
			Street:         geocodeStreet,
			City:           geocodeCity,
			State:          geocodeState,
			Zip:            geocodeZip,
			RequestOptions: requestOptions(),
		}

		loc, err := client.GeocodeAddress(cmd.Context(), req)
		if err != nil {
			return err
		}

		if !loc.Matched() {
			zap.L().Info("no match", zap.String("address", req.OneLine))
		}
		return printLocation(cmd, loc)
	},
}

func printLocation(cmd *cobra.Command, loc *census.Location) error {
	data, err := loc.ToJSON()
	if err != nil {
		return err
	}
	var pretty map[string]any
	if err := json.Unmarshal(data, &pretty); err != nil {
		return err
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func init() {
	geocodeCmd.Flags().StringVar(&geocodeStreet, "street", "", "street address component")
	geocodeCmd.Flags().StringVar(&geocodeCity, "city", "", "city component")
	geocodeCmd.Flags().StringVar(&geocodeState, "state", "", "state component")
	geocodeCmd.Flags().StringVar(&geocodeZip, "zip", "", "zip component")
	geocodeCmd.Flags().BoolVar(&flagLocations, "locations", false, "skip geographic areas, return address matches only")
	rootCmd.AddCommand(geocodeCmd)
}
