package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/census-geocoder/pkg/census"
)

var (
	coordLon float64
	coordLat float64
)

var coordinatesCmd = &cobra.Command{
	Use:   "coordinates",
	Short: "Look up the geographic areas containing a point",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		loc, err := client.GeocodeCoordinates(cmd.Context(), census.CoordinateRequest{
			Longitude:      coordLon,
			Latitude:       coordLat,
			RequestOptions: requestOptions(),
		})
		if err != nil {
			return err
		}
		return printLocation(cmd, loc)
	},
}

func init() {
	coordinatesCmd.Flags().Float64VarP(&coordLon, "lon", "x", 0, "longitude")
	coordinatesCmd.Flags().Float64VarP(&coordLat, "lat", "y", 0, "latitude")
	coordinatesCmd.MarkFlagRequired("lon") //nolint:errcheck
	coordinatesCmd.MarkFlagRequired("lat") //nolint:errcheck
	rootCmd.AddCommand(coordinatesCmd)
}
