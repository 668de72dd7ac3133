package main

import (
	"encoding/csv"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/census-geocoder/internal/batchfile"
	"github.com/sells-group/census-geocoder/pkg/census"
)

var batchChunked bool

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Geocode a batch address file",
	Long:  "Uploads a CSV, TXT/DAT, or XLSX file of addresses (ID, Street, City, State, ZIP per row, no header) and writes the results as CSV. Files over 10,000 records need --chunked.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cleanup, err := newClient(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		opts := requestOptions()

		var results []census.BatchResult
		if batchChunked {
			records, err := batchfile.ReadUnbounded(args[0])
			if err != nil {
				return err
			}
			results, err = client.GeocodeBatchRecords(cmd.Context(), records, opts)
			if err != nil {
				return err
			}
		} else {
			results, err = client.GeocodeBatch(cmd.Context(), args[0], opts)
			if err != nil {
				return err
			}
		}

		matched := 0
		for _, r := range results {
			if r.Matched {
				matched++
			}
		}
		zap.L().Info("batch geocoded",
			zap.String("file", args[0]),
			zap.Int("records", len(results)),
			zap.Int("matched", matched),
		)

		return writeBatchResults(cmd, results, opts.ReturnType)
	},
}

func writeBatchResults(cmd *cobra.Command, results []census.BatchResult, returnType census.ReturnType) error {
	w := csv.NewWriter(cmd.OutOrStdout())
	defer w.Flush()

	for _, r := range results {
		status := "No_Match"
		switch {
		case r.Matched:
			status = "Match"
		case r.Tie:
			status = "Tie"
		}
		row := []string{r.ID, r.InputAddress, status}
		if r.Matched {
			exact := "Non_Exact"
			if r.Exact {
				exact = "Exact"
			}
			row = append(row, exact, r.Address,
				strconv.FormatFloat(r.Coordinates.X, 'f', -1, 64)+","+strconv.FormatFloat(r.Coordinates.Y, 'f', -1, 64),
				r.TigerLine.ID, r.TigerLine.Side)
			if returnType == census.ReturnGeographies {
				row = append(row, r.StateFIPS, r.CountyFIPS, r.TractCode, r.BlockCode)
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	batchCmd.Flags().BoolVar(&batchChunked, "chunked", false, "split files over 10,000 records into concurrent uploads")
	batchCmd.Flags().BoolVar(&flagLocations, "locations", false, "skip FIPS columns, return address matches only")
	rootCmd.AddCommand(batchCmd)
}
