package presenter

import (
	"encoding/csv"
	"os"
	"strconv"
)

// SaveHistogramCSV writes one row per bin: lower edge, upper edge, count.
func SaveHistogramCSV(h *Histogram, filename string) error {
	// Create the CSV file
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	for i, c := range h.Counts {
		record := []string{
			strconv.FormatFloat(h.Bins[i], 'f', -1, 64),
			strconv.FormatFloat(h.Bins[i+1], 'f', -1, 64),
			strconv.Itoa(c),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return nil
}
