package cli

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/viper"
)

type OutputFormat string

const (
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatTable OutputFormat = "table"
)

func printOutput(data interface{}, tableHeaders []string, tableRows [][]string) error {
	format := OutputFormat(viper.GetString("output_format"))

	switch format {
	case OutputFormatJSON:
		return printJSON(data)
	case OutputFormatTable:
		tw := table.NewWriter()
		headers := make(table.Row, 0, len(tableHeaders))
		for _, header := range tableHeaders {
			headers = append(headers, header)
		}
		tw.AppendHeader(headers)
		for _, row := range tableRows {
			cells := make(table.Row, 0, len(row))
			for _, cell := range row {
				cells = append(cells, cell)
			}
			tw.AppendRow(cells)
		}
		fmt.Println(tw.Render())
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func printJSON(data interface{}) error {
	output, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting JSON: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
