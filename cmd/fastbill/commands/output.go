package commands

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

const jsonIndent = "  "

// Field is a single property of a command result.
type Field struct {
	Name  string
	Value any
}

func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return constants.FormatTable
	}

	return format
}

func encode(cmd *cobra.Command, value any) (bool, error) {
	switch outputFormat() {
	case constants.FormatJSON:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", jsonIndent)

		return true, encoder.Encode(value)
	case constants.FormatYAML:
		return true, yaml.NewEncoder(cmd.OutOrStdout()).Encode(value)
	default:
		return false, nil
	}
}

// renderRecords prints records as JSON, YAML or a table of the given
// columns. Without columns the table shows every key, sorted.
func renderRecords(cmd *cobra.Command, records []fastbill.Record, columns []string) error {
	if records == nil {
		records = []fastbill.Record{}
	}

	done, err := encode(cmd, records)
	if done {
		return err
	}

	if len(records) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No results found")

		return nil
	}

	if len(columns) == 0 {
		columns = recordKeys(records)
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	header := make([]any, 0, len(columns))
	for _, column := range columns {
		header = append(header, column)
	}

	table.Header(header...)

	for _, record := range records {
		row := make([]string, 0, len(columns))
		for _, column := range columns {
			row = append(row, record.String(column))
		}

		_ = table.Append(row)
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderFields prints a single result as JSON, YAML or a two column table.
func renderFields(cmd *cobra.Command, fields ...Field) error {
	object := make(map[string]any, len(fields))
	for _, field := range fields {
		object[field.Name] = field.Value
	}

	done, err := encode(cmd, object)
	if done {
		return err
	}

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("Property", "Value")

	for _, field := range fields {
		_ = table.Append(field.Name, fmt.Sprint(field.Value))
	}

	err = table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func recordKeys(records []fastbill.Record) []string {
	seen := make(map[string]struct{})

	for _, record := range records {
		for key := range record {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
