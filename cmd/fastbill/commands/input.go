package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

const (
	dataFlag = "data"
	fileFlag = "file"
)

func addBodyFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(dataFlag, "d", "", "request body as JSON or YAML")
	cmd.Flags().StringP(fileFlag, "f", "", "read the request body from a JSON or YAML file ('-' for stdin)")
}

// readBody returns the request body given by --data or --file. Keys are
// passed to FastBill unchanged, so they must use its upper-case names.
func readBody(cmd *cobra.Command) (map[string]any, error) {
	data, _ := cmd.Flags().GetString(dataFlag)
	file, _ := cmd.Flags().GetString(fileFlag)

	var raw []byte

	switch {
	case data != "":
		raw = []byte(data)
	case file == "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read body from stdin: %w", err)
		}

		raw = content
	case file != "":
		content, err := os.ReadFile(file) //nolint:gosec // path comes from the user
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}

		raw = content
	default:
		return nil, constants.ErrBodyRequired
	}

	var body map[string]any

	err := yaml.Unmarshal(raw, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse body: %w", err)
	}

	if body == nil {
		return nil, constants.ErrBodyRequired
	}

	return body, nil
}

func parseID(value string) (fastbill.ID, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", constants.ErrInvalidID, value)
	}

	return fastbill.ID(id), nil
}

// parseFilter turns repeated KEY=VALUE flags into a FastBill filter. Values
// that parse as integers are sent as numbers.
func parseFilter(pairs map[string]string) map[string]any {
	if len(pairs) == 0 {
		return nil
	}

	filter := make(map[string]any, len(pairs))

	for key, value := range pairs {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			filter[key] = n

			continue
		}

		filter[key] = value
	}

	return filter
}
