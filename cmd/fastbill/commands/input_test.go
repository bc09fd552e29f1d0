package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/fastbill-client/internal/constants"
	"github.com/fivetwenty-io/fastbill-client/pkg/fastbill"
)

func newBodyCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{Use: "test"}
	addBodyFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))

	return cmd
}

func TestReadBody(t *testing.T) {
	t.Parallel()

	t.Run("json data", func(t *testing.T) {
		t.Parallel()

		body, err := readBody(newBodyCommand(t, "--data", `{"ORGANIZATION":"ACME","PAYMENT_TYPE":2}`))
		require.NoError(t, err)
		assert.Equal(t, "ACME", body["ORGANIZATION"])
		assert.Equal(t, fastbill.KindNumber, fastbill.KindOf(body["PAYMENT_TYPE"]))
	})

	t.Run("yaml file", func(t *testing.T) {
		t.Parallel()

		file := filepath.Join(t.TempDir(), "invoice.yml")
		content := "CUSTOMER_ID: 12\nITEMS:\n  - DESCRIPTION: Sweater\n    UNIT_PRICE: 12.5\n"
		require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

		body, err := readBody(newBodyCommand(t, "--file", file))
		require.NoError(t, err)
		assert.Equal(t, fastbill.KindNumber, fastbill.KindOf(body["CUSTOMER_ID"]))
		assert.Equal(t, fastbill.KindObject, fastbill.KindOf(body["ITEMS"]))
	})

	t.Run("stdin", func(t *testing.T) {
		t.Parallel()

		cmd := newBodyCommand(t, "--file", "-")
		cmd.SetIn(strings.NewReader("PROJECT_NAME: Website\n"))

		body, err := readBody(cmd)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"PROJECT_NAME": "Website"}, body)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		_, err := readBody(newBodyCommand(t))
		require.ErrorIs(t, err, constants.ErrBodyRequired)
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		_, err := readBody(newBodyCommand(t, "--data", "# nothing"))
		require.ErrorIs(t, err, constants.ErrBodyRequired)
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()

		_, err := readBody(newBodyCommand(t, "--data", "[1, 2]"))
		require.Error(t, err)
	})
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, fastbill.ID(42), id)

	for _, value := range []string{"", "0", "-3", "abc", "4.2"} {
		_, err := parseID(value)
		require.ErrorIs(t, err, constants.ErrInvalidID, value)
	}
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	assert.Nil(t, parseFilter(nil))
	assert.Equal(t, map[string]any{
		"CUSTOMER_ID": int64(12),
		"TYPE":        "outgoing",
	}, parseFilter(map[string]string{"CUSTOMER_ID": "12", "TYPE": "outgoing"}))
}
