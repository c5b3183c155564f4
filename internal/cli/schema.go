package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/guiscale/pkg/scaling"
)

const schemaBody = `scaling:
  type: %s
  width: integer          # required unless type == stretch, > 0
  height: integer         # required unless type == stretch, > 0
  border: integer         # nine_slice only, >= 0, used if no nested border section
  border:                 # nine_slice only, alternative nested form, takes precedence
    left: integer         # >= 0
    right: integer        # >= 0
    top: integer          # >= 0
    bottom: integer       # >= 0
`

// schemaCommand creates the schema command, which prints the accepted
// scaling configuration surface.
func (c *CLI) schemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the accepted scaling metadata layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render("Scaling metadata"))
			fmt.Fprintln(out)
			fmt.Fprint(out, schemaText())
			return nil
		},
	}
}

func schemaText() string {
	kinds := make([]string, len(scaling.Kinds))
	for i, k := range scaling.Kinds {
		kinds[i] = fmt.Sprintf("%q", string(k))
	}
	return fmt.Sprintf(schemaBody, strings.Join(kinds, " | "))
}
