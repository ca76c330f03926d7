package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ishidiag/fishbone/pkg/bone"
	fberrors "github.com/ishidiag/fishbone/pkg/errors"
	"github.com/ishidiag/fishbone/pkg/fishio"
)

// newNewCmd creates the new command for starting a diagram document.
func newNewCmd() *cobra.Command {
	var head, output string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create an empty diagram document",
		Long: `Create a diagram document containing only the problem statement.

The document is written as JSON and can be filled in with "fishbone edit"
or by hand.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := fberrors.ValidateLabel(head); err != nil {
				return err
			}
			if output == "" {
				return fmt.Errorf("output path is required")
			}
			if _, err := os.Stat(output); err == nil {
				return fmt.Errorf("%s already exists", output)
			}

			d := bone.New(head)
			if err := fishio.Export(d, output); err != nil {
				return err
			}

			printSuccess("Created %s", output)
			printNextStep("Edit it", "fishbone edit "+output)
			return nil
		},
	}

	cmd.Flags().StringVar(&head, "head", "", "problem statement for the fish head")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	_ = cmd.MarkFlagRequired("head")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
