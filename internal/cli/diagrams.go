package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/ishidiag/fishbone/pkg/fishio"
)

// newDiagramsCmd creates the diagrams command group for the store.
func newDiagramsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagrams",
		Short: "Manage diagrams in the store",
		Long: `Manage the diagram store.

The store keeps named diagrams so they can be rendered and edited
without tracking files. It is a directory of JSON documents by default,
or a MongoDB collection when configured.`,
	}

	cmd.AddCommand(newDiagramsListCmd())
	cmd.AddCommand(newDiagramsSaveCmd())
	cmd.AddCommand(newDiagramsOpenCmd())
	cmd.AddCommand(newDiagramsDeleteCmd())

	return cmd
}

func newDiagramsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored diagrams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			infos, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printInfo("The store is empty")
				printNextStep("Save a diagram", "fishbone diagrams save <name> <file>")
				return nil
			}

			header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
			fmt.Printf("%s\n", header.Render(fmt.Sprintf("%-24s %-32s %6s  %s", "NAME", "HEAD", "BONES", "UPDATED")))
			for _, info := range infos {
				head := info.Head
				if len(head) > 32 {
					head = head[:29] + "..."
				}
				fmt.Printf("%-24s %-32s %6d  %s\n",
					info.Name, head, info.Bones, info.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}
}

func newDiagramsSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <name> <file>",
		Short: "Save a diagram file into the store",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name, path := args[0], args[1]

			d, err := fishio.Import(path)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			if err := st.Save(ctx, name, d); err != nil {
				return err
			}
			printSuccess("Saved %q (%d bones)", name, d.BoneCount())
			printNextStep("Render it", "fishbone render --name "+name)
			return nil
		},
	}
}

func newDiagramsOpenCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "open <name>",
		Short: "Export a stored diagram back to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			d, err := st.Load(ctx, name)
			if err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := fishio.Write(d, out); err != nil {
				return err
			}
			if output != "" {
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, default stdout")
	return cmd
}

func newDiagramsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored diagram",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close(ctx)

			if err := st.Delete(ctx, args[0]); err != nil {
				return err
			}
			printSuccess("Deleted %q", args[0])
			return nil
		},
	}
}
