package cli

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ishidiag/fishbone/pkg/bone"
	"github.com/ishidiag/fishbone/pkg/config"
	"github.com/ishidiag/fishbone/pkg/fishio"
	"github.com/ishidiag/fishbone/pkg/session"
)

type editOpts struct {
	input  string
	name   string
	resume bool
}

// newEditCmd creates the edit command for the interactive editor.
func newEditCmd() *cobra.Command {
	opts := &editOpts{}

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a diagram interactively",
		Long: `Open a diagram in the terminal editor.

Every change is snapshotted to a session file, so a crash or dropped
connection loses nothing. Start with --resume to pick up the latest
snapshot instead of the saved diagram.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.input = args[0]
			}
			if opts.input == "" && opts.name == "" {
				return fmt.Errorf("a diagram file or --name is required")
			}
			if opts.input != "" && opts.name != "" {
				return fmt.Errorf("pass either a diagram file or --name, not both")
			}
			return runEdit(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "edit a diagram from the store instead of a file")
	cmd.Flags().BoolVar(&opts.resume, "resume", false, "resume from the latest session snapshot")

	return cmd
}

func runEdit(ctx context.Context, opts *editOpts) error {
	logger := loggerFromContext(ctx)
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sessionName := opts.input
	if sessionName == "" {
		sessionName = "store:" + opts.name
	} else {
		sessionName, _ = filepath.Abs(sessionName)
	}

	sessions, err := session.NewFileStore("")
	if err != nil {
		return err
	}
	_ = sessions.Cleanup(ctx)

	d, err := loadForEdit(ctx, cfg, opts, sessions, sessionName)
	if err != nil {
		return err
	}

	sess, err := session.New(sessionName, d, session.DefaultTTL)
	if err != nil {
		return err
	}

	model := NewEditorModel(d)
	model.Autosave = func(d *bone.Diagram) {
		if err := sess.Snapshot(d, session.DefaultTTL); err != nil {
			return
		}
		_ = sessions.Set(ctx, sess)
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	result, ok := final.(EditorModel)
	if !ok {
		return fmt.Errorf("unexpected editor state")
	}

	if !result.Saved {
		if result.Dirty {
			printWarning("Changes not saved to the diagram")
			printDetail("A session snapshot was kept; rerun with --resume to pick it up")
			logger.Debug("session snapshot kept", "id", sess.ID)
		}
		return nil
	}

	if opts.name != "" {
		st, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close(ctx)
		if err := st.Save(ctx, opts.name, result.Diagram); err != nil {
			return err
		}
		printSuccess("Saved %q (%d bones)", opts.name, result.Diagram.BoneCount())
	} else {
		if err := fishio.Export(result.Diagram, opts.input); err != nil {
			return err
		}
		printSuccess("Saved %s (%d bones)", opts.input, result.Diagram.BoneCount())
	}

	_ = sessions.Delete(ctx, sess.ID)
	printNextStep("Render it", editRenderHint(opts))
	return nil
}

// loadForEdit picks the edit starting point: the latest session snapshot
// with --resume, otherwise the saved diagram.
func loadForEdit(ctx context.Context, cfg config.Config, opts *editOpts, sessions *session.FileStore, sessionName string) (*bone.Diagram, error) {
	if opts.resume {
		sess, err := sessions.Latest(ctx, sessionName)
		if err == nil {
			printInfo("Resuming session snapshot from %s", sess.SavedAt.Format("2006-01-02 15:04:05"))
			return sess.Diagram()
		}
		printWarning("No session snapshot found, opening the saved diagram")
	} else if sess, err := sessions.Latest(ctx, sessionName); err == nil {
		printInfo("A session snapshot from %s exists; rerun with --resume to use it",
			sess.SavedAt.Format("2006-01-02 15:04"))
	}

	if opts.name != "" {
		st, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		defer st.Close(ctx)
		return st.Load(ctx, opts.name)
	}
	return fishio.Import(opts.input)
}

func editRenderHint(opts *editOpts) string {
	if opts.name != "" {
		return "fishbone render --name " + opts.name
	}
	return "fishbone render " + opts.input
}
