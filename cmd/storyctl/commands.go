package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/story-editor/internal/adapters/storage/record"
	"github.com/jsamuelsen11/story-editor/internal/adapters/storage/seed"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
)

// reducer is the shape shared by the story mutations.
type reducer func(*story.Story) (*story.Story, story.Change, error)

// output is what every subcommand prints.
type output struct {
	Story   record.Story `json:"story"`
	Changed changed      `json:"changed"`
	Deleted []string     `json:"deleted"`
}

type changed struct {
	Pages     bool `json:"pages"`
	Selection bool `json:"selection"`
	Current   bool `json:"current"`
}

func newRootCmd() *cobra.Command {
	var file string

	root := &cobra.Command{
		Use:           "storyctl",
		Short:         "Apply story editor mutations to a story file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&file, "file", "f", "", "story document (YAML or JSON)")
	_ = root.MarkPersistentFlagRequired("file")

	root.AddCommand(
		newDeleteElementsCmd(&file),
		newSelectCmd(&file),
		newSetPageCmd(&file),
	)
	return root
}

func newDeleteElementsCmd(file *string) *cobra.Command {
	var (
		ids       []string
		selection bool
	)

	cmd := &cobra.Command{
		Use:   "delete-elements",
		Short: "Delete elements from the current page",
		Long: `Deletes the given element ids, or the current selection, from the
current page and drops them from the selection. An empty --ids list is
accepted and leaves the story unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if selection == cmd.Flags().Changed("ids") {
				return errors.New("exactly one of --ids or --selection must be given")
			}
			target := story.Elements(ids...)
			if selection {
				target = story.Selected()
			}
			return apply(cmd.OutOrStdout(), *file, func(s *story.Story) (*story.Story, story.Change, error) {
				return story.DeleteElements(s, target)
			})
		},
	}
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "comma-separated element ids to delete")
	cmd.Flags().BoolVar(&selection, "selection", false, "delete the selected elements")
	return cmd
}

func newSelectCmd(file *string) *cobra.Command {
	var ids []string

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Replace the selection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return apply(cmd.OutOrStdout(), *file, func(s *story.Story) (*story.Story, story.Change, error) {
				return story.SelectElements(s, ids)
			})
		},
	}
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "comma-separated element ids; empty clears the selection")
	return cmd
}

func newSetPageCmd(file *string) *cobra.Command {
	var page string

	cmd := &cobra.Command{
		Use:   "set-page",
		Short: "Change the current page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return apply(cmd.OutOrStdout(), *file, func(s *story.Story) (*story.Story, story.Change, error) {
				return story.SetCurrentPage(s, page)
			})
		},
	}
	cmd.Flags().StringVar(&page, "page", "", "page id to make current")
	_ = cmd.MarkFlagRequired("page")
	return cmd
}

// apply reads the story at path, runs fn and prints the result. The story
// is not validated first, so a damaged document fails the way the reducer
// would fail on it in the service.
func apply(w io.Writer, path string, fn reducer) error {
	s, err := seed.ReadStory(path)
	if err != nil {
		return err
	}

	next, change, err := fn(s)
	if err != nil {
		return err
	}

	deleted := change.Deleted
	if deleted == nil {
		deleted = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output{
		Story: record.FromStory(next),
		Changed: changed{
			Pages:     change.Pages,
			Selection: change.Selection,
			Current:   change.Current,
		},
		Deleted: deleted,
	})
}
