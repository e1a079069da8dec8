package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/orgstamp/internal/files"
	"github.com/faizmokh/orgstamp/internal/timestamp"
)

func newRenderCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var htmlInput bool

	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a note to HTML with timestamps marked up.",
		Long:  "render converts Markdown to HTML and wraps every org-style timestamp in styled spans. Reads stdin when the file is omitted or '-'.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			h, p, err := loadHost(ctx, manager, timestamp.NewStamper())
			if err != nil {
				return err
			}
			defer p.Unload()

			var out string
			if htmlInput {
				out, _ = h.pipeline.Process(string(src))
			} else {
				out, err = h.pipeline.Render(src)
				if err != nil {
					return err
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&htmlInput, "html", false, "Treat input as rendered HTML and only rewrite timestamps")

	return cmd
}

func readSource(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}
