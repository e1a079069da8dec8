package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/orgstamp/internal/editor"
	"github.com/faizmokh/orgstamp/internal/files"
	"github.com/faizmokh/orgstamp/internal/timestamp"
)

func newShiftCommand(ctx context.Context, manager *files.Manager) *cobra.Command {
	var (
		text     string
		fileFlag string
		row      int
		col      int
		step     int
		back     bool
	)

	cmd := &cobra.Command{
		Use:   "shift (--text LINE | --file FILE --row N) --col C",
		Short: "Move the time under a column forward or backward.",
		Long:  "shift finds the HH:MM touching --col, moves it by the configured step and rounds the minute down to a multiple of five. The resulting line is printed; when no time is found it is printed unchanged.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			hasText := cmd.Flags().Changed("text")
			if hasText == (fileFlag != "") {
				return errors.New("exactly one of --text or --file is required")
			}
			override := cmd.Flags().Changed("step")
			if override {
				if err := validateStep(step); err != nil {
					return err
				}
			}

			h, p, err := loadHost(ctx, manager, timestamp.NewStamper())
			if err != nil {
				return err
			}
			defer p.Unload()

			run, err := shiftRunner(h, back, override, step)
			if err != nil {
				return err
			}

			var (
				buf    *editor.LineBuffer
				format files.LineFormat
			)
			if hasText {
				buf = editor.NewLineBuffer([]string{text})
				err = placeCaret(buf, 1, col)
			} else {
				buf, format, err = openAt(fileFlag, row, col)
			}
			if err != nil {
				return err
			}

			if run(buf) && !hasText {
				if err := files.WriteLinesFormat(fileFlag, buf.Lines(), format); err != nil {
					return fmt.Errorf("write %s: %w", fileFlag, err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), buf.Line(buf.Cursor().Line))
			return nil
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Line of text to edit")
	cmd.Flags().StringVar(&fileFlag, "file", "", "File to edit in place")
	cmd.Flags().IntVar(&row, "row", 1, "Line of --file to edit, starting at 1")
	cmd.Flags().IntVar(&col, "col", 0, "Caret column, counted in characters from 0")
	cmd.Flags().IntVar(&step, "step", 0, "Minutes to move, 1 to 1439 (default: configured step)")
	cmd.Flags().BoolVar(&back, "back", false, "Move backward instead of forward")
	_ = cmd.MarkFlagRequired("col")

	return cmd
}

// shiftRunner returns the registered shift command, or an ad hoc one when
// step overrides the configured offset.
func shiftRunner(h *host, back, override bool, step int) (func(editor.Host) bool, error) {
	if override {
		if back {
			return editor.ShiftTime(timestamp.Backward(step)), nil
		}
		return editor.ShiftTime(timestamp.Forward(step)), nil
	}

	id := editor.ShiftForwardID
	if back {
		id = editor.ShiftBackwardID
	}
	cmd, err := h.command(id)
	if err != nil {
		return nil, err
	}
	return cmd.Run, nil
}
