package cli

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/isdelr/phishstats/internal/frame"
	"github.com/isdelr/phishstats/internal/output"
	"github.com/spf13/cobra"
)

// frameExample is the structured form of a walkthrough step.
type frameExample struct {
	Title   string     `json:"title" yaml:"title"`
	Text    string     `json:"text,omitempty" yaml:"text,omitempty"`
	Headers []string   `json:"headers,omitempty" yaml:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty" yaml:"rows,omitempty"`
}

func newFramesCmd(a *app) *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Walk through labeled series and table concat, merge and join",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			examples, err := frame.Examples(rand.New(rand.NewPCG(seed, seed)))
			if err != nil {
				return err
			}

			structured := make([]frameExample, len(examples))
			for i, ex := range examples {
				structured[i] = frameExample{Title: ex.Title, Text: ex.Text}
				if ex.Table != nil {
					structured[i].Headers = ex.Table.Headers()
					structured[i].Rows = ex.Table.Rows()
				}
			}

			return a.printer.Print(structured, func(w io.Writer) error {
				for _, ex := range examples {
					body := ex.Text
					if ex.Table != nil {
						body = output.Table(ex.Table)
					}
					if err := output.Section(w, fmt.Sprintf("%s:", ex.Title), body); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the random example series")
	return cmd
}
