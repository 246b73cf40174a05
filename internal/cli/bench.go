package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/rainbow"
	"github.com/PavelVanecek/touching-dom-with-rainbows/internal/view"
)

const benchRowWidth = 40

func newBenchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare the three strategies headlessly",
		Long: `bench seeds a container with a list of rainbows, then measures prepending
one more row with each strategy: full redraw, batched redraw, insert one.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("items")
			if n <= 0 {
				n = cfg.DefaultCount * 10
			}
			if n <= 0 {
				n = 100
			}
			runBench(cmd.OutOrStdout(), logger, n)
			return nil
		},
	}
	cmd.Flags().Int("items", 0, "list size to seed (0 = 10x config default)")
	return cmd
}

// runBench seeds a fresh container with n rows per strategy, then draws the
// n+1 row list. Every strategy ends with the same children; only the reflow
// count and the wall clock differ.
func runBench(w io.Writer, log zerolog.Logger, n int) {
	sync := view.NewSynchronizer(log)
	render := rainbow.Renderer(benchRowWidth)

	seed := func() *view.Container {
		c := view.NewContainer(render)
		sync.BatchedRedraw(c, rainbow.Items(n))
		return c
	}

	full := sync.FullRedraw(seed(), rainbow.Items(n+1))
	batched := sync.BatchedRedraw(seed(), rainbow.Items(n+1))
	insert := sync.InsertOne(seed(), rainbow.New(n), 0)

	lines := []string{
		titleStyle.Render(fmt.Sprintf("Prepending one rainbow onto %d", n)),
		"",
	}
	for _, res := range []view.Result{full, batched, insert} {
		lines = append(lines, fmt.Sprintf("%-16s %5d reflows   %s",
			res.Strategy, res.Reflows, mutedStyle.Render(rainbow.DurationLabel(res.Elapsed))))
	}
	fmt.Fprintln(w, panel(lines))
}
