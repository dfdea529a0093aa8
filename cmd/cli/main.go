package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const guidance = `improsync is a library, not a standalone tool.

Import it in your Go program to analyze interruptive generations (IGs)
detected in the control signals of trio improvisation sessions:

    import "github.com/freeimpro/improsync/pkg/improsync"

    a := improsync.New(improsync.WithThreshold(4), improsync.WithTau(2))
    duos, err := a.DuoCount(trio)
    trios, err := a.TrioCount(trio)

The building blocks are exported as well: event detection (events.Detect),
interval extraction (events.Intervals), deduplication (events.Dedupe), duo
matching (match.Duo) and the trio aggregators (match.CountDuos and
match.CountTrios).
`

func main() {
	root := &cobra.Command{
		Use:   "improsync",
		Short: "IG synchronization analysis for trio improvisation sessions",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(guidance)
		},
	}
	if err := root.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
