package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nexusmind/nexus"
	"github.com/nexusmind/nexus/graph"
	"github.com/nexusmind/nexus/hypothesis"
	"github.com/nexusmind/nexus/knowledge"
	"github.com/nexusmind/nexus/logging"
)

var (
	deriveEnergy    float64
	deriveCycles    int
	deriveReset     bool
	deriveKnowledge string
	deriveVerbose   bool
)

var deriveCmd = &cobra.Command{
	Use:   "derive",
	Short: "Run reasoning cycles over the knowledge graph and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Logger(logging.NoOpLogger{})
		if deriveVerbose {
			logger = logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
		}

		var g *graph.Graph
		if deriveKnowledge != "" {
			loaded, err := knowledge.LoadFile(deriveKnowledge, func(o *graph.Options) { o.Logger = logger })
			if err != nil {
				return err
			}
			g = loaded
		}

		n := nexus.New(func(o *nexus.Options) {
			o.Graph = g
			o.ResetActivations = deriveReset
			o.Logger = logger
		})

		for i := 0; i < deriveCycles; i++ {
			out, err := n.Step(deriveEnergy)
			if err != nil {
				return err
			}
			fmt.Printf("--- THINKING CYCLE #%d ---\n", out.Cycle)
			switch {
			case out.Principle == "":
				fmt.Println("No new patterns found. Awaiting more data.")
			case out.Hypothesis != nil:
				fmt.Printf("Principle '%s' accepted with %.2f%% confidence.\n", out.Principle, out.Confidence*100)
			default:
				fmt.Printf("Concept '%s': %s (confidence %.2f%%).\n", out.Principle, out.State, out.Confidence*100)
			}
		}

		fmt.Println()
		return hypothesis.RenderText(os.Stdout, n.Report())
	},
}

func init() {
	deriveCmd.Flags().Float64Var(&deriveEnergy, "energy", 10.0, "raw signal energy injected per cycle")
	deriveCmd.Flags().IntVar(&deriveCycles, "cycles", 1, "number of reasoning cycles to run")
	deriveCmd.Flags().BoolVar(&deriveReset, "reset", false, "reset activations at the start of each cycle")
	deriveCmd.Flags().StringVar(&deriveKnowledge, "knowledge", "", "YAML knowledge base file (default: built-in seed)")
	deriveCmd.Flags().BoolVarP(&deriveVerbose, "verbose", "v", false, "debug logging to stderr")
}
