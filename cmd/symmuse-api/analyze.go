package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Stuti0916/SymMuse/internal/analytics"
	"github.com/Stuti0916/SymMuse/internal/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [export.json]",
	Short: "Analyze an exported record set",
	Long: `Run the analytics engine over a JSON export of periods, mood entries and
consultations without touching storage. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

var (
	analyzeAdvanced    bool
	analyzePredictions int
)

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeAdvanced, "advanced", false, "Include the advanced analytics section")
	analyzeCmd.Flags().IntVar(&analyzePredictions, "predictions", analytics.DefaultPredictionCycles, "Number of future cycles to predict")
}

type analyzeOutput struct {
	Overview models.HealthAnalytics    `json:"overview"`
	Advanced *models.AdvancedAnalytics `json:"advanced,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open export: %w", err)
		}
		defer f.Close()
		in = f
	}

	out, err := analyzeExport(in, analyzeAdvanced, analyzePredictions)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func analyzeExport(r io.Reader, advanced bool, predictions int) (*analyzeOutput, error) {
	var export models.Export
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("failed to decode export: %w", err)
	}
	if err := export.Validate(); err != nil {
		return nil, err
	}
	export.Normalize()

	engine := analytics.NewEngine(analytics.Options{PredictionCycles: predictions})
	dataset := analytics.Dataset{
		Periods:       export.Periods,
		Moods:         export.Moods,
		Consultations: export.Consultations,
	}

	out := &analyzeOutput{Overview: engine.Overview(dataset)}
	if advanced {
		result := engine.Advanced(dataset)
		out.Advanced = &result
	}
	return out, nil
}
