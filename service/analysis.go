package service

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/contractflow/backend/config"
	"github.com/contractflow/backend/model"
)

// AnalysisSink accepts analysis records for a contract at any later time.
type AnalysisSink interface {
	CreateAiAnalysis(analysis model.AiAnalysis) *model.AiAnalysis
}

// Analyzer simulates the AI review pipeline: it fabricates a pseudo-random
// analysis and writes it through the store. A real inference backend would
// replace the generate step and keep the same surface.
type Analyzer struct {
	sink  AnalysisSink
	delay time.Duration
}

func NewAnalyzer(sink AnalysisSink, cfg *config.AnalysisConfig) *Analyzer {
	return &Analyzer{
		sink:  sink,
		delay: time.Duration(cfg.DelaySeconds) * time.Second,
	}
}

// Schedule queues an analysis for the contract after the configured delay.
// Fire-and-forget: the write is lost if the process exits first, and there
// is no cancellation for an in-flight timer.
func (a *Analyzer) Schedule(contractID int) {
	time.AfterFunc(a.delay, func() {
		analysis := a.sink.CreateAiAnalysis(a.generate(contractID, 0.8))
		slog.Info("scheduled analysis completed",
			"contract_id", contractID,
			"analysis_id", analysis.ID,
			"suggested_action", analysis.SuggestedAction,
		)
	})
}

// Analyze produces and stores an analysis immediately, for the on-demand
// re-analysis endpoint.
func (a *Analyzer) Analyze(contractID int) *model.AiAnalysis {
	return a.sink.CreateAiAnalysis(a.generate(contractID, 0.7))
}

// generate fabricates an analysis. requestInfoBar is the threshold above
// which the suggested action flips from approve to request_info.
func (a *Analyzer) generate(contractID int, requestInfoBar float64) model.AiAnalysis {
	suggested := model.ActionApprove
	if rand.Float64() > requestInfoBar {
		suggested = model.ActionRequestInfo
	}

	riskFlags := []string{}
	if rand.Float64() > 0.8 {
		riskFlags = []string{"Unusual termination clause"}
	}

	return model.AiAnalysis{
		ContractID:      contractID,
		AnalysisType:    "content",
		ConfidenceScore: fmt.Sprintf("%.2f", rand.Float64()*40+60), // 60-100
		SuggestedAction: suggested,
		KeyFindings: []string{
			"Contract structure is standard",
			"Payment terms are acceptable",
			"Liability clauses reviewed",
		},
		RiskFlags:       riskFlags,
		Recommendations: "AI analysis completed successfully. Review suggested actions.",
	}
}
