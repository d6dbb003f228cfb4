package assessment

import (
	"sync"

	"github.com/rs/zerolog"

	"risk-assessor/internal/models"
	"risk-assessor/internal/recommend"
)

// Result bundles all structured outputs of one assessment run.
type Result struct {
	RiskAssessment    models.RiskAssessment       `json:"risk_assessment"`
	PortfolioAnalysis models.PortfolioAnalysis    `json:"portfolio_analysis"`
	RiskCategory      models.RiskCategory         `json:"risk_category"`
	Recommendation    models.RecommendationResult `json:"recommendation"`
}

// Engine runs the full assessment pipeline. It is stateless across
// invocations: every run is a deterministic function of its inputs.
type Engine struct {
	scorer      *ProfileScorer
	analyzer    *PortfolioAnalyzer
	categorizer *RiskCategorizer
	matrix      *recommend.Matrix
	assembler   *recommend.Assembler
	logger      zerolog.Logger
}

// NewEngine creates an engine with the standard components.
func NewEngine(logger zerolog.Logger) *Engine {
	return &Engine{
		scorer:      NewProfileScorer(),
		analyzer:    NewPortfolioAnalyzer(),
		categorizer: NewRiskCategorizer(),
		matrix:      recommend.NewMatrix(),
		assembler:   recommend.NewAssembler(),
		logger:      logger,
	}
}

// NewEngineWithSIPFloor creates an engine with a custom SIP floor.
func NewEngineWithSIPFloor(logger zerolog.Logger, sipFloor float64) *Engine {
	e := NewEngine(logger)
	e.assembler = recommend.NewAssemblerWithFloor(sipFloor)
	return e
}

// Assess runs the pipeline on one input snapshot. The four leaf
// computations have no data dependency on each other and run
// concurrently; correctness never depends on that, only latency.
func (e *Engine) Assess(profile models.UserProfile, portfolio models.Portfolio) (*Result, error) {
	var (
		assessment models.RiskAssessment
		analysis   models.PortfolioAnalysis
		horizon    models.TimeHorizon
		lumpsum    bool
	)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		assessment = e.scorer.Score(profile)
	}()
	go func() {
		defer wg.Done()
		analysis = e.analyzer.Analyze(portfolio)
	}()
	go func() {
		defer wg.Done()
		horizon = ClassifyTimeHorizon(profile.Goals, profile.Age)
	}()
	go func() {
		defer wg.Done()
		lumpsum = LumpsumAvailable(profile.TotalSavings, profile.MonthlyExpenses)
	}()
	wg.Wait()

	category := e.categorizer.Categorize(assessment.RiskScore, analysis)

	template, err := e.matrix.Lookup(category.FinalCategory, horizon, lumpsum)
	if err != nil {
		e.logger.Error().Err(err).
			Str("category", string(category.FinalCategory)).
			Str("horizon", string(horizon)).
			Bool("lumpsum", lumpsum).
			Msg("Decision matrix lookup failed")
		return nil, err
	}

	recommendation := e.assembler.Assemble(template, recommend.Request{
		RiskCategory:     category.FinalCategory,
		TimeHorizon:      horizon,
		LumpsumAvailable: lumpsum,
		MonthlyIncome:    profile.MonthlyIncome(),
		TotalSavings:     profile.TotalSavings,
		MonthlyExpenses:  profile.MonthlyExpenses,
	})

	e.logger.Info().
		Int("risk_score", assessment.RiskScore).
		Str("category", string(category.FinalCategory)).
		Str("horizon", string(horizon)).
		Bool("lumpsum", lumpsum).
		Str("strategy", recommendation.PrimaryStrategy).
		Msg("Assessment completed")

	return &Result{
		RiskAssessment:    assessment,
		PortfolioAnalysis: analysis,
		RiskCategory:      category,
		Recommendation:    recommendation,
	}, nil
}
