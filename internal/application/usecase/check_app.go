package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sailakshmi-repaka/LoanShield/internal/application/dto"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/model"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/port"
	"github.com/sailakshmi-repaka/LoanShield/internal/domain/service"
)

// CheckApp is the use case for classifying one application: it resolves the
// store listing, gathers the review, registry and community signals, runs the
// decision engine, and publishes the resulting events.
type CheckApp struct {
	catalog   port.StoreCatalog
	reports   port.ReportRepository
	publisher port.EventPublisher
	analyzer  *service.ReviewAnalyzer
	matcher   *service.RegistryMatcher
	engine    *service.VerdictEngine
	logger    *slog.Logger
}

// NewCheckApp creates a new CheckApp use case.
func NewCheckApp(
	catalog port.StoreCatalog,
	reports port.ReportRepository,
	publisher port.EventPublisher,
	analyzer *service.ReviewAnalyzer,
	matcher *service.RegistryMatcher,
	engine *service.VerdictEngine,
	logger *slog.Logger,
) *CheckApp {
	return &CheckApp{
		catalog:   catalog,
		reports:   reports,
		publisher: publisher,
		analyzer:  analyzer,
		matcher:   matcher,
		engine:    engine,
		logger:    logger,
	}
}

// Execute classifies the queried application. Upstream failures degrade to
// conservative signals instead of failing the request; only invalid input
// returns an error.
func (uc *CheckApp) Execute(ctx context.Context, req dto.CheckAppRequest) (dto.AssessmentResponse, error) {
	assessment, err := model.NewAppAssessment(req.Query)
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	listing, found := uc.resolveListing(ctx, assessment.Query())

	var signal service.ReviewSignal
	if found {
		assessment.AttachListing(listing)
		signal = uc.analyzer.Analyze(ctx, listing.AppID)
	} else {
		signal = service.FailSafeSignal(false)
	}
	assessment.AttachReviewSignal(signal.Sentiment, signal.Risk, signal.Summary)

	match := uc.matcher.Match(ctx, assessment.AppID(), assessment.Title())
	assessment.AttachRegistration(match.Registered, match.LenderName, match.LenderType)

	reportCount, alreadyReported := uc.communitySignal(ctx, assessment.Title(), req.Reporter)
	assessment.AttachCommunitySignal(reportCount, alreadyReported)

	outcome := uc.engine.Decide(service.VerdictInput{
		Listing:         assessment.Listing(),
		StoreAvailable:  assessment.StoreAvailable(),
		Review:          signal,
		Registered:      match.Registered,
		LenderName:      match.LenderName,
		LenderType:      match.LenderType,
		ReportCount:     reportCount,
		AlreadyReported: alreadyReported,
	})
	if err := assessment.Assess(outcome.Verdict, outcome.Reason); err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("failed to finalize assessment: %w", err)
	}

	// The verdict stands even when the event bus is down.
	if evts := assessment.Events(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			uc.logger.Warn("failed to publish assessment events",
				slog.String("assessment_id", assessment.ID().String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return dto.FromModel(assessment), nil
}

// resolveListing tries the query as a direct store identifier first, then
// falls back to a free-text search and resolves the top hit.
func (uc *CheckApp) resolveListing(ctx context.Context, query string) (model.Listing, bool) {
	listing, err := uc.catalog.Lookup(ctx, query)
	if err == nil {
		return listing, true
	}
	uc.logger.Debug("direct listing lookup failed, falling back to search",
		slog.String("query", query),
		slog.String("error", err.Error()),
	)

	results, err := uc.catalog.Search(ctx, query)
	if err != nil || len(results) == 0 {
		if err != nil {
			uc.logger.Warn("store search failed",
				slog.String("query", query),
				slog.String("error", err.Error()),
			)
		}
		return model.Listing{}, false
	}

	listing, err = uc.catalog.Lookup(ctx, results[0].AppID)
	if err != nil {
		uc.logger.Warn("listing lookup for top search hit failed",
			slog.String("query", query),
			slog.String("app_id", results[0].AppID),
			slog.String("error", err.Error()),
		)
		return model.Listing{}, false
	}
	return listing, true
}

// communitySignal reads the report ledger for the resolved title. Ledger
// failures degrade to a zero count rather than blocking the verdict.
func (uc *CheckApp) communitySignal(ctx context.Context, title, reporter string) (int, bool) {
	count, err := uc.reports.CountByTitle(ctx, title)
	if err != nil {
		uc.logger.Warn("report ledger unavailable, assuming zero reports",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return 0, false
	}

	if reporter == "" || count == 0 {
		return count, false
	}
	already, err := uc.reports.Exists(ctx, reporter, title)
	if err != nil {
		uc.logger.Warn("report ledger existence check failed",
			slog.String("title", title),
			slog.String("error", err.Error()),
		)
		return count, false
	}
	return count, already
}
