package app

import (
	"context"
	"errors"

	"assetcopy/internal/domain"
)

// Runner performs the copy phase followed by the listing phase.
type Runner struct {
	Executor *Executor
	Lister   *Lister
}

func (r *Runner) Run(ctx context.Context, plan domain.CopyPlan) (domain.Report, error) {
	if r.Executor == nil || r.Lister == nil {
		return domain.Report{}, errors.New("runner requires Executor and Lister")
	}

	report := domain.Report{Plan: plan}

	results, err := r.Executor.Execute(ctx, plan)
	report.Results = results
	if err != nil {
		return report, err
	}

	report.Listing = r.Lister.List(ctx, plan.DestDir)
	return report, nil
}
