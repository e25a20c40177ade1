package app

import (
	"context"
	"errors"
	"path/filepath"

	"assetcopy/internal/domain"
	"assetcopy/internal/logging"
)

type Planner struct {
	FS     FileSystem
	Logger logging.Logger
	// AllowDuplicateSources keeps every pair instead of letting a repeated
	// source name overwrite the destination of its first occurrence.
	AllowDuplicateSources bool
	// ProbeSources fills CopyItem.SourceExists, for dry runs.
	ProbeSources bool
}

func (p *Planner) Plan(ctx context.Context, sourceDir, destDir string, pairs []domain.AssetPair) (domain.CopyPlan, error) {
	if p.FS == nil {
		return domain.CopyPlan{}, errors.New("planner requires FS")
	}
	if len(pairs) == 0 {
		return domain.CopyPlan{}, errors.New("asset mapping is empty")
	}

	stop := p.Logger.Measure("Planning copy")
	defer stop()

	mapping, collapsed := domain.BuildMapping(pairs, p.AllowDuplicateSources)
	if collapsed > 0 {
		p.Logger.Warnf("%d mapping entries share a source name with a later entry and were collapsed", collapsed)
	}

	plan := domain.CopyPlan{
		SourceDir: sourceDir,
		DestDir:   destDir,
		Items:     make([]domain.CopyItem, 0, len(mapping)),
		Collapsed: collapsed,
		Probed:    p.ProbeSources,
	}

	for _, pair := range mapping {
		if err := ctx.Err(); err != nil {
			return domain.CopyPlan{}, err
		}

		item := domain.CopyItem{
			Pair:       pair,
			SourcePath: filepath.Join(sourceDir, pair.Source),
			DestPath:   filepath.Join(destDir, pair.Dest),
		}
		if p.ProbeSources {
			exists, err := p.FS.Exists(item.SourcePath)
			if err != nil {
				p.Logger.Verbosef("Cannot stat %s: %v", item.SourcePath, err)
			}
			item.SourceExists = exists
			if !exists {
				plan.Missing++
			}
		}
		plan.Items = append(plan.Items, item)
	}

	p.Logger.Verbosef("Planned %d items from %d mapping entries (%d collapsed)", len(plan.Items), len(pairs), collapsed)
	return plan, nil
}
