package app

import (
	"context"
	"errors"

	"assetcopy/internal/domain"
	"assetcopy/internal/logging"
)

// ResultFunc is called once per plan item, in plan order, as soon as its
// result is known.
type ResultFunc func(index, total int, result domain.CopyResult)

type Executor struct {
	FS FileSystem
	// Exif is optional. When set and the logger is verbose, copied assets are
	// inspected for capture metadata.
	Exif     ExifReader
	Logger   logging.Logger
	OnResult ResultFunc
}

// Execute copies every item of the plan. A failing item never stops the
// loop; only cancellation of ctx does, in which case the results gathered so
// far are returned with the context error.
func (e *Executor) Execute(ctx context.Context, plan domain.CopyPlan) ([]domain.CopyResult, error) {
	if e.FS == nil {
		return nil, errors.New("executor requires FS")
	}

	stop := e.Logger.Measure("Copy phase")
	defer stop()

	results := make([]domain.CopyResult, 0, len(plan.Items))
	for i, item := range plan.Items {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		result := e.copyItem(ctx, item)
		results = append(results, result)
		if e.OnResult != nil {
			e.OnResult(i, len(plan.Items), result)
		}
	}
	return results, nil
}

func (e *Executor) copyItem(ctx context.Context, item domain.CopyItem) domain.CopyResult {
	exists, err := e.FS.Exists(item.SourcePath)
	if err != nil {
		return domain.CopyFailed(item, err)
	}
	if !exists {
		e.Logger.Verbosef("Source missing: %s", item.SourcePath)
		return domain.SourceMissing(item)
	}

	if err := e.FS.CopyFile(item.SourcePath, item.DestPath); err != nil {
		return domain.CopyFailed(item, err)
	}

	info, err := e.FS.Stat(item.DestPath)
	if err != nil {
		return domain.CopyFailed(item, err)
	}

	e.inspect(ctx, item)
	return domain.Copied(item, info.Size())
}

func (e *Executor) inspect(ctx context.Context, item domain.CopyItem) {
	if e.Exif == nil || !e.Logger.Verbose {
		return
	}
	takenAt, camera, err := e.Exif.Inspect(ctx, item.DestPath)
	if err != nil {
		return
	}
	if camera != "" {
		e.Logger.Verbosef("%s was captured %s with %s", item.Pair.Dest, takenAt.Format("2006-01-02 15:04"), camera)
		return
	}
	e.Logger.Verbosef("%s was captured %s", item.Pair.Dest, takenAt.Format("2006-01-02 15:04"))
}
