package app

import (
	"context"
	"errors"
	"path/filepath"

	"assetcopy/internal/domain"
	"assetcopy/internal/logging"
)

type Lister struct {
	FS      FileSystem
	Filters []string
	Logger  logging.Logger
}

// List returns every entry of dir whose name matches one of the filters, in
// directory order. The first failure ends the listing and is carried in the
// returned value rather than returned.
func (l *Lister) List(ctx context.Context, dir string) domain.Listing {
	if l.FS == nil {
		return domain.Listing{Err: errors.New("lister requires FS")}
	}

	entries, err := l.FS.ReadDir(dir)
	if err != nil {
		return domain.Listing{Err: err}
	}

	var listing domain.Listing
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			listing.Err = err
			return listing
		}
		if !domain.MatchesAny(entry.Name(), l.Filters) {
			continue
		}
		info, err := l.FS.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			listing.Err = err
			return listing
		}
		listing.Entries = append(listing.Entries, domain.ListingEntry{Name: entry.Name(), Size: info.Size()})
	}

	l.Logger.Verbosef("Listed %d of %d entries in %s", len(listing.Entries), len(entries), dir)
	return listing
}
