package app

import (
	"context"
	"io/fs"
	"time"
)

type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) (bool, error)
	ReadDir(path string) ([]fs.DirEntry, error)
	CopyFile(src, dst string) error
}

type ExifReader interface {
	Inspect(ctx context.Context, path string) (time.Time, string, error)
}
