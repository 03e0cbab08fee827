package ingest

import (
	"context"
	"log/slog"
	"path/filepath"

	"mongoloid/internal/area"
)

type SubdirReport struct {
	Name  string
	Files int
}

// Report describes a finished run.
type Report struct {
	Subdirs []SubdirReport
	Load    LoadResult
}

// Run walks <dir>/constituencies, decodes every file and loads the
// combined sequence into store. Any walk or decode error stops the run
// before anything is written.
func Run(ctx context.Context, dir string, store AreaStore, log *slog.Logger) (Report, error) {
	var rep Report

	subdirs, err := Walk(filepath.Join(dir, RootDir))
	if err != nil {
		return rep, err
	}

	var areas []area.Area
	for _, sd := range subdirs {
		batch := make([]area.Area, 0, len(sd.Files))
		for _, path := range sd.Files {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			log.Info("processing_file", slog.String("path", path))
			a, err := area.LoadFile(path)
			if err != nil {
				return rep, err
			}
			batch = append(batch, a)
		}
		areas = append(areas, batch...)
		rep.Subdirs = append(rep.Subdirs, SubdirReport{Name: sd.Name, Files: len(batch)})
	}

	rep.Load, err = NewLoader(store, log).Load(ctx, areas)
	return rep, err
}
