package convert

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"dat2lpl/internal/dat"
	"dat2lpl/internal/fileutil"
	"dat2lpl/internal/logging"
	"dat2lpl/internal/playlist"
	"dat2lpl/internal/region"
	"dat2lpl/internal/romset"
)

// Options are the effective settings for one conversion run. They are
// threaded explicitly through the pipeline; no component reads ambient
// state.
type Options struct {
	CatalogPath string
	RootPath    string
	Format      romset.ArchiveFormat
	Mode        romset.StorageMode
	OutputPath  string

	RegionSplit bool
	MapPath     string
	MapWorld    bool

	// Verify checks that each resolved target exists on disk. Missing
	// targets are counted and logged; entries are still emitted.
	Verify bool

	NetworkValidation bool
	ValidationTimeout time.Duration
}

// Validate checks option invariants before any processing begins.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.CatalogPath) == "" {
		return Wrap(ErrConfig, "catalog path is required", nil)
	}
	if strings.TrimSpace(o.RootPath) == "" {
		return Wrap(ErrConfig, "ROM root path is required (--rom-path)", nil)
	}
	if strings.TrimSpace(o.OutputPath) == "" {
		return Wrap(ErrConfig, "output path is required", nil)
	}
	if o.MapPath != "" && !o.RegionSplit {
		return Wrap(ErrConfig, "region map requires region split (--region-split)", nil)
	}
	return nil
}

// FileReport summarizes one written playlist file.
type FileReport struct {
	Name  string `json:"name"`
	Items int    `json:"items"`
}

// Report summarizes a completed conversion run.
type Report struct {
	RunID   string       `json:"run_id"`
	Games   int          `json:"games"`
	Skipped int          `json:"skipped"`
	Missing int          `json:"missing"`
	Files   []FileReport `json:"files"`
}

// Run executes the conversion pipeline: parse the catalog, classify and
// resolve each game, and write one playlist per output group.
func Run(ctx context.Context, opts Options, logger *slog.Logger) (Report, error) {
	report := Report{RunID: uuid.NewString()}
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logger.With(logging.String("run_id", report.RunID))

	if err := opts.Validate(); err != nil {
		return report, err
	}

	var regionMap region.Map
	if opts.MapPath != "" {
		loaded, err := region.LoadMap(opts.MapPath)
		if err != nil {
			return report, Wrap(ErrConfig, "load region map", err)
		}
		regionMap = loaded
	}

	logger.Info("parsing catalog", logging.String("catalog", opts.CatalogPath))
	catalog, err := dat.Parse(opts.CatalogPath)
	if err != nil {
		return report, Wrap(ErrParse, "parse catalog", err)
	}
	report.Games = len(catalog.Games)
	logger.Info("catalog parsed",
		logging.Int("games", report.Games),
		logging.String("set", catalog.Header.Description),
	)

	if opts.NetworkValidation {
		validator := dat.NewValidator(opts.ValidationTimeout)
		if err := validator.ValidateSchema(ctx, catalog); err != nil {
			logger.Warn("schema validation failed; continuing", logging.Error(err))
		}
	}

	resolver := romset.NewResolver(opts.RootPath, opts.Format, opts.Mode, catalog.ParentIndex())
	builder := playlist.NewBuilder(opts.RegionSplit)

	if opts.RegionSplit {
		registerGroups(builder, catalog, regionMap, opts.MapWorld)
	}

	for _, game := range catalog.Games {
		path, ok := resolver.Resolve(game)
		if !ok {
			report.Skipped++
			logger.Warn("skipping game without file entries", logging.String("game", game.Name))
			continue
		}

		if opts.Verify {
			target, _ := romset.SplitEntryPath(path)
			if !fileutil.Exists(target) {
				report.Missing++
				logger.Warn("resolved target missing on disk",
					logging.String("game", game.Name),
					logging.String("target", target),
				)
			}
		}

		entry := playlist.Entry{Label: game.Name, Path: path, CRC: game.ROMs[0].CRC}

		if !opts.RegionSplit {
			builder.Add("", entry)
			continue
		}

		tokens := region.Tokens(game.Name)
		switch {
		case len(tokens) == 0:
			builder.AddNoRegion(entry)
		case !opts.MapWorld && region.ContainsWorld(tokens):
			builder.AddToAll(entry)
		default:
			for _, token := range tokens {
				if key, keep := regionMap.Resolve(token); keep {
					builder.Add(key, entry)
				}
			}
		}
	}

	files := builder.Files(opts.OutputPath, catalog.Header.Description)
	if err := playlist.WriteFiles(files); err != nil {
		return report, Wrap(ErrIO, "write playlists", err)
	}

	for _, file := range files {
		report.Files = append(report.Files, FileReport{Name: file.Name, Items: len(file.Document.Items)})
		logger.Info("playlist written",
			logging.String("file", file.Name),
			logging.Int("items", len(file.Document.Items)),
		)
	}
	return report, nil
}

// registerGroups fixes the output group set and ordering before entries are
// distributed. World-tagged games join every group, including groups first
// appearing later in the catalog, so the full set must exist up front. When
// a region map is in play, every group it can produce is seeded even if no
// catalog token maps there: World games must land in those groups too.
func registerGroups(builder *playlist.Builder, catalog *dat.File, regionMap region.Map, mapWorld bool) {
	if !mapWorld {
		for _, key := range regionMap.GroupKeys() {
			builder.EnsureGroup(key)
		}
	}
	for _, game := range catalog.Games {
		tokens := region.Tokens(game.Name)
		if len(tokens) == 0 {
			continue
		}
		if !mapWorld && region.ContainsWorld(tokens) {
			continue
		}
		for _, token := range tokens {
			if key, keep := regionMap.Resolve(token); keep {
				builder.EnsureGroup(key)
			}
		}
	}
}
