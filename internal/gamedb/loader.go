package gamedb

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/satellite-games/new-horizons-database/internal/blueprint"
	"github.com/satellite-games/new-horizons-database/internal/characterfeatures"
	"github.com/satellite-games/new-horizons-database/modules/kit/errx"
	"github.com/satellite-games/new-horizons-database/modules/kit/logx"
)

// CharacterPresetsKey is the top-level key of a character preset table file.
const CharacterPresetsKey = "character_presets"

// LoadFile reads an extra table file (YAML, JSON or TOML, chosen by extension)
// and registers its records after everything loaded before.
func (d *Database) LoadFile(path string) error {
	path = filepath.Clean(path)

	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.files[path]; ok {
		return errx.ErrInvalidData.WithData("path", path).WithData("reason", "table file already loaded")
	}

	v := newTableViper(path)
	if err := v.ReadInConfig(); err != nil {
		err = errx.ErrUnavailable.WithData("path", path).WithCause(err)
		logx.ReportError(d.log, "read blueprint table", err)
		return err
	}
	bps, err := d.decodeTable(v, path)
	if err != nil {
		logx.ReportError(d.log, "decode blueprint table", err, zap.String("path", path))
		return err
	}
	if err := d.presets.Register(bps...); err != nil {
		logx.ReportError(d.log, "register blueprint table", err, zap.String("path", path))
		return err
	}

	d.files[path] = bps
	d.fileOrder = append(d.fileOrder, path)
	d.watchers[path] = v
	d.log.Info("blueprint table loaded",
		zap.String("kind", characterfeatures.CharacterPresetKind),
		zap.String("path", path),
		zap.Int("count", len(bps)),
	)
	return nil
}

// Watch reloads a table file previously loaded with LoadFile whenever it changes.
// A reload that fails leaves the registered blueprints untouched. onReload, when
// not nil, is called after every reload attempt.
func (d *Database) Watch(path string, onReload func(error)) error {
	path = filepath.Clean(path)

	d.mu.Lock()
	v, ok := d.watchers[path]
	if ok {
		// the watcher goroutine now owns v
		delete(d.watchers, path)
	}
	d.mu.Unlock()
	if !ok {
		return errx.ErrInvalidData.WithData("path", path).WithData("reason", "table file not loaded or already watched")
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		err := d.reload(v, path)
		if onReload != nil {
			onReload(err)
		}
	})
	v.WatchConfig()
	d.log.Info("watching blueprint table", zap.String("path", path))
	return nil
}

// Reload re-reads a table file loaded with LoadFile.
func (d *Database) Reload(path string) error {
	path = filepath.Clean(path)

	d.mu.Lock()
	_, ok := d.files[path]
	d.mu.Unlock()
	if !ok {
		return errx.ErrInvalidData.WithData("path", path).WithData("reason", "table file not loaded")
	}
	v := newTableViper(path)
	if err := v.ReadInConfig(); err != nil {
		err = errx.ErrUnavailable.WithData("path", path).WithCause(err)
		logx.ReportError(d.log, "reload blueprint table", err)
		return err
	}
	return d.reload(v, path)
}

// reload rebuilds the whole registry from the built-ins and every table file,
// with path's records taken from the freshly read v.
func (d *Database) reload(v *viper.Viper, path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	bps, err := d.decodeTable(v, path)
	if err != nil {
		logx.ReportError(d.log, "reload blueprint table", err, zap.String("path", path))
		return err
	}

	all := make([]characterfeatures.CharacterPresetBlueprint, 0, d.presets.Len()+len(bps))
	all = append(all, d.builtin...)
	for _, p := range d.fileOrder {
		if p == path {
			all = append(all, bps...)
			continue
		}
		all = append(all, d.files[p]...)
	}
	if err := d.presets.Replace(all); err != nil {
		logx.ReportError(d.log, "reload blueprint table", err, zap.String("path", path))
		return err
	}

	d.files[path] = bps
	d.log.Info("blueprint table reloaded",
		zap.String("kind", characterfeatures.CharacterPresetKind),
		zap.String("path", path),
		zap.Int("count", len(bps)),
	)
	return nil
}

func (d *Database) decodeTable(v *viper.Viper, path string) ([]characterfeatures.CharacterPresetBlueprint, error) {
	raw := v.Get(CharacterPresetsKey)
	if raw == nil {
		d.log.Warn("blueprint table has no records",
			zap.String("path", path),
			zap.String("key", CharacterPresetsKey),
		)
		return nil, nil
	}
	records, ok := raw.([]any)
	if !ok {
		return nil, blueprint.ErrDecode.WithData("path", path).WithData("key", CharacterPresetsKey)
	}
	bps, err := blueprint.DecodeRecords[characterfeatures.CharacterPresetBlueprint](records)
	if err != nil {
		if e, ok := err.(*blueprint.Error); ok {
			return nil, e.WithData("path", path)
		}
		return nil, err
	}
	return bps, nil
}

func newTableViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	return v
}
