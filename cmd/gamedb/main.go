package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/satellite-games/new-horizons-database/internal/gamedb"
	"github.com/satellite-games/new-horizons-database/internal/shared/config"
	"github.com/satellite-games/new-horizons-database/internal/shared/logs"
	"github.com/satellite-games/new-horizons-database/modules/kit/logx"
)

const appName = "gamedb"

type options struct {
	configPath string
	watch      bool
	check      bool
}

func main() {
	var opts options
	flags := pflag.NewFlagSet(appName, pflag.ExitOnError)
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default: configs/conf.yml searched upward)")
	flags.BoolVar(&opts.watch, "watch", false, "keep running and reload table files when they change")
	flags.BoolVar(&opts.check, "check", false, "validate every blueprint table and exit")
	_ = flags.Parse(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options) error {
	cfgPath, err := config.Resolve(opts.configPath)
	if err != nil {
		return err
	}
	if err := config.Load(cfgPath); err != nil {
		return err
	}
	if err := logs.Init(appName, config.Conf.Log); err != nil {
		return err
	}
	defer func() { _ = logs.Sync() }()
	logs.Info("conf", zap.Any("conf", config.Conf))

	db := gamedb.New(logx.NewZapLogger(logs.Logger()))
	if err := db.LoadBuiltin(); err != nil {
		return err
	}

	baseDir := filepath.Dir(cfgPath)
	var tables []string
	for _, f := range config.Conf.Database.BlueprintFiles {
		if !filepath.IsAbs(f) {
			f = filepath.Join(baseDir, f)
		}
		if err := db.LoadFile(f); err != nil {
			return err
		}
		tables = append(tables, f)
	}

	if opts.check {
		logs.Info("blueprint tables valid", zap.Int("character_presets", len(db.CharacterPresets())))
		return nil
	}
	db.LogTemplates()

	if !opts.watch && !config.Conf.Database.Watch {
		return nil
	}
	for _, f := range tables {
		if err := db.Watch(f, nil); err != nil {
			return err
		}
	}
	<-ctx.Done()
	logs.Info("shutting down")
	return nil
}
