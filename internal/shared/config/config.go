package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfigRelPath = "configs/conf.yml"

var Conf Config

// Load fills Conf.
//
//  1. cfgName (relative to the working directory or absolute) wins when set;
//  2. otherwise `configs/conf.yml` is searched from the working directory upward.
func Load(cfgName string) error {
	path, err := Resolve(cfgName)
	if err != nil {
		return err
	}
	c, err := Read(path)
	if err != nil {
		return err
	}
	Conf = c
	return nil
}

// Resolve turns cfgName into an absolute path following the rules of Load.
func Resolve(cfgName string) (string, error) {
	curDir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if cfgName != "" {
		if filepath.IsAbs(cfgName) {
			return cfgName, nil
		}
		return filepath.Join(curDir, cfgName), nil
	}
	return findConfigUpward(curDir)
}

func findConfigUpward(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, defaultConfigRelPath)
		if fileExist(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("config file not exist, searched %s from: %s", defaultConfigRelPath, startDir)
		}
		dir = parent
	}
}
