package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gonewx/forklift/pkg/core"
)

// 保留最近 10 个构建号
const keepBuilds = 10

var artifactVersion = regexp.MustCompile(`^libcore_\w+?_\w+?_(\d+-\d+-\d+)-(\d{5})`)

var artifactExts = map[string]bool{".so": true, ".dylib": true, ".dll": true, ".a": true, ".exe": true, "": true}

// artifactVersionOf 从文件名解析版本；不是构建产物时返回 false
func artifactVersionOf(filename string) (core.VersionInfo, bool) {
	if !artifactExts[filepath.Ext(filename)] {
		return core.VersionInfo{}, false
	}
	m := artifactVersion.FindStringSubmatch(filename)
	if m == nil {
		return core.VersionInfo{}, false
	}
	build, err := strconv.Atoi(m[2])
	if err != nil {
		return core.VersionInfo{}, false
	}
	return core.VersionInfo{Base: m[1], Build: build}, true
}

// shouldRemove 基础版本更旧，或构建号落后 keepBuilds 个以上
func shouldRemove(filename string, current core.VersionInfo) bool {
	v, ok := artifactVersionOf(filename)
	if !ok {
		return false
	}
	if strings.Compare(v.Base, current.Base) < 0 {
		return true
	}
	return current.Build >= keepBuilds && v.Build <= current.Build-keepBuilds
}

func cleanup(dir, versionPath string) error {
	fmt.Println("Cleaning up old library versions")

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		fmt.Println("No build directory found, nothing to clean")
		return nil
	}

	current, err := readVersion(versionPath)
	if err != nil {
		return err
	}

	var toRemove []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && shouldRemove(d.Name(), current) {
			toRemove = append(toRemove, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", dir, err)
	}

	if len(toRemove) == 0 {
		fmt.Println("No old library files found to remove")
		return nil
	}

	deleted, failed := 0, 0
	for _, path := range toRemove {
		if err := os.Remove(path); err != nil {
			failed++
			continue
		}
		deleted++
	}

	if failed > 0 {
		fmt.Printf("%d files deleted, %d failed\n", deleted, failed)
	} else {
		fmt.Printf("%d files deleted\n", deleted)
	}
	return nil
}
