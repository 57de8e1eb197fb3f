package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/gonewx/forklift/pkg/core"
)

var versionLine = regexp.MustCompile(`(?m)^const Version = "([^"]*)"$`)

// extractVersion 从 version.go 的内容中取出版本号
func extractVersion(content string) (core.VersionInfo, error) {
	m := versionLine.FindStringSubmatch(content)
	if m == nil {
		return core.VersionInfo{}, fmt.Errorf("no Version constant found")
	}
	return core.ParseVersion(m[1])
}

// replaceVersion 把 version.go 中的版本号替换为 v
func replaceVersion(content string, v core.VersionInfo) string {
	return versionLine.ReplaceAllString(content, fmt.Sprintf(`const Version = "%s"`, v.String()))
}

func readVersion(path string) (core.VersionInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.VersionInfo{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return extractVersion(string(data))
}

// bumpVersion 构建号加一并写回文件
func bumpVersion(path string) (core.VersionInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.VersionInfo{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	v, err := extractVersion(string(data))
	if err != nil {
		return core.VersionInfo{}, err
	}
	v.Build++
	if err := os.WriteFile(path, []byte(replaceVersion(string(data), v)), 0o644); err != nil {
		return core.VersionInfo{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return v, nil
}
