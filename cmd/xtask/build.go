package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/gonewx/forklift/pkg/core"
)

// buildTarget 一个构建目标
type buildTarget struct {
	name   string
	goos   string // 空表示本机
	goarch string
	ext    string
}

func buildTargets() []buildTarget {
	native := buildTarget{name: "native"}
	if runtime.GOOS == "windows" {
		native.ext = ".exe"
	}
	return []buildTarget{
		native,
		{name: "webgl", goos: "js", goarch: "wasm", ext: ".wasm"},
	}
}

// artifactName 构建产物文件名；webgl 固定为 core<ext>，和 "__Internal" 库名对应
func artifactName(t buildTarget, mode string, v core.VersionInfo) string {
	if t.name == "webgl" {
		return "core" + t.ext
	}
	return "lib" + core.FormatLibName(t.name, mode, v.String()) + t.ext
}

func buildAll(ctx context.Context, release bool) error {
	fmt.Println("Building core")

	v, err := bumpVersion(versionFile)
	if err != nil {
		return err
	}
	fmt.Printf("Version v%s\n", v)

	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return err
	}

	mode := modeName(release)
	for _, t := range buildTargets() {
		if err := buildOne(ctx, t, mode, v); err != nil {
			return err
		}
	}

	fmt.Println("Build completed successfully!")
	return nil
}

func buildOne(ctx context.Context, t buildTarget, mode string, v core.VersionInfo) error {
	out := filepath.Join(buildDir, artifactName(t, mode, v))
	fmt.Printf("Building %s -> %s\n", t.name, out)

	args := []string{"build", "-o", out}
	if mode == "release" {
		args = append(args, "-tags", "release", "-trimpath")
	}
	args = append(args, ".")

	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	if t.goos != "" {
		cmd.Env = append(cmd.Env, "GOOS="+t.goos, "GOARCH="+t.goarch)
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to build %s target: %w", t.name, err)
	}
	return nil
}
