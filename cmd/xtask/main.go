// xtask 构建辅助工具
//
//	go run ./cmd/xtask version            # 构建号加一，写回 pkg/core/version.go
//	go run ./cmd/xtask build [--release]  # 升版本并构建所有目标到 build/
//	go run ./cmd/xtask cleanup            # 删除旧版本的构建产物
//	go run ./cmd/xtask libname --target android --release
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/gonewx/forklift/pkg/core"
)

const (
	versionFile = "pkg/core/version.go"
	buildDir    = "build"
)

func main() {
	cmd := &cli.Command{
		Name:  "xtask",
		Usage: "build identity and packaging tasks",
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "bump the build number",
				Action: func(ctx context.Context, c *cli.Command) error {
					v, err := bumpVersion(versionFile)
					if err != nil {
						return err
					}
					fmt.Println(v)
					return nil
				},
			},
			{
				Name:  "build",
				Usage: "build all targets",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "release", Usage: "build in release mode"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					return buildAll(ctx, c.Bool("release"))
				},
			},
			{
				Name:  "cleanup",
				Usage: "remove build artifacts of older versions",
				Action: func(ctx context.Context, c *cli.Command) error {
					return cleanup(buildDir, versionFile)
				},
			},
			{
				Name:  "libname",
				Usage: "print the library name for a target",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "target", Value: core.Target, Usage: "android, ios, macos, windows or native"},
					&cli.BoolFlag{Name: "release", Usage: "release mode"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					v, err := readVersion(versionFile)
					if err != nil {
						return err
					}
					fmt.Println(core.FormatLibName(c.String("target"), modeName(c.Bool("release")), v.String()))
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func modeName(release bool) string {
	if release {
		return "release"
	}
	return "debug"
}
