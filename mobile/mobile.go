//go:build mobile

// Package mobile 是 ebitenmobile 的绑定入口，仅在 -tags mobile 下编译
//
//	cp -r data mobile/
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.forklift -o build/android/forklift.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Forklift.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/forklift/pkg/app"
	"github.com/gonewx/forklift/pkg/embedded"
)

func init() {
	embedded.Init(dataFS)

	forklift, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("[Mobile] 初始化失败: %v", err)
	}
	mobile.SetGame(forklift)
}

// Dummy 空导出函数，gomobile 需要包内至少有一个导出符号
func Dummy() {}
