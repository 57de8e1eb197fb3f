package main

import "embed"

// dataFS 关卡与按键绑定随二进制一起发布
// go:embed 只能引用本包目录下的文件，所以放在与 data/ 同级的根目录
//
//go:embed data/levels data/input_bindings.yaml
var dataFS embed.FS
