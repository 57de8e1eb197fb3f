//go:build mobile

package mobile

import "embed"

// dataFS 移动端资源，构建前先执行 cp -r data mobile/
//
//go:embed data/levels data/input_bindings.yaml
var dataFS embed.FS
