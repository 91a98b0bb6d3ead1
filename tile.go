package main

import (
	"fmt"
	"path/filepath"

	"github.com/paulmach/orb/maptile"
)

// ZoomMin 最小级别
const ZoomMin = 0

// ZoomMax 最大级别
const ZoomMax = 20

// MaxLatitude web mercator 可表示的最大纬度
const MaxLatitude = 85.05112878

// Constants representing TileFormat types
const (
	PNG = "png"
)

// Asset 每个瓦片对应的一种图层
type Asset struct {
	Kind   string
	Prefix string // 远程文件名前缀
	Dir    string // 本地子目录
}

var (
	// Contour 等深线图层, 先下载
	Contour = Asset{Kind: "primary", Prefix: "t_", Dir: "contour"}
	// Shade 晕渲图层, 其文件存在即表示该瓦片已完成
	Shade = Asset{Kind: "secondary", Prefix: "b_", Dir: "shade"}
)

// Assets 下载顺序
var Assets = []Asset{Contour, Shade}

func (a Asset) String() string {
	return a.Dir
}

// Path 瓦片在输出目录下的路径 <dir>/<z>/<x>/<y>.<format>
func (a Asset) Path(root string, t maptile.Tile, format string) string {
	return filepath.Join(root, a.Dir,
		fmt.Sprintf("%d", t.Z), fmt.Sprintf("%d", t.X), fmt.Sprintf("%d.%s", t.Y, format))
}
