package main

import (
	"strings"

	"github.com/paulmach/orb/maptile"
)

// TileMap 瓦片地图类型
type TileMap struct {
	Name        string
	Description string
	Version     string
	Min         int
	Max         int
	Format      string
	URL         string // 远程图片所在目录
}

// GetTileURL 获取瓦片某一图层的URL, {base}/{prefix}{quadkey}.{format}
func (m *TileMap) GetTileURL(a Asset, t maptile.Tile) string {
	return strings.TrimRight(m.URL, "/") + "/" + a.Prefix + QuadKey(t) + "." + m.Format
}
