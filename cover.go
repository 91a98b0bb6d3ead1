package main

import (
	"context"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// TileRange 某一级别覆盖范围的瓦片行列号区间, 两端均包含
type TileRange struct {
	Zoom       int
	XMin, XMax int
	YMin, YMax int
}

// Layer 级别&瓦片数
type Layer struct {
	Zoom  int
	Count int64
	Range TileRange
}

// BoundRange computes the tiles covering b at zoom. Tile rows grow
// southward, so the south-west corner gives the max row and the north-east
// corner the min row.
func BoundRange(b orb.Bound, zoom int) TileRange {
	xMin, yMax := GeoToTile(b.Min[1], b.Min[0], zoom)
	xMax, yMin := GeoToTile(b.Max[1], b.Max[0], zoom)
	return TileRange{Zoom: zoom, XMin: xMin, XMax: xMax, YMin: yMin, YMax: yMax}
}

// Empty 区间退化时为真
func (r TileRange) Empty() bool {
	return r.XMin > r.XMax || r.YMin > r.YMax
}

// Count 区间内瓦片数
func (r TileRange) Count() int64 {
	if r.Empty() {
		return 0
	}
	return int64(r.XMax-r.XMin+1) * int64(r.YMax-r.YMin+1)
}

// Channel sends every tile of the range to ch, column by column, and closes
// ch when done or when ctx is cancelled.
func (r TileRange) Channel(ctx context.Context, ch chan<- maptile.Tile) {
	defer close(ch)
	if r.Empty() {
		return
	}
	for x := r.XMin; x <= r.XMax; x++ {
		for y := r.YMin; y <= r.YMax; y++ {
			t := maptile.Tile{X: uint32(x), Y: uint32(y), Z: maptile.Zoom(r.Zoom)}
			select {
			case ch <- t:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Tiles 收集区间内全部瓦片
func (r TileRange) Tiles() []maptile.Tile {
	ch := make(chan maptile.Tile)
	go r.Channel(context.Background(), ch)
	tiles := make([]maptile.Tile, 0, r.Count())
	for t := range ch {
		tiles = append(tiles, t)
	}
	return tiles
}

// Layers 为 [min, max] 每个级别计算覆盖区间
func Layers(b orb.Bound, min, max int) []Layer {
	var layers []Layer
	for z := min; z <= max; z++ {
		r := BoundRange(b, z)
		layers = append(layers, Layer{Zoom: z, Count: r.Count(), Range: r})
	}
	return layers
}
