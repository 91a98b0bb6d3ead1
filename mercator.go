package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/paulmach/orb/maptile"
)

// GeoToTile returns the column and row of the web mercator tile containing
// (lat, lon) at zoom. Latitude must lie within ±MaxLatitude.
func GeoToTile(lat, lon float64, zoom int) (x, y int) {
	latRad := lat * math.Pi / 180.0
	n := float64(uint64(1) << uint(zoom))
	x = int(math.Floor((lon + 180.0) / 360.0 * n))
	y = int(math.Floor((1.0 - math.Log(math.Tan(latRad)+1.0/math.Cos(latRad))/math.Pi) / 2.0 * n))
	return x, y
}

// TileAt 经纬度所在瓦片
func TileAt(lat, lon float64, zoom int) maptile.Tile {
	x, y := GeoToTile(lat, lon, zoom)
	return maptile.Tile{X: uint32(x), Y: uint32(y), Z: maptile.Zoom(zoom)}
}

// TileToQuadKey encodes a tile address as a quadkey, one base-4 digit per
// level, most significant level first.
func TileToQuadKey(x, y, zoom int) string {
	var sb strings.Builder
	sb.Grow(zoom)
	for i := zoom; i > 0; i-- {
		digit := byte('0')
		mask := 1 << uint(i-1)
		if x&mask != 0 {
			digit++
		}
		if y&mask != 0 {
			digit += 2
		}
		sb.WriteByte(digit)
	}
	return sb.String()
}

// QuadKey 瓦片的 quadkey
func QuadKey(t maptile.Tile) string {
	return TileToQuadKey(int(t.X), int(t.Y), int(t.Z))
}

// QuadKeyToTile decodes a quadkey back into its tile address.
func QuadKeyToTile(qk string) (maptile.Tile, error) {
	var x, y uint32
	zoom := len(qk)
	for i := 0; i < zoom; i++ {
		mask := uint32(1) << uint(zoom-i-1)
		switch qk[i] {
		case '0':
		case '1':
			x |= mask
		case '2':
			y |= mask
		case '3':
			x |= mask
			y |= mask
		default:
			return maptile.Tile{}, fmt.Errorf("invalid quadkey digit %q in %q", qk[i], qk)
		}
	}
	return maptile.Tile{X: x, Y: y, Z: maptile.Zoom(zoom)}, nil
}
