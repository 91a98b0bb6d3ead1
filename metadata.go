package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/paulmach/orb"
)

// MetadataFile 输出目录下的描述文件名
const MetadataFile = "metadata.json"

// TileJSON describes the downloaded tileset for tile clients. Field order
// is the order written to disk.
type TileJSON struct {
	TileJSON    string        `json:"tilejson"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Version     string        `json:"version"`
	Attribution string        `json:"attribution"`
	Scheme      string        `json:"scheme"`
	Type        string        `json:"type"`
	Format      string        `json:"format"`
	Tiles       []string      `json:"tiles"`
	MinZoom     int           `json:"minzoom"`
	MaxZoom     int           `json:"maxzoom"`
	Bounds      [4]float64    `json:"bounds"`
	Center      []interface{} `json:"center"`
}

// NewTileJSON builds the descriptor for a tileset covering b over
// [min, max]. The center zoom is the truncated mean of the zoom range.
func NewTileJSON(m TileMap, b orb.Bound, min, max int) TileJSON {
	c := b.Center()
	return TileJSON{
		TileJSON:    "2.2.0",
		Name:        m.Name,
		Description: m.Description,
		Version:     m.Version,
		Attribution: "",
		Scheme:      "tms",
		Type:        "tilelayer",
		Format:      m.Format,
		Tiles:       []string{"./{z}/{x}/{y}." + m.Format},
		MinZoom:     min,
		MaxZoom:     max,
		Bounds:      [4]float64{b.Min[0], b.Min[1], b.Max[0], b.Max[1]},
		Center:      []interface{}{c[0], c[1], (min + max) / 2},
	}
}

// TileJSON 任务对应的描述文件
func (task *Task) TileJSON() TileJSON {
	return NewTileJSON(task.TileMap, task.Bound, task.Min, task.Max)
}

// WriteMetadata 写入 <dir>/metadata.json
func WriteMetadata(dir string, tj TileJSON) error {
	data, err := json.MarshalIndent(tj, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}
	return saveToFile(filepath.Join(dir, MetadataFile), data)
}
