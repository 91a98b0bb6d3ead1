package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/paulmach/orb"
)

func readMetadata(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func TestWriteMetadata(t *testing.T) {
	dir := t.TempDir()
	if err := WriteMetadata(dir, NewTileJSON(testTileMap(10, 10), testBound(), 10, 10)); err != nil {
		t.Fatalf("WriteMetadata: %v", err)
	}
	doc, err := readMetadata(filepath.Join(dir, MetadataFile))
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	want := map[string]interface{}{
		"tilejson":    "2.2.0",
		"name":        "cmap",
		"description": "Silkeborg depth",
		"version":     "1.0.0",
		"attribution": "",
		"scheme":      "tms",
		"type":        "tilelayer",
		"format":      "png",
		"tiles":       []interface{}{"./{z}/{x}/{y}.png"},
		"minzoom":     10.0,
		"maxzoom":     10.0,
		"bounds":      []interface{}{9.5, 56.0, 9.6, 56.1},
		"center":      []interface{}{(9.5 + 9.6) / 2, (56.0 + 56.1) / 2, 10.0},
	}
	if !reflect.DeepEqual(doc, want) {
		t.Fatalf("metadata =\n%v\nwant\n%v", doc, want)
	}
}

func TestTileJSONCenterZoomTruncates(t *testing.T) {
	b := orb.Bound{Min: orb.Point{-10, -20}, Max: orb.Point{30, 40}}
	tj := NewTileJSON(testTileMap(10, 15), b, 10, 15)
	if tj.Center[0] != 10.0 || tj.Center[1] != 10.0 || tj.Center[2] != 12 {
		t.Fatalf("center = %v", tj.Center)
	}
	if tj.Bounds != [4]float64{-10, -20, 30, 40} {
		t.Fatalf("bounds = %v", tj.Bounds)
	}
}

func TestTileJSONFieldOrder(t *testing.T) {
	data, err := json.Marshal(NewTileJSON(testTileMap(10, 12), testBound(), 10, 12))
	if err != nil {
		t.Fatal(err)
	}
	keys := []string{"tilejson", "name", "description", "version", "attribution", "scheme",
		"type", "format", "tiles", "minzoom", "maxzoom", "bounds", "center"}
	last := -1
	for _, k := range keys {
		i := strings.Index(string(data), `"`+k+`"`)
		if i <= last {
			t.Fatalf("key %q out of order in %s", k, data)
		}
		last = i
	}
}

func TestWriteMetadataFails(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteMetadata(file, NewTileJSON(testTileMap(10, 10), testBound(), 10, 10)); err == nil {
		t.Fatal("expected error writing under a regular file")
	}
}
