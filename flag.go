package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	hf         bool
	configPath string
	logLevel   string
	maxZoom    int
	outputDir  string
)

func InitFlag() {
	flag.BoolVar(&hf, "h", false, "this help")
	flag.StringVar(&configPath, "c", "./conf/conf.toml", "set config `file`")
	flag.StringVar(&logLevel, "l", "info", "set log level (default: info)")
	flag.IntVar(&maxZoom, "z", -1, "max `zoom` level, prompted for when unset")
	flag.StringVar(&outputDir, "o", "", "output `directory`, prompted for when unset")
	flag.Usage = usage
	flag.Parse()

	if hf {
		flag.Usage()
		os.Exit(0)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `cmap version: cmap/v1.0.0
Usage: cmap [-h] [-c filename] [-l logLevel] [-z zoom] [-o directory]
`)
	flag.PrintDefaults()
}
