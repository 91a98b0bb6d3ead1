package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// InitPrompt 命令行未给出的最大级别和输出目录通过交互输入补全, 然后校验配置
func InitPrompt() {
	if maxZoom >= 0 {
		conf.Tm.Max = maxZoom
	}
	if outputDir != "" {
		conf.Output.Directory = outputDir
	}
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}

	in := bufio.NewReader(os.Stdin)
	if conf.Tm.Max < 0 {
		z, err := promptZoom(in, os.Stdout)
		if err != nil {
			log.Fatalf("invalid max zoom: %s", err)
		}
		conf.Tm.Max = z
	}
	if conf.Output.Directory == "" {
		dir, err := promptLine(in, os.Stdout, "Output Directory: ")
		if err != nil {
			log.Fatalf("read output directory: %s", err)
		}
		conf.Output.Directory = dir
	}

	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config: %s", err)
	}
	if err := checkOutputDir(conf.Output.Directory); err != nil {
		log.Fatalf("invalid output directory: %s", err)
	}
}

func promptLine(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("empty input")
	}
	return line, nil
}

func promptZoom(r *bufio.Reader, w io.Writer) (int, error) {
	line, err := promptLine(r, w, "Max Zoom (more than 18 will take forever): ")
	if err != nil {
		return 0, err
	}
	z, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", line)
	}
	if z < 0 {
		return 0, fmt.Errorf("zoom %d is negative", z)
	}
	return z, nil
}
