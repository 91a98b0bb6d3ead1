package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/spf13/viper"
)

var conf *Conf

type Conf struct {
	App struct {
		Version string `mapstructure:"version"`
		Title   string `mapstructure:"title"`
	} `mapstructure:"app"`
	Output struct {
		Directory      string `mapstructure:"directory"`
		LogDir         string `mapstructure:"logDir"`
		OutputTerminal bool   `mapstructure:"outputTerminal"`
	} `mapstructure:"output"`
	Task struct {
		Workers   int `mapstructure:"workers"`
		Timedelay int `mapstructure:"timedelay"`
		BufSize   int `mapstructure:"bufSize"`
		// Timeout 单次请求超时(秒), 0 表示不限制
		Timeout int `mapstructure:"timeout"`
	} `mapstructure:"task"`
	Tm struct {
		Name        string `mapstructure:"name"`
		Description string `mapstructure:"description"`
		Version     string `mapstructure:"version"`
		Min         int    `mapstructure:"min"`
		Max         int    `mapstructure:"max"`
		Format      string `mapstructure:"format"`
		URL         string `mapstructure:"url"`
	} `mapstructure:"tm"`
	Bound struct {
		MinLat float64 `mapstructure:"minLat"`
		MinLon float64 `mapstructure:"minLon"`
		MaxLat float64 `mapstructure:"maxLat"`
		MaxLon float64 `mapstructure:"maxLon"`
	} `mapstructure:"bound"`
}

// InitConf 初始化配置
func InitConf(cfgFile string) {
	c, err := loadConf(cfgFile)
	if err != nil {
		fmt.Printf("load config error, details: %s\n", err)
		os.Exit(1)
	}
	conf = c
}

func loadConf(cfgFile string) (*Conf, error) {
	if cfgFile == "" {
		cfgFile = "conf.toml"
	}
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("cmap")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match

	// 设置默认值
	v.SetDefault("app.version", "v1.0.0")
	v.SetDefault("app.title", "CMap Scraper")
	v.SetDefault("output.directory", "")
	v.SetDefault("output.logDir", "")
	v.SetDefault("output.outputTerminal", true)
	v.SetDefault("task.workers", 50)
	v.SetDefault("task.timedelay", 0)
	v.SetDefault("task.bufSize", 64)
	v.SetDefault("task.timeout", 0)
	v.SetDefault("tm.name", "cmap")
	v.SetDefault("tm.description", "Silkeborg depth")
	v.SetDefault("tm.version", "1.0.0")
	v.SetDefault("tm.min", 10)
	v.SetDefault("tm.max", -1)
	v.SetDefault("tm.format", PNG)
	v.SetDefault("tm.url", "https://s3-nox-prd-processing-soc-tli-v2-use1.s3.amazonaws.com/img")
	v.SetDefault("bound.minLat", 55.978562)
	v.SetDefault("bound.minLon", 9.431488)
	v.SetDefault("bound.maxLat", 56.215258)
	v.SetDefault("bound.maxLon", 10.162766)

	if _, err := os.Stat(cfgFile); os.IsNotExist(err) {
		log.Warnf("config file(%s) not exist, using defaults", cfgFile)
	} else {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file(%s): %w", cfgFile, err)
		}
	}

	var c Conf
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Bounds 下载范围
func (c *Conf) Bounds() orb.Bound {
	return orb.Bound{
		Min: orb.Point{c.Bound.MinLon, c.Bound.MinLat},
		Max: orb.Point{c.Bound.MaxLon, c.Bound.MaxLat},
	}
}

// Validate checks the parts of the configuration the download core relies on.
// The max zoom is only checked once it has been supplied.
func (c *Conf) Validate() error {
	if c.Tm.Min < ZoomMin {
		return fmt.Errorf("min zoom %d below %d", c.Tm.Min, ZoomMin)
	}
	if c.Tm.Max >= 0 {
		if c.Tm.Max < c.Tm.Min {
			return fmt.Errorf("max zoom %d below min zoom %d", c.Tm.Max, c.Tm.Min)
		}
		if c.Tm.Max > ZoomMax {
			return fmt.Errorf("max zoom %d above %d", c.Tm.Max, ZoomMax)
		}
	}
	b := c.Bound
	for _, lat := range []float64{b.MinLat, b.MaxLat} {
		if lat < -MaxLatitude || lat > MaxLatitude {
			return fmt.Errorf("latitude %v outside web mercator range ±%v", lat, MaxLatitude)
		}
	}
	for _, lon := range []float64{b.MinLon, b.MaxLon} {
		if lon < -180 || lon >= 180 {
			return fmt.Errorf("longitude %v outside [-180, 180)", lon)
		}
	}
	if b.MinLat >= b.MaxLat || b.MinLon >= b.MaxLon {
		return errors.New("bound min corner must be south-west of max corner")
	}
	if c.Task.Workers < 1 {
		return fmt.Errorf("task workers %d, need at least 1", c.Task.Workers)
	}
	if c.Tm.Format != PNG {
		return fmt.Errorf("tm format %q unsupported, tiles are %s", c.Tm.Format, PNG)
	}
	if c.Tm.URL == "" {
		return errors.New("tm url is empty")
	}
	return nil
}

// checkOutputDir 创建输出目录并确认可写
func checkOutputDir(dir string) error {
	if dir == "" {
		return errors.New("output directory is empty")
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	f, err := os.CreateTemp(dir, ".probe-*")
	if err != nil {
		return fmt.Errorf("output directory not writable: %w", err)
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}
