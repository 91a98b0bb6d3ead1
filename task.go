package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/sirupsen/logrus"
	"github.com/teris-io/shortid"
	"golang.org/x/sync/semaphore"
	pb "gopkg.in/cheggaaa/pb.v1"
)

func InitTask() {
	start := time.Now()

	tm := TileMap{
		Name:        conf.Tm.Name,
		Description: conf.Tm.Description,
		Version:     conf.Tm.Version,
		Min:         conf.Tm.Min,
		Max:         conf.Tm.Max,
		Format:      conf.Tm.Format,
		URL:         conf.Tm.URL,
	}
	fetcher := NewHTTPFetcher(conf.Task.Workers, time.Duration(conf.Task.Timeout)*time.Second)
	task := NewTask(tm, conf.Bounds(), conf.Output.Directory, fetcher, TaskOptions{
		Workers:   conf.Task.Workers,
		TimeDelay: conf.Task.Timedelay,
		BufSize:   conf.Task.BufSize,
	})
	defer SafeExitInst.Cleanup()
	log.Infof("%s %s, task %s, zoom %d-%d, %d tiles", conf.App.Title, conf.App.Version, task.ID, task.Min, task.Max, task.Total)

	// 开始下载
	stats, err := task.Download(SafeExitInst.Context())
	log.Infof("Task %s: %s", task.ID, stats)
	if err != nil {
		log.Errorf("Task %s stopped: %v, metadata not written", task.ID, err)
		SafeExitInst.Cleanup()
		os.Exit(1)
	}

	if err := WriteMetadata(task.File, task.TileJSON()); err != nil {
		log.Fatalf("write metadata error, details: %s", err)
	}

	secs := time.Since(start).Seconds()
	log.Infof("%.3fs finished...", secs)
	fmt.Printf("Done: %s\n", stats)
}

// TaskOptions 调度参数
type TaskOptions struct {
	Workers   int // 同时下载的瓦片数
	TimeDelay int // 相邻两次派发的间隔(毫秒)
	BufSize   int // 瓦片队列长度
	Quiet     bool
}

// Stats 下载结果统计
type Stats struct {
	Total     int64
	Succeeded int64
	Skipped   int64
	Failed    int64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d tiles, %d succeeded, %d skipped, %d failed",
		s.Total, s.Succeeded, s.Skipped, s.Failed)
}

// Task 下载任务
type Task struct {
	ID      string
	Name    string
	File    string
	Min     int
	Max     int
	Bound   orb.Bound
	Layers  []Layer
	TileMap TileMap
	Total   int64

	fetcher     Fetcher
	workerCount int
	timeDelay   int
	bufSize     int
	quiet       bool
	tileWG      sync.WaitGroup
	workers     *semaphore.Weighted

	succeeded int64
	skipped   int64
	failed    int64
}

// NewTask 创建下载任务
func NewTask(m TileMap, bound orb.Bound, dir string, f Fetcher, opts TaskOptions) *Task {
	id, _ := shortid.Generate()

	task := Task{
		ID:      id,
		Name:    m.Name,
		File:    dir,
		Min:     m.Min,
		Max:     m.Max,
		Bound:   bound,
		TileMap: m,
		fetcher: f,
	}

	task.Layers = Layers(bound, m.Min, m.Max)
	for _, layer := range task.Layers {
		log.Infof("zoom: %d, tiles: %d", layer.Zoom, layer.Count)
		task.Total += layer.Count
	}

	task.workerCount = opts.Workers
	if task.workerCount < 1 {
		task.workerCount = 1
	}
	task.timeDelay = opts.TimeDelay
	task.bufSize = opts.BufSize
	task.quiet = opts.Quiet
	task.workers = semaphore.NewWeighted(int64(task.workerCount))

	return &task
}

// Stats 当前统计
func (task *Task) Stats() Stats {
	return Stats{
		Total:     task.Total,
		Succeeded: atomic.LoadInt64(&task.succeeded),
		Skipped:   atomic.LoadInt64(&task.skipped),
		Failed:    atomic.LoadInt64(&task.failed),
	}
}

func (task *Task) SetupFile() error {
	if task.File == "" {
		task.File = "output"
	}
	return os.MkdirAll(task.File, os.ModePerm)
}

// Download fetches every layer and returns once all dispatched tiles have
// finished. A cancelled ctx stops dispatching; tiles already in flight are
// still waited for and ctx.Err() is returned.
func (task *Task) Download(ctx context.Context) (Stats, error) {
	if err := task.SetupFile(); err != nil {
		return task.Stats(), err
	}
	for _, layer := range task.Layers {
		if err := task.downloadLayer(ctx, layer); err != nil {
			return task.Stats(), err
		}
	}
	return task.Stats(), nil
}

// tileFetcher 瓦片加载器, 依次下载并保存等深线与晕渲图层
func (task *Task) tileFetcher(ctx context.Context, mt maptile.Tile, bar *pb.ProgressBar) {
	start := time.Now()
	//workers完成并清退
	defer func() {
		bar.Increment()
		task.workers.Release(1)
		task.tileWG.Done()
	}()

	size := 0
	for _, a := range Assets {
		url := task.TileMap.GetTileURL(a, mt)
		body, err := task.fetcher.Fetch(ctx, url)
		if err != nil {
			task.fail(mt, a, err)
			return
		}
		if err := saveToFile(a.Path(task.File, mt, task.TileMap.Format), body); err != nil {
			task.fail(mt, a, err)
			return
		}
		size += len(body)
	}
	atomic.AddInt64(&task.succeeded, 1)

	cost := time.Since(start).Milliseconds()
	log.Debugf("Downloaded %d/%d/%d, %dms, %.2f kb", mt.Z, mt.X, mt.Y, cost, float32(size)/1024.0)
}

func (task *Task) fail(mt maptile.Tile, a Asset, err error) {
	atomic.AddInt64(&task.failed, 1)
	log.WithFields(logrus.Fields{
		"task":  task.ID,
		"asset": a.Dir,
		"kind":  a.Kind,
	}).Errorf("Failed %d/%d/%d: %v", mt.Z, mt.X, mt.Y, err)
}

// downloadLayer 下载指定层级
func (task *Task) downloadLayer(ctx context.Context, layer Layer) error {
	log.Infof("Task %s zoom %d starting, %d tiles", task.ID, layer.Zoom, layer.Count)
	bar := pb.New64(layer.Count).Prefix(fmt.Sprintf("Zoom %d : ", layer.Zoom)).Postfix("\n")
	bar.NotPrint = task.quiet
	bar.SetRefreshRate(time.Second)
	bar.Start()

	lctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var tilelist = make(chan maptile.Tile, task.bufSize)
	go layer.Range.Channel(lctx, tilelist)

	var err error
	for tile := range tilelist {
		// 晕渲图层已存在则整块跳过
		if fileExists(Shade.Path(task.File, tile, task.TileMap.Format)) {
			log.Debugf("Skipped %d/%d/%d", tile.Z, tile.X, tile.Y)
			atomic.AddInt64(&task.skipped, 1)
			bar.Increment()
			continue
		}
		if err = task.workers.Acquire(ctx, 1); err != nil {
			log.Infof("Task %s got canceled.", task.Name)
			break
		}
		//设置请求发送间隔时间
		if task.timeDelay > 0 {
			time.Sleep(time.Duration(task.timeDelay) * time.Millisecond)
		}
		task.tileWG.Add(1)
		go task.tileFetcher(ctx, tile, bar)
	}
	//等待该层结束
	task.tileWG.Wait()
	if err == nil {
		err = ctx.Err()
	}

	msg := fmt.Sprintf("Task %s Zoom %d finished ~", task.ID, layer.Zoom)
	if task.quiet {
		bar.Finish()
		log.Debug(msg)
	} else {
		bar.FinishPrint(msg)
	}
	return err
}
