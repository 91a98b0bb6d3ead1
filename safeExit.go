package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var SafeExitInst = NewSafeExit()

func InitSafeExit() {
	go SafeExitInst.ListenSignal()
}

// SafeExit 第一次收到信号时取消任务上下文, 等待在途瓦片完成;
// 第二次收到信号时执行清理并立即退出.
type SafeExit struct {
	funcs    []func()
	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	signaled bool
}

func NewSafeExit() *SafeExit {
	ctx, cancel := context.WithCancel(context.Background())
	return &SafeExit{ctx: ctx, cancel: cancel}
}

// Context 任务上下文, 收到退出信号后被取消
func (s *SafeExit) Context() context.Context {
	return s.ctx
}

func (s *SafeExit) Register(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.funcs = append(s.funcs, f)
}

// Cleanup 按注册顺序执行清理函数, 只执行一次
func (s *SafeExit) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.funcs {
		f()
	}
	s.funcs = nil
}

func (s *SafeExit) interrupt() (first bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	first = !s.signaled
	s.signaled = true
	s.cancel()
	return first
}

func (s *SafeExit) ListenSignal() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	for sig := range sigs {
		if s.interrupt() {
			fmt.Printf("收到系统信号 %d, 正在停止任务, 请稍后\n", sig)
			continue
		}
		fmt.Printf("再次收到系统信号 %d, 立即退出\n", sig)
		s.Cleanup()
		os.Exit(1)
	}
}
