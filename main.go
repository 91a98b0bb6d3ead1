package main

func main() {
	// 初始化控制台
	InitFlag()
	// 开始安全退出任务
	InitSafeExit()
	// 初始化配置
	InitConf(configPath)
	// 初始化日志
	InitLog()
	// 补全缩放级别与输出目录
	InitPrompt()
	// 开始任务
	InitTask()
}
