// Package reminder 与界面无关的倒计时逻辑：可调节的时间设置 Setting、
// 倒计时单元 Unit，以及组合工作/休息两个单元的 Board。
//
// 所有调用都应在同一个 goroutine（UI 线程）中进行。
// 计时通过 timer.Scheduler 注入，测试中可以手动触发。
package reminder
