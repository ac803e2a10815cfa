// Package logdemo implements the log-demo command: it creates a logger and
// emits messages at every level to the console and to LogDemo.log.
package logdemo
