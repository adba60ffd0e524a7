package tui

import (
	"github.com/fentz26/taskflow/internal/controlplane"
	"github.com/fentz26/taskflow/internal/models"
	"github.com/fentz26/taskflow/internal/stats"
)

// View modes
const (
	modeList   = "list"
	modeDetail = "detail"
	modeStats  = "stats"
)

type commandResultMsg struct {
	message string
}

type errMsg struct {
	err error
}

type tasksLoadedMsg struct {
	tasks []models.Task
}

type taskDetailLoadedMsg struct {
	task *models.Task
}

type strategiesLoadedMsg struct {
	strategies []controlplane.StrategyInfo
}

type statsLoadedMsg struct {
	summary *stats.Summary
}

type daemonStatusMsg struct {
	online bool
}
