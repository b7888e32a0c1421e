package domain

import "time"

// HistoryAction records which terminal action produced a history entry.
type HistoryAction string

const (
	HistoryActionRun  HistoryAction = "run"
	HistoryActionEdit HistoryAction = "edit"
)

// HistoryRecord captures one executed script for the history side-channel.
type HistoryRecord struct {
	Timestamp time.Time     `json:"timestamp"`
	Prompt    string        `json:"prompt"`
	Script    string        `json:"script"`
	Model     string        `json:"model"`
	Action    HistoryAction `json:"action"`
	Executed  bool          `json:"executed"`
}
