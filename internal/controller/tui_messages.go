package controller

import (
	m "github.com/getcord/importfix/internal/model"
)

// Message types.
type runInfoMsg struct {
	files      int
	threads    int
	shardIndex int
	shards     int
}

type unresolvedMsg struct {
	file m.Path
	spec m.Specifier
}

type fileDoneMsg struct {
	result m.FileResult
}

type finishedMsg struct{}
