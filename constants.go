package main

import "time"

type Mode int

const (
	ModeNormal Mode = iota
	ModeNameInput
	ModeNoteEdit
	ModeFileInput
	ModeConfirm
	ModeSummary
)

type FileOperation int

const (
	FileOpExportPNG FileOperation = iota
	FileOpExportSVG
	FileOpExportTXT
)

type ConfirmAction int

const (
	ConfirmReset ConfirmAction = iota
	ConfirmQuit
	ConfirmOverwriteFile
)

type ActionType int

const (
	ActionSetDrive ActionType = iota
	ActionSetComment
	ActionSetProjectName
	ActionReset
)

const (
	// Logical chart units covered by one terminal cell. PNG export uses the
	// same size per pixel cell.
	charWidth  = 8.0
	charHeight = 16.0

	sliderStep    = 1
	sliderBigStep = 5
	sliderWidth   = 20

	sidePanelWidth = 44
	frameInterval  = time.Second / 60
)
