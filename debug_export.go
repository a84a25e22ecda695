package main

import (
	"errors"
	"fmt"

	"github.com/milk9111/duojump/control"
	"github.com/sirupsen/logrus"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

var errClipboardUnavailable = errors.New("clipboard unavailable")

// snapshotExporter copies game snapshots to the system clipboard as YAML.
type snapshotExporter struct {
	ready bool
	log   logrus.FieldLogger
}

func newSnapshotExporter(log logrus.FieldLogger) *snapshotExporter {
	if err := clipboard.Init(); err != nil {
		log.WithError(err).Warn("clipboard unavailable, snapshot export disabled")
		return &snapshotExporter{log: log}
	}
	return &snapshotExporter{ready: true, log: log}
}

func (x *snapshotExporter) Export(gs control.GameState) error {
	if x == nil || !x.ready {
		return errClipboardUnavailable
	}
	data, err := yaml.Marshal(gs)
	if err != nil {
		return fmt.Errorf("export snapshot: %w", err)
	}
	clipboard.Write(clipboard.FmtText, data)
	x.log.WithField("bytes", len(data)).Info("snapshot copied to clipboard")
	return nil
}
