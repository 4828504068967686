// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package link

import (
	"os"

	"github.com/charmbracelet/log"
)

// diagLogger carries pipeline-diagnostic logging. The source assembler
// uses it to warn about an unrecognized geometry input primitive and to
// report, at debug level, an error returned by the compiler; the other
// passes do not log. It is distinct from LinkedProgram.InfoLog,
// which is the spec's single-message error channel and is never written
// to through the logger.
var diagLogger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "shaderlink",
	Level:           log.WarnLevel,
})

// SetLogger replaces the package-level diagnostic logger, e.g. to raise
// verbosity or redirect output in cmd/linkcheck.
func SetLogger(l *log.Logger) {
	if l != nil {
		diagLogger = l
	}
}
