package global

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	kb         = 1000
	maxLogSize = 250 * kb
	maxLogs    = 3
)

// rollingFileWriter appends to <dir>/<prefix>.log and rotates it into
// <prefix>-N.log files once it grows past maxLogSize, keeping maxLogs
// archives around.
type rollingFileWriter struct {
	dir    string
	prefix string
}

func NewRollingFileWriter(dir string, prefix string) rollingFileWriter {
	return rollingFileWriter{dir: dir, prefix: prefix}
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	if err := os.MkdirAll(w.dir, 0750); err != nil {
		return 0, err
	}

	mainLogPath := w.mainLogPath()
	mainLogFile, err := os.OpenFile(mainLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	stats, err := mainLogFile.Stat()
	if err != nil {
		return 0, err
	}

	// Small enough, just append
	if stats.Size() < maxLogSize {
		return mainLogFile.Write(b)
	}

	mainLogFile.Close()

	if err := w.rotate(); err != nil {
		return 0, err
	}

	mainLogFile, err = os.OpenFile(mainLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// rotate shifts every archived log index up by one and renames the
// main log to index 1. Renames go through a temporary mod- prefix so
// the new names never collide with the old ones mid-shift.
func (w rollingFileWriter) rotate() error {
	archives, err := filepath.Glob(filepath.Join(w.dir, w.prefix+"-*.log"))
	if err != nil {
		return err
	}

	for _, archive := range archives {
		index := w.logIndex(archive)

		// Get rid of messed up log files
		if index <= 0 {
			if err := os.Remove(archive); err != nil {
				return err
			}
			continue
		}

		index++
		if index > maxLogs {
			if err := os.Remove(archive); err != nil {
				return err
			}
			continue
		}

		newName := filepath.Join(w.dir, fmt.Sprintf("mod-%s-%d.log", w.prefix, index))
		if err := os.Rename(archive, newName); err != nil {
			return err
		}
	}

	modArchives, err := filepath.Glob(filepath.Join(w.dir, "mod-"+w.prefix+"-*.log"))
	if err != nil {
		return err
	}

	for _, archive := range modArchives {
		newName := filepath.Join(w.dir, strings.TrimPrefix(filepath.Base(archive), "mod-"))
		if err := os.Rename(archive, newName); err != nil {
			return err
		}
	}

	return os.Rename(w.mainLogPath(), filepath.Join(w.dir, w.prefix+"-1.log"))
}

func (w rollingFileWriter) mainLogPath() string {
	return filepath.Join(w.dir, w.prefix+".log")
}

func (w rollingFileWriter) logIndex(name string) int64 {
	fileName, _ := strings.CutSuffix(filepath.Base(name), ".log")
	indexStr, _ := strings.CutPrefix(fileName, w.prefix+"-")

	index, err := strconv.ParseInt(indexStr, 10, 32)
	if err != nil {
		return 0
	}

	return index
}
