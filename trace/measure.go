// Package trace records parse phases as Chrome trace events, viewable
// in chrome://tracing or Perfetto.
package trace

import (
	"os"
	"strconv"
	"sync"
	"time"
)

type MeasureTime struct {
	file *os.File
	lock *sync.Mutex
}

func NewMeasureTime(path string) (*MeasureTime, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	file.WriteString("{\"traceEvents\": [")
	ts := time.Now().UnixMicro()
	file.WriteString(
		`{ "name": "process_name",` +
			`"ph": "M",` +
			`"ts":` + strconv.Itoa(int(ts)) + `,` +
			`"pid": 1, "cat": "__metadata",` +
			`"args": {"name": "twig"}}`)
	file.Sync()
	return &MeasureTime{file: file, lock: &sync.Mutex{}}, nil
}

// Time opens a duration event with the given phase name.
func (m *MeasureTime) Time(name string) {
	m.lock.Lock()
	ts := time.Now().UnixMicro()
	m.file.WriteString(
		`, { "ph": "B", "cat": "parse",` +
			`"name": "` + name + `",` +
			`"ts": ` + strconv.Itoa(int(ts)) + `,` +
			`"pid": 1, "tid": 1}`)
	m.file.Sync()
	m.lock.Unlock()
}

// Stop closes the duration event opened under the same name.
func (m *MeasureTime) Stop(name string) {
	m.lock.Lock()
	ts := time.Now().UnixMicro()
	m.file.WriteString(
		`, { "ph": "E", "cat": "parse",` +
			`"name": "` + name + `",` +
			`"ts": ` + strconv.Itoa(int(ts)) + `,` +
			`"pid": 1, "tid": 1}`)
	m.file.Sync()
	m.lock.Unlock()
}

func (m *MeasureTime) Finish() error {
	m.lock.Lock()
	defer m.lock.Unlock()
	if _, err := m.file.WriteString("]}"); err != nil {
		return err
	}
	return m.file.Close()
}
