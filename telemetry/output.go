package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/alembic/config"
)

// DiscoveryRecord is one row of discoveries.csv.
type DiscoveryRecord struct {
	TimeSec float64 `csv:"time"`
	Element string  `csv:"element"`
	Formula string  `csv:"formula"`
}

// OutputManager handles structured session output with CSV logging.
type OutputManager struct {
	dir           string
	sessionFile   *os.File
	discoveryFile *os.File

	sessionHeaderWritten   bool
	discoveryHeaderWritten bool
}

// NewOutputManager creates an output manager rooted at dir. Returns nil
// if dir is empty (output disabled); all methods are nil-safe.
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	sessionPath := filepath.Join(dir, "session.csv")
	f, err := os.Create(sessionPath)
	if err != nil {
		return nil, fmt.Errorf("creating session.csv: %w", err)
	}
	om.sessionFile = f

	discoveryPath := filepath.Join(dir, "discoveries.csv")
	f, err = os.Create(discoveryPath)
	if err != nil {
		om.sessionFile.Close()
		return nil, fmt.Errorf("creating discoveries.csv: %w", err)
	}
	om.discoveryFile = f

	return om, nil
}

// WriteConfig saves the active configuration next to the CSV logs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	configPath := filepath.Join(om.dir, "config.yaml")
	return cfg.WriteYAML(configPath)
}

// WriteWindow appends one window stats record to session.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}

	records := []WindowStats{stats}
	if !om.sessionHeaderWritten {
		if err := gocsv.Marshal(records, om.sessionFile); err != nil {
			return fmt.Errorf("writing session stats: %w", err)
		}
		om.sessionHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.sessionFile); err != nil {
			return fmt.Errorf("writing session stats: %w", err)
		}
	}
	return nil
}

// WriteDiscovery appends one discovery record to discoveries.csv.
func (om *OutputManager) WriteDiscovery(rec DiscoveryRecord) error {
	if om == nil {
		return nil
	}

	records := []DiscoveryRecord{rec}
	if !om.discoveryHeaderWritten {
		if err := gocsv.Marshal(records, om.discoveryFile); err != nil {
			return fmt.Errorf("writing discovery: %w", err)
		}
		om.discoveryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.discoveryFile); err != nil {
			return fmt.Errorf("writing discovery: %w", err)
		}
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var firstErr error
	if om.sessionFile != nil {
		if err := om.sessionFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if om.discoveryFile != nil {
		if err := om.discoveryFile.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
