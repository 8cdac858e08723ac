package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"scipion-installer/internal/logger"
)

// FileName is the receipt's name under the install home.
const FileName = ".scipion3-install.json"

// Receipt records what a successful installation put under the install home.
type Receipt struct {
	Environment  string    `json:"environment"`  // "conda" or "virtualenv"
	DevMode      bool      `json:"dev_mode"`     // Sources cloned instead of the released package
	Xmipp        bool      `json:"xmipp"`        // Xmipp bundle built
	Repositories []string  `json:"repositories"` // Cloned repositories, in install order
	Launcher     string    `json:"launcher"`     // Absolute path of the generated launcher
	InstalledAt  time.Time `json:"installed_at"`
}

// Path returns the receipt location for home.
func Path(home string) string {
	return filepath.Join(home, FileName)
}

// LoadReceipt reads the receipt of a previous run under home.
// It returns nil when there is none or it cannot be decoded.
func LoadReceipt(home string) *Receipt {
	file, err := os.ReadFile(Path(home))
	if err != nil {
		return nil
	}

	var r Receipt
	if err := json.Unmarshal(file, &r); err != nil {
		logger.Warn("[WARN] Ignoring unreadable receipt %s: %v\n", Path(home), err)
		return nil
	}
	return &r
}

// SaveReceipt writes r as indented JSON under home.
// Failures are logged but not propagated: the installation itself succeeded.
func SaveReceipt(home string, r *Receipt) {
	file, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal receipt: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing receipt to %s:\n%s\n", Path(home), string(file))

	if err := os.WriteFile(Path(home), file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write receipt %s: %v\n", Path(home), err)
	}
}
