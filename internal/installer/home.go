package installer

import (
	"context"
	"os"

	"scipion-installer/internal/logger"
)

// HomeResolver makes sure the install home exists before any command runs.
type HomeResolver struct {
	Confirm Confirmer
	Mkdir   func(path string, perm os.FileMode) error
	DryRun  bool
}

// NewHomeResolver returns a resolver creating directories with os.Mkdir.
func NewHomeResolver(c Confirmer, dry bool) *HomeResolver {
	return &HomeResolver{Confirm: c, Mkdir: os.Mkdir, DryRun: dry}
}

// Resolve is a no-op when home exists. Otherwise it asks before creating it.
// A dry run only announces the creation and never fails on a refusal.
func (r *HomeResolver) Resolve(ctx context.Context, home string) error {
	if pathExists(home) {
		logger.Debug("[DEBUG] Install home %s already exists\n", home)
		return nil
	}

	ok, err := r.Confirm.Confirm(ctx, "path "+home+" does not exist. Shall I create it?")
	if err != nil {
		return err
	}

	if r.DryRun {
		if ok {
			logger.Info("[INFO] %s would have been created.\n", home)
		} else {
			logger.Warn("[WARN] A real run would stop here: %s is needed.\n", home)
		}
		return nil
	}

	if !ok {
		return Errorf("Cannot continue without creating %s", home)
	}
	if err := r.Mkdir(home, 0755); err != nil {
		return Wrap(err, "Please, verify that you have permissions to create %s", home)
	}
	logger.Info("[INFO] Created %s\n", home)
	return nil
}
