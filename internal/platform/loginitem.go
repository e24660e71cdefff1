package platform

import (
	"fmt"
	"strings"
)

// LoginItem starts the application with the user session.
type LoginItem struct {
	Name     string
	ID       string
	ExecPath string

	// baseDir replaces the per-user config location in tests.
	baseDir string
}

// NewLoginItem describes the login entry for the executable at execPath.
func NewLoginItem(name, id, execPath string) *LoginItem {
	return &LoginItem{Name: name, ID: id, ExecPath: execPath}
}

// Set registers or removes the login entry. It is idempotent.
func (item *LoginItem) Set(enabled bool) error {
	if item.Name == "" || item.ID == "" {
		return fmt.Errorf("login item: name and id are required")
	}
	if !enabled {
		if err := item.remove(); err != nil {
			return fmt.Errorf("disable login item: %w", err)
		}
		return nil
	}
	if item.ExecPath == "" {
		return fmt.Errorf("enable login item: executable path is empty")
	}
	if err := item.install(); err != nil {
		return fmt.Errorf("enable login item: %w", err)
	}
	return nil
}

func (item *LoginItem) slug() string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(item.Name)), " ", "-")
}
