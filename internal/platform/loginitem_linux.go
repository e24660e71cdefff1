package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (item *LoginItem) entryPath() (string, error) {
	base := item.baseDir
	if base == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		base = configDir
	}
	return filepath.Join(base, "autostart", item.slug()+".desktop"), nil
}

// Enabled reports whether the XDG autostart entry exists.
func (item *LoginItem) Enabled() (bool, error) {
	path, err := item.entryPath()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return err == nil, err
}

func (item *LoginItem) install() error {
	path, err := item.entryPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	return os.WriteFile(path, []byte(item.desktopEntry()), 0o644)
}

func (item *LoginItem) remove() error {
	path, err := item.entryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (item *LoginItem) desktopEntry() string {
	exec := item.ExecPath
	if strings.ContainsAny(exec, " \t") {
		exec = `"` + exec + `"`
	}
	lines := []string{
		"[Desktop Entry]",
		"Type=Application",
		"Name=" + item.Name,
		"Exec=" + exec,
		"X-GNOME-Autostart-enabled=true",
		"StartupWMClass=" + item.ID,
		"Terminal=false",
	}
	return strings.Join(lines, "\n") + "\n"
}
