package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func reg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

// Enabled reports whether the Run registry value exists.
func (item *LoginItem) Enabled() (bool, error) {
	return reg("query", runKey, "/v", item.Name) == nil, nil
}

func (item *LoginItem) install() error {
	quoted := `"` + strings.Trim(item.ExecPath, `"`) + `"`
	return reg("add", runKey, "/v", item.Name, "/t", "REG_SZ", "/d", quoted, "/f")
}

func (item *LoginItem) remove() error {
	if enabled, _ := item.Enabled(); !enabled {
		return nil
	}
	return reg("delete", runKey, "/v", item.Name, "/f")
}
