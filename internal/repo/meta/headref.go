package meta

import (
	"fmt"
	"strings"
)

// legacyRefPrefix is accepted when reading HEAD; it is never written.
const legacyRefPrefix = "ref: branches/"

// GetHeadRef returns the name of the current branch.
func (mc *MetaContext) GetHeadRef() (string, error) {
	data, err := mc.FS.ReadFile(mc.Config.HeadFile())
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD %q: %w", mc.Config.HeadFile(), err)
	}
	name := strings.TrimSpace(string(data))
	name = strings.TrimPrefix(name, legacyRefPrefix)
	if name == "" {
		return "", fmt.Errorf("HEAD ref is empty or invalid")
	}
	return name, nil
}

// SetHeadRef makes the named branch current.
func (mc *MetaContext) SetHeadRef(branch string) error {
	if err := mc.FS.WriteFileAtomic(mc.Config.HeadFile(), []byte(branch+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write HEAD %q: %w", mc.Config.HeadFile(), err)
	}
	return nil
}
