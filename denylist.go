package urlstrip

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed denylist.yaml
var denylistYAML []byte

// trackingParams is the static deny-list consumed by StripQuery. Loaded
// once at init from the embedded file and read-only afterwards.
var trackingParams map[string]struct{}

func init() {
	var file struct {
		Params []string `yaml:"params"`
	}
	if err := yaml.Unmarshal(denylistYAML, &file); err != nil {
		panic(fmt.Sprintf("urlstrip: embedded denylist.yaml: %v", err))
	}
	trackingParams = make(map[string]struct{}, len(file.Params))
	for _, p := range file.Params {
		trackingParams[p] = struct{}{}
	}
}
