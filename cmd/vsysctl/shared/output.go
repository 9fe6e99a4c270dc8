package shared

import (
	"io"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

// PrintYAML writes YAML encoding of `v` to `out`.
func PrintYAML(out io.Writer, v interface{}) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to encode output")
	}

	_, err = out.Write(data)

	return err
}
