package shared

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
)

var (
	// Version is stamped at build time with `-ldflags "-X ...shared.Version=..."`.
	Version = ""

	bannerTemplate = template.Must(template.New("banner").Funcs(sprig.TxtFuncMap()).Parse(
		`{{ .Program }} {{ .Version | default "dev" }}
{{ .Copyright | trim }}
{{ .License | trim | wrap 72 }}
`))
)

const (
	Program   = "vsysctl"
	Copyright = "Copyright (C) 2026 The vsysctl Authors."
	License   = "This is free software distributed under the MIT license; " +
		"you are free to change and redistribute it. There is NO WARRANTY, to the extent permitted by law."
)

// VersionBanner composes the text printed by `--version`.
func VersionBanner() string {
	var b strings.Builder

	if err := bannerTemplate.Execute(&b, map[string]string{
		"Program":   Program,
		"Version":   Version,
		"Copyright": Copyright,
		"License":   License,
	}); err != nil {
		return Program + " " + Version + "\n"
	}

	return b.String()
}
