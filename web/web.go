// Package web embeds the browser chat widget served at /widget.js.
package web

import _ "embed"

//go:embed widget.js
var WidgetJS []byte
