package render

import "github.com/microcosm-cc/bluemonday"

// contentPolicy permits exactly the markup the transform passes emit plus
// plain user formatting. It is not applied inside Render, which must return
// token-free content byte for byte; hosts scrub third-party or stored
// fragments with Sanitize before presentation.
var contentPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").OnElements("a", "div", "span", "img", "video", "button")
	p.AllowAttrs("target", "rel").OnElements("a")
	p.AllowElements("video", "source", "button")
	p.AllowAttrs("controls").OnElements("video")
	p.AllowAttrs("src", "type").OnElements("source")
	p.AllowAttrs("role").OnElements("button")
	p.AllowDataURIImages()
	return p
}()

// Sanitize scrubs an HTML fragment down to the markup the renderer emits.
func Sanitize(fragment string) string {
	return contentPolicy.Sanitize(fragment)
}
