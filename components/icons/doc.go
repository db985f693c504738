// Package icons provides a curated inline-SVG icon set, search helpers, and a
// small net/http handler that returns JSON options for icon pickers.
//
// The default handler responds to GET and HEAD requests and supports query and
// limit parameters to filter results. The backing set is loaded from the
// embedded SVG files under data/ and passed through the kit's icon sanitizer
// before use.
package icons
