// Package icons renders the msricons SVG set as templ components.
//
// Icons are looked up by name in an immutable registry built once from the
// embedded manifest. Icon wraps the resolved definition in a sized container
// and forwards color, coloring mode, click handler and any extra attributes.
// Unknown names render nothing so a typo never breaks the surrounding page.
package icons
