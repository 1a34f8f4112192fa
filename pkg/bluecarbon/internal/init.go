// Package internal contains the shared infrastructure of the bluecarbon module:
// logging, configuration loading, the message catalog, and icon rasterization.
// Types and functions in this package are not part of the public API.
package internal
