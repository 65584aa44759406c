//go:build !adl

package status

// ADLAvailable reports whether ADL support is compiled in.
const ADLAvailable = false

var adlTable []Info
