//go:build !unix

package status

var errnoNames []Info

func platformErrnoName(int) string { return "" }

func platformErrnoValue(string) int { return 0 }
