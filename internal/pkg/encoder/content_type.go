package encoder

import "strings"

const (
	textContentType   = "text/plain"
	binaryContentType = "application/octet-stream"

	reportBaseName = "report"
)

// ContentTypeFor returns the media type a report with the given extension
// is served with. Unknown extensions fall back to the binary type.
func ContentTypeFor(extension string) string {
	switch strings.ToLower(extension) {
	case ExtensionCSV, ExtensionTXT:
		return textContentType
	default:
		return binaryContentType
	}
}

// FileName returns the download name for a report, e.g. "report.csv".
func FileName(extension string) string {
	return reportBaseName + "." + extension
}
