// Enums here are shared between configuration and command line processing
// and are kept out of the config package so that flag parsing does not
// have to import configuration machinery.
package common

// Specification of requested output encoding for rendered selectors.
// ENUM(text, json, yaml)
type OutputFmt int

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".txt"
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}
