package catalog

// Record is one row of the catalog's user-agent listing table.
// Fields hold the trimmed cell text as scraped; nothing is parsed further.
type Record struct {
	UserAgent       string `json:"user_agent"`
	SoftwareVersion string `json:"software_version"`
	OperatingSystem string `json:"operating_system"`
	HardwareType    string `json:"hardware_type"`
	Popularity      string `json:"popularity"`
}
