package models

// Mismatch describes a face whose registered axes differ from the scan.
type Mismatch struct {
	Face    string   `json:"face"`
	Details []string `json:"details"`
}

// Report contains the results of a registry verification run.
type Report struct {
	TotalScanned    int        `json:"total_scanned"`
	TotalRegistered int        `json:"total_registered"`
	Unregistered    []string   `json:"unregistered,omitempty"`
	Missing         []string   `json:"missing,omitempty"`
	Mismatches      []Mismatch `json:"mismatches,omitempty"`
	GeneratedAt     string     `json:"generated_at"`
	ExecutionTime   string     `json:"execution_time"`
}

// Clean reports whether the scan and the registry agree completely.
func (r *Report) Clean() bool {
	return len(r.Unregistered) == 0 && len(r.Missing) == 0 && len(r.Mismatches) == 0
}
